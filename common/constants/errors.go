package constants

type ErrorCode string

const (
	ConfigurationErrorCode ErrorCode = "CONFIGURATION_ERROR"
	CallExceptionCode      ErrorCode = "CALL_EXCEPTION"
	InsufficientFundsCode  ErrorCode = "INSUFFICIENT_FUNDS"
	NetworkErrorCode       ErrorCode = "NETWORK_ERROR"
	TimeoutErrorCode       ErrorCode = "TIMEOUT"
	UnknownErrorCode       ErrorCode = "UNKNOWN_ERROR"
)

// JSON-RPC error code geth returns for reverted calls.
const RevertedRPCErrorCode = 3
