package constants

type ContextKey string

const (
	ConfigKey ContextKey = "config"
)

const (
	ReceiptStatusFailed     uint64 = 0
	ReceiptStatusSuccessful uint64 = 1
)

const (
	GweiDecimals  int32 = 9
	EtherDecimals int32 = 18
)
