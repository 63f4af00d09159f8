package apperror

import (
	"fmt"

	"github.com/fero-tech/claimrunner/common/constants"
)

type AppError struct {
	Code    constants.ErrorCode
	Message string
	Err     error
	// Hint replaces the generic hints of Code when set.
	Hint string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithHint sets the operator hint reported instead of the category ones.
func (e *AppError) WithHint(hint string) *AppError {
	e.Hint = hint
	return e
}

func newError(code constants.ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func Configuration(message string) *AppError {
	return newError(constants.ConfigurationErrorCode, message, nil)
}

func CallException(message string, err error) *AppError {
	return newError(constants.CallExceptionCode, message, err)
}

func InsufficientFunds(message string, err error) *AppError {
	return newError(constants.InsufficientFundsCode, message, err)
}

func Network(message string, err error) *AppError {
	return newError(constants.NetworkErrorCode, message, err)
}

func Unknown(message string, err error) *AppError {
	return newError(constants.UnknownErrorCode, message, err)
}
