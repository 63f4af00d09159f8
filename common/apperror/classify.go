package apperror

import (
	"context"
	"errors"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/fero-tech/claimrunner/common/constants"
	"github.com/sirupsen/logrus"
)

var hints = map[constants.ErrorCode][]string{
	constants.ConfigurationErrorCode: {
		"check PRIVATE_KEY, the claim data file and the configuration",
	},
	constants.CallExceptionCode: {
		"the contract rejected the call, possible reasons:",
		"  - the allocation was already claimed",
		"  - the proof is invalid",
		"  - the parameters are wrong",
	},
	constants.InsufficientFundsCode: {
		"insufficient balance, top up ETH to pay for gas and the attached value",
	},
	constants.NetworkErrorCode: {
		"network connection error, check the RPC configuration",
	},
	constants.TimeoutErrorCode: {
		"gave up waiting, the transaction may still be pending",
		"look the hash up on a block explorer before sending the claim again",
	},
}

// Classify maps an error returned by the node or the transport to an error code.
func Classify(err error) constants.ErrorCode {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	// DeadlineExceeded also satisfies net.Error, so it is checked first.
	if errors.Is(err, context.DeadlineExceeded) {
		return constants.TimeoutErrorCode
	}
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == constants.RevertedRPCErrorCode {
		return constants.CallExceptionCode
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "execution reverted"):
		return constants.CallExceptionCode
	case strings.Contains(msg, "insufficient funds"):
		return constants.InsufficientFundsCode
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) ||
		errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, io.ErrUnexpectedEOF) {
		return constants.NetworkErrorCode
	}
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") {
		return constants.NetworkErrorCode
	}
	return constants.UnknownErrorCode
}

func Hints(code constants.ErrorCode) []string {
	return hints[code]
}

// Report logs err together with the hint lines of its category.
func Report(logger *logrus.Logger, err error) constants.ErrorCode {
	code := Classify(err)
	if code == "" {
		return code
	}
	logger.WithField("code", code).Errorf("claim failed: %v", err)
	lines := Hints(code)
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Hint != "" {
		lines = []string{appErr.Hint}
	}
	for _, line := range lines {
		logger.Error(line)
	}
	return code
}
