package apierror

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrConflict       ErrorCode = "CONFLICT"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrDomain         ErrorCode = "DOMAIN_FAILURE"
	ErrInternalServer ErrorCode = "INTERNAL_SERVER_ERROR"
)

// Process exit codes returned by the CLI.
const (
	ExitOK = iota
	ExitDomainFailure
	ExitInvalidInput
	ExitNotFound
	ExitConflict
	ExitInternal
)

type APIError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code ErrorCode, message string, details interface{}) APIError {
	logrus.WithField("code", code).Debug(message, details)
	return APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// CodeOf returns the code of the first APIError in err's chain, or ErrInternalServer.
func CodeOf(err error) ErrorCode {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ErrInternalServer
}

func MapErrorToExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch CodeOf(err) {
	case ErrDomain:
		return ExitDomainFailure
	case ErrInvalidInput:
		return ExitInvalidInput
	case ErrNotFound:
		return ExitNotFound
	case ErrConflict:
		return ExitConflict
	default:
		return ExitInternal
	}
}
