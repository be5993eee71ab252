// Package services provides the business logic layer between handlers and
// the curve transformation core.
package services

import (
	"errors"

	"github.com/fsonmez/windpowerlib/internal/powercurve"
)

// Error codes returned by the service layer
const (
	CodeConfigError   = "CONFIG_ERROR"
	CodeInvalidConfig = "INVALID_CONFIG"
	CodeInvalidCurve  = "INVALID_CURVE"
	CodeInvalidUnit   = "INVALID_UNIT"
	CodeNotFound      = "NOT_FOUND"
	CodeCurveTooLarge = "CURVE_TOO_LARGE"
	CodeBatchTooLarge = "BATCH_TOO_LARGE"
	CodeStoreError    = "STORE_ERROR"
	CodeInternal      = "INTERNAL_ERROR"
)

// ServiceError represents a service layer error
type ServiceError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

// NewServiceError creates a new ServiceError
func NewServiceError(code, message string) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
	}
}

// NewServiceErrorWithDetails creates a new ServiceError with details
func NewServiceErrorWithDetails(code, message string, details map[string]interface{}) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// wrapCurveError translates a transformation core error into a ServiceError
func wrapCurveError(err error) *ServiceError {
	var cfgErr *powercurve.ConfigError
	if errors.As(err, &cfgErr) {
		return NewServiceError(CodeConfigError, cfgErr.Error())
	}

	var invErr *powercurve.InvalidConfigError
	if errors.As(err, &invErr) {
		return NewServiceError(CodeInvalidConfig, invErr.Error())
	}

	return NewServiceError(CodeInternal, err.Error())
}
