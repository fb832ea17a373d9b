package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode identifies an application error kind independently of HTTP status.
type ErrorCode string

const (
	ErrorCode_HTTP_OK                  ErrorCode = "HTTP_OK"
	ErrorCode_INTERNAL                 ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT         ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_UNAUTHENTICATED          ErrorCode = "UNAUTHENTICATED"
	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = "AUTH_INVALID_TOKEN"
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = "AUTH_INVALID_CREDENTIALS"
	ErrorCode_EMAIL_ALREADY_REGISTERED ErrorCode = "EMAIL_ALREADY_REGISTERED"
	ErrorCode_WEAK_PASSWORD            ErrorCode = "WEAK_PASSWORD"
	ErrorCode_INTEGRATION_NOT_LINKED   ErrorCode = "INTEGRATION_NOT_LINKED"
	ErrorCode_PROVIDER_CONFIG          ErrorCode = "PROVIDER_CONFIG"
	ErrorCode_UPSTREAM_FAILED          ErrorCode = "UPSTREAM_FAILED"
)

// String implements fmt.Stringer
func (c ErrorCode) String() string {
	return string(c)
}

// AppError is the application error type carried from services to handlers.
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrUnauthenticated() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_UNAUTHENTICATED,
		Message:  "Authentication required",
	}
}

// Authentication errors

func ErrInvalidToken() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_INVALID_TOKEN,
		Message:  "Invalid authentication token",
	}
}

func ErrInvalidCredentials() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_INVALID_CREDENTIALS,
		Message:  "Invalid email or password",
	}
}

func ErrEmailAlreadyRegistered() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_EMAIL_ALREADY_REGISTERED,
		Message:  "Email already registered",
	}
}

func ErrWeakPassword() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_WEAK_PASSWORD,
		Message:  "Password does not meet requirements",
	}
}

// Integration errors

func ErrIntegrationNotLinked() AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_INTEGRATION_NOT_LINKED,
		Message:  "Google Calendar integration not found for this user. Please link your account.",
	}
}

func ErrProviderConfig(provider string) AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_PROVIDER_CONFIG,
		Message:  "OAuth provider is not configured",
	}.WithDetail("provider", provider)
}

// Upstream errors

func ErrUpstreamFailed(provider string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_UPSTREAM_FAILED,
		Message:  "Upstream provider request failed",
	}.WithDetail("provider", provider)
}
