// Package errors defines application-facing errors with HTTP mappings.
package errors

import (
	"net/http"

	"iriscan/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Only quota and payload-size failures are ever
// user-visible; every other failure category degrades to the offline fallback.
var (
	// ErrQuotaExceeded terminates the scan before any image leaves the device.
	ErrQuotaExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"QUOTA_EXCEEDED",
		"Weekly scan limit reached",
		"",
	)

	// ErrPayloadTooLarge instructs the user to re-capture the photo.
	ErrPayloadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"PAYLOAD_TOO_LARGE",
		"Photo could not be compressed for upload, please retake it",
		"",
	)

	// ErrInvalidIdentity is returned when no usable identity accompanies a request.
	ErrInvalidIdentity = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_IDENTITY",
		"Missing or invalid identity",
		"",
	)

	// ErrPurchaseRejected is returned when the billing verifier declines a purchase.
	ErrPurchaseRejected = NewBaseError(
		http.StatusPaymentRequired,
		"PURCHASE_REJECTED",
		"Purchase could not be verified",
		"",
	)

	// ErrInvalidImage is returned when the uploaded bytes are not a decodable image.
	ErrInvalidImage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE",
		"Uploaded data is not a valid image",
		"",
	)
)
