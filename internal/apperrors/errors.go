package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the acting account may not perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInternal is returned when an unexpected failure is hidden from the caller.
var ErrInternal = errors.New("internal error")

// Ledger, listing and escrow errors. All of them are precondition failures raised
// before any state is mutated.
var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrNotNegotiable      = errors.New("listing is not negotiable")
	ErrInvalidState       = errors.New("invalid state for operation")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrAlreadyResolved    = errors.New("escrow transaction already resolved")
	ErrListingUnavailable = errors.New("listing is not available for purchase")
)

// ErrIdempotencyConflict means an idempotency key was reused with a different request.
var ErrIdempotencyConflict = errors.New("idempotency key reused with a different request")

// AppError carries an HTTP-ish status code alongside a wrapped error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
