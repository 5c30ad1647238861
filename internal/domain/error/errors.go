package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	CodeInvalidArgument     = "INVALID_ARGUMENT"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeMalformedRequest    = "MALFORMED_REQUEST"
	CodeNotFound            = "NOT_FOUND"
	CodeInternalServer      = "INTERNAL_SERVER_ERROR"
)

// Base error types
var (
	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user id must be positive")

	// ErrInvalidAmount is returned when the amount is not a positive integer
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrChargeLimitExceeded is returned when a single charge exceeds the maximum
	ErrChargeLimitExceeded = errors.New("single charge cannot exceed 1000000 points")

	// ErrUseBelowMinimum is returned when a use amount is under the minimum of 100
	ErrUseBelowMinimum = errors.New("points can only be used from a minimum of 100")

	// ErrUseNotMultipleOfTen is returned when a use amount is not in units of 10
	ErrUseNotMultipleOfTen = errors.New("points can only be used in multiples of 10")

	// ErrInsufficientBalance is returned when a use amount exceeds the current balance
	ErrInsufficientBalance = errors.New("use amount exceeds current balance")

	// ErrMalformedRequest is returned when the request path or body cannot be parsed
	ErrMalformedRequest = errors.New("malformed request")

	// ErrNotFound is returned for unknown routes
	ErrNotFound = errors.New("resource not found")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns the standardized error code for known errors
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidUserID),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrChargeLimitExceeded),
		errors.Is(err, ErrUseBelowMinimum),
		errors.Is(err, ErrUseNotMultipleOfTen):
		return CodeInvalidArgument
	case errors.Is(err, ErrMalformedRequest):
		return CodeMalformedRequest
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID  int64
	Amount  int64
	Balance int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %d, available %d",
		e.UserID, e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"balance":    e.Balance,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID, amount, balance int64) error {
	return &InsufficientBalanceError{
		UserID:  userID,
		Amount:  amount,
		Balance: balance,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsInvalidArgumentError checks if the error is any validation rule violation
func IsInvalidArgumentError(err error) bool {
	return ErrorCode(err) == CodeInvalidArgument
}
