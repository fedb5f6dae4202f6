package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AppError represents an application error
type AppError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	Username   string    `json:"username,omitempty"`
	Path       string    `json:"path,omitempty"`
	Method     string    `json:"method,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewValidationError creates a validation error
func NewValidationError(field, message string) *AppError {
	return NewAppError(
		ErrCodeValidation,
		fmt.Sprintf("Validation failed for field '%s': %s", field, message),
		http.StatusBadRequest,
		nil,
	)
}

// NewAuthError creates an authentication error
func NewAuthError(message string) *AppError {
	if message == "" {
		message = "Invalid credentials"
	}
	return NewAppError(
		ErrCodeInvalidCredentials,
		message,
		http.StatusUnauthorized,
		nil,
	)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Unauthorized access"
	}
	return NewAppError(
		"UNAUTHORIZED",
		message,
		http.StatusUnauthorized,
		nil,
	)
}

// NewGameStateError is returned when a game action does not fit the current phase
func NewGameStateError(message string) *AppError {
	return NewAppError(
		ErrCodeGameInvalidState,
		message,
		http.StatusConflict,
		nil,
	)
}

// NewInsufficientBalanceError creates an error for wagers above the effective balance
func NewInsufficientBalanceError(balance, wanted int64) *AppError {
	return NewAppError(
		ErrCodeInsufficientBalance,
		fmt.Sprintf("Insufficient balance: have %d, need %d", balance, wanted),
		http.StatusBadRequest,
		nil,
	)
}

// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return NewAppError(
		"INTERNAL_ERROR",
		message,
		http.StatusInternalServerError,
		err,
	)
}

// NewStorageError creates a storage error
func NewStorageError(operation string, err error) *AppError {
	return NewAppError(
		ErrCodeStorage,
		fmt.Sprintf("Storage operation failed: %s", operation),
		http.StatusInternalServerError,
		err,
	)
}

// NewExternalServiceError creates an external service error
func NewExternalServiceError(service, operation string, err error) *AppError {
	return NewAppError(
		ErrCodeLedgerService,
		fmt.Sprintf("External service '%s' operation '%s' failed", service, operation),
		http.StatusServiceUnavailable,
		err,
	)
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Success bool      `json:"success"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Success: false,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError carrying code
func HasCode(err error, code string) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Code == code
}

// Error codes for different categories of errors
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeTokenInvalid       = "TOKEN_INVALID"
	ErrCodeTokenMissing       = "TOKEN_MISSING"
	ErrCodeSessionNotFound    = "SESSION_NOT_FOUND"
	ErrCodeNotSignedIn        = "NOT_SIGNED_IN"

	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeRequiredField       = "REQUIRED_FIELD"
	ErrCodeInvalidFormat       = "INVALID_FORMAT"
	ErrCodeInvalidAmount       = "INVALID_AMOUNT"
	ErrCodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	ErrCodeBalanceBusy         = "BALANCE_BUSY"

	ErrCodeGameInvalidState = "GAME_INVALID_STATE"
	ErrCodeInventoryFull    = "INVENTORY_FULL"

	ErrCodeReceiptNotFound = "RECEIPT_NOT_FOUND"

	ErrCodeStorage        = "STORAGE_ERROR"
	ErrCodeLedgerService  = "LEDGER_SERVICE_ERROR"
	ErrCodeLedgerRejected = "LEDGER_TRANSACTION_REJECTED"
	ErrCodeLedgerTimeout  = "LEDGER_TRANSACTION_TIMEOUT"
)
