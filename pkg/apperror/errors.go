package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrForbidden      = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict       = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// Domain errors. Each carries the offending id in its message and maps to the
// status the HTTP layer returns: not-found -> 404, duplicate barcode -> 409,
// lifecycle violations -> 403.

// NewProductNotFoundError reports a missing product.
func NewProductNotFoundError(id uuid.UUID) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("Product with id %s does not exist", id),
	}
}

// NewReceiptNotFoundError reports a missing receipt.
func NewReceiptNotFoundError(id uuid.UUID) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("Receipt with id %s does not exist", id),
	}
}

// NewShiftNotFoundError reports a missing shift.
func NewShiftNotFoundError(id uuid.UUID) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("Shift with id %s does not exist", id),
	}
}

// NewCampaignNotFoundError reports a campaign id no repository owns.
func NewCampaignNotFoundError(id uuid.UUID) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("Campaign with id %s does not exist", id),
	}
}

// NewItemNotFoundError reports a line item absent from a receipt.
func NewItemNotFoundError(id uuid.UUID) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("Item with id %s does not exist in receipt", id),
	}
}

// NewBarcodeConflictError reports a duplicate product barcode.
func NewBarcodeConflictError(barcode string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("Product with barcode %s already exists", barcode),
	}
}

// NewReceiptClosedError rejects mutation of a closed receipt.
func NewReceiptClosedError(id uuid.UUID) *AppError {
	return &AppError{
		Code:    http.StatusForbidden,
		Message: fmt.Sprintf("Receipt with id %s is closed", id),
	}
}

// NewShiftClosedError rejects mutation of a closed shift.
func NewShiftClosedError(id uuid.UUID) *AppError {
	return &AppError{
		Code:    http.StatusForbidden,
		Message: fmt.Sprintf("Shift with id %s is closed", id),
	}
}

// NewShiftOpenedError rejects a Z report on a shift that is still open.
func NewShiftOpenedError(id uuid.UUID) *AppError {
	return &AppError{
		Code:    http.StatusForbidden,
		Message: fmt.Sprintf("Shift with id %s is opened", id),
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
