package apperrors

import (
	"errors"
	"net/http"
)

// Error carries a stable business code alongside the HTTP status used when
// the error reaches a controller. Code 1000 is reserved for success
// envelopes and never appears here.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrInvalidRequest   = &Error{Code: 1001, Message: "invalid request", Status: http.StatusBadRequest}
	ErrInvalidDateRange = &Error{Code: 1009, Message: "check-in date must come before check-out date", Status: http.StatusBadRequest}
	ErrUserNotExisted   = &Error{Code: 1005, Message: "user not existed", Status: http.StatusNotFound}
	ErrUnauthenticated  = &Error{Code: 1006, Message: "unauthenticated", Status: http.StatusUnauthorized}
	ErrUnauthorized     = &Error{Code: 1007, Message: "you do not have permission", Status: http.StatusForbidden}

	ErrRoomNotFound = &Error{Code: 2001, Message: "room does not exist", Status: http.StatusNotFound}
	ErrRoomConflict = &Error{Code: 2002, Message: "room number already exists", Status: http.StatusConflict}
	ErrRoomInUse    = &Error{Code: 2003, Message: "room is in use", Status: http.StatusConflict}

	ErrBookingNotFound = &Error{Code: 3001, Message: "booking does not exist", Status: http.StatusNotFound}

	ErrProductNotFound = &Error{Code: 5001, Message: "product does not exist", Status: http.StatusNotFound}
	ErrNotEnoughStock  = &Error{Code: 5002, Message: "not enough stock available", Status: http.StatusBadRequest}

	ErrServiceNotFound = &Error{Code: 7001, Message: "service does not exist", Status: http.StatusNotFound}

	ErrInvoiceNotFound = &Error{Code: 8001, Message: "invoice does not exist", Status: http.StatusNotFound}
	ErrTotalMismatch   = &Error{Code: 8002, Message: "total price not equal", Status: http.StatusBadRequest}

	ErrInvalidSignature = &Error{Code: 9001, Message: "invalid gateway signature", Status: http.StatusBadRequest}

	ErrInternal = &Error{Code: 9999, Message: "uncategorized error", Status: http.StatusInternalServerError}
)

// Status returns the HTTP status to respond with for err.
func Status(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// CodeOf returns the business code for err, falling back to the
// uncategorized code for unexpected failures.
func CodeOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal.Code
}

// MessageOf returns the caller-facing message for err. Unexpected errors are
// not leaked verbatim.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ErrInternal.Message
}
