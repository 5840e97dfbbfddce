package types

import (
	"errors"
	"net/http"
)

// AppError is a domain error that already knows the HTTP status it maps to.
// The message is safe to return to callers; internal detail stays in the logs.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

// ErrorStatus resolves the response status for err. Unclassified errors map
// to 400 so store internals never leak as 5xx bodies.
func ErrorStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusBadRequest
}
