// Package domainerrors defines coded errors surfaced to API callers.
// Services construct these at the domain boundary; transport translates the
// code to an HTTP status with httputil.WriteError.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code identifies a class of domain failure.
type Code string

const (
	CodeBadRequest     Code = "bad_request"
	CodeUnauthorized   Code = "unauthorized"
	CodeNotFound       Code = "not_found"
	CodeDuplicateEntry Code = "duplicate_entry"
	CodeInvalidState   Code = "invalid_state"
	CodeInternal       Code = "internal_error"
)

// Error carries a stable code plus a human-readable message. The message is
// safe to show to callers except for CodeInternal, which is redacted by the
// HTTP layer.
type Error struct {
	Code    Code
	Message string
}

func (e Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// New constructs a coded domain error.
func New(code Code, message string) Error {
	return Error{Code: code, Message: message}
}

// Is reports whether err is a domain error with the given code.
func Is(err error, code Code) bool {
	var domainErr Error
	return errors.As(err, &domainErr) && domainErr.Code == code
}

// ToHTTPStatus maps a domain error code to an HTTP status code.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeDuplicateEntry:
		return http.StatusConflict
	case CodeInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
