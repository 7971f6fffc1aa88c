package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeMalformedBody = "malformed_request_body"
	CodeBodyTooLarge  = "request_body_too_large"
	CodeInternal      = "internal"
	CodeRouteNotFound = ""
)

// Error is an HTTP-facing failure. Status drives the response code and Code is
// the machine-readable reason; Err (when set) becomes the response message.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func NotFound() *Error {
	return New(http.StatusNotFound, CodeRouteNotFound, nil)
}

func MalformedBody(err error) *Error {
	return New(http.StatusBadRequest, CodeMalformedBody, err)
}

func BodyTooLarge(limit int64) *Error {
	return New(http.StatusRequestEntityTooLarge, CodeBodyTooLarge, fmt.Errorf("request body exceeds %d bytes", limit))
}

func Internal() *Error {
	return New(http.StatusInternalServerError, CodeInternal, nil)
}

// From converts any error into an *Error, defaulting to 500.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return New(http.StatusInternalServerError, CodeInternal, err)
}
