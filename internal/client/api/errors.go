package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrBadRequest        = errors.New("request rejected")
	ErrConflict          = errors.New("conflict")
	ErrRateLimited       = errors.New("too many requests")
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrInvalidServerAddr = errors.New("invalid server address")
)

// StatusError is returned for every non-2xx response. It unwraps to the
// sentinel matching its status code.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
	kind   error
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Code, http.StatusText(e.Code))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

// kindForStatus maps an HTTP status code to its sentinel error.
func kindForStatus(code int) error {
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusConflict:
		return ErrConflict
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		return ErrBadRequest
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	case code >= 500:
		return ErrUnavailable
	default:
		return ErrUnexpectedStatus
	}
}
