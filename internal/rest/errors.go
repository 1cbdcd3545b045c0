package rest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRetryLater          = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrDownloadFailed = errors.New("failed to download world")
	ErrEmptyBody      = errors.New("empty response body")
)

// StatusError is returned for every non-2xx answer of the Realms API once
// retries are exhausted. It unwraps to one of the sentinel errors above so
// callers can use errors.Is, and exposes the raw status through errors.As.
type StatusError struct {
	StatusCode int
	// Status is the reason phrase sent by the server, e.g. "Service
	// Unavailable".
	Status string
	Body   string
	kind   error
}

func (e *StatusError) Error() string {
	msg := strconv.Itoa(e.StatusCode)
	if e.Status != "" {
		msg += " " + e.Status
	}
	if e.Body != "" {
		msg += " " + e.Body
	}
	return msg
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

// Retryable reports whether the status belongs to the 5xx class.
func (e *StatusError) Retryable() bool {
	return isServerStatus(e.StatusCode)
}

func isServerStatus(code int) bool {
	return code >= http.StatusInternalServerError && code < 600
}

// newStatusError builds the error of a non-2xx answer. status is the status
// line as resty reports it ("503 Service Unavailable"); the standard text of
// code is used when the server sent no reason phrase.
func newStatusError(code int, status string, body []byte) *StatusError {
	reason := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(status), strconv.Itoa(code)))
	if reason == "" {
		reason = http.StatusText(code)
	}

	return &StatusError{
		StatusCode: code,
		Status:     reason,
		Body:       strings.TrimSpace(string(body)),
		kind:       statusKind(code),
	}
}
