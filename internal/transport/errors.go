package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// NetworkError means the connection to the backend could not be
// established at all. Screens map it to the "no connection" state.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError means the configured deadline elapsed before the backend
// answered. The call is terminal; nothing resolves later.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string { return "timeout: " + e.Err.Error() }
func (e *TimeoutError) Unwrap() error { return e.Err }

// HTTPError is any non-2xx backend response. Message carries the backend's
// "message"/"error" JSON field when it sent one; Body keeps the raw payload
// for callers that need more.
type HTTPError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// classifyTransportErr maps a failed http.Client.Do into the error
// taxonomy. Deadline errors win over generic network errors.
func classifyTransportErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Err: err}
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return &TimeoutError{Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &TimeoutError{Err: err}
	}
	return &NetworkError{Err: err}
}

// backendMessage extracts the error message the backend attached to a
// non-2xx response. The GEDO backend uses "message" almost everywhere and
// "error" on a few dashboard routes.
func backendMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Err
}
