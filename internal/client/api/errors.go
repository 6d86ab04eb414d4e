package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized matches any authentication failure (401/403).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable matches any transport-level failure.
	ErrUnavailable = errors.New("server unavailable")
)

// AuthError is the classification of a 401 or 403 response. The backend
// message, if any, is kept verbatim so callers can show it to the user.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("authentication failed (status %d)", e.Status)
	}
	return e.Message
}

// Is makes errors.Is(err, ErrUnauthorized) work for classified auth failures.
func (e *AuthError) Is(target error) bool { return target == ErrUnauthorized }

// TransportError is the classification of every other failure: non-2xx
// responses outside 401/403, and network-level errors (Status is 0 when no
// response was received).
type TransportError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
}

// Is makes errors.Is(err, ErrUnavailable) work for classified transport
// failures.
func (e *TransportError) Is(target error) bool { return target == ErrUnavailable }
