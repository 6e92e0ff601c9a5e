package app

import "errors"

// ErrInvalidURL reports input that lacks a scheme or host. No network
// activity happens for such input.
var ErrInvalidURL = errors.New("invalid URL format")

// TransportError reports a failed fetch attempt: timeout, connection
// failure, or an unexpected HTTP status. Cause is a human-readable
// description of what went wrong; the fetch is never retried.
type TransportError struct {
	Cause string
	Err   error
}

func (e *TransportError) Error() string { return e.Cause }

func (e *TransportError) Unwrap() error { return e.Err }
