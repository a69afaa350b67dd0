package service

import "errors"

// ErrNoInput is returned when the request carries no question.
var ErrNoInput = errors.New("No input provided")

// UpstreamError wraps any failure from the generator: missing configuration,
// network, or the model itself. Callers are not told which.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
