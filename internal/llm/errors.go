package llm

import "errors"

var (
	// ErrUnavailable indicates the completion provider is unreachable.
	ErrUnavailable = errors.New("completion provider unavailable")

	// ErrTimeout indicates the completion request exceeded the configured timeout.
	ErrTimeout = errors.New("completion request timed out")

	// ErrUpstream indicates the provider returned a non-2xx status or a
	// response body that could not be decoded.
	ErrUpstream = errors.New("completion provider error")
)
