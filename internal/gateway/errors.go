package gateway

import "errors"

var (
	// ErrUnavailable indicates the schedule API is unreachable.
	ErrUnavailable = errors.New("schedule api unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("schedule api request timed out")

	// ErrRemote indicates the API answered but reported failure
	// (non-2xx status or a success:false envelope).
	ErrRemote = errors.New("schedule api rejected the request")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("schedule api retry attempts exhausted")
)
