package errors

import (
	"errors"
	"fmt"
)

// Error kinds for failures talking to the upstream backend. Callers use
// errors.Is against these to decide how a failure is relayed to the client.

var (
	// ErrBackendUnreachable indicates the backend could not be reached at
	// the transport level (connection refused, timeout, DNS failure)
	ErrBackendUnreachable = errors.New("backend unreachable")

	// ErrBackendResponse indicates the backend answered with a body that
	// could not be decoded as its JSON envelope
	ErrBackendResponse = errors.New("invalid backend response")
)

// BackendUnreachable wraps a transport failure for the named backend
// operation. The cause stays in the chain so errors.Is still matches
// syscall-level errors such as ECONNREFUSED.
func BackendUnreachable(operation string, cause error) error {
	return fmt.Errorf("backend %s call failed: %w: %w", operation, ErrBackendUnreachable, cause)
}

// MalformedResponse wraps a decode failure for the named backend operation
func MalformedResponse(operation string, cause error) error {
	return fmt.Errorf("backend %s returned invalid JSON: %w: %w", operation, ErrBackendResponse, cause)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
