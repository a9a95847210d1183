package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstream is wrapped by every failed call to the completion endpoint.
	ErrUpstream = errors.New("completion endpoint failed")
	// ErrEmptyResponse is returned when the endpoint answers 200 without any text.
	ErrEmptyResponse = errors.New("completion endpoint returned no text")
)

// Error describes a failed completion call.
type Error struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("llm %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrUpstream, e.Err}
}
