// Package error defines errors raised by the verifier runtime itself, as
// opposed to rejections reported by the verifier.
package error

import (
	"errors"
	"fmt"
)

// ErrPinned is returned when removing code that is pinned in the cache.
var ErrPinned = errors.New("code is pinned")

// RuntimeError represents a generic runtime error
type RuntimeError struct {
	Msg string
	Err error
}

func (e *RuntimeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *RuntimeError) Unwrap() error { return e.Err }

// Wrap returns nil for a nil err and a *RuntimeError otherwise.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &RuntimeError{Msg: fmt.Sprintf(format, args...), Err: err}
}
