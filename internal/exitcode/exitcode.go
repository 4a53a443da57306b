// Package exitcode maps errors to process exit codes so scripts can tell
// failure modes apart without parsing stderr.
package exitcode

import (
	"errors"

	"github.com/ordinalab/lexindex/pkg/lexindex"
)

// Process exit codes.
const (
	// OK indicates success.
	OK = 0
	// Failure indicates the operation failed: an internal error, or a
	// check that found problems.
	Failure = 1
	// Usage indicates the invocation or its input was invalid: malformed
	// keys, unordered bounds, a bad alphabet.
	Usage = 2
	// NoRoom indicates the gap between the given bounds holds no key.
	// Scripts typically react by rebuilding the ordering with fresh keys.
	NoRoom = 3
	// Config indicates the configuration could not be loaded or validated.
	Config = 4
)

// Coder is implemented by errors that carry their own exit code.
type Coder interface {
	ExitCode() int
}

type codedError struct {
	err  error
	code int
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }
func (e *codedError) ExitCode() int { return e.code }

// Wrap attaches an exit code to err. Returns nil if err is nil.
func Wrap(err error, code int) error {
	if err == nil {
		return nil
	}
	return &codedError{err: err, code: code}
}

// FromError classifies err into an exit code.
//
// Precedence: an explicit Coder in the chain wins, then the engine
// sentinels, then Failure.
func FromError(err error) int {
	if err == nil {
		return OK
	}

	var coder Coder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}

	if errors.Is(err, lexindex.ErrNoRoom) {
		return NoRoom
	}

	switch {
	case errors.Is(err, lexindex.ErrEmptyIndex),
		errors.Is(err, lexindex.ErrInvalidCharacter),
		errors.Is(err, lexindex.ErrTerminalMinimum),
		errors.Is(err, lexindex.ErrNotOrdered),
		errors.Is(err, lexindex.ErrBadAlphabet):
		return Usage
	}

	return Failure
}
