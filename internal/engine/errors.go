package engine

import (
	"errors"
	"fmt"
)

// InvariantError marks a broken engine invariant. The game instance that
// returned it should be considered corrupt.
type InvariantError struct {
	Err error
}

func (e *InvariantError) Error() string {
	return "invariant violated: " + e.Err.Error()
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err carries an InvariantError.
func IsFatal(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}

func invariantf(base error, format string, args ...interface{}) error {
	return &InvariantError{Err: fmt.Errorf("%w: %s", base, fmt.Sprintf(format, args...))}
}
