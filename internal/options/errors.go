package options

import (
	"fmt"

	"github.com/thoreinstein/pipex/internal/errors"
)

// ParseError reports a malformed token stream. It unwraps to
// errors.ErrParse.
type ParseError struct {
	// Reason is a human-readable description of what was wrong.
	Reason string
	// Cause is the underlying flag parser error, if any.
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s", errors.ErrParse, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return errors.ErrParse
}
