// Package errors provides error handling conventions for the pipex CLI.
//
// This package defines sentinel errors for the failure categories of
// argument resolution, an ExitError type for CLI exit code handling, and
// exit code constants following standard Unix conventions. Wrapping helpers
// are re-exported from github.com/cockroachdb/errors so callers only need a
// single errors import.
//
// # Sentinel Errors
//
// Every failure produced while resolving engine arguments unwraps to one of
// the sentinels, so callers can branch with [Is]:
//
//	if errors.Is(err, pipexerrors.ErrMissingMandatoryOption) {
//	    // print usage
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid arguments, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional suggestion:
//
//	err := pipexerrors.NewUserError(err, "Run 'pipex resolve --help' for usage")
//	var exitErr *pipexerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
