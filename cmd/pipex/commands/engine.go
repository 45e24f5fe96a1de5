package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/pipex/internal/errors"
	"github.com/thoreinstein/pipex/internal/logging"
	"github.com/thoreinstein/pipex/internal/options"
	"github.com/thoreinstein/pipex/internal/resolve"
	"github.com/thoreinstein/pipex/internal/validator"
)

// bindEngineFlags registers the engine option schema on cmd. Flag errors
// and positional arguments are reported as parse errors followed by the
// engine usage text.
func bindEngineFlags(cmd *cobra.Command) {
	options.AddFlags(cmd.Flags())
	cmd.Args = noPositionalArgs
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		printEngineUsage(c.ErrOrStderr())
		return &options.ParseError{Reason: err.Error(), Cause: err}
	})
}

func noPositionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	printEngineUsage(cmd.ErrOrStderr())
	return &options.ParseError{
		Reason: "unexpected argument(s): " + strings.Join(args, " "),
	}
}

func printEngineUsage(w io.Writer) {
	fmt.Fprintf(w, "Engine options:\n%s", options.Usage())
}

// resolveEngineFlags resolves the engine options set on cmd.
func resolveEngineFlags(cmd *cobra.Command) (*resolve.Configuration, error) {
	set, err := options.FromFlagSet(cmd.Flags())
	if err != nil {
		return nil, errors.NewSystemError(err, "")
	}
	r := resolve.New(resolve.WithLogger(logging.FromContext(cmd.Context())))
	return r.Resolve(set)
}

// reportResolveError writes one issue per violated rule or failing field
// to w in the given format and returns the exit error for err. Text
// reports are followed by the engine usage text on stderr.
func reportResolveError(cmd *cobra.Command, w io.Writer, format validator.Format, err error) error {
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	result := resolve.Report(err)
	if result == nil {
		return errors.NewSystemError(err, "")
	}
	if rerr := validator.NewReporter(w, format).Report(result); rerr != nil {
		return errors.NewSystemError(rerr, "")
	}
	if format == validator.FormatText {
		printEngineUsage(cmd.ErrOrStderr())
	}
	return errors.NewUserError(err, fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath()))
}
