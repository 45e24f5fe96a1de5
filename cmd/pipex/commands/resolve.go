package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/pipex/internal/errors"
	"github.com/thoreinstein/pipex/internal/logging"
	"github.com/thoreinstein/pipex/internal/resolve"
	"github.com/thoreinstein/pipex/internal/validator"
	"github.com/thoreinstein/pipex/pkg/fileutil"
)

var (
	resolveFormat string
	resolveWrite  string
)

func init() {
	bindEngineFlags(resolveCmd)
	resolveCmd.Flags().StringVar(&resolveFormat, "format", "",
		"output format: "+formatList()+" (default from config)")
	resolveCmd.Flags().StringVarP(&resolveWrite, "write", "w", "",
		"write the configuration to a file instead of stdout")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [engine options]",
	Short: "Resolve engine options into a configuration",
	Long: `Resolve the engine options into the configuration handed to the
pipeline engine.

Every failing option is reported before exiting. On success the
configuration is printed in the selected format, or written atomically
to the file given with --write.

Exit codes:
  0 - Configuration resolved
  1 - Invalid options
  2 - Output could not be written`,
	Example: `  pipex resolve --pipeline-path ./pipes --parallel true --output-path ./out --working-directory .
  pipex resolve --ir-path ./ir.json --parallel false --output-path ./out --working-directory . --format toml
  pipex resolve --ir-path ./ir.json --parallel true --output-path ./out --working-directory . -w engine.yaml`,
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, _ []string) error {
	name := resolveFormat
	if name == "" {
		name = currentConfig().OutputFormat
	}
	format, err := resolve.ParseFormat(name)
	if err != nil {
		return errors.NewUserError(err, "Valid formats: "+formatList())
	}

	conf, err := resolveEngineFlags(cmd)
	if err != nil {
		return reportResolveError(cmd, cmd.ErrOrStderr(), validator.FormatText, err)
	}

	if resolveWrite == "" {
		if err := conf.Encode(cmd.OutOrStdout(), format); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "writing configuration"), "")
		}
		return nil
	}

	err = fileutil.AtomicWriteFunc(resolveWrite, func(w io.Writer) error {
		return conf.Encode(w, format)
	})
	if err != nil {
		return errors.NewSystemError(
			errors.Wrapf(err, "writing configuration to %s", resolveWrite),
			"Check that the destination directory exists and is writable",
		)
	}

	logging.FromContext(cmd.Context()).Info("configuration written",
		"path", resolveWrite, "format", string(format))
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration written to %s\n", resolveWrite)
	}
	return nil
}

func formatList() string {
	return strings.Join(formatNames(), ", ")
}

// formatNames returns the names of the configuration encodings.
func formatNames() []string {
	names := make([]string, 0, len(resolve.Formats()))
	for _, f := range resolve.Formats() {
		names = append(names, string(f))
	}
	return names
}
