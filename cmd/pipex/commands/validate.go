package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/pipex/internal/errors"
	"github.com/thoreinstein/pipex/internal/validator"
)

var validateFormat string

func init() {
	bindEngineFlags(validateCmd)
	validateCmd.Flags().StringVar(&validateFormat, "format", "",
		"report format: text, json (default from config)")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [engine options]",
	Short: "Validate engine options",
	Long: `Validate the engine options without emitting a configuration.

Mandatory options are checked first. When they are satisfied, every
option value is validated and each failing field is reported.

Use --format json for machine-readable output.

Exit codes:
  0 - Options are valid
  1 - Options are invalid`,
	Example: `  pipex validate --pipeline-path ./pipes --parallel true --output-path ./out --working-directory .
  pipex validate --ir-path ./ir.json --parallel maybe --output-path ./out --working-directory . --format json`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	name := validateFormat
	if name == "" {
		name = currentConfig().ReportFormat
	}
	format := validator.Format(strings.ToLower(name))
	if format != validator.FormatText && format != validator.FormatJSON {
		return errors.NewUserError(
			errors.Newf("unknown report format %q", name),
			"Valid report formats: text, json",
		)
	}

	if _, err := resolveEngineFlags(cmd); err != nil {
		return reportResolveError(cmd, cmd.OutOrStdout(), format, err)
	}

	if err := validator.NewReporter(cmd.OutOrStdout(), format).Report(nil); err != nil {
		return errors.NewSystemError(err, "")
	}
	return nil
}
