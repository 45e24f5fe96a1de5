// Package commands implements the CLI commands for pipex.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/pipex/cmd"
	"github.com/thoreinstein/pipex/internal/config"
	"github.com/thoreinstein/pipex/internal/errors"
	"github.com/thoreinstein/pipex/internal/logging"
	"github.com/thoreinstein/pipex/internal/options"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// toolConfig is the loaded tool configuration.
var toolConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// openLogFile is the file behind --log-file, closed on the next setup.
var openLogFile *os.File

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json (default from config)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"path to the pipex config file")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("pipex version {{.Version}}\n")

	// Errors are printed by main with their exit code.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	toolConfig, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "pipex",
	Short: "Resolve and validate pipeline engine arguments",
	Long: `pipex checks the command-line options of the pipeline engine and turns
them into a single resolved configuration.

Exactly one of --pipeline-path or --ir-path must be given, together with
--parallel and --output-path. The output path and the working directory
must name existing locations. Every value is validated, and all failing
fields are reported at once.`,
	Example: `  # Resolve options and print the configuration as YAML
  pipex resolve --pipeline-path ./pipes --parallel true --output-path ./out \
    --working-directory "$PWD"

  # Check options without resolving them
  pipex validate --ir-path ./ir.json --parallel false --output-path ./out \
    --working-directory /srv/work

  # Write the configuration for the engine
  pipex resolve --ir-path ./ir.json --parallel true --output-path ./out \
    --working-directory /srv/work --parameters env=prod,region=eu \
    --format json --write engine.json`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := checkConfig(cmd); err != nil {
			return err
		}
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// checkConfig reports config load errors for commands that use the config.
func checkConfig(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("PIPEX_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format, err := logging.ParseFormat(effectiveLogFormat())
	if err != nil {
		return errors.NewUserError(err, "Valid log formats: text, json")
	}

	// Reports share the colour policy of the log handler.
	color.NoColor = !logging.SupportsColor(cmd.OutOrStdout())

	if openLogFile != nil {
		_ = openLogFile.Close()
		openLogFile = nil
	}

	logCfg := logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		openLogFile = f
		logCfg.File = f
	}

	logger := logging.New(logCfg)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// effectiveLogFormat returns the --log-format flag, falling back to the
// config file and then to text.
func effectiveLogFormat() string {
	if logFormat != "" {
		return logFormat
	}
	if toolConfig != nil && toolConfig.LogFormat != "" {
		return toolConfig.LogFormat
	}
	return string(logging.FormatText)
}

// currentConfig returns the loaded tool configuration, or the defaults
// when none has been loaded.
func currentConfig() *config.Config {
	if toolConfig != nil {
		return toolConfig
	}
	return &config.Config{
		Version:      config.CurrentVersion,
		LogFormat:    string(logging.FormatText),
		OutputFormat: "yaml",
		ReportFormat: "text",
	}
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return errors.Wrap(run(os.Args[1:]), "executing root command")
}

// run executes the command tree with args. pflag takes the token after a
// string flag as its value even when it is another flag, so commands with
// engine options have their raw tokens checked first.
func run(args []string) error {
	if c, rest, err := rootCmd.Find(args); err == nil && c.Flags().Lookup(options.PipelinePath.String()) != nil {
		if err := options.CheckArgs(rest); err != nil {
			printEngineUsage(c.ErrOrStderr())
			return err
		}
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
