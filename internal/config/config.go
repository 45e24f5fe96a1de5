package config

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/pipex/internal/errors"
	"github.com/thoreinstein/pipex/internal/paths"
)

// EnvPrefix is the prefix of environment variables overriding config keys.
const EnvPrefix = "PIPEX"

// CurrentVersion is the only supported config file version.
const CurrentVersion = 1

// Config represents the tool configuration.
type Config struct {
	Version      int    `mapstructure:"version" yaml:"version"`
	LogFormat    string `mapstructure:"log_format" yaml:"log_format"`
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`
	ReportFormat string `mapstructure:"report_format" yaml:"report_format"`
}

// Init resets Viper and installs the search paths, environment binding and
// defaults. Call it once before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("version", CurrentVersion)
	viper.SetDefault("log_format", "text")
	viper.SetDefault("output_format", "yaml")
	viper.SetDefault("report_format", "text")
}

// Load reads and validates the configuration.
// If path is provided, that file must exist. If path is empty, the default
// locations are searched and a missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load: defaults apply.
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}
