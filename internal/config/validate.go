package config

import (
	"slices"
	"strings"

	"github.com/thoreinstein/pipex/internal/errors"
	"github.com/thoreinstein/pipex/internal/logging"
	"github.com/thoreinstein/pipex/internal/resolve"
	"github.com/thoreinstein/pipex/internal/validator"
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.Wrap(errors.ErrInvalidConfig, "config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, errors.Newf("unsupported config version: %d", cfg.Version))
	}

	if _, err := logging.ParseFormat(cfg.LogFormat); err != nil {
		errs = append(errs, &FieldError{Field: "log_format", Value: cfg.LogFormat})
	}

	if _, err := resolve.ParseFormat(cfg.OutputFormat); err != nil {
		errs = append(errs, &FieldError{Field: "output_format", Value: cfg.OutputFormat})
	}

	reportFormats := []validator.Format{validator.FormatText, validator.FormatJSON}
	if !slices.Contains(reportFormats, validator.Format(strings.ToLower(cfg.ReportFormat))) {
		errs = append(errs, &FieldError{Field: "report_format", Value: cfg.ReportFormat})
	}

	return errs
}

// FieldError represents an invalid value for a config key.
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return "invalid " + e.Field + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return errors.ErrInvalidConfig
}
