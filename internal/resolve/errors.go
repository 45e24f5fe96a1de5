package resolve

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/pipex/internal/errors"
	"github.com/thoreinstein/pipex/internal/options"
	"github.com/thoreinstein/pipex/internal/validator"
)

// Mandatory rules checked before any field validation.
const (
	RuleSingleSource = "exactly one of --pipeline-path or --ir-path is required"
	RuleParallel     = "--parallel is required"
	RuleOutputPath   = "--output-path is required"
)

// MissingMandatoryError reports violated mandatory or exclusion rules.
// It unwraps to errors.ErrMissingMandatoryOption.
type MissingMandatoryError struct {
	Rules []string
}

func (e *MissingMandatoryError) Error() string {
	return fmt.Sprintf("%v: %s", errors.ErrMissingMandatoryOption, strings.Join(e.Rules, "; "))
}

func (e *MissingMandatoryError) Unwrap() error {
	return errors.ErrMissingMandatoryOption
}

// FieldError is a single option that failed domain validation.
type FieldError struct {
	Option  options.ID
	Kind    validator.Kind
	Message string
	Value   string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Option, e.Message, e.Kind)
}

// ValidationError lists every option that failed domain validation.
// It unwraps to errors.ErrInvalidFieldValue.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("%v: %s", errors.ErrInvalidFieldValue, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return errors.ErrInvalidFieldValue
}

// Field returns the failures reported for id.
func (e *ValidationError) Field(id options.ID) []FieldError {
	var out []FieldError
	for _, f := range e.Fields {
		if f.Option == id {
			out = append(out, f)
		}
	}
	return out
}

// ParameterParseError reports a --parameters entry that is not key=value.
// It unwraps to errors.ErrParameterParse.
type ParameterParseError struct {
	Entry string
	Index int
}

func (e *ParameterParseError) Error() string {
	return fmt.Sprintf("%v: entry %d %q is not key=value", errors.ErrParameterParse, e.Index, e.Entry)
}

func (e *ParameterParseError) Unwrap() error {
	return errors.ErrParameterParse
}

// Report converts a resolution error into a validation result with one
// issue per violated rule or failing field. Errors that are not produced
// by resolution yield a nil result.
func Report(err error) *validator.Result {
	var (
		missing *MissingMandatoryError
		invalid *ValidationError
		params  *ParameterParseError
	)

	result := &validator.Result{}
	switch {
	case err == nil:
	case errors.As(err, &missing):
		for _, rule := range missing.Rules {
			result.Issues = append(result.Issues, validator.Issue{
				Severity: validator.SeverityError,
				Kind:     validator.KindMissingMandatory,
				Message:  "missing mandatory arguments: " + rule,
			})
		}
	case errors.As(err, &invalid):
		for _, f := range invalid.Fields {
			result.AddError(f.Option.String(), f.Kind, f.Message, f.Value)
		}
	case errors.As(err, &params):
		result.AddError(options.Parameters.String(), validator.KindMalformedParameter,
			fmt.Sprintf("entry %d is not key=value", params.Index), params.Entry)
	default:
		return nil
	}
	return result
}
