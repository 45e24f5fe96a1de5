package resolve

import (
	"strconv"
	"strings"

	"github.com/thoreinstein/pipex/internal/options"
	"github.com/thoreinstein/pipex/internal/validator"
)

// checkSourcePath validates --pipeline-path and --ir-path. An empty value
// counts as not provided and is not checked for existence.
func (r *Resolver) checkSourcePath(id options.ID, path string) []FieldError {
	if path == "" || r.exists(path) {
		return nil
	}
	return []FieldError{{
		Option:  id,
		Kind:    validator.KindNonexistent,
		Message: "nonexistent " + sourceNoun(id) + " path",
		Value:   path,
	}}
}

func sourceNoun(id options.ID) string {
	if id == options.IRPath {
		return "ir"
	}
	return "pipeline"
}

// checkLocation is the rule shared by --output-path and --working-directory:
// the path must be non-empty and exist.
func (r *Resolver) checkLocation(id options.ID, path string) []FieldError {
	noun := strings.ReplaceAll(id.String(), "-", " ")
	if path == "" {
		return []FieldError{{
			Option:  id,
			Kind:    validator.KindEmpty,
			Message: "invalid " + noun,
			Value:   path,
		}}
	}
	if !r.exists(path) {
		return []FieldError{{
			Option:  id,
			Kind:    validator.KindNonexistent,
			Message: "nonexistent " + noun,
			Value:   path,
		}}
	}
	return nil
}

func checkParallel(v string) []FieldError {
	if strings.EqualFold(v, "true") || strings.EqualFold(v, "false") {
		return nil
	}
	return []FieldError{{
		Option:  options.Parallel,
		Kind:    validator.KindNotBoolean,
		Message: "parallel value must be true or false",
		Value:   v,
	}}
}

// checkParameters is a coarse gate: a non-empty value must contain at least
// one '='. The per-entry grammar is enforced when the value is split.
func checkParameters(v string) []FieldError {
	if v == "" || strings.Contains(v, "=") {
		return nil
	}
	return []FieldError{{
		Option:  options.Parameters,
		Kind:    validator.KindMissingSeparator,
		Message: "parameters must be key=value pairs",
		Value:   v,
	}}
}

// checkLimit validates --cpus, --mem and --disk. An empty value falls back
// to the default.
func checkLimit(id options.ID, v string) []FieldError {
	if v == "" {
		return nil
	}
	n, err := parseInt(v)
	if err != nil {
		return []FieldError{{
			Option:  id,
			Kind:    validator.KindNotInteger,
			Message: "invalid " + id.String() + " value, it must be an int",
			Value:   v,
		}}
	}
	if n <= 0 {
		return []FieldError{{
			Option:  id,
			Kind:    validator.KindNotPositiveInteger,
			Message: id.String() + " value must be positive",
			Value:   v,
		}}
	}
	return nil
}

// parseInt parses a base-10, 32-bit signed integer.
func parseInt(v string) (int, error) {
	n, err := strconv.ParseInt(v, 10, 32)
	return int(n), err
}
