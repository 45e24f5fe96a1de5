package options

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/thoreinstein/pipex/internal/errors"
)

// FlagSetName is the name reported by the engine flag set.
const FlagSetName = "pipex"

// NewFlagSet returns a flag set with every schema option registered.
// The set does not print anything on error.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(FlagSetName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	AddFlags(fs)
	return fs
}

// AddFlags registers every schema option on fs as a string flag with an
// empty default, and installs the legacy alias normalization.
func AddFlags(fs *pflag.FlagSet) {
	for _, o := range schema {
		fs.String(o.Name, "", o.Usage)
	}
	fs.SetNormalizeFunc(normalizeAliases)
}

// FromFlagSet collects the schema options explicitly set on fs.
// It fails if fs was not prepared with AddFlags.
func FromFlagSet(fs *pflag.FlagSet) (RawOptionSet, error) {
	values := make(map[ID]string, len(schema))
	for _, o := range schema {
		f := fs.Lookup(o.Name)
		if f == nil {
			return RawOptionSet{}, errors.Newf("flag set %q does not define --%s", fs.Name(), o.Name)
		}
		if f.Changed {
			values[o.ID] = f.Value.String()
		}
	}
	return RawOptionSet{values: values}, nil
}

// CheckArgs reports a schema flag given in the separated form whose value
// is missing or is itself a long flag, as in "--output-path --parallel=true".
// The inline form "--output-path=--x" is never rejected.
func CheckArgs(args []string) error {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "--") || strings.Contains(arg, "=") {
			continue
		}
		id, ok := ByName(arg)
		if !ok {
			continue
		}
		if i+1 == len(args) || strings.HasPrefix(args[i+1], "--") {
			return &ParseError{Reason: "flag needs an argument: " + id.Flag()}
		}
	}
	return nil
}

// Parse splits raw command-line tokens into a RawOptionSet.
func Parse(args []string) (RawOptionSet, error) {
	if err := CheckArgs(args); err != nil {
		return RawOptionSet{}, err
	}
	fs := NewFlagSet()
	if err := fs.Parse(args); err != nil {
		return RawOptionSet{}, &ParseError{Reason: err.Error(), Cause: err}
	}
	if fs.NArg() > 0 {
		return RawOptionSet{}, &ParseError{
			Reason: "unexpected argument(s): " + strings.Join(fs.Args(), " "),
		}
	}

	set, err := FromFlagSet(fs)
	if err != nil {
		return RawOptionSet{}, err
	}
	slog.Debug("parsed engine options", "count", set.Len())
	return set, nil
}

// Usage returns the flag usage text generated from the schema.
func Usage() string {
	return NewFlagSet().FlagUsages()
}
