package resolve

import (
	"context"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/thoreinstein/pipex/internal/errors"
	"github.com/thoreinstein/pipex/internal/logging"
	"github.com/thoreinstein/pipex/internal/options"
)

// StatFunc reports file information for a path, like os.Stat.
type StatFunc func(name string) (fs.FileInfo, error)

// Resolver turns raw option sets into configurations. The zero value is
// not usable; create one with New.
type Resolver struct {
	stat   StatFunc
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithStat replaces the filesystem lookup used for existence checks.
func WithStat(stat StatFunc) Option {
	return func(r *Resolver) {
		r.stat = stat
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a Resolver that checks paths on the local filesystem.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		stat:   os.Stat,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve resolves set with a default Resolver.
func Resolve(set options.RawOptionSet) (*Configuration, error) {
	return New().Resolve(set)
}

// ResolveArgs parses raw command-line tokens and resolves them with a
// default Resolver.
func ResolveArgs(args []string) (*Configuration, error) {
	set, err := options.Parse(args)
	if err != nil {
		return nil, err
	}
	return Resolve(set)
}

// Resolve validates set and builds the engine configuration.
func (r *Resolver) Resolve(set options.RawOptionSet) (*Configuration, error) {
	if err := CheckMandatory(set); err != nil {
		return nil, err
	}

	if fields := r.ValidateFields(set); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	cfg, err := r.build(set)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("resolved engine configuration",
		"source", cfg.source.kind,
		"path", cfg.source.path,
		"output", cfg.outputPath,
		"parallel", cfg.parallel,
		"parameters", len(cfg.parameters))
	for _, k := range slices.Sorted(maps.Keys(cfg.parameters)) {
		r.logger.Log(context.Background(), logging.LevelTrace, "pipeline parameter", slog.String(k, cfg.parameters[k]))
	}
	return cfg, nil
}

// CheckMandatory enforces the mandatory and exclusion rules.
func CheckMandatory(set options.RawOptionSet) error {
	var rules []string
	if set.Has(options.PipelinePath) == set.Has(options.IRPath) {
		rules = append(rules, RuleSingleSource)
	}
	if !set.Has(options.Parallel) {
		rules = append(rules, RuleParallel)
	}
	if !set.Has(options.OutputPath) {
		rules = append(rules, RuleOutputPath)
	}
	if len(rules) > 0 {
		return &MissingMandatoryError{Rules: rules}
	}
	return nil
}

// ValidateFields checks the domain of every field and returns all
// failures in schema order. It does not apply the mandatory rules.
func (r *Resolver) ValidateFields(set options.RawOptionSet) []FieldError {
	var fields []FieldError

	fields = append(fields, r.checkSourcePath(options.PipelinePath, set.Get(options.PipelinePath))...)
	fields = append(fields, r.checkSourcePath(options.IRPath, set.Get(options.IRPath))...)
	fields = append(fields, r.checkLocation(options.OutputPath, set.Get(options.OutputPath))...)
	fields = append(fields, r.checkLocation(options.WorkingDirectory, set.Get(options.WorkingDirectory))...)
	fields = append(fields, checkParallel(set.Get(options.Parallel))...)
	fields = append(fields, checkLimit(options.CPUs, set.Get(options.CPUs))...)
	fields = append(fields, checkLimit(options.Mem, set.Get(options.Mem))...)
	fields = append(fields, checkLimit(options.Disk, set.Get(options.Disk))...)
	fields = append(fields, checkParameters(set.Get(options.Parameters))...)

	return fields
}

// build applies defaults and coerces a set that passed validation.
func (r *Resolver) build(set options.RawOptionSet) (*Configuration, error) {
	params, err := parseParameters(set.Get(options.Parameters))
	if err != nil {
		return nil, err
	}

	source := Source{kind: SourcePipeline, path: set.Get(options.PipelinePath)}
	if set.Has(options.IRPath) {
		source = Source{kind: SourceIR, path: set.Get(options.IRPath)}
	}

	return &Configuration{
		source:           source,
		outputPath:       set.Get(options.OutputPath),
		workingDirectory: set.Get(options.WorkingDirectory),
		cpus:             limitOrDefault(set.Get(options.CPUs), DefaultCPUs),
		memMB:            limitOrDefault(set.Get(options.Mem), DefaultMemMB),
		diskMB:           limitOrDefault(set.Get(options.Disk), DefaultDiskMB),
		parallel:         parallelOrDefault(set, source.kind),
		parameters:       params,
	}, nil
}

// parallelOrDefault reads --parallel. When absent, an IR source runs
// sequentially and a pipeline source runs in parallel.
func parallelOrDefault(set options.RawOptionSet, kind SourceKind) bool {
	v, ok := set.Lookup(options.Parallel)
	if !ok {
		return kind == SourcePipeline
	}
	return strings.EqualFold(v, "true")
}

func limitOrDefault(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := parseInt(v)
	if err != nil {
		return def
	}
	return n
}

// parseParameters splits k1=v1,k2=v2 on ',' and each entry on its first
// '='. Later duplicates override earlier ones.
func parseParameters(v string) (map[string]string, error) {
	params := make(map[string]string)
	if v == "" {
		return params, nil
	}

	for i, entry := range strings.Split(v, ",") {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, errors.Wrap(&ParameterParseError{Entry: entry, Index: i}, "resolving parameters")
		}
		params[key] = value
	}
	return params, nil
}

// exists reports whether path names an existing filesystem location.
func (r *Resolver) exists(path string) bool {
	_, err := r.stat(path)
	return err == nil
}
