package resolve

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/thoreinstein/pipex/internal/options"
)

// Defaults for the resource limits. Zero means unconstrained.
const (
	DefaultCPUs   = 0
	DefaultMemMB  = 0
	DefaultDiskMB = 0
)

// SourceKind tells which kind of pipeline source a configuration carries.
type SourceKind int

const (
	// SourcePipeline is a pipeline definition path.
	SourcePipeline SourceKind = iota
	// SourceIR is a precompiled intermediate representation path.
	SourceIR
)

func (k SourceKind) String() string {
	switch k {
	case SourcePipeline:
		return "pipeline"
	case SourceIR:
		return "ir"
	default:
		return "unknown"
	}
}

// option returns the engine option that supplies this kind of source.
func (k SourceKind) option() options.ID {
	if k == SourceIR {
		return options.IRPath
	}
	return options.PipelinePath
}

// Source is the single pipeline source of a configuration.
type Source struct {
	kind SourceKind
	path string
}

// Kind returns the source kind.
func (s Source) Kind() SourceKind { return s.kind }

// Path returns the source path.
func (s Source) Path() string { return s.path }

// Configuration is the resolved, immutable engine configuration.
//
// Valid configurations come only from Resolver.Resolve (or Resolve and
// ResolveArgs). The zero value, or one built with a composite literal
// outside this package, has no source and empty paths and must not be
// handed to the engine.
type Configuration struct {
	source           Source
	outputPath       string
	workingDirectory string
	cpus             int
	memMB            int
	diskMB           int
	parallel         bool
	parameters       map[string]string
}

// Source returns the pipeline source.
func (c *Configuration) Source() Source { return c.source }

// PipelinePath returns the pipeline definition path, if that is the source.
func (c *Configuration) PipelinePath() (string, bool) {
	return c.source.path, c.source.kind == SourcePipeline
}

// IRPath returns the intermediate representation path, if that is the source.
func (c *Configuration) IRPath() (string, bool) {
	return c.source.path, c.source.kind == SourceIR
}

// OutputPath returns the output location.
func (c *Configuration) OutputPath() string { return c.outputPath }

// WorkingDirectory returns the working directory, or "" when none was given.
func (c *Configuration) WorkingDirectory() string { return c.workingDirectory }

// CPUs returns the assigned cores. Zero means unconstrained.
func (c *Configuration) CPUs() int { return c.cpus }

// MemMB returns the memory limit in megabytes. Zero means unconstrained.
func (c *Configuration) MemMB() int { return c.memMB }

// DiskMB returns the disk limit in megabytes. Zero means unconstrained.
func (c *Configuration) DiskMB() int { return c.diskMB }

// Parallel reports whether the pipeline runs in parallel.
func (c *Configuration) Parallel() bool { return c.parallel }

// Parameters returns a copy of the pipeline parameters.
func (c *Configuration) Parameters() map[string]string {
	return maps.Clone(c.parameters)
}

// Parameter returns a single pipeline parameter.
func (c *Configuration) Parameter(name string) (string, bool) {
	v, ok := c.parameters[name]
	return v, ok
}

// Equal reports whether two configurations hold the same values.
func (c *Configuration) Equal(o *Configuration) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.source == o.source &&
		c.outputPath == o.outputPath &&
		c.workingDirectory == o.workingDirectory &&
		c.cpus == o.cpus &&
		c.memMB == o.memMB &&
		c.diskMB == o.diskMB &&
		c.parallel == o.parallel &&
		maps.Equal(c.parameters, o.parameters)
}

// Args re-serializes the configuration into engine command-line tokens.
// Parsing and resolving the result yields an equal configuration.
func (c *Configuration) Args() []string {
	values := map[options.ID]string{
		c.source.kind.option():   c.source.path,
		options.OutputPath:       c.outputPath,
		options.WorkingDirectory: c.workingDirectory,
		options.Parallel:         strconv.FormatBool(c.parallel),
	}
	for id, n := range map[options.ID]int{options.CPUs: c.cpus, options.Mem: c.memMB, options.Disk: c.diskMB} {
		if n > 0 {
			values[id] = strconv.Itoa(n)
		}
	}
	if len(c.parameters) > 0 {
		values[options.Parameters] = joinParameters(c.parameters)
	}
	return options.NewRawOptionSet(values).Args()
}

// joinParameters renders parameters as k=v pairs sorted by key.
func joinParameters(params map[string]string) string {
	keys := slices.Sorted(maps.Keys(params))
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}
	return strings.Join(pairs, ",")
}
