package options

import (
	"strings"

	"github.com/spf13/pflag"
)

// ID identifies a recognized engine option.
type ID int

// Recognized engine options, in usage order.
const (
	PipelinePath ID = iota
	IRPath
	OutputPath
	WorkingDirectory
	Parallel
	CPUs
	Mem
	Disk
	Parameters
)

// Option describes a single flag of the engine schema.
type Option struct {
	ID    ID
	Name  string
	Usage string
	// Aliases are legacy spellings accepted on the command line and
	// normalized to Name.
	Aliases []string
}

var schema = []Option{
	{ID: PipelinePath, Name: "pipeline-path", Aliases: []string{"pipes"},
		Usage: "pipeline definition path (mandatory unless --ir-path is given)"},
	{ID: IRPath, Name: "ir-path", Aliases: []string{"ir"},
		Usage: "pipeline intermediate representation path (mandatory unless --pipeline-path is given)"},
	{ID: OutputPath, Name: "output-path", Aliases: []string{"out"},
		Usage: "output absolute pathname (mandatory)"},
	{ID: WorkingDirectory, Name: "working-directory", Aliases: []string{"workDir"},
		Usage: "working directory absolute pathname, must exist"},
	{ID: Parallel, Name: "parallel",
		Usage: "whether execution is parallel or sequential: true, false (mandatory)"},
	{ID: CPUs, Name: "cpus",
		Usage: "assigned cores"},
	{ID: Mem, Name: "mem",
		Usage: "assigned max memory in megabytes"},
	{ID: Disk, Name: "disk",
		Usage: "assigned disk space in megabytes"},
	{ID: Parameters, Name: "parameters",
		Usage: "pipeline parameters (e.g. param_name=1,param1_name=true,param2_name=add)"},
}

// Schema returns the recognized options in usage order.
// The returned slice is a copy and may be modified by the caller.
func Schema() []Option {
	out := make([]Option, len(schema))
	copy(out, schema)
	return out
}

// String returns the flag name of the option.
func (id ID) String() string {
	if id < 0 || int(id) >= len(schema) {
		return "unknown"
	}
	return schema[id].Name
}

// Flag returns the option formatted as a long command-line flag.
func (id ID) Flag() string {
	return "--" + id.String()
}

// ByName returns the option ID for a flag name or one of its aliases.
func ByName(name string) (ID, bool) {
	name = strings.TrimLeft(name, "-")
	for _, o := range schema {
		if o.Name == name {
			return o.ID, true
		}
		for _, a := range o.Aliases {
			if a == name {
				return o.ID, true
			}
		}
	}
	return 0, false
}

// normalizeAliases maps legacy option spellings onto their canonical names.
func normalizeAliases(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if id, ok := ByName(name); ok {
		return pflag.NormalizedName(id.String())
	}
	return pflag.NormalizedName(name)
}
