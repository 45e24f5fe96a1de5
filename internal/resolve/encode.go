package resolve

import (
	"encoding/json"
	"io"
	"maps"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/pipex/internal/errors"
)

// Format is an encoding of a configuration for the execution engine.
type Format string

// Supported encodings.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	// FormatArgs renders the configuration as engine command-line tokens,
	// one per line.
	FormatArgs Format = "args"
)

// Formats returns the supported encodings.
func Formats() []Format {
	return []Format{FormatYAML, FormatJSON, FormatTOML, FormatArgs}
}

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Newf("unknown format %q (valid: yaml, json, toml, args)", s)
}

// Document is the serialized shape of a Configuration.
type Document struct {
	Source           DocumentSource    `json:"source" yaml:"source" toml:"source"`
	OutputPath       string            `json:"output_path" yaml:"output_path" toml:"output_path"`
	WorkingDirectory string            `json:"working_directory" yaml:"working_directory" toml:"working_directory"`
	CPUs             int               `json:"cpus" yaml:"cpus" toml:"cpus"`
	MemMB            int               `json:"mem_mb" yaml:"mem_mb" toml:"mem_mb"`
	DiskMB           int               `json:"disk_mb" yaml:"disk_mb" toml:"disk_mb"`
	Parallel         bool              `json:"parallel" yaml:"parallel" toml:"parallel"`
	Parameters       map[string]string `json:"parameters" yaml:"parameters" toml:"parameters"`
}

// DocumentSource is the serialized pipeline source.
type DocumentSource struct {
	Kind string `json:"kind" yaml:"kind" toml:"kind"`
	Path string `json:"path" yaml:"path" toml:"path"`
}

// Document returns the serializable form of the configuration.
func (c *Configuration) Document() Document {
	params := maps.Clone(c.parameters)
	if params == nil {
		params = map[string]string{}
	}
	return Document{
		Source:           DocumentSource{Kind: c.source.kind.String(), Path: c.source.path},
		OutputPath:       c.outputPath,
		WorkingDirectory: c.workingDirectory,
		CPUs:             c.cpus,
		MemMB:            c.memMB,
		DiskMB:           c.diskMB,
		Parallel:         c.parallel,
		Parameters:       params,
	}
}

// Encode writes the configuration to w in format f.
func (c *Configuration) Encode(w io.Writer, f Format) error {
	doc := c.Document()

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(doc), "encoding JSON")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(doc), "encoding TOML")
	case FormatArgs:
		for _, arg := range c.Args() {
			if _, err := io.WriteString(w, arg+"\n"); err != nil {
				return errors.Wrap(err, "writing arguments")
			}
		}
		return nil
	default:
		return errors.Newf("unknown format %q", f)
	}
}
