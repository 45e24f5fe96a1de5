package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/pipex/internal/errors"
	"github.com/thoreinstein/pipex/internal/resolve"
)

func TestResolveCommand_YAMLDefault(t *testing.T) {
	d := newEngineDirs(t)

	stdout, _, err := execute(t, "resolve",
		"--pipeline-path", d.pipeline,
		"--parallel", "TRUE",
		"--output-path", d.output,
		"--working-directory", d.work,
		"--cpus", "4",
		"--parameters", "env=prod,region=eu",
	)
	require.NoError(t, err)

	var doc resolve.Document
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "pipeline", doc.Source.Kind)
	assert.Equal(t, d.pipeline, doc.Source.Path)
	assert.Equal(t, d.output, doc.OutputPath)
	assert.Equal(t, d.work, doc.WorkingDirectory)
	assert.Equal(t, 4, doc.CPUs)
	assert.Zero(t, doc.MemMB)
	assert.True(t, doc.Parallel)
	assert.Equal(t, map[string]string{"env": "prod", "region": "eu"}, doc.Parameters)
}

func TestResolveCommand_Formats(t *testing.T) {
	d := newEngineDirs(t)

	tests := []struct {
		format string
		want   string
	}{
		{"json", `"output_path": "` + d.output + `"`},
		{"toml", "working_directory = '" + d.work + "'"},
		{"args", "--output-path=" + d.output},
		{"YAML", "output_path: " + d.output},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			stdout, _, err := execute(t, append([]string{"resolve"}, d.args("--format", tt.format)...)...)
			require.NoError(t, err)
			assert.Contains(t, stdout, tt.want)
		})
	}
}

func TestResolveCommand_UnknownFormat(t *testing.T) {
	d := newEngineDirs(t)

	_, _, err := execute(t, append([]string{"resolve"}, d.args("--format", "xml")...)...)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.CodeOf(err))
}

func TestResolveCommand_FormatFromConfig(t *testing.T) {
	d := newEngineDirs(t)
	t.Setenv("PIPEX_OUTPUT_FORMAT", "args")

	stdout, _, err := execute(t, append([]string{"resolve"}, d.args()...)...)
	require.NoError(t, err)
	assert.Equal(t,
		"--pipeline-path="+d.pipeline+"\n--output-path="+d.output+
			"\n--working-directory="+d.work+"\n--parallel=true\n",
		stdout)
}

func TestResolveCommand_ArgsRoundTrip(t *testing.T) {
	d := newEngineDirs(t)

	first, _, err := execute(t, "resolve",
		"--pipeline-path", d.pipeline,
		"--parallel", "false",
		"--output-path", d.output,
		"--working-directory", d.work,
		"--mem", "2048",
		"--parameters", "a=1,b=x=y",
		"--format", "args",
	)
	require.NoError(t, err)

	args := append([]string{"resolve", "--format", "args"}, strings.Fields(first)...)
	second, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveCommand_LegacyAliases(t *testing.T) {
	d := newEngineDirs(t)

	stdout, _, err := execute(t, "resolve",
		"--pipes", d.pipeline,
		"--parallel", "true",
		"--out", d.output,
		"--workDir", d.work,
		"--format", "args",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "--pipeline-path="+d.pipeline)
	assert.Contains(t, stdout, "--output-path="+d.output)
	assert.Contains(t, stdout, "--working-directory="+d.work)
}

func TestResolveCommand_MissingMandatory(t *testing.T) {
	d := newEngineDirs(t)

	stdout, stderr, err := execute(t, "resolve",
		"--parallel", "true",
		"--output-path", d.output,
		"--working-directory", d.work,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingMandatoryOption)
	assert.Equal(t, errors.ExitUser, errors.CodeOf(err))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "missing mandatory arguments")
	assert.Contains(t, stderr, "Engine options:")
	assert.Contains(t, stderr, "--pipeline-path")
}

func TestResolveCommand_MissingWorkingDirectory(t *testing.T) {
	d := newEngineDirs(t)

	_, stderr, err := execute(t, "resolve",
		"--pipeline-path", d.pipeline,
		"--parallel", "true",
		"--output-path", d.output,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidFieldValue)
	assert.Contains(t, stderr, "working-directory:")
	assert.Contains(t, stderr, "invalid working directory")
}

func TestResolveCommand_ReportsEveryField(t *testing.T) {
	d := newEngineDirs(t)
	missing := filepath.Join(t.TempDir(), "missing")

	_, stderr, err := execute(t, "resolve",
		"--pipeline-path", d.pipeline,
		"--parallel", "maybe",
		"--output-path", missing,
		"--working-directory", d.work,
		"--cpus", "-1",
		"--disk", "lots",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidFieldValue)

	for _, field := range []string{"parallel", "output-path", "cpus", "disk"} {
		assert.Contains(t, stderr, field+":")
	}
	assert.Contains(t, stderr, "4 error(s)")
}

func TestResolveCommand_MalformedParameters(t *testing.T) {
	d := newEngineDirs(t)

	_, stderr, err := execute(t, append([]string{"resolve"}, d.args("--parameters", "a=1,b")...)...)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrParameterParse)
	assert.Contains(t, stderr, "malformed-parameter")
}

func TestResolveCommand_ParseErrors(t *testing.T) {
	d := newEngineDirs(t)

	tests := []struct {
		name       string
		args       []string
		wantReason string
	}{
		{"unknown flag", []string{"resolve", "--bogus", "x"}, "unknown flag"},
		{"missing value", []string{"resolve", "--pipeline-path", d.pipeline, "--output-path"}, "--output-path"},
		{"next flag taken as value", []string{"resolve", "--pipeline-path", d.pipeline,
			"--output-path", "--parallel=true"}, "flag needs an argument: --output-path"},
		{"next flag after global flags", []string{"-v", "resolve", "--working-directory",
			"--pipeline-path", d.pipeline}, "flag needs an argument: --working-directory"},
		{"positional argument", append([]string{"resolve"}, d.args("extra")...), "unexpected argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrParse)
			assert.ErrorContains(t, err, tt.wantReason)
			assert.Equal(t, errors.ExitUser, errors.CodeOf(err))
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Engine options:")
		})
	}
}

func TestResolveCommand_Write(t *testing.T) {
	d := newEngineDirs(t)
	dest := filepath.Join(t.TempDir(), "engine.json")

	stdout, _, err := execute(t, append([]string{"resolve"}, d.args("--format", "json", "--write", dest)...)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration written to "+dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind": "pipeline"`)
	assert.Contains(t, string(data), `"working_directory": "`+d.work+`"`)
	assert.True(t, strings.HasSuffix(string(data), "\n"))
}

func TestResolveCommand_WriteFailure(t *testing.T) {
	d := newEngineDirs(t)
	dest := filepath.Join(t.TempDir(), "missing", "engine.yaml")

	_, _, err := execute(t, append([]string{"resolve"}, d.args("--write", dest)...)...)
	require.Error(t, err)
	assert.Equal(t, errors.ExitSystem, errors.CodeOf(err))
}
