package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thoreinstein/pipex/internal/paths"
)

// execute runs the root command with args against an isolated config
// directory and returns what it wrote to stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv(paths.ConfigDirEnv, t.TempDir())
	t.Chdir(t.TempDir())

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := run(args)
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag in the command tree to its default so
// values from one Execute do not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// engineDirs holds existing pipeline, output and working directories.
type engineDirs struct {
	pipeline string
	output   string
	work     string
}

// newEngineDirs creates the engine directories under a temp root.
func newEngineDirs(t *testing.T) engineDirs {
	t.Helper()
	root := t.TempDir()
	d := engineDirs{
		pipeline: filepath.Join(root, "pipes"),
		output:   filepath.Join(root, "out"),
		work:     filepath.Join(root, "work"),
	}
	for _, dir := range []string{d.pipeline, d.output, d.work} {
		if err := os.Mkdir(dir, 0o755); err != nil {
			t.Fatalf("creating %s: %v", dir, err)
		}
	}
	return d
}

// args returns the mandatory engine flags for a pipeline source followed
// by extra.
func (d engineDirs) args(extra ...string) []string {
	return append([]string{
		"--pipeline-path", d.pipeline,
		"--output-path", d.output,
		"--working-directory", d.work,
		"--parallel", "true",
	}, extra...)
}
