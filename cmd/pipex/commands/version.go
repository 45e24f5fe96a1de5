package commands

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/pipex/cmd"
	"github.com/thoreinstein/pipex/internal/errors"
)

var versionJSON bool

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "print build information as JSON")
	rootCmd.AddCommand(versionCmd)
}

// buildInfo is the JSON form of the version output.
type buildInfo struct {
	Version string   `json:"version"`
	Commit  string   `json:"commit"`
	Date    string   `json:"date"`
	Go      string   `json:"go"`
	Formats []string `json:"formats"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long: `Print the version, commit, and build date of pipex, together with the
Go toolchain it was built with and the configuration formats it can emit.`,
	RunE: func(c *cobra.Command, _ []string) error {
		info := buildInfo{
			Version: cmd.Version,
			Commit:  cmd.Commit,
			Date:    cmd.Date,
			Go:      runtime.Version(),
			Formats: formatNames(),
		}

		out := c.OutOrStdout()
		if versionJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(info); err != nil {
				return errors.NewSystemError(errors.Wrap(err, "encoding build info"), "")
			}
			return nil
		}

		fmt.Fprintf(out, "pipex version %s\n", info.Version)
		fmt.Fprintf(out, "  commit:  %s\n", info.Commit)
		fmt.Fprintf(out, "  built:   %s\n", info.Date)
		fmt.Fprintf(out, "  go:      %s\n", info.Go)
		fmt.Fprintf(out, "  formats: %s\n", strings.Join(info.Formats, ", "))
		return nil
	},
}
