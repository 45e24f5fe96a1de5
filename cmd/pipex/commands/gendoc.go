package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/pipex/cmd"
	"github.com/thoreinstein/pipex/internal/errors"
	"github.com/thoreinstein/pipex/internal/options"
)

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate Markdown documentation for the CLI",
	Hidden: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		outputDir, _ := cmd.Flags().GetString("dir")
		if outputDir == "" {
			return errors.NewUserError(errors.New("output directory is required"), "Pass --dir")
		}

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "creating output directory"), "")
		}

		// Each page gets a frontmatter block for the docs site.
		err := doc.GenMarkdownTreeCustom(rootCmd, outputDir, filePrepender, linkHandler)
		if err != nil {
			return errors.NewSystemError(errors.Wrap(err, "generating markdown"), "")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Documentation generated in %s\n", outputDir)
		return nil
	},
}

func init() {
	genDocCmd.Flags().StringP("dir", "d", "", "Output directory for documentation")
	rootCmd.AddCommand(genDocCmd)
}

// pageMeta is the frontmatter of a generated reference page.
type pageMeta struct {
	Title         string           `yaml:"title"`
	Description   string           `yaml:"description"`
	Section       string           `yaml:"section"`
	PipexVersion  string           `yaml:"pipex_version"`
	Draft         bool             `yaml:"draft"`
	TOC           bool             `yaml:"toc"`
	EngineOptions []pageOptionMeta `yaml:"engine_options,omitempty"`
}

type pageOptionMeta struct {
	Flag    string   `yaml:"flag"`
	Aliases []string `yaml:"aliases,omitempty,flow"`
	Usage   string   `yaml:"usage"`
}

// filePrepender writes the frontmatter for a page such as pipex_resolve.md:
// the command title and summary, the pipex version the page documents,
// and the engine option schema for commands that accept engine options.
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, filepath.Ext(name))

	meta := pageMeta{
		Title:        strings.ReplaceAll(base, "_", " "),
		Section:      "cli",
		PipexVersion: cmd.Version,
		TOC:          true,
	}
	meta.Description = "Reference for " + meta.Title + " command"

	if c := pageCommand(base); c != nil {
		if c.Short != "" {
			meta.Description = c.Short
		}
		if c.Flags().Lookup(options.PipelinePath.String()) != nil {
			for _, o := range options.Schema() {
				flags := make([]string, len(o.Aliases))
				for i, a := range o.Aliases {
					flags[i] = "--" + a
				}
				meta.EngineOptions = append(meta.EngineOptions, pageOptionMeta{
					Flag:    o.ID.Flag(),
					Aliases: flags,
					Usage:   o.Usage,
				})
			}
		}
	}

	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Sprintf("---\ntitle: %q\n---\n", meta.Title)
	}
	return "---\n" + string(data) + "---\n"
}

// pageCommand returns the command documented by the page with the given
// base name, or nil.
func pageCommand(base string) *cobra.Command {
	var walk func(c *cobra.Command) *cobra.Command
	walk = func(c *cobra.Command) *cobra.Command {
		if strings.ReplaceAll(c.CommandPath(), " ", "_") == base {
			return c
		}
		for _, sub := range c.Commands() {
			if found := walk(sub); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(rootCmd)
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/docs/reference/" + strings.ToLower(base) + "/"
}
