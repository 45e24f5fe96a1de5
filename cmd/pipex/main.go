// Package main is the entry point for the pipex CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/pipex/cmd/pipex/commands"
	"github.com/thoreinstein/pipex/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		msg := err.Error()
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) {
			msg = exitErr.Error()
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		if exitErr != nil && exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "%s\n", exitErr.Suggestion)
		}
		os.Exit(errors.CodeOf(err))
	}
}
