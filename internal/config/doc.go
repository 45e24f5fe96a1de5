// Package config provides configuration management for the pipex CLI.
//
// This package loads the tool's own settings: output and report formats and
// logging defaults. It never supplies engine options; those come only from
// the command line.
//
// # Configuration File
//
// The file is searched as config.yaml in the current directory and in the
// pipex config directory (see package paths). Every key can be overridden
// with a PIPEX_-prefixed environment variable, e.g. PIPEX_OUTPUT_FORMAT.
//
//	version: 1
//	log_format: text      # text, json
//	output_format: yaml   # yaml, json, toml, args
//	report_format: text   # text, json
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return errors.NewConfigError(err)
//	}
//
// Loaded configurations are validated; see [Validate].
package config
