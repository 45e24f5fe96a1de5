// Package paths resolves the locations pipex uses for its own files.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance.
// The tool configuration lives in $XDG_CONFIG_HOME/pipex unless the
// PIPEX_CONFIG_DIR environment variable points elsewhere:
//
//	| OS      | Default config directory                  |
//	|---------|-------------------------------------------|
//	| Linux   | ~/.config/pipex                           |
//	| macOS   | ~/Library/Application Support/pipex       |
//	| Windows | %LOCALAPPDATA%\pipex                      |
package paths
