package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "pipex"

// ConfigDirEnv overrides the configuration directory when set.
const ConfigDirEnv = "PIPEX_CONFIG_DIR"

// ConfigFileName is the base name of the tool configuration file.
const ConfigFileName = "config.yaml"

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the pipex configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default path of the tool configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
