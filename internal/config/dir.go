// Package config resolves tweetbook configuration from defaults, files,
// environment and flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the tweetbook configuration directory.
//
// Resolution:
//   - $TWEETBOOK_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/tweetbook if set (respects XDG on any platform)
//   - %AppData%/tweetbook on Windows
//   - ~/.config/tweetbook on macOS and Linux
func Dir() string {
	if dir := os.Getenv("TWEETBOOK_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// DefaultFile returns the first existing config file in Dir, preferring
// config.yaml over config.yml and config.toml. It returns "" when none exists.
func DefaultFile() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
