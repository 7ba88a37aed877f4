package config

import (
	"path/filepath"

	"github.com/gorewood/tweetbook/internal/envfile"
)

// Sources lists where Resolve reads configuration from.
type Sources struct {
	// File is an explicit config file. When empty, DefaultFile is used if
	// one exists.
	File string
	// EnvFiles are .env files consulted for TWEETBOOK_* variables, first
	// match wins. Process environment variables always take precedence.
	EnvFiles []string
	// Flags holds command-line values; non-empty fields win over everything.
	Flags Config
}

// DefaultEnvFiles returns the env files checked by the CLI.
//
// Resolution order:
//  1. $CWD/.env.local   (per-directory override)
//  2. $CWD/.env         (per-directory)
//  3. <Dir()>/env       (global fallback)
func DefaultEnvFiles() []string {
	files := []string{".env.local", ".env"}
	if dir := Dir(); dir != "" {
		files = append(files, filepath.Join(dir, "env"))
	}
	return files
}

// Resolve layers defaults, the config file, environment and flags, lowest
// precedence first. The result is not validated.
func Resolve(sources Sources) (Config, error) {
	cfg := Default()

	path := sources.File
	if path == "" {
		path = DefaultFile()
	}
	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = cfg.Merge(fileCfg)
	}

	env, err := envfile.LoadFiles(sources.EnvFiles...)
	if err != nil {
		return Config{}, err
	}
	cfg = cfg.Merge(FromEnv(env.Lookup))

	return cfg.Merge(sources.Flags), nil
}
