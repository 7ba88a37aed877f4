package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDir_Default(t *testing.T) {
	t.Setenv("TWEETBOOK_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := Dir()
	if dir == "" {
		t.Fatal("Dir() returned empty string")
	}

	if runtime.GOOS != "windows" {
		if filepath.Base(dir) != "tweetbook" {
			t.Errorf("Dir() = %q, want path ending in 'tweetbook'", dir)
		}
	}
}

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("TWEETBOOK_CONFIG_HOME", "/custom/path")
	if got := Dir(); got != "/custom/path" {
		t.Errorf("Dir() = %q, want %q", got, "/custom/path")
	}
}

func TestDir_XDGOverride(t *testing.T) {
	t.Setenv("TWEETBOOK_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := Dir(); got != filepath.Join("/xdg/config", "tweetbook") {
		t.Errorf("Dir() = %q, want %q", got, filepath.Join("/xdg/config", "tweetbook"))
	}
}

func TestDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TWEETBOOK_CONFIG_HOME", dir)

	if got := DefaultFile(); got != "" {
		t.Errorf("DefaultFile() = %q, want empty when no file exists", got)
	}

	tomlPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(tomlPath, []byte(""), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := DefaultFile(); got != tomlPath {
		t.Errorf("DefaultFile() = %q, want %q", got, tomlPath)
	}

	yamlPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(yamlPath, []byte(""), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := DefaultFile(); got != yamlPath {
		t.Errorf("DefaultFile() = %q, want yaml preferred: %q", got, yamlPath)
	}
}
