// Package envfile reads variables from .env files without touching the
// process environment. Variables already set in the environment take
// precedence over file values.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Env is a set of variables read from .env files, consulted after the
// process environment.
type Env struct {
	vars map[string]string
}

// LoadFiles reads each file in order. The first file that defines a key
// wins. Missing files are skipped.
func LoadFiles(paths ...string) (*Env, error) {
	env := &Env{vars: make(map[string]string)}
	for _, path := range paths {
		vars, err := Read(path)
		if err != nil {
			return nil, err
		}
		for key, value := range vars {
			if _, ok := env.vars[key]; !ok {
				env.vars[key] = value
			}
		}
	}
	return env, nil
}

// Lookup returns the process environment value of key when it is set and
// non-empty, and the file value otherwise.
func (e *Env) Lookup(key string) (string, bool) {
	if value := os.Getenv(key); value != "" {
		return value, true
	}
	value, ok := e.vars[key]
	return value, ok
}

// Read parses a .env file into a map.
// Returns nil if the file doesn't exist. Returns an error only for read failures.
func Read(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	vars := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		vars[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return vars, nil
}

// parseEnvLine extracts KEY=VALUE from a line.
// Handles an optional export prefix and matching quotes around the value.
func parseEnvLine(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}

	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
	}

	return key, value, true
}
