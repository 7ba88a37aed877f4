package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/tweetbook/internal/post"
)

const appName = "tweetbook"

// DefaultMediaDir is the media folder name used by the export itself.
const DefaultMediaDir = "tweets_media"

// EnvPrefix prefixes every environment variable tweetbook reads.
const EnvPrefix = "TWEETBOOK_"

// Config holds the options of one conversion run.
type Config struct {
	SourcePath      string `yaml:"source_path"       toml:"source_path"`
	OutputDir       string `yaml:"output_dir"        toml:"output_dir"`
	MediaDir        string `yaml:"media_dir"         toml:"media_dir"`
	MediaBaseURL    string `yaml:"media_base_url"    toml:"media_base_url"`
	OnInvalidRecord string `yaml:"on_invalid_record" toml:"on_invalid_record"`
}

// Default returns a Config with defaults for every optional option.
func Default() Config {
	return Config{
		MediaDir:        DefaultMediaDir,
		OnInvalidRecord: string(post.PolicyAbort),
	}
}

// LoadFile decodes a config file. Files ending in .toml are read as TOML,
// everything else as YAML. Unknown keys are an error.
func LoadFile(path string) (Config, error) {
	var cfg Config
	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		cfg, err = decodeTOML(path)
	} else {
		cfg, err = decodeYAML(path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeYAML(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	var cfg Config
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

func decodeTOML(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// FromEnv reads TWEETBOOK_* variables through lookup.
func FromEnv(lookup func(key string) (string, bool)) Config {
	get := func(name string) string {
		value, _ := lookup(EnvPrefix + name)
		return strings.TrimSpace(value)
	}
	return Config{
		SourcePath:      get("SOURCE_PATH"),
		OutputDir:       get("OUTPUT_DIR"),
		MediaDir:        get("MEDIA_DIR"),
		MediaBaseURL:    get("MEDIA_BASE_URL"),
		OnInvalidRecord: get("ON_INVALID_RECORD"),
	}
}

// Merge returns c with every non-empty option of over applied on top.
func (c Config) Merge(over Config) Config {
	if over.SourcePath != "" {
		c.SourcePath = over.SourcePath
	}
	if over.OutputDir != "" {
		c.OutputDir = over.OutputDir
	}
	if over.MediaDir != "" {
		c.MediaDir = over.MediaDir
	}
	if over.MediaBaseURL != "" {
		c.MediaBaseURL = over.MediaBaseURL
	}
	if over.OnInvalidRecord != "" {
		c.OnInvalidRecord = over.OnInvalidRecord
	}
	return c
}

// Validate checks that every required option is set and that option values
// are valid.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.SourcePath) == "" {
		missing = append(missing, "source_path")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		missing = append(missing, "output_dir")
	}
	if len(missing) > 0 {
		return &MissingConfigError{Options: missing}
	}

	_, err := c.Policy()
	return err
}

// Policy returns the invalid-record policy. An unknown value yields an
// *InvalidValueError.
func (c Config) Policy() (post.Policy, error) {
	policy, err := post.ParsePolicy(c.OnInvalidRecord)
	if err != nil {
		return "", &InvalidValueError{Option: "on_invalid_record", Value: c.OnInvalidRecord, Err: err}
	}
	return policy, nil
}

// MissingConfigError is returned when required options are not set.
type MissingConfigError struct {
	Options []string
}

// Error implements the error interface.
func (e *MissingConfigError) Error() string {
	return "missing required config: " + strings.Join(e.Options, ", ")
}

// InvalidValueError is returned when an option has an unusable value.
type InvalidValueError struct {
	Option string
	Value  string
	Err    error
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Option, e.Value, e.Err)
}

// Unwrap returns the underlying cause.
func (e *InvalidValueError) Unwrap() error {
	return e.Err
}
