// Package pipeline wires the loader, normalizer, organizer and renderer into
// a single conversion run.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorewood/tweetbook/internal/archive"
	"github.com/gorewood/tweetbook/internal/config"
	"github.com/gorewood/tweetbook/internal/export"
	"github.com/gorewood/tweetbook/internal/organize"
	"github.com/gorewood/tweetbook/internal/post"
)

// ErrYearNotFound is returned by Preview when the archive has no posts in
// the requested year.
var ErrYearNotFound = errors.New("no posts in year")

// Result summarizes a pipeline run.
type Result struct {
	OutputDir string
	Files     []string
	Posts     int
	Skipped   int
	Archive   *organize.Archive
}

// Build loads, normalizes and organizes the export named by cfg.SourcePath.
// Only the source path and the invalid-record policy are validated, so Build
// serves read-only callers that have no output directory.
func Build(cfg config.Config, warn post.Warner) (*Result, error) {
	if strings.TrimSpace(cfg.SourcePath) == "" {
		return nil, &config.MissingConfigError{Options: []string{"source_path"}}
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}

	raws, err := archive.Load(cfg.SourcePath)
	if err != nil {
		return nil, err
	}

	posts, skipped, err := post.NormalizeAll(raws, policy, warn)
	if err != nil {
		return nil, err
	}

	return &Result{
		OutputDir: cfg.OutputDir,
		Posts:     len(posts),
		Skipped:   skipped,
		Archive:   organize.Organize(posts),
	}, nil
}

// Run validates cfg, builds the archive and writes one document per year into
// cfg.OutputDir. Load and normalization failures abort before anything is
// written.
func Run(cfg config.Config, warn post.Warner) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result, err := Build(cfg, warn)
	if err != nil {
		return nil, err
	}

	files, err := NewRenderer(cfg).WriteYearFiles(result.Archive, cfg.OutputDir)
	result.Files = files
	if err != nil {
		return result, err
	}
	return result, nil
}

// Preview renders the document for a single year without writing anything.
// The returned Result carries the post and skip counts of the whole export.
func Preview(cfg config.Config, year int, warn post.Warner) (string, *Result, error) {
	result, err := Build(cfg, warn)
	if err != nil {
		return "", nil, err
	}

	group := result.Archive.Year(year)
	if group == nil {
		return "", result, fmt.Errorf("%w %d", ErrYearNotFound, year)
	}
	return NewRenderer(cfg).FormatYear(group), result, nil
}

// NewRenderer returns a renderer whose media paths follow cfg.
func NewRenderer(cfg config.Config) *export.Renderer {
	mediaDir := cfg.MediaDir
	if mediaDir == "" {
		mediaDir = config.DefaultMediaDir
	}
	return export.NewRenderer(export.NewMediaResolver(mediaDir, cfg.MediaBaseURL))
}
