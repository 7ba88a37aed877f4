// Package export renders organized posts as per-year markdown documents.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorewood/tweetbook/internal/organize"
	"github.com/gorewood/tweetbook/internal/post"
)

// DocExtension is the file extension of rendered documents.
const DocExtension = ".md"

// dateLayout is the entry date format.
const dateLayout = "2006-01-02 15:04:05"

// Renderer formats year documents.
type Renderer struct {
	media MediaResolver
}

// NewRenderer creates a Renderer that resolves image paths with media.
func NewRenderer(media MediaResolver) *Renderer {
	return &Renderer{media: media}
}

// FileName returns the document name for year.
func FileName(year int) string {
	return strconv.Itoa(year) + DocExtension
}

// FormatYear formats one year as a markdown document.
func (r *Renderer) FormatYear(group *organize.YearGroup) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "# Tweets from %d\n\n", group.Year())

	for _, month := range group.Months() {
		fmt.Fprintf(&builder, "## %s\n\n", month)
		for _, p := range group.Posts(month) {
			r.writeEntry(&builder, p)
		}
	}

	return builder.String()
}

// writeEntry writes one post followed by a separator.
func (r *Renderer) writeEntry(builder *strings.Builder, p *post.Post) {
	fmt.Fprintf(builder, "**Date**: %s\n", p.Timestamp().Format(dateLayout))
	if client := p.Client(); client != "" {
		fmt.Fprintf(builder, "**Source**: %s\n", client)
	}
	builder.WriteString("\n")

	writeQuote(builder, p.Text())

	fmt.Fprintf(builder, "Favorites: %d, Retweets: %d\n\n", p.FavoriteCount(), p.RetweetCount())

	for _, filename := range p.Media() {
		fmt.Fprintf(builder, "![%s](%s)\n\n", filename, r.media.Resolve(filename))
	}

	builder.WriteString("---\n\n")
}

// writeQuote writes text as a block quotation, one quoted line per line.
func writeQuote(builder *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			builder.WriteString(">\n")
			continue
		}
		fmt.Fprintf(builder, "> %s\n", line)
	}
	builder.WriteString("\n")
}

// WriteYearFiles writes one document per year of archive into dir, creating
// dir if needed. Each document is written with temp-file-then-rename, so a
// failure leaves previously written years intact. It returns the paths
// written, in year order.
func (r *Renderer) WriteYearFiles(archive *organize.Archive, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &OutputWriteError{Path: dir, Err: err}
	}

	written := make([]string, 0, len(archive.Years()))
	for _, year := range archive.Years() {
		path := filepath.Join(dir, FileName(year))
		content := r.FormatYear(archive.Year(year))

		if err := atomicWrite(path, []byte(content)); err != nil {
			return written, &OutputWriteError{Path: path, Err: err}
		}
		written = append(written, path)
	}

	return written, nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*"+DocExtension)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// OutputWriteError is returned when the output directory or a document
// cannot be written.
type OutputWriteError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
