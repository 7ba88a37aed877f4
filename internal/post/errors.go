package post

import (
	"errors"
	"fmt"
)

var (
	errMissingMediaURL = errors.New("photo has no media_url_https")
	errNoMediaFilename = errors.New("media URL has no filename")
)

// TimestampParseError is returned when created_at does not match
// TimestampLayout.
type TimestampParseError struct {
	SourceID string
	Value    string
	Err      error
}

// Error implements the error interface.
func (e *TimestampParseError) Error() string {
	return fmt.Sprintf("record %s: cannot parse created_at %q", e.SourceID, e.Value)
}

// Unwrap returns the time.ParseError.
func (e *TimestampParseError) Unwrap() error {
	return e.Err
}

// MediaError is returned when a photo attachment has no usable media URL.
type MediaError struct {
	SourceID string
	Location string
	Index    int
	URL      string
	Err      error
}

// Error implements the error interface.
func (e *MediaError) Error() string {
	return fmt.Sprintf("record %s: %s.media[%d] %q: %v", e.SourceID, e.Location, e.Index, e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *MediaError) Unwrap() error {
	return e.Err
}

// InvalidFieldError is returned when a required field is missing or out of
// range.
type InvalidFieldError struct {
	SourceID string
	Field    string
	Message  string
}

// Error implements the error interface.
func (e *InvalidFieldError) Error() string {
	id := e.SourceID
	if id == "" {
		id = "<no id>"
	}
	return fmt.Sprintf("record %s: %s %s", id, e.Field, e.Message)
}

// RecordError locates a normalization failure within the export.
type RecordError struct {
	Index    int
	SourceID string
	Err      error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	return fmt.Sprintf("export record #%d: %v", e.Index, e.Err)
}

// Unwrap returns the normalization error.
func (e *RecordError) Unwrap() error {
	return e.Err
}
