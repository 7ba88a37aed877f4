// Package archive loads the raw post records of a tweets.js data export.
package archive

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ExportPrefix is the JavaScript assignment that wraps the JSON payload of a
// tweets.js export file.
const ExportPrefix = "window.YTD.tweets.part0 = "

// legacyExportPrefix is the singular variant written by older exports.
const legacyExportPrefix = "window.YTD.tweet.part0 = "

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// RawPost is one element of the export array.
type RawPost struct {
	Tweet RawTweet `json:"tweet"`

	// DecodeErr is set when the element is an object whose fields do not
	// decode, e.g. a non-numeric favorite_count. Tweet then carries only
	// the record id, if it could be recovered.
	DecodeErr error `json:"-"`
}

// RawTweet holds the fields of an export record that tweetbook reads.
type RawTweet struct {
	IDStr            string      `json:"id_str"`
	ID               json.Number `json:"id"`
	FullText         string      `json:"full_text"`
	CreatedAt        string      `json:"created_at"`
	FavoriteCount    Count       `json:"favorite_count"`
	RetweetCount     Count       `json:"retweet_count"`
	Source           string      `json:"source"`
	Entities         *Entities   `json:"entities,omitempty"`
	ExtendedEntities *Entities   `json:"extended_entities,omitempty"`
}

// Entities is the attachment block found under either "entities" or
// "extended_entities".
type Entities struct {
	Media []RawMedia `json:"media"`
}

// RawMedia is a single attachment.
type RawMedia struct {
	Type          string `json:"type"`
	MediaURLHTTPS string `json:"media_url_https"`
}

// Count is a non-negative counter that exports encode either as a JSON number
// or as a quoted decimal string.
type Count int

// UnmarshalJSON accepts 3, "3" and null.
func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding count: %w", err)
		}
		data = []byte(s)
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("decoding count %q: %w", string(data), err)
	}
	*c = Count(n)
	return nil
}

// MalformedExportError is returned when the export payload is not a JSON
// array of objects.
type MalformedExportError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *MalformedExportError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed export: %v", e.Err)
	}
	return fmt.Sprintf("malformed export %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *MalformedExportError) Unwrap() error {
	return e.Err
}

// ReadError is returned when the export file cannot be read.
type ReadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return fmt.Sprintf("reading export %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying fs error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// Load reads the export file at path and parses its records.
func Load(path string) ([]RawPost, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	posts, err := Parse(data)
	if err != nil {
		var malformed *MalformedExportError
		if errors.As(err, &malformed) {
			malformed.Path = path
		}
		return nil, err
	}
	return posts, nil
}

// Parse strips the export prefix from content and decodes the remaining JSON
// array. A missing prefix is tolerated: the whole content is then treated as
// the payload. Elements are decoded one by one; an object with undecodable
// fields yields a RawPost with DecodeErr set instead of failing the export.
func Parse(content []byte) ([]RawPost, error) {
	payload := StripPrefix(content)

	var elements []json.RawMessage
	if err := json.Unmarshal(payload, &elements); err != nil {
		return nil, &MalformedExportError{Err: err}
	}
	if elements == nil {
		return nil, &MalformedExportError{Err: errors.New("payload is not an array")}
	}

	posts := make([]RawPost, 0, len(elements))
	for i, element := range elements {
		element = bytes.TrimSpace(element)
		if len(element) == 0 || element[0] != '{' {
			return nil, &MalformedExportError{Err: fmt.Errorf("element #%d is not an object", i)}
		}
		posts = append(posts, decodePost(element))
	}
	return posts, nil
}

// decodePost decodes one array element. On failure only id_str is kept.
func decodePost(element json.RawMessage) RawPost {
	var raw RawPost
	err := json.Unmarshal(element, &raw)
	if err == nil {
		return raw
	}

	var idOnly struct {
		Tweet struct {
			IDStr string `json:"id_str"`
		} `json:"tweet"`
	}
	_ = json.Unmarshal(element, &idOnly)
	return RawPost{
		Tweet:     RawTweet{IDStr: idOnly.Tweet.IDStr},
		DecodeErr: err,
	}
}

// StripPrefix removes a leading BOM, surrounding whitespace and the
// window.YTD assignment, if present.
func StripPrefix(content []byte) []byte {
	content = bytes.TrimPrefix(content, utf8BOM)
	content = bytes.TrimSpace(content)

	for _, prefix := range []string{ExportPrefix, legacyExportPrefix} {
		if trimmed, ok := bytes.CutPrefix(content, []byte(prefix)); ok {
			return bytes.TrimSpace(trimmed)
		}
	}
	return content
}
