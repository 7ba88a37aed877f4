// Package post normalizes raw export records into immutable posts.
package post

import (
	"slices"
	"time"
)

// TimestampLayout is the created_at layout used by the export,
// e.g. "Wed Jan 05 10:00:00 +0000 2022".
const TimestampLayout = "Mon Jan 02 15:04:05 -0700 2006"

// Post is a normalized export record. Fields are read through accessor
// methods; a Post never changes after Normalize returns it.
type Post struct {
	timestamp     time.Time
	text          string
	favoriteCount int
	retweetCount  int
	media         []string
	sourceID      string
	client        string
}

// Timestamp returns the creation time in the offset recorded by the export.
func (p *Post) Timestamp() time.Time { return p.timestamp }

// Text returns the cleaned post text.
func (p *Post) Text() string { return p.text }

// FavoriteCount returns the number of favorites.
func (p *Post) FavoriteCount() int { return p.favoriteCount }

// RetweetCount returns the number of retweets.
func (p *Post) RetweetCount() int { return p.retweetCount }

// Media returns the media filenames in attachment order.
// The returned slice is a copy.
func (p *Post) Media() []string { return slices.Clone(p.media) }

// SourceID returns the identifier of the export record.
func (p *Post) SourceID() string { return p.sourceID }

// Client returns the name of the posting client, or "" if unknown.
func (p *Post) Client() string { return p.client }
