package post

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gorewood/tweetbook/internal/archive"
)

// Policy decides what happens to a record that fails normalization.
type Policy string

// Invalid-record policies.
const (
	// PolicyAbort stops the run at the first invalid record.
	PolicyAbort Policy = "abort"
	// PolicySkip drops invalid records after reporting a warning.
	PolicySkip Policy = "skip"
)

// ParsePolicy converts a configuration value into a Policy.
// The empty string selects PolicyAbort.
func ParsePolicy(value string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(value))) {
	case "", PolicyAbort:
		return PolicyAbort, nil
	case PolicySkip:
		return PolicySkip, nil
	default:
		return "", fmt.Errorf("unknown invalid-record policy %q (want abort or skip)", value)
	}
}

// Warner receives warnings about skipped records.
type Warner interface {
	Warn(format string, args ...any)
}

// Normalize converts one raw record into a Post.
func Normalize(raw archive.RawPost) (*Post, error) {
	tweet := raw.Tweet

	sourceID := recordID(tweet)
	if raw.DecodeErr != nil {
		return nil, decodeFieldError(sourceID, raw.DecodeErr)
	}
	if sourceID == "" {
		return nil, &InvalidFieldError{Field: "id_str", Message: "is empty"}
	}

	timestamp, err := ParseTimestamp(tweet.CreatedAt)
	if err != nil {
		return nil, &TimestampParseError{SourceID: sourceID, Value: tweet.CreatedAt, Err: err}
	}

	if tweet.FavoriteCount < 0 {
		return nil, &InvalidFieldError{SourceID: sourceID, Field: "favorite_count", Message: "is negative"}
	}
	if tweet.RetweetCount < 0 {
		return nil, &InvalidFieldError{SourceID: sourceID, Field: "retweet_count", Message: "is negative"}
	}

	media, err := MediaFilenames(sourceID, LookupAttachments(tweet))
	if err != nil {
		return nil, err
	}

	return &Post{
		timestamp:     timestamp,
		text:          CleanText(tweet.FullText),
		favoriteCount: int(tweet.FavoriteCount),
		retweetCount:  int(tweet.RetweetCount),
		media:         media,
		sourceID:      sourceID,
		client:        ClientName(tweet.Source),
	}, nil
}

// decodeFieldError reports an element whose fields did not decode.
func decodeFieldError(sourceID string, err error) *InvalidFieldError {
	field := "tweet"
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field = typeErr.Field
	}
	return &InvalidFieldError{SourceID: sourceID, Field: field, Message: "cannot be decoded: " + err.Error()}
}

// ParseTimestamp parses an export created_at value.
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp: %w", err)
	}
	return t, nil
}

// NormalizeAll normalizes every record according to policy. With
// PolicySkip the returned count is the number of dropped records; with
// PolicyAbort the first failure is returned as a *RecordError.
func NormalizeAll(raws []archive.RawPost, policy Policy, warner Warner) ([]*Post, int, error) {
	posts := make([]*Post, 0, len(raws))
	skipped := 0

	for i, raw := range raws {
		p, err := Normalize(raw)
		if err == nil {
			posts = append(posts, p)
			continue
		}

		recordErr := &RecordError{Index: i, SourceID: recordID(raw.Tweet), Err: err}
		if policy != PolicySkip {
			return nil, skipped, recordErr
		}
		if warner != nil {
			warner.Warn("skipping %v", recordErr)
		}
		skipped++
	}

	return posts, skipped, nil
}

// recordID returns id_str, falling back to id.
func recordID(tweet archive.RawTweet) string {
	if id := strings.TrimSpace(tweet.IDStr); id != "" {
		return id
	}
	return strings.TrimSpace(tweet.ID.String())
}
