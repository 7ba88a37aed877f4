package post

import (
	"net/url"
	"path"
	"strings"

	"github.com/gorewood/tweetbook/internal/archive"
)

// mediaTypePhoto is the only attachment type that gets extracted.
const mediaTypePhoto = "photo"

// AttachmentSource records which schema variant an attachment list came from.
type AttachmentSource int

// Attachment schema variants, in lookup order.
const (
	AttachmentsNone AttachmentSource = iota
	AttachmentsRich
	AttachmentsLegacy
)

// String returns the export key of the variant.
func (s AttachmentSource) String() string {
	switch s {
	case AttachmentsRich:
		return "extended_entities"
	case AttachmentsLegacy:
		return "entities"
	default:
		return "none"
	}
}

// Attachments is the attachment container of a record, tagged with the
// variant it was read from.
type Attachments struct {
	Source AttachmentSource
	Items  []archive.RawMedia
}

// LookupAttachments returns the rich attachment list when the record has
// one and falls back to the legacy list otherwise.
func LookupAttachments(tweet archive.RawTweet) Attachments {
	if tweet.ExtendedEntities != nil && tweet.ExtendedEntities.Media != nil {
		return Attachments{Source: AttachmentsRich, Items: tweet.ExtendedEntities.Media}
	}
	if tweet.Entities != nil && tweet.Entities.Media != nil {
		return Attachments{Source: AttachmentsLegacy, Items: tweet.Entities.Media}
	}
	return Attachments{Source: AttachmentsNone}
}

// MediaFilenames derives the local filename of every photo attachment.
// Filenames follow the export's media folder convention:
// "<source id>-<last path segment of media_url_https>".
func MediaFilenames(sourceID string, attachments Attachments) ([]string, error) {
	var names []string
	for i, item := range attachments.Items {
		if item.Type != mediaTypePhoto {
			continue
		}

		base, err := mediaBasename(item.MediaURLHTTPS)
		if err != nil {
			return nil, &MediaError{
				SourceID: sourceID,
				Location: attachments.Source.String(),
				Index:    i,
				URL:      item.MediaURLHTTPS,
				Err:      err,
			}
		}
		names = append(names, sourceID+"-"+base)
	}
	return names, nil
}

// mediaBasename returns the final path segment of a media URL.
func mediaBasename(rawURL string) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", errMissingMediaURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	base := path.Base(parsed.Path)
	if base == "." || base == "/" {
		return "", errNoMediaFilename
	}
	return base, nil
}
