// Package export renders organized posts as per-year markdown documents.
//
// This package is the last stage of the tweetbook pipeline: it receives an
// organize.Archive and writes one human-readable document per calendar year.
//
// # Usage
//
//	media := export.NewMediaResolver("tweets_media", "")
//	renderer := export.NewRenderer(media)
//	markdown := renderer.FormatYear(archive.Year(2022))     // Get markdown string
//	paths, err := renderer.WriteYearFiles(archive, "./out") // Write every year
//
// # Document Layout
//
// Each document has a year heading, a heading per month that has posts (in
// calendar order), and one entry per post in ascending timestamp order:
//
//	# Tweets from 2022
//
//	## January
//
//	**Date**: 2022-01-05 10:00:00
//	**Source**: Twitter Web App
//
//	> Check `http://x.co` now
//
//	Favorites: 3, Retweets: 1
//
//	![100-abc.jpg](tweets_media/100-abc.jpg)
//
//	---
//
// The Source line is omitted when the posting client is unknown, and there is
// one image line per photo attachment.
//
// # Media Paths
//
// When a media base URL is configured every image resolves to
// <base-url>/<filename>; otherwise to <media-dir>/<filename>. The switch
// applies to the whole run.
//
// # File Naming
//
// Documents are named <year>.md. Each one is built in memory and written
// with temp-file-then-rename, so a failed write never leaves a truncated
// document behind.
package export
