package export

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gorewood/tweetbook/internal/archive"
	"github.com/gorewood/tweetbook/internal/organize"
	"github.com/gorewood/tweetbook/internal/post"
)

// rawPost builds an export record for tests.
func rawPost(id, createdAt, text string, favorites, retweets int, photoURLs ...string) archive.RawPost {
	raw := archive.RawPost{Tweet: archive.RawTweet{
		IDStr:         id,
		CreatedAt:     createdAt,
		FullText:      text,
		FavoriteCount: archive.Count(favorites),
		RetweetCount:  archive.Count(retweets),
	}}
	if len(photoURLs) > 0 {
		raw.Tweet.ExtendedEntities = &archive.Entities{}
		for _, u := range photoURLs {
			raw.Tweet.ExtendedEntities.Media = append(raw.Tweet.ExtendedEntities.Media,
				archive.RawMedia{Type: "photo", MediaURLHTTPS: u})
		}
	}
	return raw
}

// testArchive normalizes and organizes raws.
func testArchive(t *testing.T, raws ...archive.RawPost) *organize.Archive {
	t.Helper()
	posts, _, err := post.NormalizeAll(raws, post.PolicyAbort, nil)
	if err != nil {
		t.Fatalf("normalizing: %v", err)
	}
	return organize.Organize(posts)
}

func localRenderer() *Renderer {
	return NewRenderer(NewMediaResolver("tweets_media", ""))
}

func TestFormatYear_SinglePost(t *testing.T) {
	arc := testArchive(t, rawPost("100", "Wed Jan 05 10:00:00 +0000 2022", "Check http://x.co now", 3, 1))

	result := localRenderer().FormatYear(arc.Year(2022))

	want := "# Tweets from 2022\n\n" +
		"## January\n\n" +
		"**Date**: 2022-01-05 10:00:00\n\n" +
		"> Check `http://x.co` now\n\n" +
		"Favorites: 3, Retweets: 1\n\n" +
		"---\n\n"
	if result != want {
		t.Errorf("FormatYear() =\n%s\nwant:\n%s", result, want)
	}
	if strings.Contains(result, "![") {
		t.Error("FormatYear() should not embed images for a post without media")
	}
}

func TestFormatYear_Layout(t *testing.T) {
	withSource := rawPost("200", "Mon Mar 07 09:00:00 +0000 2022", "line one\n\nline three", 0, 0,
		"https://pbs.twimg.com/media/a.jpg", "https://pbs.twimg.com/media/b.png")
	withSource.Tweet.Source = `<a href="https://mobile.twitter.com" rel="nofollow">Twitter Web App</a>`

	arc := testArchive(t,
		withSource,
		rawPost("201", "Wed Jan 05 10:00:00 +0000 2022", "first", 1, 0),
	)

	result := localRenderer().FormatYear(arc.Year(2022))

	wantContains := []string{
		"# Tweets from 2022",
		"## January",
		"## March",
		"**Source**: Twitter Web App",
		"> line one\n>\n> line three\n",
		"![200-a.jpg](tweets_media/200-a.jpg)\n\n![200-b.png](tweets_media/200-b.png)",
	}
	for _, want := range wantContains {
		if !strings.Contains(result, want) {
			t.Errorf("FormatYear() missing %q\nGot:\n%s", want, result)
		}
	}

	if strings.Index(result, "## January") > strings.Index(result, "## March") {
		t.Error("January must come before March")
	}
	if strings.Contains(result, "## February") {
		t.Error("empty months must not be rendered")
	}
	if strings.Count(result, "---\n") != 2 {
		t.Errorf("want one separator per entry, got %d", strings.Count(result, "---\n"))
	}
}

func TestFormatYear_AscendingWithinMonth(t *testing.T) {
	arc := testArchive(t,
		rawPost("2", "Thu Jan 20 12:00:00 +0000 2022", "second post", 0, 0),
		rawPost("1", "Wed Jan 05 10:00:00 +0000 2022", "first post", 0, 0),
	)

	result := localRenderer().FormatYear(arc.Year(2022))

	first := strings.Index(result, "first post")
	second := strings.Index(result, "second post")
	if first < 0 || second < 0 || first > second {
		t.Errorf("entries out of order:\n%s", result)
	}
}

func TestFormatYear_MediaPathSwitch(t *testing.T) {
	arc := testArchive(t, rawPost("300", "Wed Jan 05 10:00:00 +0000 2022", "pics", 0, 0,
		"https://pbs.twimg.com/media/x.jpg", "https://pbs.twimg.com/media/y.jpg"))

	tests := []struct {
		name       string
		resolver   MediaResolver
		wantPrefix string
	}{
		{name: "local dir", resolver: NewMediaResolver("media/photos", ""), wantPrefix: "media/photos/"},
		{name: "relative dot dir", resolver: NewMediaResolver("./tweets_media", ""), wantPrefix: "./tweets_media/"},
		{name: "base url", resolver: NewMediaResolver("tweets_media", "https://cdn.example.com/tw"), wantPrefix: "https://cdn.example.com/tw/"},
		{name: "base url trailing slash", resolver: NewMediaResolver("tweets_media", "https://cdn.example.com/"), wantPrefix: "https://cdn.example.com/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewRenderer(tt.resolver).FormatYear(arc.Year(2022))

			var targets []string
			for _, line := range strings.Split(result, "\n") {
				if strings.HasPrefix(line, "![") {
					targets = append(targets, line[strings.Index(line, "(")+1:len(line)-1])
				}
			}
			if len(targets) != 2 {
				t.Fatalf("found %d image lines, want 2\n%s", len(targets), result)
			}
			for _, target := range targets {
				if !strings.HasPrefix(target, tt.wantPrefix) {
					t.Errorf("image target %q should start with %q", target, tt.wantPrefix)
				}
				if strings.Contains(strings.TrimPrefix(target, "https://"), "//") {
					t.Errorf("image target %q has a doubled slash", target)
				}
			}
		})
	}
}

func TestWriteYearFiles(t *testing.T) {
	arc := testArchive(t,
		rawPost("1", "Wed Jan 05 10:00:00 +0000 2022", "a", 0, 0),
		rawPost("2", "Sat Dec 25 08:00:00 +0000 2021", "b", 0, 0),
	)
	dir := filepath.Join(t.TempDir(), "nested", "out")
	renderer := localRenderer()

	paths, err := renderer.WriteYearFiles(arc, dir)
	if err != nil {
		t.Fatalf("WriteYearFiles() error = %v", err)
	}

	want := []string{filepath.Join(dir, "2021.md"), filepath.Join(dir, "2022.md")}
	if !slices.Equal(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}

	for _, year := range arc.Years() {
		data, err := os.ReadFile(filepath.Join(dir, FileName(year)))
		if err != nil {
			t.Fatalf("reading %d: %v", year, err)
		}
		if string(data) != renderer.FormatYear(arc.Year(year)) {
			t.Errorf("file for %d does not match FormatYear", year)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("dir has %d entries, want 2 (no temp files left)", len(entries))
	}
}

func TestWriteYearFiles_Idempotent(t *testing.T) {
	arc := testArchive(t,
		rawPost("1", "Wed Jan 05 10:00:00 +0000 2022", "Check http://x.co {now}", 4, 2, "https://pbs.twimg.com/media/x.jpg"),
		rawPost("2", "Thu Jan 06 10:00:00 +0000 2022", "b", 0, 0),
	)
	dir := t.TempDir()
	renderer := localRenderer()

	if _, err := renderer.WriteYearFiles(arc, dir); err != nil {
		t.Fatalf("first write: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(dir, "2022.md"))
	if err != nil {
		t.Fatalf("reading: %v", err)
	}

	if _, err := renderer.WriteYearFiles(arc, dir); err != nil {
		t.Fatalf("second write: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(dir, "2022.md"))
	if err != nil {
		t.Fatalf("reading: %v", err)
	}

	if string(first) != string(second) {
		t.Error("second run produced different output")
	}
}

func TestWriteYearFiles_OutputDirIsFile(t *testing.T) {
	arc := testArchive(t, rawPost("1", "Wed Jan 05 10:00:00 +0000 2022", "a", 0, 0))
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := localRenderer().WriteYearFiles(arc, file)
	var writeErr *OutputWriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("WriteYearFiles() error = %v, want *OutputWriteError", err)
	}
	if writeErr.Path != file {
		t.Errorf("Path = %q, want %q", writeErr.Path, file)
	}
}

func TestWriteYearFiles_KeepsEarlierYearsOnFailure(t *testing.T) {
	arc := testArchive(t,
		rawPost("1", "Sat Dec 25 08:00:00 +0000 2021", "old", 0, 0),
		rawPost("2", "Wed Jan 05 10:00:00 +0000 2022", "new", 0, 0),
	)
	dir := t.TempDir()

	// A directory where 2022.md should go makes the rename fail.
	if err := os.Mkdir(filepath.Join(dir, "2022.md"), 0o755); err != nil {
		t.Fatalf("creating blocker: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "2022.md", "keep"), []byte("x"), 0o600); err != nil {
		t.Fatalf("creating blocker content: %v", err)
	}

	written, err := localRenderer().WriteYearFiles(arc, dir)
	var writeErr *OutputWriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("WriteYearFiles() error = %v, want *OutputWriteError", err)
	}
	if !strings.HasSuffix(writeErr.Path, "2022.md") {
		t.Errorf("error should name 2022.md, got %q", writeErr.Path)
	}
	if len(written) != 1 {
		t.Fatalf("written = %v, want only 2021.md", written)
	}

	data, err := os.ReadFile(filepath.Join(dir, "2021.md"))
	if err != nil {
		t.Fatalf("2021.md should survive: %v", err)
	}
	if !strings.Contains(string(data), "> old") {
		t.Errorf("2021.md content = %q", data)
	}
}

func TestWriteYearFiles_FilePermissions(t *testing.T) {
	arc := testArchive(t, rawPost("1", "Wed Jan 05 10:00:00 +0000 2022", "a", 0, 0))
	dir := t.TempDir()

	if _, err := localRenderer().WriteYearFiles(arc, dir); err != nil {
		t.Fatalf("WriteYearFiles() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "2022.md"))
	if err != nil {
		t.Fatalf("failed to stat file: %v", err)
	}

	// Should be 0600 (owner read/write only)
	expectedPerm := os.FileMode(0600)
	if info.Mode().Perm() != expectedPerm {
		t.Errorf("file permissions = %o, want %o", info.Mode().Perm(), expectedPerm)
	}
}

func TestWriteYearFiles_Empty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := localRenderer().WriteYearFiles(organize.Organize(nil), dir)
	if err != nil {
		t.Fatalf("WriteYearFiles() error = %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("paths = %v, want none", paths)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output dir should be created: %v", err)
	}
}
