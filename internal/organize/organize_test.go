package organize

import (
	"slices"
	"testing"
	"time"

	"github.com/gorewood/tweetbook/internal/archive"
	"github.com/gorewood/tweetbook/internal/post"
)

// mustPost normalizes a minimal record created at createdAt.
func mustPost(t *testing.T, id, createdAt string) *post.Post {
	t.Helper()
	p, err := post.Normalize(archive.RawPost{Tweet: archive.RawTweet{
		IDStr:     id,
		CreatedAt: createdAt,
		FullText:  "post " + id,
	}})
	if err != nil {
		t.Fatalf("normalizing %s: %v", id, err)
	}
	return p
}

func ids(posts []*post.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.SourceID())
	}
	return out
}

func TestOrganize_GroupsByYearAndMonth(t *testing.T) {
	posts := []*post.Post{
		mustPost(t, "a", "Mon Mar 07 09:00:00 +0000 2022"),
		mustPost(t, "b", "Wed Jan 05 10:00:00 +0000 2022"),
		mustPost(t, "c", "Sat Dec 25 08:00:00 +0000 2021"),
		mustPost(t, "d", "Thu Jan 20 12:00:00 +0000 2022"),
	}

	result := Organize(posts)

	if got := result.Years(); !slices.Equal(got, []int{2021, 2022}) {
		t.Fatalf("Years() = %v, want [2021 2022]", got)
	}
	if result.Len() != len(posts) {
		t.Errorf("Len() = %d, want %d", result.Len(), len(posts))
	}

	group := result.Year(2022)
	if got := group.Months(); !slices.Equal(got, []time.Month{time.January, time.March}) {
		t.Errorf("Months() = %v, want [January March]", got)
	}
	if got := ids(group.Posts(time.January)); !slices.Equal(got, []string{"b", "d"}) {
		t.Errorf("January posts = %v, want [b d]", got)
	}
	if group.Posts(time.February) != nil {
		t.Error("February should have no posts")
	}
	if result.Year(2020) != nil {
		t.Error("Year(2020) should be nil")
	}
}

func TestOrganize_SortsWithinMonth(t *testing.T) {
	posts := []*post.Post{
		mustPost(t, "late", "Fri Jan 28 18:00:00 +0000 2022"),
		mustPost(t, "mid", "Sat Jan 15 12:00:00 +0000 2022"),
		mustPost(t, "early", "Sat Jan 01 00:00:01 +0000 2022"),
	}

	got := ids(Organize(posts).Year(2022).Posts(time.January))
	want := []string{"early", "mid", "late"}
	if !slices.Equal(got, want) {
		t.Errorf("January posts = %v, want %v", got, want)
	}
}

func TestOrganize_StableForEqualTimestamps(t *testing.T) {
	posts := []*post.Post{
		mustPost(t, "first", "Wed Jan 05 10:00:00 +0000 2022"),
		mustPost(t, "second", "Wed Jan 05 10:00:00 +0000 2022"),
	}

	got := ids(Organize(posts).Year(2022).Posts(time.January))
	if !slices.Equal(got, []string{"first", "second"}) {
		t.Errorf("posts = %v, want input order for ties", got)
	}
}

func TestOrganize_UsesOwnOffset(t *testing.T) {
	// 2022-01-01 03:00 UTC, but still New Year's Eve in -0500.
	p := mustPost(t, "nye", "Fri Dec 31 22:00:00 -0500 2021")

	result := Organize([]*post.Post{p})
	if got := result.Years(); !slices.Equal(got, []int{2021}) {
		t.Fatalf("Years() = %v, want [2021]", got)
	}
	if len(result.Year(2021).Posts(time.December)) != 1 {
		t.Error("post should be grouped under December 2021")
	}
}

func TestOrganize_CanonicalMonthOrder(t *testing.T) {
	var posts []*post.Post
	for _, createdAt := range []string{
		"Sun Dec 04 10:00:00 +0000 2022",
		"Tue Feb 01 10:00:00 +0000 2022",
		"Mon Oct 03 10:00:00 +0000 2022",
		"Wed Jan 05 10:00:00 +0000 2022",
	} {
		posts = append(posts, mustPost(t, createdAt, createdAt))
	}

	got := Organize(posts).Year(2022).Months()
	want := []time.Month{time.January, time.February, time.October, time.December}
	if !slices.Equal(got, want) {
		t.Errorf("Months() = %v, want %v", got, want)
	}
}

func TestOrganize_Empty(t *testing.T) {
	result := Organize(nil)
	if len(result.Years()) != 0 || result.Len() != 0 {
		t.Errorf("empty archive has years %v", result.Years())
	}
	if len(result.Counts()) != 0 {
		t.Errorf("Counts() = %v, want empty", result.Counts())
	}
}

func TestArchive_Counts(t *testing.T) {
	posts := []*post.Post{
		mustPost(t, "a", "Wed Jan 05 10:00:00 +0000 2022"),
		mustPost(t, "b", "Thu Jan 06 10:00:00 +0000 2022"),
		mustPost(t, "c", "Mon Mar 07 09:00:00 +0000 2022"),
		mustPost(t, "d", "Sat Dec 25 08:00:00 +0000 2021"),
	}

	counts := Organize(posts).Counts()
	if len(counts) != 2 {
		t.Fatalf("Counts() = %v, want 2 years", counts)
	}
	if counts[0].Year != 2021 || counts[0].Posts != 1 {
		t.Errorf("counts[0] = %+v", counts[0])
	}
	want := []MonthCount{{Month: time.January, Posts: 2}, {Month: time.March, Posts: 1}}
	if counts[1].Year != 2022 || counts[1].Posts != 3 || !slices.Equal(counts[1].Months, want) {
		t.Errorf("counts[1] = %+v, want 2022 with %v", counts[1], want)
	}
}
