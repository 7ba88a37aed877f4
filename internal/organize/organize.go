// Package organize groups normalized posts by calendar year and month.
package organize

import (
	"slices"
	"time"

	"github.com/gorewood/tweetbook/internal/post"
)

// Archive maps calendar years to their YearGroup.
type Archive struct {
	years map[int]*YearGroup
}

// YearGroup holds the posts of one calendar year, by month.
type YearGroup struct {
	year   int
	months map[time.Month][]*post.Post
}

// MonthCount is the number of posts in one month.
type MonthCount struct {
	Month time.Month
	Posts int
}

// YearCount summarizes one year.
type YearCount struct {
	Year   int
	Posts  int
	Months []MonthCount
}

// Organize groups posts by (year, month) of their timestamps, read in each
// post's own offset, and sorts every month ascending by timestamp. Posts
// with equal timestamps keep their input order.
func Organize(posts []*post.Post) *Archive {
	archive := &Archive{years: make(map[int]*YearGroup)}

	for _, p := range posts {
		ts := p.Timestamp()
		group, ok := archive.years[ts.Year()]
		if !ok {
			group = &YearGroup{year: ts.Year(), months: make(map[time.Month][]*post.Post)}
			archive.years[ts.Year()] = group
		}
		group.months[ts.Month()] = append(group.months[ts.Month()], p)
	}

	for _, group := range archive.years {
		for _, monthPosts := range group.months {
			slices.SortStableFunc(monthPosts, func(a, b *post.Post) int {
				return a.Timestamp().Compare(b.Timestamp())
			})
		}
	}

	return archive
}

// Years returns the years present, ascending.
func (a *Archive) Years() []int {
	years := make([]int, 0, len(a.years))
	for year := range a.years {
		years = append(years, year)
	}
	slices.Sort(years)
	return years
}

// Year returns the group for year, or nil.
func (a *Archive) Year(year int) *YearGroup {
	return a.years[year]
}

// Len returns the total number of posts.
func (a *Archive) Len() int {
	total := 0
	for _, group := range a.years {
		total += group.Len()
	}
	return total
}

// Counts summarizes post counts per year and month in canonical order.
func (a *Archive) Counts() []YearCount {
	counts := make([]YearCount, 0, len(a.years))
	for _, year := range a.Years() {
		group := a.years[year]
		yc := YearCount{Year: year, Posts: group.Len()}
		for _, month := range group.Months() {
			yc.Months = append(yc.Months, MonthCount{Month: month, Posts: len(group.months[month])})
		}
		counts = append(counts, yc)
	}
	return counts
}

// Year returns the calendar year of the group.
func (g *YearGroup) Year() int {
	return g.year
}

// Months returns the months that contain posts, January first.
func (g *YearGroup) Months() []time.Month {
	var months []time.Month
	for month := time.January; month <= time.December; month++ {
		if len(g.months[month]) > 0 {
			months = append(months, month)
		}
	}
	return months
}

// Posts returns the posts of month in ascending timestamp order.
// The returned slice is a copy.
func (g *YearGroup) Posts(month time.Month) []*post.Post {
	return slices.Clone(g.months[month])
}

// Len returns the number of posts in the year.
func (g *YearGroup) Len() int {
	total := 0
	for _, monthPosts := range g.months {
		total += len(monthPosts)
	}
	return total
}
