// Package listhelper summarizes a list of blogs: total likes, the favorite
// blog and the most prolific and most liked authors.
//
// When several authors share the maximum, the one that appears first in
// the input wins.
package listhelper

import (
	"errors"
	"time"

	"github.com/stacygol/bloglist/internal/model"
)

// ErrEmptyList is returned by the helpers that need at least one blog.
var ErrEmptyList = errors.New("listhelper: empty blog list")

func TotalLikes(blogs []model.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes. Ties go to the
// earliest blog.
func FavoriteBlog(blogs []model.Blog) (model.FavoriteBlog, error) {
	if len(blogs) == 0 {
		return model.FavoriteBlog{}, ErrEmptyList
	}

	best := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > best.Likes {
			best = b
		}
	}

	return model.FavoriteBlog{
		Title:  best.Title,
		Author: best.Author,
		Likes:  best.Likes,
	}, nil
}

func MostBlogs(blogs []model.Blog) (model.AuthorBlogs, error) {
	author, count, err := maxByAuthor(blogs, func(model.Blog) int { return 1 })
	if err != nil {
		return model.AuthorBlogs{}, err
	}
	return model.AuthorBlogs{Author: author, Blogs: count}, nil
}

func MostLikes(blogs []model.Blog) (model.AuthorLikes, error) {
	author, likes, err := maxByAuthor(blogs, func(b model.Blog) int { return b.Likes })
	if err != nil {
		return model.AuthorLikes{}, err
	}
	return model.AuthorLikes{Author: author, Likes: likes}, nil
}

// maxByAuthor sums weight per author and returns the author with the
// largest total, preferring earlier first appearances on ties.
func maxByAuthor(blogs []model.Blog, weight func(model.Blog) int) (string, int, error) {
	if len(blogs) == 0 {
		return "", 0, ErrEmptyList
	}

	totals := make(map[string]int)
	order := make([]string, 0)
	for _, b := range blogs {
		if _, seen := totals[b.Author]; !seen {
			order = append(order, b.Author)
		}
		totals[b.Author] += weight(b)
	}

	best := order[0]
	for _, author := range order[1:] {
		if totals[author] > totals[best] {
			best = author
		}
	}
	return best, totals[best], nil
}

// Summarize builds the stats snapshot for blogs. Unlike the single
// helpers it accepts an empty list and leaves the projections nil.
func Summarize(blogs []model.Blog, now time.Time) *model.BlogStats {
	stats := &model.BlogStats{
		BlogCount:  len(blogs),
		TotalLikes: TotalLikes(blogs),
		ComputedAt: now.UTC(),
	}

	if fav, err := FavoriteBlog(blogs); err == nil {
		stats.FavoriteBlog = &fav
	}
	if mb, err := MostBlogs(blogs); err == nil {
		stats.MostBlogs = &mb
	}
	if ml, err := MostLikes(blogs); err == nil {
		stats.MostLikes = &ml
	}

	return stats
}
