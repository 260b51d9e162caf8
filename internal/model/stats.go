package model

import "time"

// FavoriteBlog is the projection of the most liked blog.
type FavoriteBlog struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// BlogStats is the cached summary served by /api/blogs/stats. The
// projections are null when there are no blogs.
type BlogStats struct {
	BlogCount    int           `json:"blogCount"`
	TotalLikes   int           `json:"totalLikes"`
	FavoriteBlog *FavoriteBlog `json:"favoriteBlog"`
	MostBlogs    *AuthorBlogs  `json:"mostBlogs"`
	MostLikes    *AuthorLikes  `json:"mostLikes"`
	ComputedAt   time.Time     `json:"computedAt"`
}
