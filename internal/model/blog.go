package model

import (
	"github.com/google/uuid"

	"github.com/stacygol/bloglist/internal/validation"
)

type Blog struct {
	ID     uuid.UUID `json:"id" db:"id"`
	Title  string    `json:"title" db:"title"`
	Author string    `json:"author" db:"author"`
	URL    string    `json:"url" db:"url"`
	Likes  int       `json:"likes" db:"likes"`
}

// Likes is stored as a PostgreSQL integer, so requests are held to its
// range.
type CreateBlogRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author"`
	URL    string `json:"url" validate:"required"`
	Likes  *int   `json:"likes" validate:"omitempty,min=-2147483648,max=2147483647"`
}

func (r *CreateBlogRequest) Validate() error {
	return validation.Struct(r)
}

// Blog builds the record to insert. Missing likes count as zero.
func (r *CreateBlogRequest) Blog() *Blog {
	likes := 0
	if r.Likes != nil {
		likes = *r.Likes
	}

	return &Blog{
		Title:  r.Title,
		Author: r.Author,
		URL:    r.URL,
		Likes:  likes,
	}
}

// UpdateBlogRequest replaces every field of a blog.
//
// Validate only checks the id. The service runs ValidateFields once it
// knows the blog exists, so an unknown id is reported as not found even
// when the body is also invalid.
type UpdateBlogRequest struct {
	IDParam
	Title  string `json:"title" validate:"required"`
	Author string `json:"author"`
	URL    string `json:"url" validate:"required"`
	Likes  *int   `json:"likes" validate:"omitempty,min=-2147483648,max=2147483647"`
}

func (r *UpdateBlogRequest) Validate() error {
	return r.parse()
}

func (r *UpdateBlogRequest) ValidateFields() error {
	return validation.Check(r)
}

// Apply writes the request onto current. Likes left out of the body keep
// their stored value.
func (r *UpdateBlogRequest) Apply(current *Blog) *Blog {
	updated := &Blog{
		ID:     current.ID,
		Title:  r.Title,
		Author: r.Author,
		URL:    r.URL,
		Likes:  current.Likes,
	}
	if r.Likes != nil {
		updated.Likes = *r.Likes
	}
	return updated
}

type DeleteBlogRequest struct {
	IDParam
}

func (r *DeleteBlogRequest) Validate() error {
	return r.parse()
}
