package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stacygol/bloglist/internal/model"
	"github.com/stacygol/bloglist/internal/sqlerr"
)

const blogsTable = "blogs"

type BlogRepository struct {
	pool *pgxpool.Pool
}

func NewBlogRepository(pool *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{pool: pool}
}

// List returns every blog in insertion order.
func (r *BlogRepository) List(ctx context.Context) ([]model.Blog, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, author, url, likes
		FROM blogs
		ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	blogs, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Blog])
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, author, url, likes
		FROM blogs
		WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}

	return collectOne[model.Blog](rows, blogsTable)
}

func (r *BlogRepository) Create(ctx context.Context, blog *model.Blog) (*model.Blog, error) {
	rows, err := r.pool.Query(ctx, `
		INSERT INTO blogs (title, author, url, likes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, author, url, likes`,
		blog.Title, blog.Author, blog.URL, blog.Likes)
	if err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}

	return collectOne[model.Blog](rows, blogsTable)
}

// Update replaces every field of the blog with blog.ID.
func (r *BlogRepository) Update(ctx context.Context, blog *model.Blog) (*model.Blog, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE blogs
		SET title = $2, author = $3, url = $4, likes = $5, updated_at = now()
		WHERE id = $1
		RETURNING id, title, author, url, likes`,
		blog.ID, blog.Title, blog.Author, blog.URL, blog.Likes)
	if err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}

	return collectOne[model.Blog](rows, blogsTable)
}

func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound(blogsTable)
	}
	return nil
}

// collectOne reads exactly one row into T, reporting an empty result as
// a missing row of table.
func collectOne[T any](rows pgx.Rows, table string) (*T, error) {
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound(table)
		}
		return nil, err
	}
	return item, nil
}
