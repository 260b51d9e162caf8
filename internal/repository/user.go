package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stacygol/bloglist/internal/model"
)

const usersTable = "users"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts the user. A taken username fails with the
// users_username_key unique violation; there is no separate lookup.
func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	rows, err := r.pool.Query(ctx, `
		INSERT INTO users (username, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, name, password_hash`,
		user.Username, user.Name, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	created, err := collectOne[model.User](rows, usersTable)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, username, name, password_hash
		FROM users
		ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
