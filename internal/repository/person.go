package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stacygol/bloglist/internal/model"
)

const personsTable = "persons"

type PersonRepository struct {
	pool *pgxpool.Pool
}

func NewPersonRepository(pool *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{pool: pool}
}

func (r *PersonRepository) List(ctx context.Context) ([]model.Person, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, number
		FROM persons
		ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}

	persons, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Person])
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	return persons, nil
}

func (r *PersonRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM persons`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count persons: %w", err)
	}
	return count, nil
}

func (r *PersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, number
		FROM persons
		WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}

	return collectOne[model.Person](rows, personsTable)
}

func (r *PersonRepository) Create(ctx context.Context, person *model.Person) (*model.Person, error) {
	rows, err := r.pool.Query(ctx, `
		INSERT INTO persons (name, number)
		VALUES ($1, $2)
		RETURNING id, name, number`,
		person.Name, person.Number)
	if err != nil {
		return nil, fmt.Errorf("create person: %w", err)
	}

	return collectOne[model.Person](rows, personsTable)
}

func (r *PersonRepository) Update(ctx context.Context, person *model.Person) (*model.Person, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE persons
		SET name = $2, number = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, name, number`,
		person.ID, person.Name, person.Number)
	if err != nil {
		return nil, fmt.Errorf("update person: %w", err)
	}

	return collectOne[model.Person](rows, personsTable)
}

// Delete removes the entry if it exists. Deleting an unknown id is not an
// error.
func (r *PersonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM persons WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	return nil
}
