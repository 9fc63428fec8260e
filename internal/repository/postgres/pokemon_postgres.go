package postgres

import (
	"context"
	"database/sql"

	"pokeapi/internal/model"
	"pokeapi/internal/repository"
)

// PokemonPostgres is a PostgreSQL implementation of repository.PokemonRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type PokemonPostgres struct {
	db *sql.DB
}

// NewPokemonPostgres creates a new PokemonPostgres repository.
func NewPokemonPostgres(db *sql.DB) *PokemonPostgres {
	return &PokemonPostgres{db: db}
}

var _ repository.PokemonRepository = (*PokemonPostgres)(nil)

// Create inserts a new row and returns the stored record with its database-assigned id.
func (r *PokemonPostgres) Create(ctx context.Context, name string) (*model.Pokemon, error) {
	const q = `
		INSERT INTO pokemons (name)
		VALUES ($1)
		RETURNING id, name
	`
	var out model.Pokemon
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&out.ID, &out.Name); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns rows in insertion order (ascending id) using LIMIT/OFFSET pagination.
func (r *PokemonPostgres) List(ctx context.Context, pq repository.PageQuery) ([]model.Pokemon, error) {
	const q = `
		SELECT id, name
		FROM pokemons
		ORDER BY id ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Pokemon, 0)
	for rows.Next() {
		var p model.Pokemon
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// FindByName fetches the first row with an exact name match.
func (r *PokemonPostgres) FindByName(ctx context.Context, name string) (*model.Pokemon, error) {
	const q = `
		SELECT id, name
		FROM pokemons
		WHERE name = $1
		ORDER BY id ASC
		LIMIT 1
	`
	var p model.Pokemon
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&p.ID, &p.Name); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByID fetches a single row by its id.
func (r *PokemonPostgres) FindByID(ctx context.Context, id int64) (*model.Pokemon, error) {
	const q = `
		SELECT id, name
		FROM pokemons
		WHERE id = $1
	`
	var p model.Pokemon
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name); err != nil {
		return nil, err
	}
	return &p, nil
}
