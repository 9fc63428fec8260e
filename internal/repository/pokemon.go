package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

import (
	"context"

	"pokeapi/internal/model"
)

// PokemonRepository defines data access for Pokémon using SQL queries only.
// No business logic here — strictly persistence operations.
type PokemonRepository interface {
	// Create inserts a new row with the given name and returns the stored
	// record including the id assigned by the database.
	Create(ctx context.Context, name string) (*model.Pokemon, error)

	// List returns up to Limit records starting at Offset, ordered by
	// ascending id. An offset past the end of the table yields an empty
	// slice, not an error. The caller validates that both values are
	// non-negative before calling.
	List(ctx context.Context, pq PageQuery) ([]model.Pokemon, error)

	// FindByName returns the first record (lowest id) whose name exactly
	// matches the argument, or sql.ErrNoRows when none does. Matching is
	// case-sensitive.
	FindByName(ctx context.Context, name string) (*model.Pokemon, error)

	// FindByID returns the record with the given id, or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.Pokemon, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}
