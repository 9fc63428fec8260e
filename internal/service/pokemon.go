package service

import (
	"context"
	"database/sql"
	"errors"

	"pokeapi/internal/model"
	"pokeapi/internal/repository"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrInvalidID    = errors.New("id must be positive")
	ErrNotFound     = errors.New("pokemon not found")
)

// defaultListLimit is applied when the caller passes a non-positive limit.
const defaultListLimit = 10

// PokemonService defines the use cases for handling Pokémon records.
// Each call is a single stateless request/response cycle; no state is
// cached between calls.
type PokemonService interface {
	// Create persists a new Pokémon with the given name and returns it
	// with its database-assigned id. Storage failures propagate unchanged.
	Create(ctx context.Context, name string) (*model.Pokemon, error)

	// List returns records in ascending-id order using limit/offset.
	List(ctx context.Context, limit, offset int) ([]model.Pokemon, error)

	// FindByName returns the first record exactly matching the name, or
	// ErrNotFound. The match is case-sensitive.
	FindByName(ctx context.Context, name string) (*model.Pokemon, error)

	// Get returns a single record by id, or ErrNotFound.
	Get(ctx context.Context, id int64) (*model.Pokemon, error)
}

// pokemonService is a concrete implementation of PokemonService.
type pokemonService struct {
	repo repository.PokemonRepository
}

// NewPokemonService constructs a new PokemonService.
func NewPokemonService(repo repository.PokemonRepository) PokemonService {
	return &pokemonService{repo: repo}
}

func (s *pokemonService) Create(ctx context.Context, name string) (*model.Pokemon, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	return s.repo.Create(ctx, name)
}

// List clamps pagination values as a second line of defense; the HTTP
// handler has already rejected negative parameters with a client error.
func (s *pokemonService) List(ctx context.Context, limit, offset int) ([]model.Pokemon, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
}

func (s *pokemonService) FindByName(ctx context.Context, name string) (*model.Pokemon, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	p, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *pokemonService) Get(ctx context.Context, id int64) (*model.Pokemon, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
