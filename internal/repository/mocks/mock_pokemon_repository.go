package mocks

import (
	"context"

	"pokeapi/internal/model"
	"pokeapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockPokemonRepository struct {
	mock.Mock
}

func (m *MockPokemonRepository) Create(ctx context.Context, name string) (*model.Pokemon, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pokemon), args.Error(1)
}

func (m *MockPokemonRepository) List(ctx context.Context, pq repository.PageQuery) ([]model.Pokemon, error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pokemon), args.Error(1)
}

func (m *MockPokemonRepository) FindByName(ctx context.Context, name string) (*model.Pokemon, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pokemon), args.Error(1)
}

func (m *MockPokemonRepository) FindByID(ctx context.Context, id int64) (*model.Pokemon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pokemon), args.Error(1)
}
