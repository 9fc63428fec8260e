package mocks

import (
	"context"

	"pokeapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockPokemonService struct {
	mock.Mock
}

func (m *MockPokemonService) Create(ctx context.Context, name string) (*model.Pokemon, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pokemon), args.Error(1)
}

func (m *MockPokemonService) List(ctx context.Context, limit, offset int) ([]model.Pokemon, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pokemon), args.Error(1)
}

func (m *MockPokemonService) FindByName(ctx context.Context, name string) (*model.Pokemon, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pokemon), args.Error(1)
}

func (m *MockPokemonService) Get(ctx context.Context, id int64) (*model.Pokemon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pokemon), args.Error(1)
}
