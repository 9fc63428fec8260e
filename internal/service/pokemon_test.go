package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"pokeapi/internal/model"
	"pokeapi/internal/repository"
	repoMocks "pokeapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPokemonService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      string
		setupMocks func(mRepo *repoMocks.MockPokemonRepository)
		wantErr    error
		wantID     int64
	}{
		{
			name:  "happy path",
			input: "Pikachu",
			setupMocks: func(mRepo *repoMocks.MockPokemonRepository) {
				mRepo.On("Create", ctx, "Pikachu").
					Return(&model.Pokemon{ID: 1, Name: "Pikachu"}, nil)
			},
			wantID: 1,
		},
		{
			name:       "validation - empty name",
			input:      "",
			setupMocks: func(mRepo *repoMocks.MockPokemonRepository) {},
			wantErr:    ErrNameRequired,
		},
		{
			name:  "storage error propagates unchanged",
			input: "Mewtwo",
			setupMocks: func(mRepo *repoMocks.MockPokemonRepository) {
				mRepo.On("Create", ctx, "Mewtwo").
					Return(nil, errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPokemonRepository)
			svc := NewPokemonService(mRepo)

			tt.setupMocks(mRepo)

			p, err := svc.Create(ctx, tt.input)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrNameRequired) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
				}
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, p.ID)
				assert.Equal(t, tt.input, p.Name)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestPokemonService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		limit      int
		offset     int
		setupMocks func(mRepo *repoMocks.MockPokemonRepository)
		wantErr    bool
		wantLen    int
	}{
		{
			name:   "happy path",
			limit:  10,
			offset: 0,
			setupMocks: func(mRepo *repoMocks.MockPokemonRepository) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
					Return([]model.Pokemon{{ID: 1, Name: "Bulbasaur"}, {ID: 2, Name: "Ivysaur"}}, nil)
			},
			wantLen: 2,
		},
		{
			name:   "clamps non-positive limit and negative offset",
			limit:  0,
			offset: -1,
			setupMocks: func(mRepo *repoMocks.MockPokemonRepository) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
					Return([]model.Pokemon{}, nil)
			},
			wantLen: 0,
		},
		{
			name:   "repository error",
			limit:  10,
			offset: 0,
			setupMocks: func(mRepo *repoMocks.MockPokemonRepository) {
				mRepo.On("List", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPokemonRepository)
			svc := NewPokemonService(mRepo)

			tt.setupMocks(mRepo)

			items, err := svc.List(ctx, tt.limit, tt.offset)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, items, tt.wantLen)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestPokemonService_FindByName(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      string
		setupMocks func(mRepo *repoMocks.MockPokemonRepository)
		wantErr    error
	}{
		{
			name:  "happy path",
			input: "Pikachu",
			setupMocks: func(mRepo *repoMocks.MockPokemonRepository) {
				mRepo.On("FindByName", ctx, "Pikachu").
					Return(&model.Pokemon{ID: 25, Name: "Pikachu"}, nil)
			},
		},
		{
			name:       "validation - empty name",
			input:      "",
			setupMocks: func(mRepo *repoMocks.MockPokemonRepository) {},
			wantErr:    ErrNameRequired,
		},
		{
			name:  "absent - mapping sql.ErrNoRows",
			input: "MissingNo",
			setupMocks: func(mRepo *repoMocks.MockPokemonRepository) {
				mRepo.On("FindByName", ctx, "MissingNo").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name:  "generic repository error",
			input: "Eevee",
			setupMocks: func(mRepo *repoMocks.MockPokemonRepository) {
				mRepo.On("FindByName", ctx, "Eevee").Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPokemonRepository)
			svc := NewPokemonService(mRepo)

			tt.setupMocks(mRepo)

			p, err := svc.FindByName(ctx, tt.input)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrNameRequired) || errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
				}
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, p)
				assert.Equal(t, tt.input, p.Name)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestPokemonService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		setupMocks func(mRepo *repoMocks.MockPokemonRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   7,
			setupMocks: func(mRepo *repoMocks.MockPokemonRepository) {
				mRepo.On("FindByID", ctx, int64(7)).
					Return(&model.Pokemon{ID: 7, Name: "Squirtle"}, nil)
			},
		},
		{
			name:       "validation - non-positive id",
			id:         0,
			setupMocks: func(mRepo *repoMocks.MockPokemonRepository) {},
			wantErr:    ErrInvalidID,
		},
		{
			name: "absent - mapping sql.ErrNoRows",
			id:   999,
			setupMocks: func(mRepo *repoMocks.MockPokemonRepository) {
				mRepo.On("FindByID", ctx, int64(999)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPokemonRepository)
			svc := NewPokemonService(mRepo)

			tt.setupMocks(mRepo)

			p, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, p)
				assert.Equal(t, tt.id, p.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}
