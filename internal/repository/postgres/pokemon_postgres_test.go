package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"pokeapi/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPokemonPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPokemonPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Pikachu")

		mock.ExpectQuery("INSERT INTO pokemons").
			WithArgs("Pikachu").
			WillReturnRows(rows)

		result, err := repo.Create(ctx, "Pikachu")

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, int64(1), result.ID)
		assert.Equal(t, "Pikachu", result.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO pokemons").
			WithArgs("Mewtwo").
			WillReturnError(errors.New("connection refused"))

		result, err := repo.Create(ctx, "Mewtwo")

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestPokemonPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPokemonPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "Bulbasaur").
			AddRow(int64(2), "Ivysaur")

		mock.ExpectQuery("SELECT (.+) FROM pokemons ORDER BY id ASC").
			WithArgs(10, 0).
			WillReturnRows(rows)

		items, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, int64(1), items[0].ID)
		assert.Equal(t, int64(2), items[1].ID)
	})

	t.Run("offset past end returns empty slice", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pokemons ORDER BY id ASC").
			WithArgs(10, 500).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		items, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 500})

		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pokemons ORDER BY id ASC").
			WithArgs(10, 0).
			WillReturnError(errors.New("db down"))

		items, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.Error(t, err)
		assert.Nil(t, items)
	})
}

func TestPokemonPostgres_FindByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPokemonPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(25), "Pikachu")

		mock.ExpectQuery("SELECT (.+) FROM pokemons WHERE name = ?").
			WithArgs("Pikachu").
			WillReturnRows(rows)

		p, err := repo.FindByName(ctx, "Pikachu")

		assert.NoError(t, err)
		assert.NotNil(t, p)
		assert.Equal(t, int64(25), p.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pokemons WHERE name = ?").
			WithArgs("MissingNo").
			WillReturnError(sql.ErrNoRows)

		p, err := repo.FindByName(ctx, "MissingNo")

		assert.Error(t, err)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, p)
	})

	t.Run("match is case-sensitive at the query level", func(t *testing.T) {
		// The repository passes the name through verbatim; "pikachu" and
		// "Pikachu" are distinct arguments.
		mock.ExpectQuery("SELECT (.+) FROM pokemons WHERE name = ?").
			WithArgs("pikachu").
			WillReturnError(sql.ErrNoRows)

		p, err := repo.FindByName(ctx, "pikachu")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, p)
	})
}

func TestPokemonPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPokemonPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(7), "Squirtle")

		mock.ExpectQuery("SELECT (.+) FROM pokemons WHERE id = ?").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		p, err := repo.FindByID(ctx, 7)

		assert.NoError(t, err)
		assert.NotNil(t, p)
		assert.Equal(t, "Squirtle", p.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pokemons WHERE id = ?").
			WithArgs(int64(999)).
			WillReturnError(sql.ErrNoRows)

		p, err := repo.FindByID(ctx, 999)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, p)
	})
}
