package handler

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pokeapi/internal/service"
	"pokeapi/internal/storage"
)

// Pagination defaults for GET /pokemons when the query parameters are omitted.
const (
	defaultLimit  = "10"
	defaultOffset = "0"
)

var validate = validator.New()

// createPokemonRequest is the typed request body for POST /pokemons.
// Validation is explicit and happens at the handler boundary, before any
// repository call is made.
type createPokemonRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreatePokemon handles POST /pokemons.
//
// A missing, empty, or non-string name is a 422; the row is never written.
// Storage failures surface as 500 with no automatic retry.
func CreatePokemon(svc service.PokemonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createPokemonRequest
		if err := c.BodyParser(&req); err != nil {
			// Covers malformed JSON and type mismatches such as {"name": 123}.
			return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_NAME", "name must be a string")
		}
		if err := validate.Struct(&req); err != nil {
			return writeError(c, fiber.StatusUnprocessableEntity, "NAME_REQUIRED", "name is required")
		}

		p, err := svc.Create(c.UserContext(), req.Name)
		if err != nil {
			if errors.Is(err, service.ErrNameRequired) {
				return writeError(c, fiber.StatusUnprocessableEntity, "NAME_REQUIRED", "name is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusOK).JSON(p)
	}
}

// ListPokemons handles GET /pokemons with limit & offset pagination.
// Both parameters default when omitted; a negative or non-integer value is a 422.
// The response is a bare JSON array ordered by ascending id.
func ListPokemons(svc service.PokemonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", defaultLimit))
		if err != nil || limit < 0 {
			return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_LIMIT", "limit must be a non-negative integer")
		}
		offset, err := strconv.Atoi(c.Query("offset", defaultOffset))
		if err != nil || offset < 0 {
			return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_OFFSET", "offset must be a non-negative integer")
		}

		items, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(items)
	}
}

// SearchPokemon handles GET /pokemons/search?name=<string>.
// The match is a case-sensitive exact match on the name; an absent record is a 404.
func SearchPokemon(svc service.PokemonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("name")
		if name == "" {
			return writeError(c, fiber.StatusUnprocessableEntity, "NAME_REQUIRED", "name query parameter is required")
		}

		p, err := svc.FindByName(c.UserContext(), name)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "pokemon not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(p)
	}
}

// GetPokemon handles GET /pokemons/:id.
func GetPokemon(svc service.PokemonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil || id <= 0 {
			return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_ID", "id must be a positive integer")
		}

		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "pokemon not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(p)
	}
}

// spriteURLExpiry bounds how long a presigned sprite link stays valid.
const spriteURLExpiry = 15 * time.Minute

// GetPokemonSprite handles GET /pokemons/:id/sprite.
// It returns a time-limited download URL for the sprite archived by the
// seeder. When the archive is disabled (store is nil) every sprite is absent.
func GetPokemonSprite(svc service.PokemonService, store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil || id <= 0 {
			return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_ID", "id must be a positive integer")
		}

		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "pokemon not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		if store == nil {
			return writeError(c, fiber.StatusNotFound, "SPRITE_NOT_FOUND", "sprite not found")
		}

		url, err := store.PresignGet(c.UserContext(), storage.SpriteKey(p.Name), spriteURLExpiry)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// HealthCheck returns a handler that reports readiness based on DB connectivity.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness check with no dependencies.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
