package model

// Pokemon represents a single Pokémon record.
// This is a pure domain model with no database-specific dependencies or tags;
// it can be used across layers (HTTP, service, repository) without coupling to persistence.
// The ID is assigned by the database on insert and is immutable afterwards.
type Pokemon struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
