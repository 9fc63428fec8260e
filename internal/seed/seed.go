package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"pokeapi/internal/config"
	"pokeapi/internal/repository"
	"pokeapi/internal/storage"
)

// Seeder imports an initial set of Pokémon from the public PokéAPI.
// It creates one row per fetched Pokémon through the repository and, when a
// sprite archive is configured, stores each front sprite in object storage.
// The archive is best-effort: a sprite failure never blocks the row.
type Seeder struct {
	client  *resty.Client
	repo    repository.PokemonRepository
	sprites storage.Storage
	limit   int
	loc     *time.Location
}

// pageResponse is the PokéAPI list envelope.
type pageResponse struct {
	Results []pageResult `json:"results"`
	Next    string       `json:"next"`
}

type pageResult struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// detailResponse carries the subset of the PokéAPI detail payload we use.
type detailResponse struct {
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
}

// New constructs a Seeder. sprites may be nil to disable the archive.
func New(cfg config.SeedConfig, repo repository.PokemonRepository, sprites storage.Storage, loc *time.Location) *Seeder {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSec) * time.Second).
		SetHeader("User-Agent", "pokeapi-seeder").
		SetTransport(otelhttp.NewTransport(http.DefaultTransport))

	return &Seeder{
		client:  client,
		repo:    repo,
		sprites: sprites,
		limit:   cfg.Limit,
		loc:     loc,
	}
}

// Run fetches one page of Pokémon and persists them. It skips entirely when
// the table already has rows, so restarting the process does not duplicate
// records. A transport-level failure aborts with an error; a failure on an
// individual Pokémon is logged and skipped.
func (s *Seeder) Run(ctx context.Context) error {
	start := time.Now()

	existing, err := s.repo.List(ctx, repository.PageQuery{Limit: 1, Offset: 0})
	if err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if len(existing) > 0 {
		s.logJSON(map[string]any{
			"component": "seed",
			"event":     "seed_skip",
			"status":    "success",
			"msg":       "records already present, skipping seed",
		})
		return nil
	}

	var page pageResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&page).
		Get(fmt.Sprintf("/pokemon?limit=%d", s.limit))
	if err != nil {
		return fmt.Errorf("fetch pokemon page: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("fetch pokemon page: unexpected status %d", resp.StatusCode())
	}

	created := 0
	for _, result := range page.Results {
		if err := s.importOne(ctx, result); err != nil {
			s.logJSON(map[string]any{
				"component":     "seed",
				"event":         "seed_pokemon_failed",
				"status":        "error",
				"pokemon":       result.Name,
				"error_message": err.Error(),
			})
			continue
		}
		created++
	}

	s.logJSON(map[string]any{
		"component":   "seed",
		"event":       "seed_success",
		"status":      "success",
		"created":     created,
		"fetched":     len(page.Results),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func (s *Seeder) importOne(ctx context.Context, result pageResult) error {
	var detail detailResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&detail).
		Get(result.URL)
	if err != nil {
		return fmt.Errorf("fetch detail: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("fetch detail: unexpected status %d", resp.StatusCode())
	}
	if detail.Name == "" {
		return fmt.Errorf("fetch detail: empty name")
	}

	if _, err := s.repo.Create(ctx, detail.Name); err != nil {
		return fmt.Errorf("create pokemon: %w", err)
	}

	if s.sprites != nil && detail.Sprites.FrontDefault != "" {
		if err := s.archiveSprite(ctx, detail.Name, detail.Sprites.FrontDefault); err != nil {
			s.logJSON(map[string]any{
				"component":     "seed",
				"event":         "seed_sprite_failed",
				"status":        "error",
				"pokemon":       detail.Name,
				"error_message": err.Error(),
			})
		}
	}

	return nil
}

func (s *Seeder) archiveSprite(ctx context.Context, name, spriteURL string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(spriteURL)
	if err != nil {
		return fmt.Errorf("download sprite: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("download sprite: unexpected status %d", resp.StatusCode())
	}

	body := resp.Body()
	_, err = s.sprites.Put(ctx, storage.SpriteKey(name), bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "image/png",
		Metadata:    map[string]string{"pokemon": name},
	})
	if err != nil {
		return fmt.Errorf("archive sprite: %w", err)
	}
	return nil
}

func (s *Seeder) logJSON(data map[string]any) {
	data["ts"] = time.Now().In(s.loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal seed log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
