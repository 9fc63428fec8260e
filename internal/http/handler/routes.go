package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"pokeapi/internal/service"
	"pokeapi/internal/storage"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// The sprite store may be nil when the archive is disabled.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.PokemonService, store storage.Storage) {
	// Serve the static OpenAPI spec and a Swagger UI page
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Readiness: checks DB connectivity only
	app.Get("/health", HealthCheck(db))

	// Simple liveness probe
	app.Get("/healthz", LivenessProbe())

	app.Post("/pokemons", CreatePokemon(svc))
	app.Get("/pokemons", ListPokemons(svc))

	// /pokemons/search must be registered before /pokemons/:id
	app.Get("/pokemons/search", SearchPokemon(svc))
	app.Get("/pokemons/:id", GetPokemon(svc))
	app.Get("/pokemons/:id/sprite", GetPokemonSprite(svc, store))
}
