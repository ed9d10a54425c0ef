package handler

import (
	"github.com/gofiber/fiber/v2"

	"filebox/internal/auth"
	"filebox/internal/config"
	"filebox/internal/http/middleware"
	"filebox/internal/service"
	"filebox/internal/storage"
)

// RouteDeps carries the collaborators the routes are wired with.
type RouteDeps struct {
	Files    service.FileService
	Store    storage.Store
	Sessions *auth.Manager
	Config   *config.AppConfig
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, deps RouteDeps) {
	// Serve OpenAPI spec and Swagger UI
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

	app.Get("/health", HealthCheck(deps.Store))
	app.Get("/healthz", LivenessProbe())
	app.Get("/debug", Debug(deps.Config.Server.DebugMode))

	app.Post("/login", middleware.RateLimit(deps.Config.Auth.LoginRatePerMinute), Login(deps.Sessions))
	app.Post("/logout", Logout())
	app.Get("/auth/status", AuthStatus(deps.Sessions))

	requireAuth := middleware.RequireAuth(deps.Sessions)

	app.Post("/upload", requireAuth, UploadFiles(deps.Files))
	app.Get("/files", requireAuth, ListFiles(deps.Files))
	app.Get("/storage", requireAuth, StorageInfo(deps.Files))
	app.Post("/delete/:id", requireAuth, DeleteFile(deps.Files))

	app.Get("/preview/:id", PreviewFile(deps.Files))
	app.Get("/download/:id", DownloadFile(deps.Store))
}
