// Package web serves the embedded single-page dashboard. The UI is fully
// client-rendered; the server only hands out static assets and the REST API.
package web

import (
	"embed"

	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFS embed.FS

// Register mounts the dashboard at the site root.
func Register(e *echo.Echo) {
	e.StaticFS("/", echo.MustSubFS(staticFS, "static"))
}
