package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed static/*
var staticFS embed.FS

// registerStatic serves the embedded stylesheet.
func registerStatic(e *echo.Echo) {
	content, err := fs.Sub(staticFS, "static")
	if err != nil {
		return
	}
	e.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", http.FileServer(http.FS(content)))))
}
