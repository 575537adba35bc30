package web

import (
	"github.com/labstack/echo/v4"

	"bloggable-backend/internal/auth"
)

// RegisterRoutes sets up all page routes
func RegisterRoutes(e *echo.Echo, h *Handlers, authSvc *auth.Service) {
	registerStatic(e)

	// Public pages; identity is resolved when present so the navigation can
	// reflect it, but nothing requires it.
	public := e.Group("", auth.OptionalAuth(authSvc))
	public.GET("/", h.index)
	public.GET("/post/:id", h.viewPost)
	public.POST("/post/:id", h.viewPost)

	// Anonymous-only pages
	guest := e.Group("", auth.RequireGuest(authSvc))
	guest.GET("/login", h.login)
	guest.POST("/login", h.login)
	guest.GET("/register", h.register)
	guest.POST("/register", h.register)

	e.GET("/logout", h.logout)

	// Protected pages
	protected := e.Group("", auth.RequireAuth(authSvc))
	protected.GET("/dashboard", h.dashboard)
	protected.GET("/create", h.createPost)
	protected.POST("/create", h.createPost)
	protected.GET("/post/:id/edit", h.editPost)
	protected.POST("/post/:id/edit", h.editPost)
	protected.GET("/post/:id/delete", h.deletePost)
	protected.POST("/post/:id/delete", h.deletePost)
}
