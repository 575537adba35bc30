package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bloggable-backend/internal/models"
)

// Context keys for storing user data
const (
	ContextKeyUser    = "user"
	ContextKeySession = "session"
)

// SessionCookieName is the cookie that carries the plain session token.
const SessionCookieName = "session_token"

// RequireAuth resolves the session identity and rejects anonymous requests
// with a redirect to the login page.
func RequireAuth(authSvc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			user, session, err := authSvc.CurrentUser(token)
			if err != nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			// Store user and session in context for handlers
			c.Set(ContextKeyUser, user)
			c.Set(ContextKeySession, session)

			return next(c)
		}
	}
}

// RequireGuest redirects already-authenticated users away from pages that
// only make sense for anonymous visitors (login, register).
func RequireGuest(authSvc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := TokenFromRequest(c); token != "" {
				if _, _, err := authSvc.CurrentUser(token); err == nil {
					return c.Redirect(http.StatusSeeOther, "/dashboard")
				}
			}
			return next(c)
		}
	}
}

// OptionalAuth attempts to resolve an identity but doesn't require one.
// Sets user in context if authenticated, otherwise continues without user.
func OptionalAuth(authSvc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := TokenFromRequest(c); token != "" {
				user, session, err := authSvc.CurrentUser(token)
				if err == nil {
					c.Set(ContextKeyUser, user)
					c.Set(ContextKeySession, session)
				}
			}
			return next(c)
		}
	}
}

// TokenFromRequest extracts the session token from the request cookie.
func TokenFromRequest(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

// GetUserFromContext retrieves the authenticated user from the context
func GetUserFromContext(c echo.Context) *models.User {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}
