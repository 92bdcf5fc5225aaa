package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gatehouse/gatehouse/internal/api/cookies"
	"github.com/gatehouse/gatehouse/internal/api/metrics"
	"github.com/gatehouse/gatehouse/internal/core/ports"
)

// Context keys populated by LoadSession.
const (
	CtxUserID       = "user_id"
	CtxUserRole     = "user_role"
	CtxSessionToken = "session_token"
)

// LoadSession resolves the signed session cookie against the session store
// and injects the user identity into the request context. A missing, forged
// or expired session leaves the context empty; it never fails the request.
func LoadSession(sessions ports.SessionStore, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookies.Name)
			if err != nil {
				return next(c)
			}

			token, err := cookies.Decode(cookie.Value, secret)
			if err != nil {
				return next(c)
			}

			session, err := sessions.Find(c.Request().Context(), token)
			if err != nil {
				return next(c)
			}

			c.Set(CtxUserID, session.UserID)
			c.Set(CtxUserRole, session.UserRole)
			c.Set(CtxSessionToken, session.Token)

			return next(c)
		}
	}
}

// RequireAuth short-circuits anonymous requests with a redirect to the login
// page; authenticated requests pass through unchanged.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(CtxUserID).(string)
			if userID == "" {
				metrics.GuardDenialsTotal.WithLabelValues("auth").Inc()
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}
