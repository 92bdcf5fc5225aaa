package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// PagesHandler serves the protected confirmation pages. The registration and
// login forms themselves are static files mounted by the router.
type PagesHandler struct {
	log zerolog.Logger
}

func NewPagesHandler(log zerolog.Logger) *PagesHandler {
	return &PagesHandler{log: log}
}

// Dashboard confirms an authenticated session.
func (h *PagesHandler) Dashboard(c echo.Context) error {
	userID, role := ctxIdentity(c)
	h.log.Debug().Str("user_id", userID).Str("role", role).Msg("dashboard viewed")

	return c.String(http.StatusOK, "Welcome to your dashboard")
}

// Admin confirms an admin session; the admin guard runs before this handler.
func (h *PagesHandler) Admin(c echo.Context) error {
	userID, _ := ctxIdentity(c)
	h.log.Debug().Str("user_id", userID).Msg("admin panel viewed")

	return c.String(http.StatusOK, "Admin Panel")
}
