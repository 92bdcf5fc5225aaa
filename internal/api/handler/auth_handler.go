package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gatehouse/gatehouse/internal/api/cookies"
	"github.com/gatehouse/gatehouse/internal/api/metrics"
	"github.com/gatehouse/gatehouse/internal/core/domain"
	"github.com/gatehouse/gatehouse/internal/core/ports"
)

// AuthHandler wires the registration, login and logout forms to the auth
// service. All outcomes are redirects; errors that escape here fall through
// to the central error handler.
type AuthHandler struct {
	auth       ports.AuthService
	secret     string
	sessionTTL time.Duration
}

func NewAuthHandler(auth ports.AuthService, secret string, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, secret: secret, sessionTTL: sessionTTL}
}

type credentialsForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Register creates an account and sends the client to the login form.
// A missing field propagates as a request-level failure; the flow has no
// friendly validation response and that gap is preserved.
func (h *AuthHandler) Register(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	if err := c.Validate(&form); err != nil {
		return err
	}

	if _, err := h.auth.Register(c.Request().Context(), form.Username, form.Password); err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.Redirect(http.StatusSeeOther, "/login")
}

// Login verifies the submitted credentials. Success sets the signed session
// cookie and lands on the dashboard; bad credentials bounce back to the login
// form with no detail about what was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	session, err := h.auth.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(cookies.New(session.Token, h.secret, h.sessionTTL))
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout destroys the server-side session and clears the cookie. If the
// store refuses the destroy, the client is sent back to the dashboard and
// keeps its cookie; only a confirmed destroy redirects to login.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(cookies.Name)
	if err != nil {
		// No session to destroy; behave as a completed logout.
		c.SetCookie(cookies.Cleared())
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	token, err := cookies.Decode(cookie.Value, h.secret)
	if err != nil {
		c.SetCookie(cookies.Cleared())
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	metrics.SessionsDestroyedTotal.Inc()
	c.SetCookie(cookies.Cleared())
	return c.Redirect(http.StatusSeeOther, "/login")
}
