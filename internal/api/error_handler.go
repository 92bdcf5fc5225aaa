package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that logs unexpected
// errors without leaking details to the client.
//
// Credential failures never reach this handler: the auth handler absorbs
// them into redirects before they can propagate. What arrives here is either
// an echo.HTTPError (bind failures, router 404s) or a genuine server-side
// failure, including missing registration fields, which the legacy flow
// surfaced as a generic error rather than a 400.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.String(he.Code, fmt.Sprintf("%v", he.Message))
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		_ = c.String(http.StatusInternalServerError, "internal server error")
	}
}
