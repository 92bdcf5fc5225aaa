package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gatehouse/gatehouse/internal/api/middleware"
)

// ctxIdentity extracts the user identity injected by the session middleware.
// Both values are empty for anonymous requests.
func ctxIdentity(c echo.Context) (userID, role string) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	role, _ = c.Get(middleware.CtxUserRole).(string)
	return userID, role
}
