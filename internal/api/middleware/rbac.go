package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gatehouse/gatehouse/internal/api/metrics"
	"github.com/gatehouse/gatehouse/internal/core/domain"
)

// RequireAdmin enforces the admin role with an explicit denial body, distinct
// from RequireAuth's redirect. It assumes RequireAuth already ran; with no
// session at all the role is empty and the check fails closed.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxUserRole).(string)
			if role != domain.RoleAdmin {
				metrics.GuardDenialsTotal.WithLabelValues("admin").Inc()
				return c.String(http.StatusForbidden, "Access Denied")
			}
			return next(c)
		}
	}
}
