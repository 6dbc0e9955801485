package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mtendere/backoffice/internal/core/domain"
)

// RequireRole gates a route group behind a minimum role on the ladder
// (user < moderator < admin < super_admin). Must run after Auth: a missing
// or unknown role never passes. An authenticated caller below the minimum
// gets 403, not 401.
func RequireRole(min domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			if !role.AtLeast(min) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
