package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mtendere/backoffice/internal/core/domain"
)

// ctxActor extracts the identity injected by the Auth middleware. A missing
// user_id means the middleware did not run (or a test forgot to set it) —
// reject with 401 rather than attributing the write to nobody.
func ctxActor(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get("role").(domain.Role)
	return userID, role, nil
}
