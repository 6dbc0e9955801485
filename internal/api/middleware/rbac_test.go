package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mtendere/backoffice/internal/core/domain"
)

func TestRequireRole_Ladder(t *testing.T) {
	tests := []struct {
		role    domain.Role
		min     domain.Role
		allowed bool
	}{
		{domain.RoleAdmin, domain.RoleAdmin, true},
		{domain.RoleSuperAdmin, domain.RoleAdmin, true},
		{domain.RoleModerator, domain.RoleAdmin, false},
		{domain.RoleUser, domain.RoleAdmin, false},
		{domain.RoleUser, domain.RoleUser, true},
		{domain.Role("owner"), domain.RoleUser, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.role)+"_vs_"+string(tc.min), func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set("role", tc.role)

			called := false
			handler := RequireRole(tc.min)(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})

			err := handler(c)
			if tc.allowed {
				if err != nil || !called {
					t.Fatalf("expected pass, got err=%v called=%v", err, called)
				}
				return
			}
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %v", err)
			}
			if called {
				t.Fatalf("next called despite insufficient role")
			}
		})
	}
}

func TestRequireRole_MissingRole(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}
