package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/userhub/identity-api/internal/core/auth"
	"github.com/userhub/identity-api/internal/core/domain"
)

func ownerContext(e *echo.Echo, claims *auth.Claims, targetID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPut, "/users/"+targetID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/users/:id")
	c.SetParamNames("id")
	c.SetParamValues(targetID)
	if claims != nil {
		c.Set("claims", *claims)
	}
	return c, rec
}

func TestOwnerOrAdmin(t *testing.T) {
	cases := []struct {
		name    string
		claims  auth.Claims
		target  string
		allowed bool
	}{
		{"owner with user role", auth.Claims{UserID: "u1", Role: domain.RoleUser}, "u1", true},
		{"non-owner with user role", auth.Claims{UserID: "u1", Role: domain.RoleUser}, "u2", false},
		{"owner with admin role", auth.Claims{UserID: "u1", Role: domain.RoleAdmin}, "u1", true},
		{"non-owner with admin role", auth.Claims{UserID: "u1", Role: domain.RoleAdmin}, "u2", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			c, rec := ownerContext(e, &tc.claims, tc.target)

			called := false
			handler := OwnerOrAdmin("id")(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})

			err := handler(c)
			if tc.allowed {
				if err != nil {
					t.Fatalf("expected allow, got %v", err)
				}
				if !called || rec.Code != http.StatusOK {
					t.Fatalf("next not reached: called=%v code=%d", called, rec.Code)
				}
				return
			}

			if called {
				t.Fatalf("next reached on deny")
			}
			if err == nil {
				t.Fatalf("expected error on deny")
			}
			if err != domain.ErrForbidden {
				t.Fatalf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestOwnerOrAdmin_MissingClaims(t *testing.T) {
	e := echo.New()
	c, rec := ownerContext(e, nil, "u1")

	handler := OwnerOrAdmin("id")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
