package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/identity-api/internal/api/metrics"
	"github.com/userhub/identity-api/internal/core/auth"
)

// OwnerOrAdmin allows the request through only when the caller owns the
// target resource (path param holds the owner id) or holds the admin role.
// Must run after Auth: authorization is only evaluated on verified claims.
func OwnerOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			if err := auth.Authorize(claims, c.Param(param)); err != nil {
				metrics.AuthzDecisionsTotal.WithLabelValues("deny").Inc()
				return err
			}
			metrics.AuthzDecisionsTotal.WithLabelValues("allow").Inc()

			return next(c)
		}
	}
}
