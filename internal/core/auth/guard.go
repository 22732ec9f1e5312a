package auth

import "github.com/userhub/identity-api/internal/core/domain"

// Authorize decides whether the caller may act on the resource owned by
// ownerID: allowed when the caller is the owner or holds the admin role.
// Must only be called with claims produced by a successful Verify.
func Authorize(claims Claims, ownerID string) error {
	if claims.UserID == ownerID || claims.Role == domain.RoleAdmin {
		return nil
	}
	return domain.ErrForbidden
}
