package ports

import (
	"context"

	"github.com/userhub/identity-api/internal/core/domain"
)

// RegisterInput carries the fields required to create an identity.
// Role is optional and defaults to "user".
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// AuthService handles registration and login. Registration never issues a
// token; login returns only the signed token string.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}
