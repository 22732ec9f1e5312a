package ports

import (
	"context"

	"github.com/userhub/identity-api/internal/core/domain"
)

// UserRepository defines the persistence boundary for identities. Uniqueness
// of (email, username) is enforced by the store; violations surface as
// domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByEmailOrUsername returns any identity matching either value,
	// or domain.ErrUserNotFound when none exists.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// Update applies the non-nil slots of upd and returns the updated identity.
	Update(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
