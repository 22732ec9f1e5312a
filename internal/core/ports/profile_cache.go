package ports

import (
	"context"

	"github.com/userhub/identity-api/internal/core/domain"
)

// ProfileCache is a read-through cache of public user projections.
// Get returns (nil, nil) on a miss.
type ProfileCache interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	Invalidate(ctx context.Context, id string) error
}
