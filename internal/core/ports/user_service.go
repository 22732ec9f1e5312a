package ports

import (
	"context"
	"io"

	"github.com/userhub/identity-api/internal/core/domain"
)

// UpdateUserInput is a partial profile update; nil fields are left unchanged.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
}

// UserService exposes profile management over verified identities. All
// returned users are public projections without the credential digest.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// UploadAvatar stores the image and returns the URL recorded on the identity.
	UploadAvatar(ctx context.Context, userID, contentType string, r io.Reader) (string, error)
	// Avatar streams a previously uploaded image with its content type.
	Avatar(ctx context.Context, userID string) (io.ReadCloser, string, error)
}
