package ports

import (
	"context"
	"io"
)

// AvatarStorage stores avatar images keyed by user id. Save replaces any
// previous image for the same user.
type AvatarStorage interface {
	Save(ctx context.Context, userID, contentType string, r io.Reader) error
	// Open returns the image stream and its content type, or
	// domain.ErrAvatarNotFound when the user has no stored avatar.
	Open(ctx context.Context, userID string) (io.ReadCloser, string, error)
}
