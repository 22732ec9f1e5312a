package service

import (
	"context"
	"io"
	"net/mail"
	"unicode/utf8"

	"github.com/userhub/identity-api/internal/core/auth"
	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/ports"
)

// UserService implements profile management. Reads of single profiles go
// through the cache; every mutation invalidates the cached entry.
type UserService struct {
	repo    ports.UserRepository
	cache   ports.ProfileCache
	avatars ports.AvatarStorage
	hasher  auth.Hasher
}

func NewUserService(repo ports.UserRepository, cache ports.ProfileCache, avatars ports.AvatarStorage, hasher auth.Hasher) *UserService {
	return &UserService{repo: repo, cache: cache, avatars: avatars, hasher: hasher}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(users))
	for i := range users {
		out = append(out, *users[i].Public())
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	// Cache errors count as misses; a Redis outage degrades to store reads.
	if cached, err := s.cache.Get(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	_ = s.cache.Set(ctx, public)
	return public, nil
}

// Update applies a partial profile update. Unlike registration, the password
// here is held only to a minimum length, not the full complexity policy.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	var upd domain.UserUpdate

	if in.Username != nil && *in.Username != "" {
		upd.Username = in.Username
	}
	if in.Email != nil && *in.Email != "" {
		if _, err := mail.ParseAddress(*in.Email); err != nil {
			return nil, domain.ErrInvalidEmail
		}
		upd.Email = in.Email
	}
	if in.Password != nil && *in.Password != "" {
		if utf8.RuneCountInString(*in.Password) < auth.MinPasswordLength {
			return nil, domain.ErrPasswordTooShort
		}
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		upd.PasswordHash = &hash
	}

	if upd.IsZero() {
		return nil, domain.ErrNoFields
	}

	user, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, id)
	return user.Public(), nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, id)
	return nil
}

// UploadAvatar stores the image and records its serving URL on the identity.
func (s *UserService) UploadAvatar(ctx context.Context, userID, contentType string, r io.Reader) (string, error) {
	if err := s.avatars.Save(ctx, userID, contentType, r); err != nil {
		return "", err
	}

	url := "/users/" + userID + "/avatar"
	if _, err := s.repo.Update(ctx, userID, domain.UserUpdate{AvatarURL: &url}); err != nil {
		return "", err
	}
	_ = s.cache.Invalidate(ctx, userID)
	return url, nil
}

func (s *UserService) Avatar(ctx context.Context, userID string) (io.ReadCloser, string, error) {
	return s.avatars.Open(ctx, userID)
}
