package service

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"time"

	"github.com/userhub/identity-api/internal/core/domain"
)

// stubUserRepo is an in-memory ports.UserRepository keyed by id.
type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	created := cloneUser(user)
	created.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmailOrUsername(_ context.Context, email, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Username != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Username == *upd.Username {
				return nil, domain.ErrUserExists
			}
		}
		u.Username = *upd.Username
	}
	if upd.Email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email == *upd.Email {
				return nil, domain.ErrUserExists
			}
		}
		u.Email = *upd.Email
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	if upd.AvatarURL != nil {
		u.AvatarURL = *upd.AvatarURL
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// stubCache records cache traffic; Get always misses unless primed.
type stubCache struct {
	entries     map[string]*domain.User
	sets        int
	invalidates []string
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*domain.User)}
}

func (c *stubCache) Get(_ context.Context, id string) (*domain.User, error) {
	if u, ok := c.entries[id]; ok {
		return cloneUser(u), nil
	}
	return nil, nil
}

func (c *stubCache) Set(_ context.Context, user *domain.User) error {
	c.entries[user.ID] = cloneUser(user)
	c.sets++
	return nil
}

func (c *stubCache) Invalidate(_ context.Context, id string) error {
	delete(c.entries, id)
	c.invalidates = append(c.invalidates, id)
	return nil
}

// stubAvatars stores avatar bytes in memory.
type stubAvatars struct {
	files map[string][]byte
	types map[string]string
}

func newStubAvatars() *stubAvatars {
	return &stubAvatars{files: make(map[string][]byte), types: make(map[string]string)}
}

func (s *stubAvatars) Save(_ context.Context, userID, contentType string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.files[userID] = data
	s.types[userID] = contentType
	return nil
}

func (s *stubAvatars) Open(_ context.Context, userID string) (io.ReadCloser, string, error) {
	data, ok := s.files[userID]
	if !ok {
		return nil, "", domain.ErrAvatarNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), s.types[userID], nil
}
