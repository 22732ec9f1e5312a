package service

import (
	"context"
	"errors"
	"time"

	"github.com/userhub/identity-api/internal/core/auth"
	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/ports"
)

// AuthService implements registration and login on top of the credential
// hasher, token manager, and the external user store.
type AuthService struct {
	repo   ports.UserRepository
	hasher auth.Hasher
	tokens *auth.TokenManager
}

func NewAuthService(repo ports.UserRepository, hasher auth.Hasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates a new identity. The password must satisfy the full
// complexity policy, and both email and username must be unused. The returned
// user is a public projection; no token is issued here.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if !auth.ValidPassword(in.Password) {
		return nil, domain.ErrWeakPassword
	}

	existing, err := s.repo.FindByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	return created.Public(), nil
}

// Login verifies the credentials and returns a signed bearer token embedding
// the identity's id, email, and role. An unknown email reports
// domain.ErrUserNotFound, a wrong password domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user)
}
