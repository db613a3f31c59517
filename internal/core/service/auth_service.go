package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/opsdesk/backoffice/internal/core/domain"
	"github.com/opsdesk/backoffice/internal/core/ports"
	"github.com/opsdesk/backoffice/internal/core/token"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.AuthRepository
	codec  *token.Codec
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, codec *token.Codec, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" || role == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.KnownRole(role) {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and returns a signed session token. A
// missing user and a wrong password are deliberately indistinguishable to
// the caller: both come back as ErrInvalidCredentials so the response never
// reveals whether the username exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := s.codec.Issue(token.Identity{ID: user.ID, Role: user.Role, Username: user.Username})
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("login succeeded")
	return tok, user, nil
}
