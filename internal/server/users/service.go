package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authvault/internal/common"
	"github.com/dmitrijs2005/authvault/internal/server/auth"
	"github.com/dmitrijs2005/authvault/internal/server/config"
	"github.com/dmitrijs2005/authvault/internal/server/models"
	"github.com/dmitrijs2005/authvault/internal/server/passwords"
)

// Service orchestrates registration and login and mints the bearer token
// returned to the caller. It never exposes the plaintext password or the
// stored hash.
type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates a new account and returns a token bound to its ID.
//
// The GetByEmail pre-check only produces a fast duplicate error; two
// concurrent registrations can both pass it, so the repository's unique
// constraint is the enforcement point and its rejection maps to the same
// common.ErrDuplicateEmail.
func (s *Service) Register(ctx context.Context, name, email, password string) (string, error) {
	email = NormalizeEmail(email)

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return "", common.ErrDuplicateEmail
	}
	if !errors.Is(err, common.ErrNotFound) {
		return "", fmt.Errorf("error checking email: %w", err)
	}

	hash, err := passwords.Hash(ctx, password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return "", common.ErrDuplicateEmail
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return token, nil
}

// Authenticate verifies the credentials for email and returns a token bound
// to the matching account. Unknown email and wrong password collapse into the
// same common.ErrInvalidCredentials so a caller cannot probe which emails are
// registered; on a miss one verification is still burned against a dummy hash
// to keep the timing profile flat.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, error) {
	email = NormalizeEmail(email)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			passwords.Verify(password, passwords.DummyHash())
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	if !passwords.Verify(password, user.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return token, nil
}

// GetByID returns the account a verified token resolves to. Used by the
// authenticated part of the API, not by registration or login.
func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}
	return user, nil
}
