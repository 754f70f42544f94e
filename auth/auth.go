// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/planet-vote/models"
)

var (
	ErrValidation         = errors.New("username and password are required")
	ErrDuplicateAccount   = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// HashPassword computes a salted bcrypt hash of the password. bcrypt
// embeds a per-user random salt, so equal passwords never share a hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword verifies password against a stored hash. The comparison
// inside bcrypt is constant-time.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type Service struct {
	users *Store
}

func NewService(users *Store) *Service {
	return &Service{users: users}
}

// Register creates a new account. A username collision is rejected
// regardless of the submitted password; registering does not log the
// user in.
func (s *Service) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrValidation
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	// The unique index on username is the real guard; Create maps a
	// conflicting concurrent insert to ErrDuplicateAccount as well.
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, ErrDuplicateAccount
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	return s.users.Create(ctx, username, hash)
}

// Login verifies the credentials and returns the account. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
