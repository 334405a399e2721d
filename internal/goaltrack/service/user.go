package service

import (
	"context"
	"errors"
	"strings"

	"github.com/strivehq/goaltrack/internal/goaltrack/domain"
	"github.com/strivehq/goaltrack/internal/goaltrack/store"
	"github.com/strivehq/goaltrack/pkg/cryptox"
	"github.com/strivehq/goaltrack/pkg/idx"
	"github.com/strivehq/goaltrack/pkg/slogx"
)

// ErrAccountExists reports a registration against a taken username or email.
var ErrAccountExists = errors.New("account_exists")

// UserService handles account registration and password changes.
type UserService struct {
	Store store.Store
}

// Register creates a new account with the default Read privilege. The
// password is stored as an argon2id hash, never raw.
func (s *UserService) Register(ctx context.Context, username, password, email string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || password == "" || email == "" {
		return domain.User{}, ErrInvalidInput
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Privilege:    domain.PrivilegeRead,
	}

	// The unique indexes on username and email make the existence check and
	// the insert a single atomic step.
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrAccountExists
		}
		return domain.User{}, err
	}

	l.Info("user registered", "user_id", user.ID, "username", username)
	return user, nil
}

// ChangePassword re-authenticates with the current password before storing a
// new hash. Failures are reported as invalid credentials regardless of cause.
func (s *UserService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	l := slogx.FromContext(ctx)

	if username == "" || currentPassword == "" || newPassword == "" {
		return ErrInvalidInput
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if err := cryptox.VerifyPassword(currentPassword, user.PasswordHash); err != nil {
		l.Info("change-password verification failed", "username", username)
		return ErrInvalidCredentials
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return err
	}

	l.Info("password changed", "user_id", user.ID)
	return nil
}
