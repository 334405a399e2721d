package service

import (
	"context"
	"errors"
	"time"

	"github.com/strivehq/goaltrack/internal/goaltrack/store"
	"github.com/strivehq/goaltrack/pkg/cryptox"
	"github.com/strivehq/goaltrack/pkg/jwtx"
	"github.com/strivehq/goaltrack/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidInput       = errors.New("invalid_input")
)

// TokenService authenticates credentials and issues signed bearer tokens.
type TokenService struct {
	Signer    jwtx.Signer
	Store     store.Store
	Issuer    string
	AccessTTL time.Duration
}

// Login verifies the username/password pair and returns a signed access
// token bound to the user. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (s *TokenService) Login(ctx context.Context, username, password string) (string, error) {
	l := slogx.FromContext(ctx)

	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login password verification failed", "username", username)
		return "", ErrInvalidCredentials
	}

	claims := jwtx.NewAccessClaims(
		user.ID,
		user.Username,
		string(user.Privilege),
		user.Privilege.Scopes(),
		s.Issuer,
		s.AccessTTL,
		time.Now().UTC(),
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", err
	}

	l.Info("token issued", "user_id", user.ID)
	return token, nil
}
