// Package auth verifies roster credentials and issues session tokens.
package auth

import (
	"context"
	"time"

	"github.com/MyelinBots/stillalive-go/internal/db/repositories/user_profile"
	"github.com/MyelinBots/stillalive-go/internal/faults"
)

type Authenticator interface {
	// Verify reports whether password matches the user's stored hash.
	// Unknown users and users without a password never verify.
	Verify(ctx context.Context, username, password string) (bool, error)
	// Login verifies the credentials and returns a signed token.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}

type AuthenticatorImpl struct {
	repo   user_profile.UserProfileRepository
	tokens *Tokens
}

func NewAuthenticator(repo user_profile.UserProfileRepository, tokens *Tokens) Authenticator {
	return &AuthenticatorImpl{repo: repo, tokens: tokens}
}

func (a *AuthenticatorImpl) Verify(ctx context.Context, username, password string) (bool, error) {
	u, err := a.repo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if !u.HasPassword() {
		return false, nil
	}

	if err := CheckPasswordHash(password, u.PasswordHash); err != nil {
		if faults.IsAuth(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (a *AuthenticatorImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	ok, err := a.Verify(ctx, username, password)
	if err != nil {
		return "", time.Time{}, err
	}
	if !ok {
		return "", time.Time{}, faults.Auth("invalid credentials")
	}
	return a.tokens.Issue(username)
}
