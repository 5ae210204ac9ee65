package user

import (
	"context"
	"fmt"
	"time"

	"github.com/fhuszti/images-ms-go/internal/port"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

type authenticatorSrv struct {
	repo     port.UserRepository
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

// compile-time check: *authenticatorSrv must satisfy port.UserAuthenticator
var _ port.UserAuthenticator = (*authenticatorSrv)(nil)

func NewAuthenticator(repo port.UserRepository, secret string, tokenTTL time.Duration) port.UserAuthenticator {
	return &authenticatorSrv{repo: repo, secret: []byte(secret), tokenTTL: tokenTTL, now: time.Now}
}

func (s *authenticatorSrv) Login(ctx context.Context, in port.LoginInput) (port.LoginOutput, error) {
	u, err := s.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		return port.LoginOutput{}, fmt.Errorf("fetch user %q: %w", in.Username, err)
	}
	if u == nil {
		return port.LoginOutput{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return port.LoginOutput{}, ErrInvalidCredentials
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   u.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return port.LoginOutput{}, fmt.Errorf("sign access token: %w", err)
	}

	return port.LoginOutput{AccessToken: token, TokenType: "bearer"}, nil
}
