package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -source=service.go -destination=provider_mock.go -package=auth
type Provider interface {
	Authenticate(ctx context.Context, creds Credentials) (*Identity, error)
}

type Service struct {
	provider Provider
	issuer   string
	secret   []byte
	ttl      time.Duration
}

func NewService(provider Provider, issuer string, secret []byte, ttl time.Duration) *Service {
	return &Service{
		provider: provider,
		issuer:   issuer,
		secret:   secret,
		ttl:      ttl,
	}
}

// Login forwards credentials to the identity provider and classifies
// its failures. A classified failure comes back as *LoginError with
// the one message the form may show; anything the provider did not
// raise is returned as-is so defects surface instead of hiding behind
// a generic message.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Session, error) {
	ident, err := s.provider.Authenticate(ctx, creds)
	if err != nil {
		var perr *ProviderError
		if !errors.As(err, &perr) {
			return nil, err
		}

		if perr.Kind == FailureInvalidCredentials {
			return nil, &LoginError{Message: "Invalid credentials."}
		}

		return nil, &LoginError{Message: "Something went wrong!"}
	}

	return s.mintSession(ident)
}

func (s *Service) mintSession(ident *Identity) (*Session, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   ident.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("signing session token: %w", err)
	}

	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Verify parses a session token and returns its subject.
func (s *Service) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parsing session token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("session token missing subject")
	}

	return claims.Subject, nil
}
