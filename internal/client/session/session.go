// Package session holds the authentication state of the client: one
// opaque bearer token, persisted in the local settings store under a
// fixed key. The session is an injected object, never a process-wide
// singleton.
package session

import (
	"context"
	"fmt"

	"github.com/example/covermate/internal/client/repositories/settings"
)

// tokenKey is the well-known settings key the bearer token lives under.
const tokenKey = "auth_token"

// Store exposes the single-slot session token. At most one token is
// valid at a time; SetToken replaces it wholesale.
//
// IsAuthenticated checks presence only. Token validity is the server's
// call: a stale token simply earns a 401 on the next request.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
}

type settingsStore struct {
	repo settings.Repository
}

// NewStore creates a Store backed by the given settings repository.
func NewStore(repo settings.Repository) Store {
	return &settingsStore{repo: repo}
}

// Token returns the persisted bearer token, or "" when logged out.
func (s *settingsStore) Token(ctx context.Context) (string, error) {
	value, err := s.repo.Get(ctx, tokenKey)
	if err != nil {
		return "", fmt.Errorf("failed to read session token: %w", err)
	}
	return string(value), nil
}

func (s *settingsStore) SetToken(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}
	return nil
}

func (s *settingsStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}

func (s *settingsStore) IsAuthenticated(ctx context.Context) bool {
	token, err := s.Token(ctx)
	return err == nil && token != ""
}
