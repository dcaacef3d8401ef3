// Package services contains the domain operations of the client. Each
// operation shapes a request, delegates the round trip to the transport
// client, and returns a typed value or the typed failure unchanged.
package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/example/covermate/internal/client/api"
	"github.com/example/covermate/internal/client/models"
	"github.com/example/covermate/internal/client/session"
	"github.com/example/covermate/internal/logging"
)

// AuthService defines the account operations.
//
// Contract:
//   - Login: authenticate and persist the session token; returns the user
//     embedded in the server response.
//   - Register: create an account; does not authenticate afterwards.
//   - Logout: drop the session token; purely local, cannot fail.
//   - UpdateProfile: push the full user object and return the server's
//     canonical copy.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, name, email, password string) (string, error)
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, user *models.User) (*models.User, error)
}

var emailValidator = validator.New()

// isValidEmail checks email syntax locally, before any network call.
func isValidEmail(email string) bool {
	return emailValidator.Var(email, "required,email") == nil
}

type authService struct {
	api     api.Doer
	session session.Store
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given transport
// client and session store.
func NewAuthService(apiClient api.Doer, store session.Store, log logging.Logger) AuthService {
	return &authService{api: apiClient, session: store, log: log}
}

// Login rejects empty credentials locally, then authenticates against
// the server. On success the bearer token is persisted and the embedded
// user is returned.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, api.ErrEmptyFields
	}

	var resp models.AuthResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := s.api.Send(ctx, http.MethodPost, "auth/login", req, &resp, false); err != nil {
		return nil, err
	}

	if err := s.session.SetToken(ctx, resp.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to persist session token: %w", err)
	}

	s.log.Info(ctx, "logged in", "user_id", resp.User.ID)
	return &resp.User, nil
}

// Register rejects empty fields and malformed email addresses locally,
// then creates the account. The returned string is the server's
// confirmation message; the caller stays unauthenticated.
func (s *authService) Register(ctx context.Context, name, email, password string) (string, error) {
	if name == "" || email == "" || password == "" {
		return "", api.ErrEmptyFields
	}
	if !isValidEmail(email) {
		return "", api.ErrInvalidEmail
	}

	var resp models.RegisterResponse
	req := models.RegisterRequest{Name: name, Email: email, Password: password}
	if err := s.api.Send(ctx, http.MethodPost, "auth/register", req, &resp, false); err != nil {
		return "", err
	}

	return resp.Message, nil
}

// Logout clears the persisted session token. Storage errors are logged
// and swallowed: from the caller's point of view logout always succeeds,
// and the in-memory state is dropped regardless.
func (s *authService) Logout(ctx context.Context) {
	if err := s.session.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear session token", "error", err)
	}
}

// UpdateProfile sends the full user object and returns the canonical
// copy the server echoes back.
func (s *authService) UpdateProfile(ctx context.Context, user *models.User) (*models.User, error) {
	var updated models.User
	if err := s.api.Send(ctx, http.MethodPut, "users/update_info", user, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}
