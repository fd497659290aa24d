package gedo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

// AuthService covers login, logout and the password lifecycle. Login and
// Logout are the only façade operations that write the session store; the
// anonymous→authenticated transition happens nowhere else.
type AuthService struct {
	t *transport.Client
}

// Login authenticates with email and password. On success the returned
// token is stored, so every call issued afterwards carries it. A rejected
// login never touches the store.
func (s *AuthService) Login(ctx context.Context, email, senha string) (LoginResult, error) {
	result, err := fetch[LoginResult](ctx, s.t, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/auth/login",
		Body:   map[string]string{"email": email, "password": senha},
	})
	if err != nil {
		return LoginResult{}, err
	}
	if err := s.t.Store().SetToken(result.Token); err != nil {
		return LoginResult{}, fmt.Errorf("persist session: %w", err)
	}
	return result, nil
}

// Logout ends the session server-side and clears the local token. The
// local session is cleared even when the HTTP call fails; a dead backend
// must not pin a user to a stale session.
func (s *AuthService) Logout(ctx context.Context) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/auth/logout",
	})
	if _, clearErr := s.t.Store().Clear(); clearErr != nil {
		return clearErr
	}
	return err
}

// Me returns the authenticated user's profile.
func (s *AuthService) Me(ctx context.Context) (User, error) {
	type mePayload struct {
		User User `json:"user"`
	}
	payload, err := fetch[mePayload](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/auth/me",
	})
	return payload.User, err
}

// ChangePassword replaces the current password.
func (s *AuthService) ChangePassword(ctx context.Context, atual, nova string) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/auth/change-password",
		Body: map[string]string{
			"current_password": atual,
			"new_password":     nova,
		},
	})
	return err
}

// PasswordStatus reports whether the user must change the password.
func (s *AuthService) PasswordStatus(ctx context.Context) (PasswordStatus, error) {
	type payload struct {
		PasswordStatus PasswordStatus `json:"password_status"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/auth/password-status",
	})
	return p.PasswordStatus, err
}

// ForgotPassword requests a reset link for email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/forgot-password",
		Body:   map[string]string{"email": email},
	})
	return err
}

// ValidateResetToken checks a reset token before showing the reset form.
func (s *AuthService) ValidateResetToken(ctx context.Context, token string) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/validate-reset-token/" + token,
	})
	return err
}

// ResetPassword consumes a reset token and sets a new password.
func (s *AuthService) ResetPassword(ctx context.Context, token, senha string) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/reset-password",
		Body:   map[string]string{"token": token, "password": senha},
	})
	return err
}
