package services

import (
	"context"
	"net/http"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
	"github.com/adrianAraqueG/gaston/internal/core"
)

type AuthService struct {
	client *apiclient.Client
}

// Login posts credentials; the session cookie arrives with the response.
func (s *AuthService) Login(ctx context.Context, req core.LoginRequest) (*core.LoginResponse, error) {
	var resp core.LoginResponse
	if err := s.client.Post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser fetches /auth/me. With quiet set a 401 is returned without
// redirecting, which is how the boot check probes for a session.
func (s *AuthService) CurrentUser(ctx context.Context, quiet bool) (*core.User, error) {
	var opts []apiclient.RequestOption
	if quiet {
		opts = append(opts, apiclient.SkipUnauthorizedRedirect())
	}
	var user core.User
	if err := s.client.Get(ctx, "/auth/me", &user, opts...); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, req core.ChangePasswordRequest) error {
	return s.client.Post(ctx, "/auth/change-password", req, nil)
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.Do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}
