package client

import (
	"context"
	"net/http"

	"github.com/medicore/hospital-api/internal/model"
)

func (c *Client) Signup(ctx context.Context, email, password, name string) (*model.SessionUser, error) {
	user, err := do[model.SessionUser](ctx, c, http.MethodPost, "/auth/signup", model.SignupRequest{
		Email:    email,
		Password: password,
		Name:     name,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a session. The caller keeps using the
// returned client for admin operations.
func (c *Client) Login(ctx context.Context, email, password string) (*Client, *model.LoginResult, error) {
	result, err := do[model.LoginResult](ctx, c, http.MethodPost, "/auth/login", model.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, nil, err
	}
	return c.WithToken(result.AccessToken), &result, nil
}

// SessionCheck re-validates the current session token.
func (c *Client) SessionCheck(ctx context.Context) (*model.SessionUser, error) {
	user, err := do[model.SessionUser](ctx, c, http.MethodGet, "/auth/session", nil)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := do[struct{}](ctx, c, http.MethodPost, "/auth/logout", nil)
	return err
}
