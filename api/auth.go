package api

import (
	"context"
	"net/http"

	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/validator"
	"github.com/pkg/errors"
)

// Login exchanges credentials for a token pair. The caller stores the pair in
// the session.
func (c *Client) Login(ctx context.Context, username, password string) (*model.TokenPair, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}
	body := map[string]string{"username": username, "password": password}

	var tokens model.TokenPair
	if err := c.do(ctx, http.MethodPost, "token/", nil, body, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// RefreshToken trades the refresh token for a new access token.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (*model.TokenPair, error) {
	body := map[string]string{"refresh": refresh}

	var tokens model.TokenPair
	if err := c.do(ctx, http.MethodPost, "token/refresh/", nil, body, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Register creates an account. The request goes out without an auth header.
func (c *Client) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if err := validator.ValidateRegisterRequest(req); err != nil {
		return nil, err
	}

	var user model.User
	if err := c.do(ctx, http.MethodPost, "users/", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Me fetches the current profile and caches it in the session.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "users/me/", nil, nil, &user); err != nil {
		return nil, err
	}
	if err := c.session.SetCachedUser(&user); err != nil {
		return nil, errors.Wrap(err, "unable to cache profile")
	}
	return &user, nil
}

// UpdateProfile creates the extended profile when it has no id yet and
// patches it otherwise.
func (c *Client) UpdateProfile(ctx context.Context, req *model.ProfileUpdateRequest) (*model.Profile, error) {
	var profile model.Profile
	if req.ID == 0 {
		if err := c.do(ctx, http.MethodPost, "profiles/", nil, req, &profile); err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err := c.do(ctx, http.MethodPatch, itemPath("profiles", req.ID), nil, req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
