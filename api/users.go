package api

import (
	"context"
	"net/http"

	"github.com/bookly/bookly-cli/model"
)

// Admin-only user management. The backend enforces the privilege; these calls
// just surface its errors.

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var list model.List[model.User]
	if err := c.do(ctx, http.MethodGet, "users/", nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, fields map[string]any) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodPatch, itemPath("users", id), nil, fields, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, itemPath("users", id), nil, nil, nil)
}

// SetUserStaff promotes or demotes a user on the admin dashboard.
func (c *Client) SetUserStaff(ctx context.Context, id int, staff bool) (*model.User, error) {
	return c.UpdateUser(ctx, id, map[string]any{"is_staff": staff})
}

// SetUserActive blocks or unblocks a user on the admin dashboard.
func (c *Client) SetUserActive(ctx context.Context, id int, active bool) (*model.User, error) {
	return c.UpdateUser(ctx, id, map[string]any{"is_active": active})
}
