package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// Me retrieves the currently authenticated user's profile
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMe updates the authenticated user's profile and returns the
// server's representation of the updated profile
func (c *Client) UpdateMe(ctx context.Context, update ProfileUpdate) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPut, "/users/me", nil, update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns the user directory, optionally narrowed by a search term
func (c *Client) ListUsers(ctx context.Context, search string) ([]UserSummary, error) {
	var query url.Values
	if search != "" {
		query = url.Values{"search": {search}}
	}
	var users []UserSummary
	if err := c.do(ctx, http.MethodGet, "/users", query, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser retrieves a user's public profile by id
func (c *Client) GetUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/"+userID.String(), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
