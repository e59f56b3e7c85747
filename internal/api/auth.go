package api

import (
	"context"
	"net/http"
)

// LoginRequest is the credentials payload for POST /auth/login.
// Login accepts either a username or an email address.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthResponse is the successful login payload
type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role,omitempty"`
}

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Login exchanges credentials for a bearer token.
// The token is NOT attached to the client; session management owns that.
func (c *Client) Login(ctx context.Context, login, password string) (*AuthResponse, error) {
	var auth AuthResponse
	req := LoginRequest{Login: login, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Register creates a new account. Registration does not authenticate;
// callers follow up with Login to establish a session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", nil, req, nil)
}
