// internal/infrastructure/commerce/auth.go
package commerce

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for an opaque bearer token. The token is the
// caller's to persist; the client itself keeps no authentication state.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", &loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Register creates a new account. It does not authenticate the new user;
// callers decide the next step (typically a redirect to login).
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", "", &req, nil)
}

// CurrentUser resolves a bearer token into the user record it belongs to
func (c *Client) CurrentUser(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateCurrentUser patches the authenticated user's profile and returns the
// server's final representation of the record.
func (c *Client) UpdateCurrentUser(ctx context.Context, token string, update UserUpdate) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPut, "/api/auth/me", token, &update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
