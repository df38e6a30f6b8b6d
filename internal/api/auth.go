package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MrJamesThe3rd/leasedesk/internal/session"
)

// AuthResult is what login and register return. User is optional.
type AuthResult struct {
	Token string        `json:"token"`
	User  *session.User `json:"user,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	return c.authenticate(ctx, "/auth/login", req)
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	return c.authenticate(ctx, "/auth/register", req)
}

func (c *Client) authenticate(ctx context.Context, path string, in any) (*AuthResult, error) {
	var out AuthResult
	if err := c.doJSON(ctx, http.MethodPost, path, in, &out); err != nil {
		return nil, err
	}

	if out.Token == "" {
		return nil, fmt.Errorf("%s: response carried no token", path)
	}

	return &out, nil
}

// Me returns the profile of the token's owner.
func (c *Client) Me(ctx context.Context) (*session.User, error) {
	var out struct {
		User *session.User `json:"user"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/me", nil, &out); err != nil {
		return nil, err
	}

	return out.User, nil
}
