package client

import (
	"context"
	"net/http"
)

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

// Register creates an account and signs the session in with the
// returned token.
func (c *Client) Register(ctx context.Context, fullName, email, password, phone string) (*Identity, error) {
	var out authResponse
	err := c.post(ctx, "/api/auth/register", registerRequest{
		FullName: fullName, Email: email, Password: password, Phone: phone,
	}, &out)
	if err != nil {
		return nil, err
	}
	c.session.Set(out.Token, out.User)
	return c.session.User(), nil
}

// Login exchanges credentials for a token and stores it in the session.
func (c *Client) Login(ctx context.Context, email, password string) (*Identity, error) {
	var out authResponse
	if err := c.post(ctx, "/api/auth/login", loginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	c.session.Set(out.Token, out.User)
	return c.session.User(), nil
}

// Logout clears the session. The token is stateless server-side, so
// sign-out is purely local.
func (c *Client) Logout() {
	c.session.Clear()
}

// Profile fetches the signed-in account from the service.
func (c *Client) Profile(ctx context.Context) (*Identity, error) {
	var out struct {
		ID       uint64 `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"fullName"`
		Role     string `json:"role"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &Identity{ID: out.ID, Email: out.Email, Name: out.FullName, Role: out.Role}, nil
}
