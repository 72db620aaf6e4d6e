package client

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/emotion-diary/internal/session"
	"github.com/heartmarshall/emotion-diary/internal/transport/rest"
)

// SignUp creates an account and signs in with it.
func (c *Client) SignUp(ctx context.Context, email, password string) (*session.Session, error) {
	return c.credentials(ctx, "/auth/register", email, password)
}

// SignIn authenticates with email and password.
func (c *Client) SignIn(ctx context.Context, email, password string) (*session.Session, error) {
	return c.credentials(ctx, "/auth/login", email, password)
}

func (c *Client) credentials(ctx context.Context, path, email, password string) (*session.Session, error) {
	var resp rest.AuthResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   path,
		body:   rest.CredentialsRequest{Email: email, Password: password},
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}

	s := toSession(resp)
	if err := c.gate.SignIn(s); err != nil {
		return nil, err
	}
	return s, nil
}

// SignOut revokes the server-side tokens and forgets the local session. The
// local session is cleared even when the server cannot be reached.
func (c *Client) SignOut(ctx context.Context) error {
	if _, ok := c.gate.Current(); !ok {
		return nil
	}
	if err := c.do(ctx, call{method: http.MethodPost, path: "/auth/logout", authed: true}); err != nil {
		c.log.WarnContext(ctx, "server logout failed", slog.String("error", err.Error()))
	}
	return c.gate.SignOut()
}

// Me returns the signed-in user.
func (c *Client) Me(ctx context.Context) (*rest.UserResponse, error) {
	var resp rest.UserResponse
	if err := c.do(ctx, call{method: http.MethodGet, path: "/auth/me", out: &resp, authed: true}); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChangePassword replaces the password. The server revokes every refresh
// token, so the returned session replaces the current one.
func (c *Client) ChangePassword(ctx context.Context, current, next, confirm string) error {
	var resp rest.AuthResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/password",
		body: rest.ChangePasswordRequest{
			CurrentPassword: current,
			NewPassword:     next,
			ConfirmPassword: confirm,
		},
		out:    &resp,
		authed: true,
	})
	if err != nil {
		return err
	}
	return c.gate.Refresh(toSession(resp))
}
