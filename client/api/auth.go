package api

import (
	"context"

	"github.com/thatmoosee/Study-Buddy/util/model"
)

func (c *Client) Status(ctx context.Context) (model.AuthStatusResponse, error) {
	var r model.AuthStatusResponse
	err := c.get(ctx, "/api/auth/status", &r)
	return r, err
}

func (c *Client) Login(ctx context.Context, email, password string) (model.User, error) {
	if err := required(email, "Email"); err != nil {
		return model.User{}, err
	}
	if err := required(password, "Password"); err != nil {
		return model.User{}, err
	}

	var r model.AuthResponse
	if err := c.act(ctx, "/api/auth/login", model.Credentials{Email: email, Password: password}, &r); err != nil {
		return model.User{}, err
	}
	if r.Data == nil {
		return model.User{Email: email}, nil
	}
	return r.Data.User, nil
}

func (c *Client) Register(ctx context.Context, email, password string) error {
	if err := required(email, "Email"); err != nil {
		return err
	}
	if err := required(password, "Password"); err != nil {
		return err
	}

	var r model.AuthResponse
	return c.act(ctx, "/api/auth/register", model.Credentials{Email: email, Password: password}, &r)
}

func (c *Client) Logout(ctx context.Context) error {
	var r model.Resp
	return c.act(ctx, "/api/auth/logout", nil, &r)
}

// ForgotPassword asks for a reset token. The backend answers unknown emails
// with success and no token, so an empty token is not an error.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	if err := required(email, "Email"); err != nil {
		return "", err
	}
	var r model.ForgotPasswordResponse
	if err := c.act(ctx, "/api/auth/forgot-password", model.EmailRequest{Email: email}, &r); err != nil {
		return "", err
	}
	return r.Token, nil
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	if err := required(token, "Token"); err != nil {
		return err
	}
	if err := required(password, "New password"); err != nil {
		return err
	}
	var r model.Resp
	return c.act(ctx, "/api/auth/reset-password", model.ResetPasswordRequest{Token: token, NewPassword: password}, &r)
}
