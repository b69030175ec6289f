package rest

import (
	"context"
	"net/http"

	"github.com/sneha3498/infosysproject/internal/entity"
)

func (c *Client) Login(ctx context.Context, creds entity.Credentials) (entity.AuthResult, error) {
	var result entity.AuthResult
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/login", creds, &result); err != nil {
		return entity.AuthResult{}, err
	}
	return result, nil
}

func (c *Client) Signup(ctx context.Context, form entity.SignupForm) (entity.AuthResult, error) {
	var result entity.AuthResult
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/signup", form, &result); err != nil {
		return entity.AuthResult{}, err
	}
	return result, nil
}
