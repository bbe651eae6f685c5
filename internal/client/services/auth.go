// Package services wraps the REST client in typed operations: authentication,
// generic entity CRUD and profile images. Services hold no UI state; the
// controllers package builds messages and timers on top of them.
package services

import (
	"context"
	"fmt"

	"github.com/shivua6263/policy/internal/client/client"
	"github.com/shivua6263/policy/internal/netx"
)

// SignupRequest is the body of the signup endpoints.
type SignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService authenticates customers and agents.
//
//   - Login posts credentials to <role>/login/ and returns the response body.
//   - Signup posts a new account to <role>/signup/ and returns the response body.
//
// Errors are *client.Failure values.
type AuthService interface {
	Login(ctx context.Context, role, email, password string) (map[string]any, error)
	Signup(ctx context.Context, role string, req SignupRequest) (map[string]any, error)
}

type authService struct {
	client client.Client
}

func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

func (a *authService) Login(ctx context.Context, role, email, password string) (map[string]any, error) {
	var resp map[string]any
	if err := a.client.Post(ctx, netx.JoinURL(role, "login"), loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp == nil {
		resp = map[string]any{}
	}
	return resp, nil
}

func (a *authService) Signup(ctx context.Context, role string, req SignupRequest) (map[string]any, error) {
	var resp map[string]any
	if err := a.client.Post(ctx, netx.JoinURL(role, "signup"), req, &resp); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	if resp == nil {
		resp = map[string]any{}
	}
	return resp, nil
}
