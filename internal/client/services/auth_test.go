package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivua6263/policy/internal/client/client"
)

func TestAuthService_Login(t *testing.T) {
	fc := &fakeClient{Resp: `{"id":7,"name":"A","email":"a@x.com","message":"Login successful"}`}
	svc := NewAuthService(fc)

	resp, err := svc.Login(context.Background(), "agent", "a@x.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "POST", fc.LastMethod)
	assert.Equal(t, "agent/login/", fc.LastPath)
	assert.Equal(t, loginRequest{Email: "a@x.com", Password: "secret"}, fc.LastBody)
	assert.Equal(t, "A", resp["name"])
	assert.Equal(t, "Login successful", resp["message"])
}

func TestAuthService_Login_EmptyBodyAndErrors(t *testing.T) {
	svc := NewAuthService(&fakeClient{})
	resp, err := svc.Login(context.Background(), "customer", "a", "b")
	require.NoError(t, err)
	assert.NotNil(t, resp)

	unauth := client.ParseFailure(401, []byte(`{"message":"Invalid email or password"}`))
	svc = NewAuthService(&fakeClient{Err: unauth})
	_, err = svc.Login(context.Background(), "customer", "a", "b")
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Same(t, unauth, client.AsFailure(err))
}

func TestAuthService_Signup(t *testing.T) {
	fc := &fakeClient{Resp: `{"message":"Customer registered"}`}
	svc := NewAuthService(fc)

	req := SignupRequest{Name: "N", Email: "e@x", PhoneNumber: "555", Password: "secret1"}
	resp, err := svc.Signup(context.Background(), "customer", req)
	require.NoError(t, err)

	assert.Equal(t, "customer/signup/", fc.LastPath)
	assert.Equal(t, req, fc.LastBody)
	assert.Equal(t, "Customer registered", resp["message"])

	fc.Err = client.ParseFailure(400, []byte(`{"email":["exists"]}`))
	_, err = svc.Signup(context.Background(), "customer", req)
	require.Error(t, err)
	assert.Equal(t, client.KindValidation, client.AsFailure(err).Kind)
}
