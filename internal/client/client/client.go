package client

import "context"

// Client is the REST contract of the backend. Paths are relative to the API
// base URL, e.g. "customer/5/". out may be nil when the body is not needed.
//
// Errors are *Failure values (see ParseFailure) and match ErrUnavailable or
// ErrUnauthorized through errors.Is where applicable.
type Client interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}
