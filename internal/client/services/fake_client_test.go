package services

import (
	"context"
	"encoding/json"
)

// fakeClient implements client.Client. It records the last call and decodes
// Resp into out the way the HTTP client would.
type fakeClient struct {
	Resp string
	Err  error

	LastMethod string
	LastPath   string
	LastBody   any
	Calls      int
}

func (f *fakeClient) record(method, path string, body, out any) error {
	f.Calls++
	f.LastMethod, f.LastPath, f.LastBody = method, path, body
	if f.Err != nil {
		return f.Err
	}
	if out != nil && f.Resp != "" {
		return json.Unmarshal([]byte(f.Resp), out)
	}
	return nil
}

func (f *fakeClient) Get(_ context.Context, path string, out any) error {
	return f.record("GET", path, nil, out)
}

func (f *fakeClient) Post(_ context.Context, path string, body, out any) error {
	return f.record("POST", path, body, out)
}

func (f *fakeClient) Put(_ context.Context, path string, body, out any) error {
	return f.record("PUT", path, body, out)
}

func (f *fakeClient) Delete(_ context.Context, path string, out any) error {
	return f.record("DELETE", path, nil, out)
}
