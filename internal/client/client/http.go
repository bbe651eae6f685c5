package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shivua6263/policy/internal/common"
	"github.com/shivua6263/policy/internal/logging"
	"github.com/shivua6263/policy/internal/netx"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 10 << 20

// HTTPClient talks JSON to the backend over HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	newRequestID func() string
}

// NewHTTPClient returns a client for baseURL (e.g. http://127.0.0.1:8000/api).
// A zero timeout means no per-request deadline.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPClient{
		baseURL:      baseURL,
		http:         &http.Client{Timeout: timeout},
		log:          log.With("component", "rest"),
		newRequestID: func() string { return uuid.NewString() },
	}
}

func (c *HTTPClient) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *HTTPClient) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *HTTPClient) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	url := netx.JoinURL(c.baseURL, path)
	reqID := c.newRequestID()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, reqID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "url", url, "request_id", reqID, "error", err)
		return TransportFailure(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return TransportFailure(fmt.Errorf("read body: %w", err))
	}

	c.log.Debug(ctx, "request done",
		"method", method, "url", url, "status", resp.StatusCode,
		"request_id", reqID, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ParseFailure(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return &Failure{Kind: KindUnknown, Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode),
			Err: fmt.Errorf("decode %s %s: %w", method, path, err)}
	}
	return nil
}
