// Package netx contains URL and network error helpers for the REST client.
package netx

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// JoinURL appends path segments to base and ends the result with a slash,
// matching the backend's trailing-slash routes:
//
//	JoinURL("http://h/api", "customer", "5") == "http://h/api/customer/5/"
//
// Empty segments are skipped and inner slashes of segments are trimmed.
func JoinURL(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, s := range segments {
		s = strings.Trim(s, "/")
		if s == "" {
			continue
		}
		b.WriteByte('/')
		b.WriteString(s)
	}
	b.WriteByte('/')
	return b.String()
}

// ErrBadSegment is returned for ids that cannot stand as one path segment.
var ErrBadSegment = errors.New("invalid path segment")

// Segment escapes s so it stays a single path segment of a request URL.
// Empty, "." and ".." are rejected since they would change the route.
func Segment(s string) (string, error) {
	switch s {
	case "", ".", "..":
		return "", fmt.Errorf("%w: %q", ErrBadSegment, s)
	}
	return url.PathEscape(s), nil
}

// Resolve resolves ref against base. Absolute refs (with a scheme) and data
// URLs are returned unchanged.
func Resolve(base, ref string) (string, error) {
	if strings.HasPrefix(ref, "data:") {
		return ref, nil
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	if r.IsAbs() {
		return ref, nil
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(r).String(), nil
}

// IsTransportError reports whether err means no HTTP response was received:
// connection refused, DNS failure, timeout, or a cancelled request.
func IsTransportError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
