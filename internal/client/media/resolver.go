// Package media turns profile image references returned by the backend into
// URLs the client can display or download.
package media

import (
	"context"
	"net/url"
	"strings"

	"github.com/shivua6263/policy/internal/netx"
)

// Resolver maps a stored file name or a server-returned path to a URL.
type Resolver interface {
	URL(ctx context.Context, ref string) (string, error)
}

// URLResolver resolves references against the backend's media base URL,
// e.g. http://127.0.0.1:8000/media/profile_images/.
type URLResolver struct {
	base string
}

func NewURLResolver(base string) *URLResolver {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &URLResolver{base: base}
}

// URL escapes bare file names; paths and absolute URLs are resolved as-is.
func (r *URLResolver) URL(_ context.Context, ref string) (string, error) {
	if !strings.Contains(ref, "/") && !strings.HasPrefix(ref, "data:") {
		ref = url.PathEscape(ref)
	}
	return netx.Resolve(r.base, ref)
}
