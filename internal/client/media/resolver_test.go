package media

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLResolver(t *testing.T) {
	r := NewURLResolver("http://127.0.0.1:8000/media/profile_images")
	ctx := context.Background()

	tests := []struct {
		ref  string
		want string
	}{
		{"7_a1b2.png", "http://127.0.0.1:8000/media/profile_images/7_a1b2.png"},
		{"my photo.jpg", "http://127.0.0.1:8000/media/profile_images/my%20photo.jpg"},
		{"/media/profile_images/7_x.png", "http://127.0.0.1:8000/media/profile_images/7_x.png"},
		{"https://cdn.example.com/7.png", "https://cdn.example.com/7.png"},
	}
	for _, tt := range tests {
		got, err := r.URL(ctx, tt.ref)
		require.NoError(t, err, tt.ref)
		assert.Equal(t, tt.want, got, tt.ref)
	}
}
