package controllers

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivua6263/policy/internal/client/client"
	"github.com/shivua6263/policy/internal/client/media"
	"github.com/shivua6263/policy/internal/client/models"
)

const mediaBase = "http://127.0.0.1:8000/media/profile_images/"

func newProfileFixture(t *testing.T) (*ProfileFlow, *fakeProfileService, *fakeImageView) {
	t.Helper()
	svc, view := &fakeProfileService{}, &fakeImageView{}
	p := NewProfileFlow(svc, media.NewURLResolver(mediaBase), view, ProfileOptions{Scheduler: &manualScheduler{}})
	t.Cleanup(p.Close)
	return p, svc, view
}

func TestProfileFlow_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("stored image", func(t *testing.T) {
		p, svc, view := newProfileFixture(t)
		svc.name = "user 7.png"

		got := p.Load(ctx, "7")

		assert.Equal(t, mediaBase+"user%207.png", got)
		assert.Equal(t, []string{got}, view.images)
		assert.Equal(t, "7", svc.lastUser)
	})

	t.Run("no image", func(t *testing.T) {
		p, _, view := newProfileFixture(t)
		assert.Equal(t, DefaultAvatar, p.Load(ctx, "7"))
		assert.Equal(t, []string{DefaultAvatar}, view.images)
	})

	t.Run("request fails", func(t *testing.T) {
		p, svc, view := newProfileFixture(t)
		svc.getErr = client.TransportFailure(errors.New("refused"))
		assert.Equal(t, DefaultAvatar, p.Load(ctx, "7"))
		assert.Equal(t, []string{DefaultAvatar}, view.images)
		assert.True(t, p.Status().IsZero())
	})
}

func TestProfileFlow_Upload_Rejections(t *testing.T) {
	tests := []struct {
		name string
		file models.ImageFile
		want string
	}{
		{"gif", models.ImageFile{Name: "a.gif", Type: "image/gif", Size: 10, Data: []byte("GIF89a")}, "Please select a PNG or JPG image."},
		{"too large", models.ImageFile{Name: "a.png", Type: "image/png", Size: MaxImageSize + 1}, "File size must be less than 5MB."},
		{"size understated", models.ImageFile{Name: "b.png", Type: "image/png", Size: 10, Data: make([]byte, MaxImageSize+1)}, "File size must be less than 5MB."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, svc, view := newProfileFixture(t)

			err := p.Upload(context.Background(), "7", tt.file)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, svc.uploads)
			assert.Equal(t, Message{Kind: MessageError, Text: tt.want}, p.Status())
			assert.Empty(t, view.enabled)
		})
	}
}

func TestProfileFlow_Upload_ExactLimitAccepted(t *testing.T) {
	p, svc, view := newProfileFixture(t)
	svc.uploadURL = "/media/profile_images/7.png"
	data := bytes.Repeat([]byte{0x89}, MaxImageSize)

	require.NoError(t, p.Upload(context.Background(), "7", models.ImageFile{Name: "me.png", Type: "image/png", Size: MaxImageSize, Data: data}))

	assert.Equal(t, 1, svc.uploads)
	assert.Equal(t, "png", svc.lastType)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(data), svc.lastData)
	assert.Equal(t, []string{"http://127.0.0.1:8000/media/profile_images/7.png"}, view.images)
	assert.Equal(t, 1, view.cleared)
	assert.Equal(t, []bool{false, true}, view.enabled)
	assert.Equal(t, "Profile image updated successfully!", p.Status().Text)
}

func TestProfileFlow_Upload_JPEGSendsJPG(t *testing.T) {
	p, svc, _ := newProfileFixture(t)
	svc.uploadURL = "http://cdn.example.com/x.jpg"

	require.NoError(t, p.Upload(context.Background(), "7", models.ImageFile{Type: "image/jpeg", Size: 3, Data: []byte{1, 2, 3}}))
	assert.Equal(t, "jpg", svc.lastType)
}

func TestProfileFlow_Upload_FailureRestoresControl(t *testing.T) {
	p, svc, view := newProfileFixture(t)
	svc.uploadErr = client.ParseFailure(http.StatusBadRequest, []byte(`{"error":"Invalid image data"}`))

	err := p.Upload(context.Background(), "7", models.ImageFile{Type: "image/png", Size: 3, Data: []byte{1, 2, 3}})

	require.Error(t, err)
	assert.Equal(t, "Failed to upload image: Invalid image data", p.Status().Text)
	assert.Equal(t, []bool{false, true}, view.enabled)
	assert.Empty(t, view.images)
	assert.Zero(t, view.cleared)
}
