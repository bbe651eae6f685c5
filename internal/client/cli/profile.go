package cli

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/shivua6263/policy/internal/client/controllers"
	"github.com/shivua6263/policy/internal/client/models"
	"github.com/shivua6263/policy/internal/client/session"
	"github.com/shivua6263/policy/internal/filex"
)

var errCustomersOnly = errors.New("profile images are available for customers only")

func (a *App) customer(ctx context.Context) (session.Record, error) {
	rec, err := a.enter(ctx)
	if err != nil {
		return nil, err
	}
	if rec.UserType() != session.RoleCustomer {
		a.printMessage(controllers.Message{Kind: controllers.MessageError, Text: "Profile images are available for customers only"})
		return nil, errCustomersOnly
	}
	return rec, nil
}

// Profile shows the signed-in customer's profile image URL.
func (a *App) Profile(ctx context.Context) error {
	rec, err := a.customer(ctx)
	if err != nil {
		return err
	}
	a.profile.Load(ctx, rec.ID())
	return nil
}

// Upload replaces the profile image with the file at path.
func (a *App) Upload(ctx context.Context, path string) error {
	rec, err := a.customer(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	enabled := a.uploadEnabled
	a.mu.Unlock()
	if !enabled {
		a.printMessage(controllers.Message{Kind: controllers.MessageError, Text: "An upload is already in progress"})
		return controllers.ErrBusy
	}

	file, err := readImageFile(path)
	if err != nil {
		a.printMessage(controllers.Message{Kind: controllers.MessageError, Text: "Cannot read file: " + err.Error()})
		return err
	}

	err = a.profile.Upload(ctx, rec.ID(), file)
	a.printMessage(a.profile.Status())
	return err
}

// readImageFile reads path for upload. Files above the size limit are not
// read; their size alone lets the upload be rejected.
func readImageFile(path string) (models.ImageFile, error) {
	data, size, err := filex.ReadLimited(path, controllers.MaxImageSize)
	if err != nil {
		return models.ImageFile{}, err
	}

	typ := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if typ == "" && data != nil {
		typ = http.DetectContentType(data)
	}
	if i := strings.IndexByte(typ, ';'); i >= 0 {
		typ = strings.TrimSpace(typ[:i])
	}

	return models.ImageFile{Name: filepath.Base(path), Type: typ, Size: size, Data: data}, nil
}
