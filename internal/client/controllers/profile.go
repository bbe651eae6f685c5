package controllers

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/shivua6263/policy/internal/client/client"
	"github.com/shivua6263/policy/internal/client/media"
	"github.com/shivua6263/policy/internal/client/models"
	"github.com/shivua6263/policy/internal/client/services"
	"github.com/shivua6263/policy/internal/logging"
)

// MaxImageSize is the largest accepted profile image.
const MaxImageSize = 5 << 20

// DefaultAvatar is shown when the user has no image or it cannot be loaded.
const DefaultAvatar = "data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIHZpZXdCb3g9IjAgMCAxMDAgMTAwIj48Y2lyY2xlIGN4PSI1MCIgY3k9IjUwIiByPSI1MCIgZmlsbD0iI2UwZTBlMCIvPjxjaXJjbGUgY3g9IjUwIiBjeT0iNDAiIHI9IjE4IiBmaWxsPSIjOWU5ZTllIi8+PHBhdGggZD0iTTE4IDg2YzYtMTggMjAtMjYgMzItMjZzMjYgOCAzMiAyNiIgZmlsbD0iIzllOWU5ZSIvPjwvc3ZnPg=="

const (
	msgBadImageType    = "Please select a PNG or JPG image."
	msgImageTooLarge   = "File size must be less than 5MB."
	msgImageUploaded   = "Profile image updated successfully!"
	msgImageUploadFail = "Failed to upload image: "
)

// imageTypes maps accepted MIME types to the fileType sent to the server.
var imageTypes = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
}

// ProfileOptions carries the collaborators of a ProfileFlow.
type ProfileOptions struct {
	Scheduler  Scheduler
	Logger     logging.Logger
	MessageTTL time.Duration
}

// ProfileFlow loads and replaces a customer's profile image.
type ProfileFlow struct {
	svc      services.ProfileService
	resolver media.Resolver
	view     ImageView
	log      logging.Logger
	ttl      time.Duration
	status   *statusBoard
}

func NewProfileFlow(svc services.ProfileService, resolver media.Resolver, view ImageView, opts ProfileOptions) *ProfileFlow {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = RealScheduler{}
	}
	return &ProfileFlow{
		svc:      svc,
		resolver: resolver,
		view:     view,
		log:      opts.Logger.With("component", "profile"),
		ttl:      opts.MessageTTL,
		status:   newStatusBoard(opts.Scheduler),
	}
}

// Load shows the stored image, or the default avatar when there is none or
// it cannot be fetched.
func (p *ProfileFlow) Load(ctx context.Context, userID string) string {
	name, err := p.svc.GetImage(ctx, userID)
	if err != nil {
		p.log.Warn(ctx, "failed to load profile image", "user", userID, "error", err)
		p.view.ShowImage(DefaultAvatar)
		return DefaultAvatar
	}
	if name == "" {
		p.view.ShowImage(DefaultAvatar)
		return DefaultAvatar
	}

	u, err := p.resolver.URL(ctx, name)
	if err != nil {
		p.log.Warn(ctx, "failed to resolve profile image", "ref", name, "error", err)
		p.view.ShowImage(DefaultAvatar)
		return DefaultAvatar
	}
	p.view.ShowImage(u)
	return u
}

// Upload validates the file locally and sends it as a data URL. Rejected
// files never reach the server.
func (p *ProfileFlow) Upload(ctx context.Context, userID string, file models.ImageFile) error {
	fileType, ok := imageTypes[file.Type]
	if !ok {
		p.status.fail(msgBadImageType)
		return fmt.Errorf("%w: image type %q", ErrInvalidInput, file.Type)
	}
	if size := max(file.Size, int64(len(file.Data))); size > MaxImageSize {
		p.status.fail(msgImageTooLarge)
		return fmt.Errorf("%w: image size %d", ErrInvalidInput, size)
	}

	p.view.SetUploadEnabled(false)
	defer p.view.SetUploadEnabled(true)

	dataURL := "data:" + file.Type + ";base64," + base64.StdEncoding.EncodeToString(file.Data)
	ref, err := p.svc.UploadImage(ctx, userID, dataURL, fileType)
	if err != nil {
		p.log.Error(ctx, "profile image upload failed", "user", userID, "error", err)
		p.status.fail(msgImageUploadFail + client.AsFailure(err).Detail())
		return err
	}

	u, err := p.resolver.URL(ctx, ref)
	if err != nil {
		p.log.Warn(ctx, "failed to resolve uploaded image", "ref", ref, "error", err)
		u = ref
	}
	p.view.ShowImage(u)
	p.view.ClearSelection()
	p.status.success(msgImageUploaded, p.ttl)
	p.log.Info(ctx, "profile image updated", "user", userID, "size", file.Size)
	return nil
}

func (p *ProfileFlow) Status() Message { return p.status.get() }

func (p *ProfileFlow) Close() { p.status.close() }
