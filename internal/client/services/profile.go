package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shivua6263/policy/internal/client/client"
	"github.com/shivua6263/policy/internal/netx"
)

// ProfileService reads and uploads a customer's profile image.
type ProfileService interface {
	// GetImage returns the stored file name, or "" when none is stored.
	GetImage(ctx context.Context, userID string) (string, error)
	// UploadImage sends a data URL and returns the image URL reported by the
	// server.
	UploadImage(ctx context.Context, userID, dataURL, fileType string) (string, error)
}

type profileService struct {
	client client.Client
}

func NewProfileService(c client.Client) ProfileService {
	return &profileService{client: c}
}

type imageInfo struct {
	ProfileImage *string `json:"profile_image"`
}

type uploadRequest struct {
	Image    string `json:"image"`
	FileType string `json:"fileType"`
}

type uploadResponse struct {
	ImageURL string `json:"image_url"`
	Error    string `json:"error"`
	Message  string `json:"message"`
}

func imagePath(userID string) (string, error) {
	seg, err := netx.Segment(userID)
	if err != nil {
		return "", err
	}
	return netx.JoinURL("customer", seg, "profile-image"), nil
}

func (s *profileService) GetImage(ctx context.Context, userID string) (string, error) {
	path, err := imagePath(userID)
	if err != nil {
		return "", fmt.Errorf("get profile image: %w", err)
	}
	var info imageInfo
	if err := s.client.Get(ctx, path, &info); err != nil {
		return "", fmt.Errorf("get profile image: %w", err)
	}
	if info.ProfileImage == nil {
		return "", nil
	}
	return *info.ProfileImage, nil
}

func (s *profileService) UploadImage(ctx context.Context, userID, dataURL, fileType string) (string, error) {
	path, err := imagePath(userID)
	if err != nil {
		return "", fmt.Errorf("upload profile image: %w", err)
	}
	var resp uploadResponse
	if err := s.client.Post(ctx, path, uploadRequest{Image: dataURL, FileType: fileType}, &resp); err != nil {
		return "", fmt.Errorf("upload profile image: %w", err)
	}
	if resp.ImageURL == "" {
		msg := resp.Error
		if msg == "" {
			msg = resp.Message
		}
		if msg == "" {
			msg = "no image URL in response"
		}
		return "", fmt.Errorf("upload profile image: %w", &client.Failure{
			Kind: client.KindMessage, Status: http.StatusOK, StatusText: http.StatusText(http.StatusOK), Message: msg,
		})
	}
	return resp.ImageURL, nil
}
