package services

import (
	"context"
	"fmt"

	"github.com/shivua6263/policy/internal/client/client"
	"github.com/shivua6263/policy/internal/client/models"
	"github.com/shivua6263/policy/internal/netx"
)

// ResourceService performs CRUD on one collection path.
type ResourceService interface {
	List(ctx context.Context, path string) ([]models.Record, error)
	Create(ctx context.Context, path string, draft models.Record) (models.Record, error)
	Update(ctx context.Context, path, id string, draft models.Record) (models.Record, error)
	Delete(ctx context.Context, path, id string) error
}

type resourceService struct {
	client client.Client
}

func NewResourceService(c client.Client) ResourceService {
	return &resourceService{client: c}
}

func (s *resourceService) List(ctx context.Context, path string) ([]models.Record, error) {
	var out []models.Record
	if err := s.client.Get(ctx, netx.JoinURL(path), &out); err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	if out == nil {
		out = []models.Record{}
	}
	return out, nil
}

func (s *resourceService) Create(ctx context.Context, path string, draft models.Record) (models.Record, error) {
	var out models.Record
	if err := s.client.Post(ctx, netx.JoinURL(path), draft, &out); err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return out, nil
}

func (s *resourceService) Update(ctx context.Context, path, id string, draft models.Record) (models.Record, error) {
	seg, err := netx.Segment(id)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", path, err)
	}
	var out models.Record
	if err := s.client.Put(ctx, netx.JoinURL(path, seg), draft, &out); err != nil {
		return nil, fmt.Errorf("update %s/%s: %w", path, id, err)
	}
	return out, nil
}

func (s *resourceService) Delete(ctx context.Context, path, id string) error {
	seg, err := netx.Segment(id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	if err := s.client.Delete(ctx, netx.JoinURL(path, seg), nil); err != nil {
		return fmt.Errorf("delete %s/%s: %w", path, id, err)
	}
	return nil
}
