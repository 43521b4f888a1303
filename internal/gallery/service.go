package gallery

import (
	"context"
	"time"

	"CSEPortal/internal/config"
	"CSEPortal/internal/metrics"
	"CSEPortal/pkg/document"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type photoStore interface {
	FindAll(ctx context.Context) ([]Photo, error)
	FindByCategory(ctx context.Context, category string) ([]Photo, error)
	Create(ctx context.Context, p *Photo) (primitive.ObjectID, error)
	Delete(ctx context.Context, id string) error
}

// GalleryService has no update path; photos are only added and removed.
type GalleryService struct {
	repo    photoStore
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewGalleryService(repo *GalleryRepository, m *metrics.Metrics) *GalleryService {
	return &GalleryService{repo: repo, metrics: m, now: func() time.Time {
		return time.Now().UTC().Truncate(time.Millisecond)
	}}
}

func (s *GalleryService) List(ctx context.Context) ([]Photo, error) {
	return s.repo.FindAll(ctx)
}

func (s *GalleryService) ListByCategory(ctx context.Context, category string) ([]Photo, error) {
	return s.repo.FindByCategory(ctx, category)
}

// Create keeps the client's fields and stamps createdAt.
func (s *GalleryService) Create(ctx context.Context, fields bson.M) (primitive.ObjectID, error) {
	p := &Photo{
		CreatedAt: s.now(),
		Fields:    document.Without(fields, "createdAt"),
	}
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	s.metrics.IncCreated(config.GalleryCollection)
	return id, nil
}

func (s *GalleryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
