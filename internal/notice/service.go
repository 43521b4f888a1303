package notice

import (
	"context"
	"time"

	"CSEPortal/internal/config"
	"CSEPortal/internal/metrics"
	"CSEPortal/pkg/document"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type noticeStore interface {
	FindAll(ctx context.Context) ([]Notice, error)
	FindLatest(ctx context.Context, limit int64) ([]Notice, error)
	FindByID(ctx context.Context, id string) (*Notice, error)
	Create(ctx context.Context, n *Notice) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, req NoticeRequest, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// NoticeService assigns server-side fields and delegates to the store.
type NoticeService struct {
	repo    noticeStore
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewNoticeService(repo *NoticeRepository, m *metrics.Metrics) *NoticeService {
	return newNoticeService(repo, m)
}

func newNoticeService(repo noticeStore, m *metrics.Metrics) *NoticeService {
	return &NoticeService{repo: repo, metrics: m, now: now}
}

// Mongo keeps millisecond precision, so truncate to get back what was stored.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *NoticeService) List(ctx context.Context) ([]Notice, error) {
	return s.repo.FindAll(ctx)
}

func (s *NoticeService) Latest(ctx context.Context) ([]Notice, error) {
	return s.repo.FindLatest(ctx, LatestLimit)
}

func (s *NoticeService) Get(ctx context.Context, id string) (*Notice, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores the client's fields as sent, dated now. Any client-sent id,
// date or updatedAt is ignored.
func (s *NoticeService) Create(ctx context.Context, fields bson.M) (primitive.ObjectID, error) {
	n := &Notice{
		Date:   s.now(),
		Fields: document.Without(fields, serverKeys...),
	}
	id, err := s.repo.Create(ctx, n)
	if err != nil {
		return primitive.NilObjectID, err
	}
	s.metrics.IncCreated(config.NoticesCollection)
	return id, nil
}

func (s *NoticeService) Update(ctx context.Context, id string, req NoticeRequest) error {
	return s.repo.Update(ctx, id, req, s.now())
}

func (s *NoticeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
