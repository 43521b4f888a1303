package booking

import (
	"context"
	"time"

	"CSEPortal/internal/metrics"
	"CSEPortal/pkg/document"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type bookingStore interface {
	Kind() Kind
	FindAll(ctx context.Context) ([]Booking, error)
	FindByUser(ctx context.Context, email string) ([]Booking, error)
	FindByID(ctx context.Context, id string) (*Booking, error)
	Create(ctx context.Context, b *Booking) (primitive.ObjectID, error)
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// BookingService applies the server-owned fields of a booking.
type BookingService struct {
	repo    bookingStore
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewBookingService(repo *BookingRepository, m *metrics.Metrics) *BookingService {
	return newBookingService(repo, m)
}

func newBookingService(repo bookingStore, m *metrics.Metrics) *BookingService {
	return &BookingService{repo: repo, metrics: m, now: now}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *BookingService) Kind() Kind {
	return s.repo.Kind()
}

func (s *BookingService) List(ctx context.Context) ([]Booking, error) {
	return s.repo.FindAll(ctx)
}

func (s *BookingService) ListByUser(ctx context.Context, email string) ([]Booking, error) {
	return s.repo.FindByUser(ctx, email)
}

func (s *BookingService) Get(ctx context.Context, id string) (*Booking, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores a new booking in the pending state. Client-sent status and
// timestamps are replaced.
func (s *BookingService) Create(ctx context.Context, fields bson.M) (primitive.ObjectID, error) {
	at := s.now()
	b := &Booking{
		Status:    StatusPending,
		CreatedAt: at,
		UpdatedAt: at,
		Fields:    document.Without(fields, serverKeys...),
	}
	id, err := s.repo.Create(ctx, b)
	if err != nil {
		return primitive.NilObjectID, err
	}
	s.metrics.IncCreated(string(s.repo.Kind()) + "Bookings")
	return id, nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) error {
	return s.repo.UpdateStatus(ctx, id, status, s.now())
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
