package dashboard

import (
	"context"

	"CSEPortal/internal/booking"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"
)

// Entry is a booking tagged with the collection it came from.
type Entry struct {
	booking.Booking
	Type booking.Kind `json:"type"`
}

// MarshalJSON writes the booking's fields with type added. The tag replaces
// any type field the client stored.
func (e Entry) MarshalJSON() ([]byte, error) {
	b := e.Booking
	b.Fields = make(bson.M, len(e.Fields)+1)
	for k, v := range e.Fields {
		b.Fields[k] = v
	}
	b.Fields["type"] = e.Type
	return b.MarshalJSON()
}

// UserDashboard is the /api/user-dashboard/:email payload.
type UserDashboard struct {
	ClassroomBookings []Entry `json:"classroomBookings"`
	LabBookings       []Entry `json:"labBookings"`
	TotalBookings     int     `json:"totalBookings"`
}

type userBookings interface {
	Kind() booking.Kind
	FindByUser(ctx context.Context, email string) ([]booking.Booking, error)
}

// DashboardService reads both booking collections for one user. The two
// reads are independent queries, so a write landing between them can show up
// in one list and not the other.
type DashboardService struct {
	classroom userBookings
	lab       userBookings
}

func NewDashboardService(repos *booking.Repositories) *DashboardService {
	return &DashboardService{classroom: repos.Classroom, lab: repos.Lab}
}

func (s *DashboardService) ForUser(ctx context.Context, email string) (*UserDashboard, error) {
	var classroom, lab []Entry
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		classroom, err = tagged(gctx, s.classroom, email)
		return err
	})
	g.Go(func() error {
		var err error
		lab, err = tagged(gctx, s.lab, email)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &UserDashboard{
		ClassroomBookings: classroom,
		LabBookings:       lab,
		TotalBookings:     len(classroom) + len(lab),
	}, nil
}

func tagged(ctx context.Context, src userBookings, email string) ([]Entry, error) {
	bookings, err := src.FindByUser(ctx, email)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(bookings))
	for _, b := range bookings {
		entries = append(entries, Entry{Booking: b, Type: src.Kind()})
	}
	return entries, nil
}
