package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"CSEPortal/internal/booking"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fakeBookings struct {
	kind booking.Kind
	docs []booking.Booking
	err  error
}

func (f *fakeBookings) Kind() booking.Kind { return f.kind }

func (f *fakeBookings) FindByUser(ctx context.Context, email string) ([]booking.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []booking.Booking{}
	for _, b := range f.docs {
		if b.Fields["userEmail"] == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func newTestHandler(classroom, lab *fakeBookings) *echo.Echo {
	svc := &DashboardService{classroom: classroom, lab: lab}
	e := echo.New()
	e.GET("/api/user-dashboard/:email", NewDashboardHandler(svc, zap.NewNop()).UserDashboard)
	return e
}

func TestUserDashboardTotals(t *testing.T) {
	classroom := &fakeBookings{kind: booking.Classroom, docs: []booking.Booking{
		{Status: "pending", Fields: bson.M{"title": "a", "userEmail": "tania@jnu.ac.bd", "type": "seminar"}},
		{Status: "approved", Fields: bson.M{"title": "b", "userEmail": "tania@jnu.ac.bd"}},
		{Status: "pending", Fields: bson.M{"title": "c", "userEmail": "other@jnu.ac.bd"}},
	}}
	lab := &fakeBookings{kind: booking.Lab, docs: []booking.Booking{
		{Status: "pending", Fields: bson.M{"title": "d", "userEmail": "tania@jnu.ac.bd"}},
	}}
	e := newTestHandler(classroom, lab)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user-dashboard/tania@jnu.ac.bd", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var got struct {
		ClassroomBookings []map[string]any `json:"classroomBookings"`
		LabBookings       []map[string]any `json:"labBookings"`
		TotalBookings     int              `json:"totalBookings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.ClassroomBookings) != 2 || len(got.LabBookings) != 1 {
		t.Fatalf("unexpected split: %d classroom, %d lab", len(got.ClassroomBookings), len(got.LabBookings))
	}
	if got.TotalBookings != len(got.ClassroomBookings)+len(got.LabBookings) {
		t.Errorf("totalBookings %d does not match lists", got.TotalBookings)
	}
	for _, b := range got.ClassroomBookings {
		if b["type"] != "classroom" {
			t.Errorf("classroom entry tagged %v", b["type"])
		}
		if b["title"] == nil || b["status"] == nil || b["userEmail"] != "tania@jnu.ac.bd" {
			t.Errorf("booking fields should be inlined next to type: %v", b)
		}
	}
	if got.LabBookings[0]["type"] != "lab" {
		t.Errorf("lab entry tagged %v", got.LabBookings[0]["type"])
	}
}

func TestUserDashboardEmptyLists(t *testing.T) {
	e := newTestHandler(&fakeBookings{kind: booking.Classroom}, &fakeBookings{kind: booking.Lab})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user-dashboard/nobody@jnu.ac.bd", nil))
	want := `{"classroomBookings":[],"labBookings":[],"totalBookings":0}`
	if got := rec.Body.String(); got != want+"\n" {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestUserDashboardStoreError(t *testing.T) {
	e := newTestHandler(
		&fakeBookings{kind: booking.Classroom},
		&fakeBookings{kind: booking.Lab, err: errors.New("server selection timeout")},
	)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user-dashboard/x@jnu.ac.bd", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "server selection timeout" {
		t.Errorf("unexpected error text %q", body["error"])
	}
}
