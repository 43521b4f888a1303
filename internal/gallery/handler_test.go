package gallery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"CSEPortal/internal/config"
	"CSEPortal/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

const ns = "portal.gallery"

func newServer(mt *mtest.T, m *metrics.Metrics) (*echo.Echo, *GalleryService) {
	repo := NewGalleryRepository(config.NewStoreFromDatabase(mt.DB))
	svc := NewGalleryService(repo, m)
	e := echo.New()
	NewGalleryHandler(svc, zap.NewNop()).Register(e.Group("/api/gallery"))
	return e, svc
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGalleryHandler(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns createdAt and counts the insert", func(mt *mtest.T) {
		m := metrics.New()
		e, svc := newServer(mt, m)
		fixed := time.Date(2026, 7, 4, 10, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return fixed }
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		rec := serve(e, http.MethodPost, "/api/gallery",
			`{"title":"Convocation","imageUrl":"https://img/1.jpg","category":"events","photographer":"Club","createdAt":"2001-01-01T00:00:00Z"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
		}
		var resp CreatePhotoResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if _, err := primitive.ObjectIDFromHex(resp.PhotoID); err != nil {
			t.Errorf("photoId %q is not an ObjectID", resp.PhotoID)
		}

		doc, ok := mt.GetStartedEvent().Command.Lookup("documents", "0").DocumentOK()
		if !ok {
			t.Fatal("insert command carries no document")
		}
		if got := doc.Lookup("createdAt").Time().UTC(); !got.Equal(fixed) {
			t.Errorf("createdAt = %v, want %v", got, fixed)
		}
		if got, _ := doc.Lookup("photographer").StringValueOK(); got != "Club" {
			t.Errorf("client field photographer = %q, want Club", got)
		}
		const created = `
# HELP portal_documents_created_total Count of documents inserted by collection.
# TYPE portal_documents_created_total counter
portal_documents_created_total{collection="gallery"} 1
`
		if err := testutil.GatherAndCompare(m.Registry, strings.NewReader(created), "portal_documents_created_total"); err != nil {
			t.Error(err)
		}
	})

	mt.Run("category filter", func(mt *mtest.T) {
		e, _ := newServer(mt, nil)
		doc := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "title", Value: "Picnic"},
			{Key: "category", Value: "Study Tour"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, doc))

		rec := serve(e, http.MethodGet, "/api/gallery/category/Study%20Tour", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := mt.GetStartedEvent().Command.Lookup("filter", "category").StringValue(); got != "Study Tour" {
			t.Errorf("filter category = %q", got)
		}
		var photos []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &photos); err != nil {
			t.Fatal(err)
		}
		if len(photos) != 1 || photos[0]["title"] != "Picnic" || photos[0]["category"] != "Study Tour" {
			t.Errorf("unexpected photos: %+v", photos)
		}
	})

	mt.Run("delete missing photo", func(mt *mtest.T) {
		e, _ := newServer(mt, nil)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		rec := serve(e, http.MethodDelete, "/api/gallery/"+primitive.NewObjectID().Hex(), "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	mt.Run("delete existing photo", func(mt *mtest.T) {
		e, _ := newServer(mt, nil)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		rec := serve(e, http.MethodDelete, "/api/gallery/"+primitive.NewObjectID().Hex(), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Photo deleted successfully") {
			t.Errorf("unexpected body %s", rec.Body)
		}
	})

	mt.Run("list store failure", func(mt *mtest.T) {
		e, _ := newServer(mt, nil)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "not authorized on portal",
			Name:    "Unauthorized",
		}))

		rec := serve(e, http.MethodGet, "/api/gallery", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "not authorized on portal") {
			t.Errorf("expected store error text, got %s", rec.Body)
		}
	})
}
