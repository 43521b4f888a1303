package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestIncCreatedNilSafe(t *testing.T) {
	var m *Metrics
	m.IncCreated("notices")
}

func TestHandlerExposesRequestMetrics(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "/api/notices", "200", 0.01)
	m.ObserveRequest("GET", "/api/notices", "200", 0.02)
	m.IncCreated("gallery")

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/notices", "200")); got != 2 {
		t.Errorf("requests = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.documentsCreated.WithLabelValues("gallery")); got != 1 {
		t.Errorf("created = %v, want 1", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	for _, name := range []string{
		"portal_http_requests_total",
		"portal_http_request_duration_seconds",
		"portal_documents_created_total",
	} {
		if !strings.Contains(body, name) {
			t.Errorf("expected %s in exposition", name)
		}
	}
}
