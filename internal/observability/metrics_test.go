package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.EventCreated()
	m.EventCreated()
	m.ConnectionCreated(domain.ConnectionLinear)
	m.ConnectionCreated(domain.ConnectionTimeTravel)
	m.ConnectionCreated(domain.ConnectionTimeTravel)
	m.ConnectionRejected()
	m.ImportCompleted(3, map[string]int{"dangling": 2})

	if got := testutil.ToFloat64(m.eventsCreated); got != 2 {
		t.Errorf("events created: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.connectionsCreated.WithLabelValues("TIMETRAVEL")); got != 2 {
		t.Errorf("timetravel connections: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.rejectedLinks); got != 1 {
		t.Errorf("rejected: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.importedEvents); got != 3 {
		t.Errorf("imported events: got %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.skippedImports.WithLabelValues("dangling")); got != 2 {
		t.Errorf("skipped: got %v, want 2", got)
	}
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObserveHTTP(http.MethodGet, "GET /api/events", 200, 10*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "", 404, time.Millisecond)

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "GET /api/events", "200")); got != 1 {
		t.Errorf("requests: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Errorf("unmatched requests: got %v, want 1", got)
	}
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.EventCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "ariane_timeline_events_created_total 1") {
		t.Errorf("exposition missing counter:\n%s", body)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.EventCreated()
	m.ConnectionCreated(domain.ConnectionLinear)
	m.ConnectionRejected()
	m.AnalysisCompleted(3)
	m.ImportCompleted(1, nil)
	m.ObserveHTTP("GET", "/", 200, time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("nil handler: got %d, want 404", rec.Code)
	}
}
