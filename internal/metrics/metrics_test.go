package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveReport(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveReport(ResultValid)
	m.ObserveReport(ResultValid)
	m.ObserveReport(ResultNotFound)

	if got := testutil.ToFloat64(m.ReportsTotal.WithLabelValues(ResultValid)); got != 2 {
		t.Errorf("valid = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.ReportsTotal.WithLabelValues(ResultInvalid)); got != 0 {
		t.Errorf("invalid = %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.ReportsTotal.WithLabelValues(ResultNotFound)); got != 1 {
		t.Errorf("not_found = %v, want 1", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveReport(ResultValid)
}

func TestHandlerExposition(t *testing.T) {
	m := New(nil)
	m.CatalogVehicles.Set(12)
	m.ObserveReport(ResultInvalid)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		"fleet_catalog_vehicles 12",
		`fleet_reports_total{result="invalid"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}
