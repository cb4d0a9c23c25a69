package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareLabelsByRouteTemplate(t *testing.T) {
	router := mux.NewRouter()
	router.Use(Middleware)
	router.HandleFunc("/runs/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	for _, path := range []string{"/runs/1", "/runs/2", "/runs/31337"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: status %d", path, w.Code)
		}
	}

	// All three requests collapse onto the template label; per-id label
	// values would grow without bound.
	got := testutil.ToFloat64(requestsTotal.WithLabelValues("/runs/{id:[0-9]+}", "200"))
	if got != 3 {
		t.Errorf("template-labeled count = %g, want 3", got)
	}
	for _, raw := range []string{"/runs/1", "/runs/2", "/runs/31337"} {
		if n := testutil.ToFloat64(requestsTotal.WithLabelValues(raw, "200")); n != 0 {
			t.Errorf("raw path %q collected %g samples", raw, n)
		}
	}
}
