package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/winexplorer/backend/internal/metrics"
)

func TestMiddleware_RecordsMatchedRoute(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/folders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	outer := http.NewServeMux()
	outer.Handle("/", metrics.Middleware(mux))
	outer.Handle("GET /metrics", metrics.Handler())

	rec := httptest.NewRecorder()
	outer.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/folders/abc", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}

	metrics.SetCatalogItems(4, 9)

	rec = httptest.NewRecorder()
	outer.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	text := string(body)

	if !strings.Contains(text, "explorer_http_requests_total") {
		t.Error("expected request counter in exposition")
	}
	if !strings.Contains(text, `explorer_catalog_items{type="folder"} 9`) {
		t.Error("expected folder gauge in exposition")
	}
}
