package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	_ "github.com/winexplorer/backend/docs"
	"github.com/winexplorer/backend/internal/api"
	"github.com/winexplorer/backend/internal/catalog"
	"github.com/winexplorer/backend/internal/domain/item"
	"github.com/winexplorer/backend/internal/service"
	"github.com/winexplorer/backend/internal/web"
)

var staticFS = fstest.MapFS{
	"index.html":    {Data: []byte("<html>explorer</html>")},
	"static/app.js": {Data: []byte("console.log('hi')")},
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	c, err := catalog.NewSeeded(time.Now())
	if err != nil {
		t.Fatalf("NewSeeded: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := api.NewHandler(service.NewExplorerService(c, logger), logger)

	srv := httptest.NewServer(api.NewRouter(h, staticFS, []string{"*"}))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp
}

type folderResponse struct {
	Folder   item.Item   `json:"folder"`
	Children []item.Item `json:"children"`
}

func TestGetFolder_WorkDocs(t *testing.T) {
	srv := newServer(t)

	var body folderResponse
	resp := get(t, srv, "/api/folders/work_docs", &body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}
	if body.Folder.ID != "work_docs" {
		t.Errorf("expected folder work_docs, got %q", body.Folder.ID)
	}
	if len(body.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(body.Children))
	}
	names := []string{body.Children[0].Name, body.Children[1].Name}
	if names[0] != "Annual Report.docx" || names[1] != "Q4 Presentation.pptx" {
		t.Errorf("unexpected children %v", names)
	}
	for _, c := range body.Children {
		if c.Kind != item.KindFile || c.Size == nil {
			t.Errorf("%s: expected file with size", c.Name)
		}
	}
}

func TestGetFolder_Root(t *testing.T) {
	srv := newServer(t)

	var raw map[string]json.RawMessage
	get(t, srv, "/api/folders/root", &raw)

	var folder map[string]any
	if err := json.Unmarshal(raw["folder"], &folder); err != nil {
		t.Fatal(err)
	}
	if folder["name"] != "This PC" || folder["parent_id"] != nil || folder["path"] != "/" {
		t.Errorf("unexpected root %v", folder)
	}
	if _, ok := folder["children"]; ok {
		t.Error("expected flat folder without children key")
	}
}

func TestGetFolder_Errors(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		path   string
		status int
		detail string
	}{
		{"/api/folders/missing", http.StatusNotFound, "Folder not found"},
		{"/api/folders/report_doc", http.StatusBadRequest, "Item is not a folder"},
	}
	for _, tt := range tests {
		var body api.ErrorResponse
		resp := get(t, srv, tt.path, &body)
		if resp.StatusCode != tt.status {
			t.Errorf("%s: expected %d, got %d", tt.path, tt.status, resp.StatusCode)
		}
		if body.Detail != tt.detail {
			t.Errorf("%s: expected detail %q, got %q", tt.path, tt.detail, body.Detail)
		}
	}
}

func TestGetTree(t *testing.T) {
	srv := newServer(t)

	var tree []item.Item
	resp := get(t, srv, "/api/tree", &tree)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var names []string
	for _, n := range tree {
		names = append(names, n.Name)
		if n.HasChildren && len(n.Children) == 0 {
			t.Errorf("%s: expected nested children", n.Name)
		}
	}
	if strings.Join(names, ",") != "Documents,Pictures,Projects" {
		t.Errorf("unexpected top level %v", names)
	}

	// Projects → Web Development → my-react-app → index.js
	leaf := tree[2].Children[0].Children[0].Children[0]
	if leaf.Name != "index.js" {
		t.Errorf("expected index.js deep in the tree, got %q", leaf.Name)
	}
}

func TestGetBreadcrumbs(t *testing.T) {
	srv := newServer(t)

	var crumbs []item.Breadcrumb
	get(t, srv, "/api/breadcrumbs/work_docs", &crumbs)

	var names, ids []string
	for _, c := range crumbs {
		names = append(names, c.Name)
		ids = append(ids, c.ID)
	}
	if strings.Join(names, "|") != "This PC|Documents|Work Documents" {
		t.Errorf("unexpected names %v", names)
	}
	if strings.Join(ids, "|") != "root|documents|work_docs" {
		t.Errorf("unexpected ids %v", ids)
	}
}

func TestGetBreadcrumbs_UnknownIsEmptyArray(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/api/breadcrumbs/ghost")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if strings.TrimSpace(string(body)) != "[]" {
		t.Errorf("expected [], got %s", body)
	}
}

func TestSearch(t *testing.T) {
	srv := newServer(t)

	var results []item.Item
	get(t, srv, "/api/search/REPORT", &results)
	if len(results) != 1 || results[0].ID != "report_doc" {
		t.Errorf("expected only report_doc, got %+v", results)
	}

	results = nil
	get(t, srv, "/api/search/Q4%20Pres", &results)
	if len(results) != 1 || results[0].ID != "presentation" {
		t.Errorf("expected only presentation, got %+v", results)
	}

	results = nil
	resp := get(t, srv, "/api/search/nothing-matches", &results)
	if resp.StatusCode != http.StatusOK || results == nil || len(results) != 0 {
		t.Errorf("expected 200 with empty array, got %d %v", resp.StatusCode, results)
	}
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	srv := newServer(t)

	var results []item.Item
	resp := get(t, srv, "/api/search/", &results)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(results) != 13 {
		t.Errorf("expected all 13 items, got %d", len(results))
	}
}

func TestHealth(t *testing.T) {
	srv := newServer(t)

	var body api.HealthResponse
	resp := get(t, srv, "/api/health", &body)
	if resp.StatusCode != http.StatusOK || body.Status != "healthy" || body.Message == "" {
		t.Errorf("unexpected health response %d %+v", resp.StatusCode, body)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestUnknownAPIPath(t *testing.T) {
	srv := newServer(t)

	var body api.ErrorResponse
	resp := get(t, srv, "/api/nope", &body)
	if resp.StatusCode != http.StatusNotFound || body.Detail != "API endpoint not found" {
		t.Errorf("unexpected response %d %+v", resp.StatusCode, body)
	}
}

func TestAPI_WrongMethodIsNotAllowed(t *testing.T) {
	srv := newServer(t)

	for _, path := range []string{"/api/tree", "/api/folders/root", "/api/nope"} {
		resp, err := http.Post(srv.URL+path, "application/json", nil)
		if err != nil {
			t.Fatalf("POST %s: %v", path, err)
		}
		var body api.ErrorResponse
		err = json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}

		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("POST %s: expected 405, got %d", path, resp.StatusCode)
		}
		if allow := resp.Header.Get("Allow"); !strings.Contains(allow, "GET") {
			t.Errorf("POST %s: expected Allow to list GET, got %q", path, allow)
		}
		if body.Detail != "Method Not Allowed" {
			t.Errorf("POST %s: unexpected detail %q", path, body.Detail)
		}
	}
}

func TestSPAFallback(t *testing.T) {
	srv := newServer(t)

	for _, path := range []string{"/", "/folder/work_docs", "/some/deep/route"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK || string(body) != "<html>explorer</html>" {
			t.Errorf("%s: expected index.html, got %d %q", path, resp.StatusCode, body)
		}
	}

	resp, err := http.Get(srv.URL + "/static/app.js")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "console.log('hi')" {
		t.Errorf("expected static asset, got %q", body)
	}
}

func TestSPA_EmbeddedClient(t *testing.T) {
	rec := httptest.NewRecorder()
	api.SPA(web.Dist()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/folder/documents", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<title>Explorer</title>") {
		t.Error("expected embedded index.html")
	}
}

func TestCORS(t *testing.T) {
	srv := newServer(t)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/tree", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204 preflight, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("unexpected allow-origin %q", got)
	}
	if got := resp.Header.Get("Access-Control-Allow-Headers"); got != "content-type" {
		t.Errorf("unexpected allow-headers %q", got)
	}
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := api.CORS([]string{"http://allowed.test"})(next)

	req := httptest.NewRequest(http.MethodGet, "/api/tree", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("expected no CORS headers for a foreign origin")
	}
}

func TestRecover(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := api.Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tree", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestMetricsAndSwagger(t *testing.T) {
	srv := newServer(t)
	get(t, srv, "/api/health", nil)

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), `route="GET /api/health"`) {
		t.Error("expected health route in metrics")
	}

	resp, err = http.Get(srv.URL + "/swagger/doc.json")
	if err != nil {
		t.Fatal(err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "/api/folders/{folderID}") {
		t.Errorf("expected swagger document, got %d", resp.StatusCode)
	}
}
