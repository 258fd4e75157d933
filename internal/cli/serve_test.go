package cli

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mpelleau/cnf2lightswitch/pkg/pipeline"
)

func testRouter() http.Handler {
	artifacts := map[string][]byte{
		pipeline.FormatSVG:  []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`),
		pipeline.FormatJSON: []byte(`{"vars":2}`),
		pipeline.FormatDOT:  []byte("graph circuit {}"),
		pipeline.FormatPNG:  []byte{0x89, 'P', 'N', 'G'},
	}
	slides := [][]byte{
		[]byte("<svg>slide 1</svg>"),
		[]byte("<svg>slide 2</svg>"),
	}
	return newDeckRouter(artifacts, slides, `"deadbeef"`, newLogger(io.Discard, log.ErrorLevel))
}

func TestDeckRouterRoutes(t *testing.T) {
	tests := []struct {
		path        string
		contentType string
		body        string
	}{
		{"/", "image/svg+xml", "<svg"},
		{"/layer/1", "image/svg+xml", "slide 1"},
		{"/layer/2", "image/svg+xml", "slide 2"},
		{"/deck.json", "application/json", `"vars"`},
		{"/circuit.dot", "text/vnd.graphviz", "graph circuit"},
		{"/healthz", "", "ok"},
	}

	router := testRouter()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("GET %s = %d, want 200", tt.path, rec.Code)
			}
			if tt.contentType != "" && rec.Header().Get("Content-Type") != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", rec.Header().Get("Content-Type"), tt.contentType)
			}
			if body := rec.Body.String(); tt.body != "" && !strings.Contains(body, tt.body) {
				t.Errorf("body %q should contain %q", body, tt.body)
			}
		})
	}
}

func TestDeckRouterETag(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("response should carry an ETag")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Errorf("matching If-None-Match = %d, want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Error("304 response should have no body")
	}
}

func TestDeckRouterNotFound(t *testing.T) {
	router := testRouter()
	for _, path := range []string{"/missing", "/layer/0", "/layer/3", "/layer/x"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s = %d, want 404", path, rec.Code)
		}
	}
}
