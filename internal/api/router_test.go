package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amslabs/ams/internal/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	ts := httptest.NewServer(NewRouter(&cfg))
	t.Cleanup(ts.Close)
	return ts
}

// TestRoutes_Integration verifies every route works through the full router
// (middleware chain included).
func TestRoutes_Integration(t *testing.T) {
	ts := newTestServer(t)
	client := ts.Client()

	tests := []struct {
		name      string
		path      string
		wantField string
		wantValue string
	}{
		{"root", "/", "status", "operational"},
		{"health", "/health", "status", "healthy"},
		{"healthz", "/healthz", "status", "ok"},
		{"api status", "/api/v1/status", "api_version", "v1"},
		{"agents", "/api/v1/agents", "message", "Agent management coming soon"},
		{"metrics", "/api/v1/metrics", "message", "Metrics dashboard coming soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.Get(ts.URL + tt.path)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %q", ct)
			}

			var body map[string]any
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if body[tt.wantField] != tt.wantValue {
				t.Errorf("expected %s %q, got %v", tt.wantField, tt.wantValue, body[tt.wantField])
			}
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/api/v1/nonexistent")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t)
	client := ts.Client()

	t.Run("Simple Request", func(t *testing.T) {
		req, _ := http.NewRequest("GET", ts.URL+"/api/v1/status", nil)
		req.Header.Set("Origin", "https://dashboard.example.com")

		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://dashboard.example.com" {
			t.Errorf("expected origin echoed back, got %q", got)
		}
		if resp.Header.Get("Access-Control-Allow-Credentials") != "true" {
			t.Error("expected credentials allowed")
		}
	})

	t.Run("Preflight", func(t *testing.T) {
		req, _ := http.NewRequest("OPTIONS", ts.URL+"/api/v1/agents", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "GET")
		req.Header.Set("Access-Control-Request-Headers", "Authorization")

		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("preflight failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			t.Fatalf("expected preflight success, got %d", resp.StatusCode)
		}
		if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("expected origin echoed back, got %q", got)
		}
		if resp.Header.Get("Access-Control-Allow-Methods") == "" {
			t.Error("expected allowed methods on preflight response")
		}
	})
}

func TestSecurityHeaders(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, want := range headers {
		if got := resp.Header.Get(header); got != want {
			t.Errorf("expected %s %q, got %q", header, want, got)
		}
	}
}

func TestSwaggerDocs(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/api/docs/doc.json")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var spec map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&spec); err != nil {
		t.Fatalf("failed to decode swagger spec: %v", err)
	}
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		t.Fatalf("expected paths in swagger spec, got %T", spec["paths"])
	}
	for _, path := range []string{"/", "/health", "/api/v1/status", "/api/v1/agents", "/api/v1/metrics"} {
		if _, ok := paths[path]; !ok {
			t.Errorf("expected %s documented in swagger spec", path)
		}
	}
}
