// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carouselai/internal/ai"
	"carouselai/internal/carousel"
	"carouselai/internal/handlers"
	"carouselai/internal/storage"
)

type echoProvider struct{}

func (echoProvider) Name() string { return "echo" }
func (echoProvider) Generate(_ context.Context, req ai.TextRequest) (string, error) {
	return "ok", nil
}

// newTestRouter builds a router whose API has no stores; only routes that
// never reach the database are exercised here.
func newTestRouter(t *testing.T, opts Options) http.Handler {
	t.Helper()
	media, err := storage.NewFileStore(t.TempDir(), "/media/")
	if err != nil {
		t.Fatal(err)
	}
	registry := ai.NewRegistry(context.Background(), "echo", nil)
	registry.Register("echo", echoProvider{})
	api := handlers.NewAPI(nil, nil, registry, carousel.NewPipeline(registry, carousel.DefaultOptions()), media, nil)
	return New(api, opts)
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestRoutes(t *testing.T) {
	h := newTestRouter(t, Options{})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"wrong method on generate", http.MethodGet, "/api/generate-carousel/", "", http.StatusMethodNotAllowed},
		{"wrong method on slides", http.MethodPost, "/api/project/1/slides/", "", http.StatusMethodNotAllowed},
		{"unknown path", http.MethodGet, "/api/unknown/", "", http.StatusNotFound},
		{"update-slide validates", http.MethodPost, "/api/update-slide/", `{}`, http.StatusBadRequest},
		{"generate validates", http.MethodPost, "/api/generate-carousel/", `{}`, http.StatusBadRequest},
		{"test provider", http.MethodPost, "/api/test-openai/", "", http.StatusOK},
		{"providers", http.MethodGet, "/api/ai/providers", "", http.StatusOK},
		{"media disabled", http.MethodGet, "/media/x.png", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != tt.status {
				t.Fatalf("%s %s: got %d, want %d; body %s", tt.method, tt.path, rr.Code, tt.status, rr.Body.String())
			}
			if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
				t.Errorf("content-type = %q, want JSON", ct)
			}
			if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Error("secure headers missing")
			}
		})
	}
}

func TestMethodNotAllowedBody(t *testing.T) {
	h := newTestRouter(t, Options{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/update-slide/", nil))

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["error"] != "Method not allowed" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestMediaServing(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "slides", "tea"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "slides", "tea", "canva_slide_1_abc.png"), []byte("png-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := newTestRouter(t, Options{MediaDir: dir})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/media/slides/tea/canva_slide_1_abc.png", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Body.String() != "png-bytes" {
		t.Errorf("body = %q", rr.Body.String())
	}
}

func TestMaxBodyApplied(t *testing.T) {
	h := newTestRouter(t, Options{MaxBody: 16})

	req := httptest.NewRequest(http.MethodPost, "/api/generate-carousel/",
		strings.NewReader(`{"topic":"a topic that is far too long for the cap"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rr.Code)
	}
}
