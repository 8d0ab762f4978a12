package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mign0n/foodgram-project/internal/env"
)

func TestRouter(t *testing.T) {
	router := NewRouter(env.Null())

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
	}{
		{"ping", http.MethodGet, "/api/ping", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"swagger doc", http.MethodGet, "/api/swagger/doc.json", http.StatusOK},
		{"recipe requires auth", http.MethodGet, "/api/recipes/1", http.StatusUnauthorized},
		{"download requires auth", http.MethodGet, "/api/recipes/download_shopping_cart", http.StatusUnauthorized},
		{"cart requires auth", http.MethodPost, "/api/recipes/1/shopping_cart", http.StatusUnauthorized},
		{"admin requires auth", http.MethodPost, "/api/admin/users", http.StatusUnauthorized},
		{"unknown route", http.MethodGet, "/api/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.wantCode {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.wantCode)
			}
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(env.Null()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	if id := rec.Header().Get("X-Request-Id"); len(id) != 26 {
		t.Errorf("X-Request-Id = %q, want a ULID", id)
	}
}

func TestSwaggerDocTitle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(env.Null()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/swagger/doc.json", nil))
	if !strings.Contains(rec.Body.String(), "Foodgram API") {
		t.Errorf("doc.json does not describe the API: %s", rec.Body.String())
	}
}
