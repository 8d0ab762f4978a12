package recipes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/mock/gomock"

	apiError "github.com/mign0n/foodgram-project/internal/api/error"
	"github.com/mign0n/foodgram-project/internal/api/token"
	"github.com/mign0n/foodgram-project/internal/config"
	"github.com/mign0n/foodgram-project/internal/database"
	"github.com/mign0n/foodgram-project/internal/env"
	"github.com/mign0n/foodgram-project/internal/log"
)

const callerID int64 = 7

// newRouter mounts the recipe routes behind a fake authentication step
// that always identifies the caller as callerID.
func newRouter(t *testing.T, mockDB *database.MockQuerier, conf config.Config) http.Handler {
	t.Helper()
	e, err := env.New(log.NullLogger(), &database.Database{Querier: mockDB}, conf)
	if err != nil {
		t.Fatal(err)
	}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := env.WithCtx(req.Context(), e)
			ctx = token.UserIDWithCtx(ctx, callerID)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Post("/recipes", CreateRecipe)
	r.Get("/recipes/download_shopping_cart", DownloadShoppingCart)
	r.Get("/recipes/{recipeID}", GetRecipe)
	r.Delete("/recipes/{recipeID}", DeleteRecipe)
	r.Post("/recipes/{recipeID}/shopping_cart", AddToShoppingCart)
	r.Delete("/recipes/{recipeID}/shopping_cart", RemoveFromShoppingCart)
	r.Post("/recipes/{recipeID}/favorite", AddToFavorites)
	r.Delete("/recipes/{recipeID}/favorite", RemoveFromFavorites)
	return r
}

func serve(t *testing.T, h http.Handler, method, path string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func newMock(t *testing.T) *database.MockQuerier {
	t.Helper()
	return database.NewMockQuerier(gomock.NewController(t))
}

func body(s string) io.Reader {
	return strings.NewReader(s)
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantCode apiError.ErrorCode) {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, wantStatus, rec.Body.String())
	}
	var e apiError.Error
	if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if e.Code != wantCode {
		t.Errorf("code = %q, want %q", e.Code, wantCode)
	}
}
