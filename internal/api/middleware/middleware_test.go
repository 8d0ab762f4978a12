package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	apiError "github.com/mign0n/foodgram-project/internal/api/error"
	"github.com/mign0n/foodgram-project/internal/api/requestid"
	"github.com/mign0n/foodgram-project/internal/api/token"
	"github.com/mign0n/foodgram-project/internal/config"
	"github.com/mign0n/foodgram-project/internal/env"
	fgJwt "github.com/mign0n/foodgram-project/internal/jwt"
	"github.com/mign0n/foodgram-project/internal/role"
)

const testSecret = "test-secret-32-bytes-long-123456"

func testEnv() *env.Env {
	e := env.Null()
	secret := config.AppSecretValue(testSecret)
	e.Config.AppSecret.Value = &secret
	return e
}

func signed(t *testing.T, userID int64, r role.Role, issued time.Time) string {
	t.Helper()
	raw, err := fgJwt.Generate(fgJwt.Params{UserID: userID, Role: r.String()}, []byte(testSecret), fgJwt.DefaultKID, issued)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return raw
}

func TestAuthorizeRequest(t *testing.T) {
	tests := []struct {
		name     string
		required role.Role
		header   string
		wantCode int
		wantErr  apiError.ErrorCode
	}{
		{
			name:     "valid user token",
			required: role.RoleUser,
			header:   "Bearer " + signed(t, 5, role.RoleUser, time.Now()),
			wantCode: http.StatusOK,
		},
		{
			name:     "admin satisfies user",
			required: role.RoleUser,
			header:   "Bearer " + signed(t, 1, role.RoleAdmin, time.Now()),
			wantCode: http.StatusOK,
		},
		{
			name:     "user cannot reach admin",
			required: role.RoleAdmin,
			header:   "Bearer " + signed(t, 5, role.RoleUser, time.Now()),
			wantCode: http.StatusForbidden,
			wantErr:  apiError.InsufficientPermissions,
		},
		{
			name:     "expired",
			required: role.RoleUser,
			header:   "Bearer " + signed(t, 5, role.RoleUser, time.Now().Add(-2*fgJwt.JWTDuration)),
			wantCode: http.StatusUnauthorized,
			wantErr:  apiError.ExpiredAccessToken,
		},
		{
			name:     "missing",
			required: role.RoleUser,
			wantCode: http.StatusUnauthorized,
			wantErr:  apiError.InvalidAccessToken,
		},
		{
			name:     "garbage",
			required: role.RoleUser,
			header:   "Bearer nope",
			wantCode: http.StatusUnauthorized,
			wantErr:  apiError.InvalidAccessToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = token.UserIDFromCtx(r.Context())
			})
			h := InjectEnv(testEnv())(AuthorizeRequest(tt.required)(next))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantErr == "" {
				if gotUserID == 0 {
					t.Error("user id was not stored in the context")
				}
				return
			}
			var body apiError.Error
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding error body: %v", err)
			}
			if body.Code != tt.wantErr {
				t.Errorf("code = %q, want %q", body.Code, tt.wantErr)
			}
		})
	}
}

func TestAuthorizeRequestNoSecret(t *testing.T) {
	h := InjectEnv(env.Null())(AuthorizeRequest(role.RoleUser)(http.NotFoundHandler()))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed(t, 1, role.RoleUser, time.Now()))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestAddRequestID(t *testing.T) {
	var seen string
	h := AddRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.ExtractRequestID(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("request id missing from context")
	}
	if got := rec.Header().Get("X-Request-Id"); got != seen {
		t.Errorf("X-Request-Id = %q, want %q", got, seen)
	}
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(config.RateLimit{Requests: 2, Window: time.Minute})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [200 200 429]", codes)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	h := RateLimit(config.RateLimit{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	for range 5 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	}
}

func TestCors(t *testing.T) {
	h := Cors(config.Config{HostOrigin: "http://localhost:3000"})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected Access-Control-Allow-Origin %q for foreign origin", got)
	}
}
