package token

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mign0n/foodgram-project/internal/config"
	"github.com/mign0n/foodgram-project/internal/env"
	"github.com/mign0n/foodgram-project/internal/jwt"
)

func testEnv(prod bool) *env.Env {
	e := env.Null()
	secret := config.AppSecretValue("0123456789abcdef0123456789abcdef")
	e.Config.AppSecret.Value = &secret
	if prod {
		e.Config.Env = config.EnvProd
	}
	return e
}

func TestNewAccessToken(t *testing.T) {
	e := testEnv(false)
	raw, err := NewAccessToken(jwt.Params{UserID: 7, Role: "user"}, e)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}
	claims, err := jwt.Validate(raw, jwt.DefaultKID, []byte(*e.Config.AppSecret.Value))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if id, _ := claims.UserID(); id != 7 {
		t.Errorf("UserID = %d, want 7", id)
	}
}

func TestNewAccessTokenNoSecret(t *testing.T) {
	if _, err := NewAccessToken(jwt.Params{UserID: 1}, env.Null()); !errors.Is(err, ErrNoSecret) {
		t.Errorf("error = %v, want %v", err, ErrNoSecret)
	}
}

func TestCookie(t *testing.T) {
	dev := NewAccessTokenCookie("abc", testEnv(false))
	if dev.Name != "access" || dev.Secure {
		t.Errorf("dev cookie = %+v", dev)
	}
	prod := NewAccessTokenCookie("abc", testEnv(true))
	if prod.Name != "__Host-Http-access" || !prod.Secure || !prod.HttpOnly {
		t.Errorf("prod cookie = %+v", prod)
	}
}

func TestFromRequest(t *testing.T) {
	e := testEnv(false)

	tests := []struct {
		name    string
		prepare func(r *http.Request)
		want    string
		wantErr bool
	}{
		{
			name:    "bearer header",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer tok") },
			want:    "tok",
		},
		{
			name:    "cookie",
			prepare: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "access", Value: "cookie-tok"}) },
			want:    "cookie-tok",
		},
		{
			name: "header wins over cookie",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer header-tok")
				r.AddCookie(&http.Cookie{Name: "access", Value: "cookie-tok"})
			},
			want: "header-tok",
		},
		{
			name:    "wrong scheme",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") },
			wantErr: true,
		},
		{
			name:    "nothing",
			prepare: func(*http.Request) {},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(r)
			got, err := FromRequest(r, e)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FromRequest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserIDCtx(t *testing.T) {
	if _, err := UserIDFromCtx(context.Background()); !errors.Is(err, ErrUserIDMissing) {
		t.Errorf("error = %v, want %v", err, ErrUserIDMissing)
	}
	id, err := UserIDFromCtx(UserIDWithCtx(context.Background(), 9))
	if err != nil || id != 9 {
		t.Errorf("UserIDFromCtx() = %d, %v", id, err)
	}
}
