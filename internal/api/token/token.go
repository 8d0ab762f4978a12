// Package token contains utilities for http tokens.
package token

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mign0n/foodgram-project/internal/config"
	"github.com/mign0n/foodgram-project/internal/env"
	"github.com/mign0n/foodgram-project/internal/jwt"
)

const (
	accessTokenLifetime = int(jwt.JWTDuration / time.Second)
	bearerPrefix        = "Bearer "
)

var (
	ErrNoToken       = errors.New("no access token in request")
	ErrNoSecret      = errors.New("app secret not configured")
	ErrUserIDMissing = errors.New("user id not found in context")
)

type userIDKeyType struct{}

var userIDKey userIDKeyType

func AccessTokenName(env *env.Env) string {
	if env.Config.Env == config.EnvProd {
		return "__Host-Http-access"
	}
	return "access"
}

// Secret returns the signing key and its version.
func Secret(env *env.Env) ([]byte, string, error) {
	value := env.Config.AppSecret.Value
	if value == nil || *value == "" {
		return nil, "", ErrNoSecret
	}
	version := env.Config.AppSecret.Version
	if version == "" {
		version = jwt.DefaultKID
	}
	return []byte(*value), version, nil
}

func NewAccessToken(params jwt.Params, env *env.Env) (string, error) {
	secret, version, err := Secret(env)
	if err != nil {
		return "", err
	}
	token, err := jwt.Generate(params, secret, version, time.Now())
	if err != nil {
		return "", fmt.Errorf("generating access token: %w", err)
	}
	return token, nil
}

func NewAccessTokenCookie(token string, env *env.Env) *http.Cookie {
	return &http.Cookie{
		Name:     AccessTokenName(env),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   accessTokenLifetime,
		SameSite: http.SameSiteLaxMode,
		Secure:   env.Config.Env == config.EnvProd,
	}
}

// FromRequest returns the raw access token, preferring the Authorization
// header over the cookie.
func FromRequest(r *http.Request, env *env.Env) (string, error) {
	if h := r.Header.Get("Authorization"); h != "" {
		if !strings.HasPrefix(h, bearerPrefix) {
			return "", ErrNoToken
		}
		return strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix)), nil
	}
	cookie, err := r.Cookie(AccessTokenName(env))
	if err != nil {
		return "", ErrNoToken
	}
	return cookie.Value, nil
}

func UserIDWithCtx(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromCtx(ctx context.Context) (int64, error) {
	if id, ok := ctx.Value(userIDKey).(int64); ok {
		return id, nil
	}
	return 0, ErrUserIDMissing
}
