// Package middleware contains middleware functions for the API
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/golang-jwt/jwt/v5"
	apiError "github.com/mign0n/foodgram-project/internal/api/error"
	"github.com/mign0n/foodgram-project/internal/api/requestid"
	"github.com/mign0n/foodgram-project/internal/api/token"
	"github.com/mign0n/foodgram-project/internal/config"
	"github.com/mign0n/foodgram-project/internal/env"
	fgJwt "github.com/mign0n/foodgram-project/internal/jwt"
	"github.com/mign0n/foodgram-project/internal/log"
	"github.com/mign0n/foodgram-project/internal/role"
)

const corsMaxAge = 86400

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		RecoverPanics: true,
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if id := requestid.ExtractRequestID(r.Context()); id != "" {
				return []slog.Attr{slog.String("log_id", id)}
			}
			return []slog.Attr{slog.String("log_id", "N/A")}
		},
	})
}

// AddRequestID adds a request ID to the request context and echoes it in
// the X-Request-Id response header.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestid.New()
		ctx := log.AppendCtx(r.Context(), slog.String("log_id", id))
		ctx = requestid.InjectRequestID(ctx, id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Cors allows the configured origins, falling back to the host origin.
func Cors(conf config.Config) func(http.Handler) http.Handler {
	origins := conf.Server.CORSOrigins
	if len(origins) == 0 && conf.HostOrigin != "" {
		origins = []string{conf.HostOrigin}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}

// RateLimit limits each caller to conf.Requests per conf.Window. Callers are
// keyed by user id when authenticated, by IP otherwise. A zero limit
// disables the middleware.
func RateLimit(conf config.RateLimit) func(http.Handler) http.Handler {
	if conf.Requests <= 0 || conf.Window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		conf.Requests,
		conf.Window,
		httprate.WithKeyFuncs(keyByUser),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			requestID := requestid.ExtractRequestID(r.Context())
			_ = apiError.EncodeError(w, apiError.TooManyRequests, "too many requests", requestID)
		}),
	)
}

func keyByUser(r *http.Request) (string, error) {
	if userID, err := token.UserIDFromCtx(r.Context()); err == nil {
		return "user:" + strconv.FormatInt(userID, 10), nil
	}
	return httprate.KeyByIP(r)
}

// AuthorizeRequest creates a middleware that validates JWT tokens and checks user roles.
func AuthorizeRequest(requiredRole role.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			env := env.EnvFromCtx(ctx)
			requestID := requestid.ExtractRequestID(ctx)

			rawToken, err := token.FromRequest(r, env)
			if err != nil {
				env.Logger.DebugContext(ctx, "no access token", slog.Any("error", err))
				_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
				return
			}

			secret, version, err := token.Secret(env)
			if err != nil {
				env.Logger.ErrorContext(ctx, "failed to load app secret", slog.Any("error", err))
				_ = apiError.EncodeInternalError(w, requestID)
				return
			}

			claims, err := fgJwt.Validate(rawToken, version, secret)
			if errors.Is(err, jwt.ErrTokenExpired) {
				env.Logger.DebugContext(ctx, "access token expired", slog.Any("error", err))
				_ = apiError.EncodeError(w, apiError.ExpiredAccessToken, "access token expired", requestID)
				return
			} else if err != nil {
				env.Logger.DebugContext(ctx, "invalid access token", slog.Any("error", err))
				_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				env.Logger.ErrorContext(ctx, "failed to parse user id", slog.Any("error", err))
				_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
				return
			}
			ctx = log.AppendCtx(ctx, slog.Int64("user-id", userID))
			ctx = token.UserIDWithCtx(ctx, userID)

			userRole := role.ToRole(claims.Role)
			if !userRole.Allows(requiredRole) {
				env.Logger.DebugContext(ctx, "user does not have required role",
					slog.String("user-role", userRole.String()),
					slog.String("required-role", requiredRole.String()))
				_ = apiError.EncodeError(w, apiError.InsufficientPermissions, "insufficient permissions", requestID)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
