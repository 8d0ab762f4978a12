// Package auth contains handlers for the auth endpoints
package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	apiError "github.com/mign0n/foodgram-project/internal/api/error"
	"github.com/mign0n/foodgram-project/internal/api/requestid"
	"github.com/mign0n/foodgram-project/internal/api/token"
	"github.com/mign0n/foodgram-project/internal/argon2id"
	"github.com/mign0n/foodgram-project/internal/env"
	mJson "github.com/mign0n/foodgram-project/internal/json"
	"github.com/mign0n/foodgram-project/internal/jwt"
	"github.com/mign0n/foodgram-project/internal/role"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// HandleLogin godoc
//
//	@Summary	Log in with email and password.
//	@Tags		Auth
//
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LoginRequest	true	"Login Request"
//
//	@Success	200		{object}	LoginResponse
//	@Failure	400		{object}	apiError.Error	"Bad Request"
//	@Failure	401		{object}	apiError.Error	"Unauthorized"
//	@Router		/auth/login [POST]
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request LoginRequest
	env.Logger.DebugContext(ctx, "reading request body")
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeStrict(r.Body, &request); err != nil {
		env.Logger.DebugContext(ctx, "failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.DebugContext(ctx, "failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "retrieving user")
	user, err := env.Database.GetUserByEmail(ctx, request.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.DebugContext(ctx, "no user with email")
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "email or password is incorrect", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to retrieve user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "comparing passwords")
	match, err := argon2id.Compare(request.Password, user.PasswordHash)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode password hash", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !match {
		env.Logger.DebugContext(ctx, "password is incorrect")
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "email or password is incorrect", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "generating access token")
	accessToken, err := token.NewAccessToken(jwt.Params{
		UserID: user.ID,
		Role:   role.DBToRole(user.Role).String(),
	}, env)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create access token", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	cookie := token.NewAccessTokenCookie(accessToken, env)
	http.SetCookie(w, cookie)
	w.Header().Set("Content-Type", "application/json")
	if err := mJson.Write(w, LoginResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   cookie.MaxAge,
	}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
