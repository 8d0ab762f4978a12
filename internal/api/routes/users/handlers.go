// Package users contains handlers for the user resource.
package users

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	apiError "github.com/mign0n/foodgram-project/internal/api/error"
	"github.com/mign0n/foodgram-project/internal/api/requestid"
	"github.com/mign0n/foodgram-project/internal/argon2id"
	"github.com/mign0n/foodgram-project/internal/database"
	"github.com/mign0n/foodgram-project/internal/env"
	mJson "github.com/mign0n/foodgram-project/internal/json"
	"github.com/mign0n/foodgram-project/internal/password"
	"github.com/mign0n/foodgram-project/internal/role"
)

// HashParams is used to hash new passwords. Tests swap in cheaper ones.
var HashParams = argon2id.DefaultParams

// HandleCreateUser godoc
//
//	@Summary	Create a user.
//	@Tags		Admin
//
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateUserRequest	true	"Create User Request"
//
//	@Success	201		{object}	CreateUserResponse
//	@Failure	400		{object}	apiError.Error	"Bad Request"
//	@Failure	409		{object}	apiError.Error	"Status Conflict"
//	@Failure	422		{object}	apiError.Error	"Unprocessible Entity"
//	@Security	BearerAuth
//	@Router		/admin/users [POST]
func HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request CreateUserRequest
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

	env.Logger.DebugContext(ctx, "validating password")
	if err := password.ValidatePassword(request.Password); err != nil {
		env.Logger.DebugContext(ctx, "password rejected", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.WeakPassword, err.Error(), requestID)
		return
	}

	env.Logger.DebugContext(ctx, "hashing password")
	hash, err := argon2id.EncodeHash(request.Password, HashParams)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	userRole := role.RoleUser
	if request.Role != "" {
		userRole = role.ToRole(request.Role)
	}

	env.Logger.DebugContext(ctx, "creating user")
	userID, err := env.Database.CreateUser(ctx, database.CreateUserParams{
		Email:        request.Email,
		Username:     request.Username,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PasswordHash: hash,
		Role:         userRole.ToDB(),
	})
	if database.IsUniqueViolation(err) {
		env.Logger.DebugContext(ctx, "user already exists",
			slog.String("constraint", database.ConstraintName(err)))
		_ = apiError.EncodeError(w, apiError.EmailConflict, "email or username already in use", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := mJson.Write(w, CreateUserResponse{UserID: userID}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
