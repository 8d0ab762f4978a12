// Package ingredients contains read-only handlers for the ingredient catalog.
package ingredients

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	apiError "github.com/mign0n/foodgram-project/internal/api/error"
	"github.com/mign0n/foodgram-project/internal/api/requestid"
	"github.com/mign0n/foodgram-project/internal/database"
	"github.com/mign0n/foodgram-project/internal/env"
	mJson "github.com/mign0n/foodgram-project/internal/json"
)

type IngredientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func toResponse(i database.Ingredient) IngredientResponse {
	return IngredientResponse{ID: i.ID, Name: i.Name, MeasurementUnit: i.MeasurementUnit}
}

// ListIngredients godoc
//
//	@Summary		List ingredients.
//	@Description	Names starting with `name` come first; when none do, the closest fuzzy matches are returned.
//	@Tags			Ingredients
//
//	@Produce		json
//	@Param			name	query		string	false	"Name prefix"
//	@Success		200		{array}		IngredientResponse
//	@Failure		500		{object}	apiError.Error	"Internal Server Error"
//	@Router			/ingredients [GET]
func ListIngredients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	if env.Catalog == nil {
		env.Logger.ErrorContext(ctx, "ingredient catalog not configured")
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	found, err := env.Catalog.Search(ctx, r.URL.Query().Get("name"))
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to search ingredients", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	resp := make([]IngredientResponse, 0, len(found))
	for _, i := range found {
		resp = append(resp, toResponse(i))
	}
	w.Header().Set("Content-Type", "application/json")
	if err := mJson.Write(w, resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// GetIngredient godoc
//
//	@Summary	Get an ingredient.
//	@Tags		Ingredients
//
//	@Produce	json
//	@Param		ingredientID	path		int	true	"Ingredient ID"
//	@Success	200				{object}	IngredientResponse
//	@Failure	400				{object}	apiError.Error	"Bad Request"
//	@Failure	404				{object}	apiError.Error	"Not Found"
//	@Router		/ingredients/{ingredientID} [GET]
func GetIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := strconv.ParseInt(chi.URLParam(r, "ingredientID"), 10, 64)
	if err != nil || id <= 0 {
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid ingredient id", requestID)
		return
	}

	ingredient, err := env.Database.GetIngredient(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		_ = apiError.EncodeError(w, apiError.IngredientNotFound, "ingredient not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get ingredient", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := mJson.Write(w, toResponse(ingredient)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
