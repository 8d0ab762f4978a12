// Package recipes contains handlers for the recipes endpoint.
package recipes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	apiError "github.com/mign0n/foodgram-project/internal/api/error"
	"github.com/mign0n/foodgram-project/internal/api/requestid"
	"github.com/mign0n/foodgram-project/internal/api/token"
	"github.com/mign0n/foodgram-project/internal/database"
	"github.com/mign0n/foodgram-project/internal/env"
	mJson "github.com/mign0n/foodgram-project/internal/json"
)

var (
	errUnknownIngredient   = errors.New("unknown ingredient")
	errUnknownTag          = errors.New("unknown tag")
	errDuplicateIngredient = errors.New("ingredient listed twice")
)

// CreateRecipe godoc
//
//	@Summary		Create a recipe.
//	@Description	The caller becomes the author. Tags and ingredients must exist and may not repeat.
//	@Tags			Recipes
//
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateRecipeRequest	true	"Create Recipe Request"
//	@Success		201		{object}	RecipeResponse
//	@Failure		400		{object}	apiError.Error	"Bad Request"
//	@Failure		401		{object}	apiError.Error	"Unauthorized"
//	@Security		BearerAuth
//	@Router			/recipes [POST]
func CreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	var request CreateRecipeRequest
	env.Logger.DebugContext(ctx, "reading request body")
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeStrict(r.Body, &request); err != nil {
		env.Logger.DebugContext(ctx, "failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.DebugContext(ctx, "failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}

	env.Logger.DebugContext(ctx, "creating recipe")
	var recipeID int64
	err = env.Database.InTx(ctx, func(q database.Querier) error {
		id, err := createRecipe(ctx, q, userID, request)
		recipeID = id
		return err
	})
	switch {
	case errors.Is(err, errUnknownIngredient):
		_ = apiError.EncodeError(w, apiError.BadRequest, "unknown ingredient", requestID)
		return
	case errors.Is(err, errUnknownTag):
		_ = apiError.EncodeError(w, apiError.TagNotFound, "unknown tag", requestID)
		return
	case errors.Is(err, errDuplicateIngredient):
		_ = apiError.EncodeError(w, apiError.BadRequest, "ingredients must be unique", requestID)
		return
	case err != nil:
		env.Logger.ErrorContext(ctx, "failed to create recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	env.Logger.InfoContext(ctx, "recipe created", slog.Int64("recipe-id", recipeID))

	resp, err := loadRecipe(ctx, env.Database, recipeID, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to load created recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := mJson.Write(w, resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

func createRecipe(ctx context.Context, q database.Querier, authorID int64, request CreateRecipeRequest) (int64, error) {
	ingredientIDs := request.ingredientIDs()
	found, err := q.CountIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return 0, fmt.Errorf("counting ingredients: %w", err)
	}
	if found != int64(len(ingredientIDs)) {
		return 0, errUnknownIngredient
	}

	tags, err := q.GetTagsByIDs(ctx, request.Tags)
	if err != nil {
		return 0, fmt.Errorf("getting tags: %w", err)
	}
	if len(tags) != len(request.Tags) {
		return 0, errUnknownTag
	}

	recipeID, err := q.CreateRecipe(ctx, database.CreateRecipeParams{
		AuthorID:    authorID,
		Name:        request.Name,
		Text:        request.Text,
		CookingTime: request.CookingTime,
	})
	if err != nil {
		return 0, fmt.Errorf("inserting recipe: %w", err)
	}

	for _, ingredient := range request.Ingredients {
		err := q.AddRecipeIngredient(ctx, database.AddRecipeIngredientParams{
			RecipeID:     recipeID,
			IngredientID: ingredient.ID,
			Amount:       ingredient.Amount,
		})
		if database.IsUniqueViolation(err) {
			return 0, errDuplicateIngredient
		} else if database.IsForeignKeyViolation(err) {
			return 0, errUnknownIngredient
		} else if err != nil {
			return 0, fmt.Errorf("adding ingredient %d: %w", ingredient.ID, err)
		}
	}

	for _, tagID := range request.Tags {
		if err := q.AddRecipeTag(ctx, database.AddRecipeTagParams{RecipeID: recipeID, TagID: tagID}); err != nil {
			return 0, fmt.Errorf("adding tag %d: %w", tagID, err)
		}
	}
	return recipeID, nil
}

// GetRecipe godoc
//
//	@Summary	Get a recipe.
//	@Tags		Recipes
//
//	@Produce	json
//	@Param		recipeID	path		int	true	"Recipe ID"
//	@Success	200			{object}	RecipeResponse
//	@Failure	400			{object}	apiError.Error	"Bad Request"
//	@Failure	404			{object}	apiError.Error	"Not Found"
//	@Security	BearerAuth
//	@Router		/recipes/{recipeID} [GET]
func GetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	recipeID, err := recipeIDParam(r)
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	resp, err := loadRecipe(ctx, env.Database, recipeID, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to load recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := mJson.Write(w, resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// DeleteRecipe godoc
//
//	@Summary		Delete a recipe.
//	@Description	Only the author may delete a recipe. Its ingredients, tags, favorites and cart entries go with it.
//	@Tags			Recipes
//
//	@Param			recipeID	path	int	true	"Recipe ID"
//	@Success		204
//	@Failure		403	{object}	apiError.Error	"Forbidden"
//	@Failure		404	{object}	apiError.Error	"Not Found"
//	@Security		BearerAuth
//	@Router			/recipes/{recipeID} [DELETE]
func DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	recipeID, err := recipeIDParam(r)
	if err != nil {
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "checking recipe ownership")
	owns, err := env.Database.CheckRecipeOwnership(ctx, database.CheckRecipeOwnershipParams{
		RecipeID: recipeID,
		AuthorID: userID,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to check recipe ownership", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !owns {
		exists, err := env.Database.RecipeExists(ctx, recipeID)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to check recipe exists", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		if !exists {
			_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
			return
		}
		_ = apiError.EncodeError(w, apiError.RecipeNotOwned, "only the author may delete a recipe", requestID)
		return
	}

	deleted, err := env.Database.DeleteRecipe(ctx, recipeID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to delete recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if deleted == 0 {
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	}
	env.Logger.InfoContext(ctx, "recipe deleted", slog.Int64("recipe-id", recipeID))
	w.WriteHeader(http.StatusNoContent)
}
