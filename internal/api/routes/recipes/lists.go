package recipes

import (
	"errors"
	"log/slog"
	"net/http"

	apiError "github.com/mign0n/foodgram-project/internal/api/error"
	"github.com/mign0n/foodgram-project/internal/api/requestid"
	"github.com/mign0n/foodgram-project/internal/api/token"
	"github.com/mign0n/foodgram-project/internal/env"
	mJson "github.com/mign0n/foodgram-project/internal/json"
	"github.com/mign0n/foodgram-project/internal/membership"
)

// AddToShoppingCart godoc
//
//	@Summary	Put a recipe in the caller's shopping cart.
//	@Tags		Shopping Cart
//
//	@Produce	json
//	@Param		recipeID	path		int	true	"Recipe ID"
//	@Success	201			{object}	ShortRecipeResponse
//	@Failure	400			{object}	apiError.Error	"Already in the cart"
//	@Failure	404			{object}	apiError.Error	"Not Found"
//	@Security	BearerAuth
//	@Router		/recipes/{recipeID}/shopping_cart [POST]
func AddToShoppingCart(w http.ResponseWriter, r *http.Request) {
	addToList(w, r, membership.Cart)
}

// RemoveFromShoppingCart godoc
//
//	@Summary	Take a recipe out of the caller's shopping cart.
//	@Tags		Shopping Cart
//
//	@Param		recipeID	path	int	true	"Recipe ID"
//	@Success	204
//	@Failure	400	{object}	apiError.Error	"Not in the cart"
//	@Failure	404	{object}	apiError.Error	"Not Found"
//	@Security	BearerAuth
//	@Router		/recipes/{recipeID}/shopping_cart [DELETE]
func RemoveFromShoppingCart(w http.ResponseWriter, r *http.Request) {
	removeFromList(w, r, membership.Cart)
}

// AddToFavorites godoc
//
//	@Summary	Mark a recipe as a favorite.
//	@Tags		Favorites
//
//	@Produce	json
//	@Param		recipeID	path		int	true	"Recipe ID"
//	@Success	201			{object}	ShortRecipeResponse
//	@Failure	400			{object}	apiError.Error	"Already a favorite"
//	@Failure	404			{object}	apiError.Error	"Not Found"
//	@Security	BearerAuth
//	@Router		/recipes/{recipeID}/favorite [POST]
func AddToFavorites(w http.ResponseWriter, r *http.Request) {
	addToList(w, r, membership.Favorite)
}

// RemoveFromFavorites godoc
//
//	@Summary	Unmark a favorite recipe.
//	@Tags		Favorites
//
//	@Param		recipeID	path	int	true	"Recipe ID"
//	@Success	204
//	@Failure	400	{object}	apiError.Error	"Not a favorite"
//	@Failure	404	{object}	apiError.Error	"Not Found"
//	@Security	BearerAuth
//	@Router		/recipes/{recipeID}/favorite [DELETE]
func RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	removeFromList(w, r, membership.Favorite)
}

func encodeMembershipError(w http.ResponseWriter, env *env.Env, r *http.Request, list membership.List, err error) {
	ctx := r.Context()
	requestID := requestid.ExtractRequestID(ctx)
	switch {
	case errors.Is(err, membership.ErrAlreadyListed):
		_ = apiError.EncodeError(w, apiError.AlreadyInList, "recipe is already in the "+string(list), requestID)
	case errors.Is(err, membership.ErrNotListed):
		_ = apiError.EncodeError(w, apiError.NotInList, "recipe is not in the "+string(list), requestID)
	case errors.Is(err, membership.ErrRecipeNotFound):
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
	default:
		env.Logger.ErrorContext(ctx, "failed to update list", slog.String("list", string(list)), slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
	}
}

func addToList(w http.ResponseWriter, r *http.Request, list membership.List) {
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

	env.Logger.DebugContext(ctx, "adding recipe to list", slog.String("list", string(list)))
	if _, err := env.Membership.Add(ctx, list, userID, recipeID); err != nil {
		encodeMembershipError(w, env, r, list, err)
		return
	}

	recipe, err := env.Database.GetRecipe(ctx, recipeID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to read recipe after adding", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := mJson.Write(w, newShortRecipeResponse(recipe)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

func removeFromList(w http.ResponseWriter, r *http.Request, list membership.List) {
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

	env.Logger.DebugContext(ctx, "removing recipe from list", slog.String("list", string(list)))
	if _, err := env.Membership.Remove(ctx, list, userID, recipeID); err != nil {
		encodeMembershipError(w, env, r, list, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
