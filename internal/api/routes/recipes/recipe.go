package recipes

import (
	"context"
	"fmt"

	"github.com/mign0n/foodgram-project/internal/database"
	"golang.org/x/sync/errgroup"
)

// loadRecipe assembles the detail view of recipeID as seen by viewerID.
// It returns pgx.ErrNoRows (wrapped) when the recipe does not exist.
func loadRecipe(ctx context.Context, q database.Querier, recipeID, viewerID int64) (RecipeResponse, error) {
	recipe, err := q.GetRecipe(ctx, recipeID)
	if err != nil {
		return RecipeResponse{}, fmt.Errorf("getting recipe: %w", err)
	}

	var (
		ingredients []database.GetRecipeIngredientsRow
		tags        []database.Tag
		favorited   bool
		inCart      bool
	)
	membership := database.MembershipParams{UserID: viewerID, RecipeID: recipeID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ingredients, err = q.GetRecipeIngredients(gctx, recipeID)
		if err != nil {
			return fmt.Errorf("getting recipe ingredients: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		tags, err = q.GetRecipeTags(gctx, recipeID)
		if err != nil {
			return fmt.Errorf("getting recipe tags: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		favorited, err = q.FavoriteEntryExists(gctx, membership)
		if err != nil {
			return fmt.Errorf("checking favorite: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		inCart, err = q.CartEntryExists(gctx, membership)
		if err != nil {
			return fmt.Errorf("checking shopping cart: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return RecipeResponse{}, err
	}

	resp := RecipeResponse{
		ID:                  recipe.ID,
		Author:              recipe.AuthorID,
		Name:                recipe.Name,
		Text:                recipe.Text,
		CookingTime:         recipe.CookingTime,
		Tags:                make([]TagResponse, 0, len(tags)),
		Ingredients:         make([]IngredientResponse, 0, len(ingredients)),
		FavoriteCount:       recipe.FavoriteCount,
		InShoppingCartCount: recipe.InShoppingCartCount,
		IsFavorited:         favorited,
		IsInShoppingCart:    inCart,
		PubDate:             recipe.PubDate.Time,
	}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, TagResponse{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug})
	}
	for _, i := range ingredients {
		resp.Ingredients = append(resp.Ingredients, IngredientResponse{
			ID:              i.ID,
			Name:            i.Name,
			MeasurementUnit: i.MeasurementUnit,
			Amount:          i.Amount,
		})
	}
	return resp, nil
}
