package recipes

import (
	"time"

	"github.com/mign0n/foodgram-project/internal/database"
)

type TagResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type IngredientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int32  `json:"amount"`
}

type RecipeResponse struct {
	ID                  int64                `json:"id"`
	Author              int64                `json:"author"`
	Name                string               `json:"name"`
	Text                string               `json:"text"`
	CookingTime         int32                `json:"cooking_time"`
	Tags                []TagResponse        `json:"tags"`
	Ingredients         []IngredientResponse `json:"ingredients"`
	FavoriteCount       int32                `json:"favorite_count"`
	InShoppingCartCount int32                `json:"in_shopping_cart_count"`
	IsFavorited         bool                 `json:"is_favorited"`
	IsInShoppingCart    bool                 `json:"is_in_shopping_cart"`
	PubDate             time.Time            `json:"pub_date"`
}

// ShortRecipeResponse is returned when a recipe is added to a list.
type ShortRecipeResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	CookingTime         int32  `json:"cooking_time"`
	FavoriteCount       int32  `json:"favorite_count"`
	InShoppingCartCount int32  `json:"in_shopping_cart_count"`
}

func newShortRecipeResponse(r database.Recipe) ShortRecipeResponse {
	return ShortRecipeResponse{
		ID:                  r.ID,
		Name:                r.Name,
		CookingTime:         r.CookingTime,
		FavoriteCount:       r.FavoriteCount,
		InShoppingCartCount: r.InShoppingCartCount,
	}
}
