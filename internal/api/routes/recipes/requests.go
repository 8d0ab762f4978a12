package recipes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var errInvalidID = errors.New("expected a positive integer id")

// recipeIDParam reads the {recipeID} path segment.
func recipeIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

type IngredientAmount struct {
	ID     int64 `json:"id" validate:"required,gt=0"`
	Amount int32 `json:"amount" validate:"required,gte=1"`
}

type CreateRecipeRequest struct {
	Name        string             `json:"name" validate:"required,max=200"`
	Text        string             `json:"text" validate:"required"`
	CookingTime int32              `json:"cooking_time" validate:"required,gte=1"`
	Tags        []int64            `json:"tags" validate:"required,min=1,unique,dive,gt=0"`
	Ingredients []IngredientAmount `json:"ingredients" validate:"required,min=1,unique=ID,dive"`
}

func (c CreateRecipeRequest) ingredientIDs() []int64 {
	ids := make([]int64, 0, len(c.Ingredients))
	for _, i := range c.Ingredients {
		ids = append(ids, i.ID)
	}
	return ids
}
