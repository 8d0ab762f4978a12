package database

import (
	"context"
)

//go:generate mockgen -source=querier.go -destination=mock_querier.go -package=database

type Querier interface {
	AddRecipeIngredient(ctx context.Context, arg AddRecipeIngredientParams) error
	AddRecipeTag(ctx context.Context, arg AddRecipeTagParams) error
	AggregateShoppingCart(ctx context.Context, userID int64) ([]AggregateShoppingCartRow, error)
	CartEntryExists(ctx context.Context, arg MembershipParams) (bool, error)
	CheckRecipeOwnership(ctx context.Context, arg CheckRecipeOwnershipParams) (bool, error)
	CheckUsersTableExists(ctx context.Context) (bool, error)
	CountIngredientsByIDs(ctx context.Context, ids []int64) (int64, error)
	CreateCartEntry(ctx context.Context, arg MembershipParams) error
	CreateFavoriteEntry(ctx context.Context, arg MembershipParams) error
	CreateIngredient(ctx context.Context, arg CreateIngredientParams) (int64, error)
	CreateRecipe(ctx context.Context, arg CreateRecipeParams) (int64, error)
	CreateTag(ctx context.Context, arg CreateTagParams) (int64, error)
	CreateUser(ctx context.Context, arg CreateUserParams) (int64, error)
	DeleteCartEntry(ctx context.Context, arg MembershipParams) (int64, error)
	DeleteFavoriteEntry(ctx context.Context, arg MembershipParams) (int64, error)
	DeleteRecipe(ctx context.Context, id int64) (int64, error)
	FavoriteEntryExists(ctx context.Context, arg MembershipParams) (bool, error)
	GetAdminCount(ctx context.Context) (int64, error)
	GetIngredient(ctx context.Context, id int64) (Ingredient, error)
	GetRecipe(ctx context.Context, id int64) (Recipe, error)
	GetRecipeCounters(ctx context.Context, recipeID int64) (GetRecipeCountersRow, error)
	GetRecipeIngredients(ctx context.Context, recipeID int64) ([]GetRecipeIngredientsRow, error)
	GetRecipeTags(ctx context.Context, recipeID int64) ([]Tag, error)
	GetTagsByIDs(ctx context.Context, ids []int64) ([]Tag, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ListCartIngredientAmounts(ctx context.Context, userID int64) ([]ListCartIngredientAmountsRow, error)
	ListIngredients(ctx context.Context) ([]Ingredient, error)
	RecipeExists(ctx context.Context, id int64) (bool, error)
	RecountRecipeCartEntries(ctx context.Context, recipeID int64) (int64, error)
	RecountRecipeFavorites(ctx context.Context, recipeID int64) (int64, error)
	SearchIngredientsByPrefix(ctx context.Context, prefix string) ([]Ingredient, error)
}

var _ Querier = (*Queries)(nil)
