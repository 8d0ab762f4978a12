package database

import (
	"context"
)

type MembershipParams struct {
	UserID   int64
	RecipeID int64
}

const createCartEntry = `-- name: CreateCartEntry :exec
INSERT INTO cart_entries (user_id, recipe_id)
VALUES ($1, $2)
`

func (q *Queries) CreateCartEntry(ctx context.Context, arg MembershipParams) error {
	_, err := q.db.Exec(ctx, createCartEntry, arg.UserID, arg.RecipeID)
	return err
}

const deleteCartEntry = `-- name: DeleteCartEntry :execrows
DELETE FROM cart_entries WHERE user_id = $1 AND recipe_id = $2
`

func (q *Queries) DeleteCartEntry(ctx context.Context, arg MembershipParams) (int64, error) {
	result, err := q.db.Exec(ctx, deleteCartEntry, arg.UserID, arg.RecipeID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const cartEntryExists = `-- name: CartEntryExists :one
SELECT EXISTS (
    SELECT 1 FROM cart_entries WHERE user_id = $1 AND recipe_id = $2
)
`

func (q *Queries) CartEntryExists(ctx context.Context, arg MembershipParams) (bool, error) {
	row := q.db.QueryRow(ctx, cartEntryExists, arg.UserID, arg.RecipeID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const recountRecipeCartEntries = `-- name: RecountRecipeCartEntries :execrows
UPDATE recipes
SET in_shopping_cart_count = (
    SELECT COUNT(*) FROM cart_entries WHERE cart_entries.recipe_id = $1
)
WHERE id = $1
`

func (q *Queries) RecountRecipeCartEntries(ctx context.Context, recipeID int64) (int64, error) {
	result, err := q.db.Exec(ctx, recountRecipeCartEntries, recipeID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const createFavoriteEntry = `-- name: CreateFavoriteEntry :exec
INSERT INTO favorite_entries (user_id, recipe_id)
VALUES ($1, $2)
`

func (q *Queries) CreateFavoriteEntry(ctx context.Context, arg MembershipParams) error {
	_, err := q.db.Exec(ctx, createFavoriteEntry, arg.UserID, arg.RecipeID)
	return err
}

const deleteFavoriteEntry = `-- name: DeleteFavoriteEntry :execrows
DELETE FROM favorite_entries WHERE user_id = $1 AND recipe_id = $2
`

func (q *Queries) DeleteFavoriteEntry(ctx context.Context, arg MembershipParams) (int64, error) {
	result, err := q.db.Exec(ctx, deleteFavoriteEntry, arg.UserID, arg.RecipeID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const favoriteEntryExists = `-- name: FavoriteEntryExists :one
SELECT EXISTS (
    SELECT 1 FROM favorite_entries WHERE user_id = $1 AND recipe_id = $2
)
`

func (q *Queries) FavoriteEntryExists(ctx context.Context, arg MembershipParams) (bool, error) {
	row := q.db.QueryRow(ctx, favoriteEntryExists, arg.UserID, arg.RecipeID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const recountRecipeFavorites = `-- name: RecountRecipeFavorites :execrows
UPDATE recipes
SET favorite_count = (
    SELECT COUNT(*) FROM favorite_entries WHERE favorite_entries.recipe_id = $1
)
WHERE id = $1
`

func (q *Queries) RecountRecipeFavorites(ctx context.Context, recipeID int64) (int64, error) {
	result, err := q.db.Exec(ctx, recountRecipeFavorites, recipeID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getRecipeCounters = `-- name: GetRecipeCounters :one
SELECT favorite_count, in_shopping_cart_count FROM recipes WHERE id = $1
`

type GetRecipeCountersRow struct {
	FavoriteCount       int32
	InShoppingCartCount int32
}

func (q *Queries) GetRecipeCounters(ctx context.Context, recipeID int64) (GetRecipeCountersRow, error) {
	row := q.db.QueryRow(ctx, getRecipeCounters, recipeID)
	var i GetRecipeCountersRow
	err := row.Scan(&i.FavoriteCount, &i.InShoppingCartCount)
	return i, err
}
