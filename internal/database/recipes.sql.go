package database

import (
	"context"
)

const createRecipe = `-- name: CreateRecipe :one
INSERT INTO recipes (author_id, name, text, cooking_time)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type CreateRecipeParams struct {
	AuthorID    int64
	Name        string
	Text        string
	CookingTime int32
}

func (q *Queries) CreateRecipe(ctx context.Context, arg CreateRecipeParams) (int64, error) {
	row := q.db.QueryRow(ctx, createRecipe,
		arg.AuthorID,
		arg.Name,
		arg.Text,
		arg.CookingTime,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const addRecipeIngredient = `-- name: AddRecipeIngredient :exec
INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount)
VALUES ($1, $2, $3)
`

type AddRecipeIngredientParams struct {
	RecipeID     int64
	IngredientID int64
	Amount       int32
}

func (q *Queries) AddRecipeIngredient(ctx context.Context, arg AddRecipeIngredientParams) error {
	_, err := q.db.Exec(ctx, addRecipeIngredient, arg.RecipeID, arg.IngredientID, arg.Amount)
	return err
}

const addRecipeTag = `-- name: AddRecipeTag :exec
INSERT INTO recipe_tags (recipe_id, tag_id)
VALUES ($1, $2)
`

type AddRecipeTagParams struct {
	RecipeID int64
	TagID    int64
}

func (q *Queries) AddRecipeTag(ctx context.Context, arg AddRecipeTagParams) error {
	_, err := q.db.Exec(ctx, addRecipeTag, arg.RecipeID, arg.TagID)
	return err
}

const getRecipe = `-- name: GetRecipe :one
SELECT id, author_id, name, text, cooking_time, favorite_count, in_shopping_cart_count, pub_date
FROM recipes
WHERE id = $1
`

func (q *Queries) GetRecipe(ctx context.Context, id int64) (Recipe, error) {
	row := q.db.QueryRow(ctx, getRecipe, id)
	var i Recipe
	err := row.Scan(
		&i.ID,
		&i.AuthorID,
		&i.Name,
		&i.Text,
		&i.CookingTime,
		&i.FavoriteCount,
		&i.InShoppingCartCount,
		&i.PubDate,
	)
	return i, err
}

const getRecipeIngredients = `-- name: GetRecipeIngredients :many
SELECT i.id, i.name, i.measurement_unit, ri.amount
FROM recipe_ingredients ri
JOIN ingredients i ON i.id = ri.ingredient_id
WHERE ri.recipe_id = $1
ORDER BY i.id
`

type GetRecipeIngredientsRow struct {
	ID              int64
	Name            string
	MeasurementUnit string
	Amount          int32
}

func (q *Queries) GetRecipeIngredients(ctx context.Context, recipeID int64) ([]GetRecipeIngredientsRow, error) {
	rows, err := q.db.Query(ctx, getRecipeIngredients, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetRecipeIngredientsRow
	for rows.Next() {
		var i GetRecipeIngredientsRow
		if err := rows.Scan(&i.ID, &i.Name, &i.MeasurementUnit, &i.Amount); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteRecipe = `-- name: DeleteRecipe :execrows
DELETE FROM recipes WHERE id = $1
`

func (q *Queries) DeleteRecipe(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteRecipe, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const checkRecipeOwnership = `-- name: CheckRecipeOwnership :one
SELECT EXISTS (
    SELECT 1 FROM recipes WHERE id = $1 AND author_id = $2
)
`

type CheckRecipeOwnershipParams struct {
	RecipeID int64
	AuthorID int64
}

func (q *Queries) CheckRecipeOwnership(ctx context.Context, arg CheckRecipeOwnershipParams) (bool, error) {
	row := q.db.QueryRow(ctx, checkRecipeOwnership, arg.RecipeID, arg.AuthorID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const recipeExists = `-- name: RecipeExists :one
SELECT EXISTS (SELECT 1 FROM recipes WHERE id = $1)
`

func (q *Queries) RecipeExists(ctx context.Context, id int64) (bool, error) {
	row := q.db.QueryRow(ctx, recipeExists, id)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}
