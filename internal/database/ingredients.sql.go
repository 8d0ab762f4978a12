package database

import (
	"context"
)

const createIngredient = `-- name: CreateIngredient :one
INSERT INTO ingredients (name, measurement_unit)
VALUES ($1, $2)
ON CONFLICT (name, measurement_unit) DO UPDATE SET name = EXCLUDED.name
RETURNING id
`

type CreateIngredientParams struct {
	Name            string
	MeasurementUnit string
}

func (q *Queries) CreateIngredient(ctx context.Context, arg CreateIngredientParams) (int64, error) {
	row := q.db.QueryRow(ctx, createIngredient, arg.Name, arg.MeasurementUnit)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getIngredient = `-- name: GetIngredient :one
SELECT id, name, measurement_unit FROM ingredients WHERE id = $1
`

func (q *Queries) GetIngredient(ctx context.Context, id int64) (Ingredient, error) {
	row := q.db.QueryRow(ctx, getIngredient, id)
	var i Ingredient
	err := row.Scan(&i.ID, &i.Name, &i.MeasurementUnit)
	return i, err
}

const listIngredients = `-- name: ListIngredients :many
SELECT id, name, measurement_unit FROM ingredients ORDER BY name, id
`

func (q *Queries) ListIngredients(ctx context.Context) ([]Ingredient, error) {
	rows, err := q.db.Query(ctx, listIngredients)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Ingredient
	for rows.Next() {
		var i Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.MeasurementUnit); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const searchIngredientsByPrefix = `-- name: SearchIngredientsByPrefix :many
SELECT id, name, measurement_unit
FROM ingredients
WHERE LOWER(name) LIKE LOWER($1::TEXT) || '%'
ORDER BY name, id
`

func (q *Queries) SearchIngredientsByPrefix(ctx context.Context, prefix string) ([]Ingredient, error) {
	rows, err := q.db.Query(ctx, searchIngredientsByPrefix, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Ingredient
	for rows.Next() {
		var i Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.MeasurementUnit); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countIngredientsByIDs = `-- name: CountIngredientsByIDs :one
SELECT COUNT(*) FROM ingredients WHERE id = ANY($1::BIGINT[])
`

func (q *Queries) CountIngredientsByIDs(ctx context.Context, ids []int64) (int64, error) {
	row := q.db.QueryRow(ctx, countIngredientsByIDs, ids)
	var count int64
	err := row.Scan(&count)
	return count, err
}
