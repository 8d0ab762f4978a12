package database

import (
	"context"
)

const aggregateShoppingCart = `-- name: AggregateShoppingCart :many
SELECT i.id, i.name, i.measurement_unit, SUM(ri.amount)::BIGINT AS amount
FROM cart_entries c
JOIN recipe_ingredients ri ON ri.recipe_id = c.recipe_id
JOIN ingredients i ON i.id = ri.ingredient_id
WHERE c.user_id = $1
GROUP BY i.id, i.name, i.measurement_unit
ORDER BY i.id
`

type AggregateShoppingCartRow struct {
	ID              int64
	Name            string
	MeasurementUnit string
	Amount          int64
}

func (q *Queries) AggregateShoppingCart(ctx context.Context, userID int64) ([]AggregateShoppingCartRow, error) {
	rows, err := q.db.Query(ctx, aggregateShoppingCart, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AggregateShoppingCartRow
	for rows.Next() {
		var i AggregateShoppingCartRow
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

const listCartIngredientAmounts = `-- name: ListCartIngredientAmounts :many
SELECT ri.recipe_id, i.id, i.name, i.measurement_unit, ri.amount
FROM cart_entries c
JOIN recipe_ingredients ri ON ri.recipe_id = c.recipe_id
JOIN ingredients i ON i.id = ri.ingredient_id
WHERE c.user_id = $1
`

type ListCartIngredientAmountsRow struct {
	RecipeID        int64
	IngredientID    int64
	Name            string
	MeasurementUnit string
	Amount          int32
}

func (q *Queries) ListCartIngredientAmounts(ctx context.Context, userID int64) ([]ListCartIngredientAmountsRow, error) {
	rows, err := q.db.Query(ctx, listCartIngredientAmounts, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCartIngredientAmountsRow
	for rows.Next() {
		var i ListCartIngredientAmountsRow
		if err := rows.Scan(
			&i.RecipeID,
			&i.IngredientID,
			&i.Name,
			&i.MeasurementUnit,
			&i.Amount,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
