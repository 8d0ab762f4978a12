// Package shopping builds a user's consolidated shopping list from the
// recipes in their cart.
package shopping

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/mign0n/foodgram-project/internal/database"
	"github.com/mign0n/foodgram-project/internal/metrics"
)

// Strategy selects where ingredient amounts are summed.
type Strategy string

const (
	StrategyQuery  Strategy = "query"
	StrategyMemory Strategy = "memory"
)

func (s Strategy) Validate() error {
	switch s {
	case StrategyQuery, StrategyMemory:
		return nil
	}
	return fmt.Errorf("unknown aggregation strategy: %q", s)
}

var (
	ErrInvalidAmount          = errors.New("ingredient amount must be positive")
	ErrAmountOverflow         = errors.New("ingredient amount total overflows")
	ErrInconsistentIngredient = errors.New("ingredient rows disagree on name or unit")
)

// Item is one line of a shopping list.
type Item struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int64  `json:"amount"`
}

// Row is a single ingredient requirement of a single cart recipe.
type Row struct {
	RecipeID        int64
	IngredientID    int64
	Name            string
	MeasurementUnit string
	Amount          int64
}

// Aggregate groups rows by ingredient, sums their amounts and orders the
// result by ingredient id. An empty input yields an empty list.
func Aggregate(rows []Row) ([]Item, error) {
	byID := make(map[int64]*Item, len(rows))
	for _, row := range rows {
		if row.Amount <= 0 {
			return nil, fmt.Errorf("recipe %d, ingredient %d: %w", row.RecipeID, row.IngredientID, ErrInvalidAmount)
		}

		item, ok := byID[row.IngredientID]
		if !ok {
			byID[row.IngredientID] = &Item{
				ID:              row.IngredientID,
				Name:            row.Name,
				MeasurementUnit: row.MeasurementUnit,
				Amount:          row.Amount,
			}
			continue
		}

		if item.Name != row.Name || item.MeasurementUnit != row.MeasurementUnit {
			return nil, fmt.Errorf("ingredient %d: %w", row.IngredientID, ErrInconsistentIngredient)
		}
		if item.Amount > math.MaxInt64-row.Amount {
			return nil, fmt.Errorf("ingredient %d: %w", row.IngredientID, ErrAmountOverflow)
		}
		item.Amount += row.Amount
	}

	items := make([]Item, 0, len(byID))
	for _, item := range byID {
		items = append(items, *item)
	}
	slices.SortFunc(items, func(a, b Item) int { return cmp.Compare(a.ID, b.ID) })
	return items, nil
}

// List returns the shopping list for userID using the given strategy.
// Both strategies produce the same list for the same cart.
func List(ctx context.Context, q database.Querier, strategy Strategy, userID int64) ([]Item, error) {
	start := time.Now()
	defer func() { metrics.RecordAggregation(string(strategy), time.Since(start)) }()

	switch strategy {
	case StrategyMemory:
		return listInMemory(ctx, q, userID)
	case StrategyQuery, "":
		return listByQuery(ctx, q, userID)
	}
	return nil, strategy.Validate()
}

func listByQuery(ctx context.Context, q database.Querier, userID int64) ([]Item, error) {
	rows, err := q.AggregateShoppingCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("aggregating shopping cart: %w", err)
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{
			ID:              row.ID,
			Name:            row.Name,
			MeasurementUnit: row.MeasurementUnit,
			Amount:          row.Amount,
		})
	}
	return items, nil
}

func listInMemory(ctx context.Context, q database.Querier, userID int64) ([]Item, error) {
	dbRows, err := q.ListCartIngredientAmounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing cart ingredients: %w", err)
	}

	rows := make([]Row, 0, len(dbRows))
	for _, r := range dbRows {
		rows = append(rows, Row{
			RecipeID:        r.RecipeID,
			IngredientID:    r.IngredientID,
			Name:            r.Name,
			MeasurementUnit: r.MeasurementUnit,
			Amount:          int64(r.Amount),
		})
	}
	return Aggregate(rows)
}
