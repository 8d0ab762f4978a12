// Package membership adds and removes recipes from a user's shopping cart
// or favorites and keeps the recipe's denormalized counters in sync.
package membership

import (
	"context"
	"errors"
	"fmt"

	"github.com/mign0n/foodgram-project/internal/database"
	"github.com/mign0n/foodgram-project/internal/metrics"
)

// List identifies one of the per-user recipe relations.
type List string

const (
	Cart     List = "cart"
	Favorite List = "favorite"
)

var (
	ErrAlreadyListed  = errors.New("recipe is already in the list")
	ErrNotListed      = errors.New("recipe is not in the list")
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrUnknownList    = errors.New("unknown list")
)

// TxRunner runs a function inside a single database transaction.
type TxRunner interface {
	InTx(ctx context.Context, fn func(q database.Querier) error) error
}

type Service struct {
	db TxRunner
}

func New(db TxRunner) *Service {
	return &Service{db: db}
}

// ops binds a List to the queries that mutate and recount it.
type ops struct {
	create  func(context.Context, database.Querier, database.MembershipParams) error
	remove  func(context.Context, database.Querier, database.MembershipParams) (int64, error)
	recount func(context.Context, database.Querier, int64) (int64, error)
	counter func(database.GetRecipeCountersRow) int32
}

func opsFor(list List) (ops, error) {
	switch list {
	case Cart:
		return ops{
			create: func(ctx context.Context, q database.Querier, p database.MembershipParams) error {
				return q.CreateCartEntry(ctx, p)
			},
			remove: func(ctx context.Context, q database.Querier, p database.MembershipParams) (int64, error) {
				return q.DeleteCartEntry(ctx, p)
			},
			recount: func(ctx context.Context, q database.Querier, recipeID int64) (int64, error) {
				return q.RecountRecipeCartEntries(ctx, recipeID)
			},
			counter: func(r database.GetRecipeCountersRow) int32 { return r.InShoppingCartCount },
		}, nil
	case Favorite:
		return ops{
			create: func(ctx context.Context, q database.Querier, p database.MembershipParams) error {
				return q.CreateFavoriteEntry(ctx, p)
			},
			remove: func(ctx context.Context, q database.Querier, p database.MembershipParams) (int64, error) {
				return q.DeleteFavoriteEntry(ctx, p)
			},
			recount: func(ctx context.Context, q database.Querier, recipeID int64) (int64, error) {
				return q.RecountRecipeFavorites(ctx, recipeID)
			},
			counter: func(r database.GetRecipeCountersRow) int32 { return r.FavoriteCount },
		}, nil
	}
	return ops{}, fmt.Errorf("%w: %q", ErrUnknownList, list)
}

// Add puts recipeID into the user's list and returns the recipe's recounted
// counter for that list.
func (s *Service) Add(ctx context.Context, list List, userID, recipeID int64) (int32, error) {
	o, err := opsFor(list)
	if err != nil {
		return 0, err
	}

	var count int32
	err = s.db.InTx(ctx, func(q database.Querier) error {
		params := database.MembershipParams{UserID: userID, RecipeID: recipeID}
		if err := o.create(ctx, q, params); err != nil {
			if database.IsUniqueViolation(err) {
				return ErrAlreadyListed
			}
			if database.IsForeignKeyViolation(err) {
				return ErrRecipeNotFound
			}
			return fmt.Errorf("creating %s entry: %w", list, err)
		}

		c, err := recount(ctx, q, o, recipeID)
		if err != nil {
			return err
		}
		count = c
		return nil
	})
	metrics.RecordMembershipChange(string(list), "add", outcome(err))
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Remove takes recipeID out of the user's list and returns the recipe's
// recounted counter for that list.
func (s *Service) Remove(ctx context.Context, list List, userID, recipeID int64) (int32, error) {
	o, err := opsFor(list)
	if err != nil {
		return 0, err
	}

	var count int32
	err = s.db.InTx(ctx, func(q database.Querier) error {
		params := database.MembershipParams{UserID: userID, RecipeID: recipeID}
		deleted, err := o.remove(ctx, q, params)
		if err != nil {
			return fmt.Errorf("deleting %s entry: %w", list, err)
		}
		if deleted == 0 {
			exists, err := q.RecipeExists(ctx, recipeID)
			if err != nil {
				return fmt.Errorf("checking recipe exists: %w", err)
			}
			if !exists {
				return ErrRecipeNotFound
			}
			return ErrNotListed
		}

		c, err := recount(ctx, q, o, recipeID)
		if err != nil {
			return err
		}
		count = c
		return nil
	})
	metrics.RecordMembershipChange(string(list), "remove", outcome(err))
	if err != nil {
		return 0, err
	}
	return count, nil
}

// recount recomputes the counter from the membership rows. A recipe that
// disappeared concurrently leaves nothing to update, which is not an error.
func recount(ctx context.Context, q database.Querier, o ops, recipeID int64) (int32, error) {
	updated, err := o.recount(ctx, q, recipeID)
	if err != nil {
		return 0, fmt.Errorf("recounting recipe %d: %w", recipeID, err)
	}
	if updated == 0 {
		return 0, nil
	}

	counters, err := q.GetRecipeCounters(ctx, recipeID)
	if err != nil {
		return 0, fmt.Errorf("reading recipe %d counters: %w", recipeID, err)
	}
	return o.counter(counters), nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrAlreadyListed), errors.Is(err, ErrNotListed), errors.Is(err, ErrRecipeNotFound):
		return "rejected"
	}
	return "error"
}
