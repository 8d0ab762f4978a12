//go:build integration

package database_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mign0n/foodgram-project/internal/database"
	"github.com/mign0n/foodgram-project/internal/membership"
	"github.com/mign0n/foodgram-project/internal/shopping"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage = "postgres:16-alpine"
	postgresPort  = "5432/tcp"
)

func startPostgres(t *testing.T) *database.Database {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{postgresPort},
		Env: map[string]string{
			"POSTGRES_USER":     "foodgram",
			"POSTGRES_PASSWORD": "foodgram",
			"POSTGRES_DB":       "foodgram",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(postgresPort),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithStartupTimeout(90 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("starting postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminating postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("getting container host: %v", err)
	}
	port, err := container.MappedPort(ctx, postgresPort)
	if err != nil {
		t.Fatalf("getting mapped port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://foodgram:foodgram@%s:%s/foodgram?sslmode=disable", host, port.Port())
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("creating pool: %v", err)
	}
	t.Cleanup(pool.Close)

	db := database.NewDatabase(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensuring schema: %v", err)
	}
	// A second call must detect the schema and do nothing.
	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensuring schema twice: %v", err)
	}
	return db
}

type fixture struct {
	author  int64
	shopper int64
	tag     int64
	flour   int64
	salt    int64
	eggs    int64
	bread   int64
	pasta   int64
}

func seed(t *testing.T, ctx context.Context, db *database.Database) fixture {
	t.Helper()
	var f fixture

	mustID := func(id int64, err error) int64 {
		t.Helper()
		if err != nil {
			t.Fatalf("seeding: %v", err)
		}
		return id
	}

	f.author = mustID(db.CreateUser(ctx, database.CreateUserParams{
		Email: "author@example.com", Username: "author", FirstName: "A", LastName: "Uthor",
		PasswordHash: "x", Role: database.RoleUser,
	}))
	f.shopper = mustID(db.CreateUser(ctx, database.CreateUserParams{
		Email: "shopper@example.com", Username: "shopper", FirstName: "S", LastName: "Hopper",
		PasswordHash: "x", Role: database.RoleUser,
	}))
	f.tag = mustID(db.CreateTag(ctx, database.CreateTagParams{Name: "breakfast", Color: "#E26C2D", Slug: "breakfast"}))
	f.flour = mustID(db.CreateIngredient(ctx, database.CreateIngredientParams{Name: "flour", MeasurementUnit: "g"}))
	f.salt = mustID(db.CreateIngredient(ctx, database.CreateIngredientParams{Name: "salt, coarse", MeasurementUnit: "g"}))
	f.eggs = mustID(db.CreateIngredient(ctx, database.CreateIngredientParams{Name: "eggs", MeasurementUnit: "pcs"}))

	again, err := db.CreateIngredient(ctx, database.CreateIngredientParams{Name: "flour", MeasurementUnit: "g"})
	if err != nil {
		t.Fatalf("creating ingredient twice: %v", err)
	}
	if again != f.flour {
		t.Fatalf("CreateIngredient is not get-or-create: got id %d, want %d", again, f.flour)
	}

	recipe := func(name string, amounts map[int64]int32) int64 {
		t.Helper()
		id := mustID(db.CreateRecipe(ctx, database.CreateRecipeParams{
			AuthorID: f.author, Name: name, Text: name, CookingTime: 10,
		}))
		for ingredientID, amount := range amounts {
			if err := db.AddRecipeIngredient(ctx, database.AddRecipeIngredientParams{
				RecipeID: id, IngredientID: ingredientID, Amount: amount,
			}); err != nil {
				t.Fatalf("adding ingredient to %s: %v", name, err)
			}
		}
		if err := db.AddRecipeTag(ctx, database.AddRecipeTagParams{RecipeID: id, TagID: f.tag}); err != nil {
			t.Fatalf("tagging %s: %v", name, err)
		}
		return id
	}

	f.bread = recipe("bread", map[int64]int32{f.flour: 200, f.salt: 3})
	f.pasta = recipe("pasta", map[int64]int32{f.flour: 100, f.salt: 2, f.eggs: 2})
	return f
}

func TestIntegration(t *testing.T) {
	ctx := context.Background()
	db := startPostgres(t)
	f := seed(t, ctx, db)
	svc := membership.New(db)

	t.Run("duplicate ingredient on a recipe is rejected", func(t *testing.T) {
		err := db.AddRecipeIngredient(ctx, database.AddRecipeIngredientParams{
			RecipeID: f.bread, IngredientID: f.flour, Amount: 1,
		})
		if !database.IsUniqueViolation(err) {
			t.Fatalf("expected unique violation, got %v", err)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		for _, strategy := range []shopping.Strategy{shopping.StrategyQuery, shopping.StrategyMemory} {
			items, err := shopping.List(ctx, db, strategy, f.shopper)
			if err != nil {
				t.Fatalf("%s: %v", strategy, err)
			}
			if items == nil || len(items) != 0 {
				t.Fatalf("%s: expected empty non-nil list, got %#v", strategy, items)
			}
		}
	})

	t.Run("cart membership recounts", func(t *testing.T) {
		for _, recipeID := range []int64{f.bread, f.pasta} {
			count, err := svc.Add(ctx, membership.Cart, f.shopper, recipeID)
			if err != nil {
				t.Fatalf("adding %d to cart: %v", recipeID, err)
			}
			if count != 1 {
				t.Errorf("recipe %d: cart count = %d, want 1", recipeID, count)
			}
		}

		if _, err := svc.Add(ctx, membership.Cart, f.shopper, f.bread); !errors.Is(err, membership.ErrAlreadyListed) {
			t.Fatalf("expected ErrAlreadyListed, got %v", err)
		}
		counters, err := db.GetRecipeCounters(ctx, f.bread)
		if err != nil {
			t.Fatal(err)
		}
		if counters.InShoppingCartCount != 1 {
			t.Errorf("rejected duplicate changed the counter to %d", counters.InShoppingCartCount)
		}

		if _, err := svc.Add(ctx, membership.Cart, f.shopper, 999999); !errors.Is(err, membership.ErrRecipeNotFound) {
			t.Fatalf("expected ErrRecipeNotFound, got %v", err)
		}
	})

	t.Run("aggregation strategies agree", func(t *testing.T) {
		want := []shopping.Item{
			{ID: f.flour, Name: "flour", MeasurementUnit: "g", Amount: 300},
			{ID: f.salt, Name: "salt, coarse", MeasurementUnit: "g", Amount: 5},
			{ID: f.eggs, Name: "eggs", MeasurementUnit: "pcs", Amount: 2},
		}

		byQuery, err := shopping.List(ctx, db, shopping.StrategyQuery, f.shopper)
		if err != nil {
			t.Fatal(err)
		}
		inMemory, err := shopping.List(ctx, db, shopping.StrategyMemory, f.shopper)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(byQuery, want) {
			t.Errorf("query strategy:\n got %#v\nwant %#v", byQuery, want)
		}
		if !reflect.DeepEqual(inMemory, byQuery) {
			t.Errorf("strategies disagree:\n memory %#v\n query  %#v", inMemory, byQuery)
		}
	})

	t.Run("favorites are independent of the cart", func(t *testing.T) {
		count, err := svc.Add(ctx, membership.Favorite, f.shopper, f.bread)
		if err != nil {
			t.Fatal(err)
		}
		if count != 1 {
			t.Errorf("favorite count = %d, want 1", count)
		}
		count, err = svc.Remove(ctx, membership.Favorite, f.shopper, f.bread)
		if err != nil {
			t.Fatal(err)
		}
		if count != 0 {
			t.Errorf("favorite count after remove = %d, want 0", count)
		}
		if _, err := svc.Remove(ctx, membership.Favorite, f.shopper, f.bread); !errors.Is(err, membership.ErrNotListed) {
			t.Fatalf("expected ErrNotListed, got %v", err)
		}

		inCart, err := db.CartEntryExists(ctx, database.MembershipParams{UserID: f.shopper, RecipeID: f.bread})
		if err != nil {
			t.Fatal(err)
		}
		if !inCart {
			t.Error("removing a favorite dropped the cart entry")
		}
	})

	t.Run("recipe delete cascades", func(t *testing.T) {
		deleted, err := db.DeleteRecipe(ctx, f.pasta)
		if err != nil {
			t.Fatal(err)
		}
		if deleted != 1 {
			t.Fatalf("deleted %d rows, want 1", deleted)
		}

		inCart, err := db.CartEntryExists(ctx, database.MembershipParams{UserID: f.shopper, RecipeID: f.pasta})
		if err != nil {
			t.Fatal(err)
		}
		if inCart {
			t.Error("cart entry survived recipe deletion")
		}
		ingredients, err := db.GetRecipeIngredients(ctx, f.pasta)
		if err != nil {
			t.Fatal(err)
		}
		if len(ingredients) != 0 {
			t.Errorf("recipe ingredients survived deletion: %#v", ingredients)
		}

		items, err := shopping.List(ctx, db, shopping.StrategyQuery, f.shopper)
		if err != nil {
			t.Fatal(err)
		}
		want := []shopping.Item{
			{ID: f.flour, Name: "flour", MeasurementUnit: "g", Amount: 200},
			{ID: f.salt, Name: "salt, coarse", MeasurementUnit: "g", Amount: 3},
		}
		if !reflect.DeepEqual(items, want) {
			t.Errorf("cart after delete:\n got %#v\nwant %#v", items, want)
		}
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		sentinel := errors.New("abort")
		err := db.InTx(ctx, func(q database.Querier) error {
			if _, err := q.DeleteCartEntry(ctx, database.MembershipParams{UserID: f.shopper, RecipeID: f.bread}); err != nil {
				return err
			}
			return sentinel
		})
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected sentinel, got %v", err)
		}
		inCart, err := db.CartEntryExists(ctx, database.MembershipParams{UserID: f.shopper, RecipeID: f.bread})
		if err != nil {
			t.Fatal(err)
		}
		if !inCart {
			t.Error("rolled back delete was persisted")
		}
	})
}
