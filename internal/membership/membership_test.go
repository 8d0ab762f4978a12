package membership

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mign0n/foodgram-project/internal/database"
	"go.uber.org/mock/gomock"
)

type entryKey struct {
	userID   int64
	recipeID int64
}

// fakeStore is an in-memory stand-in for the membership and counter queries.
// Writes made inside a failed transaction are discarded.
type fakeStore struct {
	database.Querier

	recipes   map[int64]*database.GetRecipeCountersRow
	cart      map[entryKey]bool
	favorites map[entryKey]bool

	failRecount bool
}

func newFakeStore(recipeIDs ...int64) *fakeStore {
	s := &fakeStore{
		recipes:   map[int64]*database.GetRecipeCountersRow{},
		cart:      map[entryKey]bool{},
		favorites: map[entryKey]bool{},
	}
	for _, id := range recipeIDs {
		s.recipes[id] = &database.GetRecipeCountersRow{}
	}
	return s
}

func (s *fakeStore) InTx(ctx context.Context, fn func(q database.Querier) error) error {
	cart := copyEntries(s.cart)
	favorites := copyEntries(s.favorites)
	counters := map[int64]database.GetRecipeCountersRow{}
	for id, c := range s.recipes {
		counters[id] = *c
	}

	if err := fn(s); err != nil {
		s.cart, s.favorites = cart, favorites
		for id, c := range counters {
			*s.recipes[id] = c
		}
		return err
	}
	return nil
}

func copyEntries(m map[entryKey]bool) map[entryKey]bool {
	out := make(map[entryKey]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *fakeStore) insert(m map[entryKey]bool, arg database.MembershipParams) error {
	if _, ok := s.recipes[arg.RecipeID]; !ok {
		return &pgconn.PgError{Code: "23503"}
	}
	key := entryKey{arg.UserID, arg.RecipeID}
	if m[key] {
		return &pgconn.PgError{Code: "23505", ConstraintName: "unique_entry"}
	}
	m[key] = true
	return nil
}

func (s *fakeStore) remove(m map[entryKey]bool, arg database.MembershipParams) int64 {
	key := entryKey{arg.UserID, arg.RecipeID}
	if !m[key] {
		return 0
	}
	delete(m, key)
	return 1
}

func count(m map[entryKey]bool, recipeID int64) int32 {
	var n int32
	for k := range m {
		if k.recipeID == recipeID {
			n++
		}
	}
	return n
}

func (s *fakeStore) CreateCartEntry(_ context.Context, arg database.MembershipParams) error {
	return s.insert(s.cart, arg)
}

func (s *fakeStore) CreateFavoriteEntry(_ context.Context, arg database.MembershipParams) error {
	return s.insert(s.favorites, arg)
}

func (s *fakeStore) DeleteCartEntry(_ context.Context, arg database.MembershipParams) (int64, error) {
	return s.remove(s.cart, arg), nil
}

func (s *fakeStore) DeleteFavoriteEntry(_ context.Context, arg database.MembershipParams) (int64, error) {
	return s.remove(s.favorites, arg), nil
}

func (s *fakeStore) RecountRecipeCartEntries(_ context.Context, recipeID int64) (int64, error) {
	if s.failRecount {
		return 0, errors.New("recount failed")
	}
	r, ok := s.recipes[recipeID]
	if !ok {
		return 0, nil
	}
	r.InShoppingCartCount = count(s.cart, recipeID)
	return 1, nil
}

func (s *fakeStore) RecountRecipeFavorites(_ context.Context, recipeID int64) (int64, error) {
	if s.failRecount {
		return 0, errors.New("recount failed")
	}
	r, ok := s.recipes[recipeID]
	if !ok {
		return 0, nil
	}
	r.FavoriteCount = count(s.favorites, recipeID)
	return 1, nil
}

func (s *fakeStore) GetRecipeCounters(_ context.Context, recipeID int64) (database.GetRecipeCountersRow, error) {
	return *s.recipes[recipeID], nil
}

func (s *fakeStore) RecipeExists(_ context.Context, recipeID int64) (bool, error) {
	_, ok := s.recipes[recipeID]
	return ok, nil
}

func TestAddThenRemoveRestoresCounter(t *testing.T) {
	for _, list := range []List{Cart, Favorite} {
		t.Run(string(list), func(t *testing.T) {
			store := newFakeStore(1)
			svc := New(store)
			ctx := context.Background()

			if _, err := svc.Add(ctx, list, 100, 1); err != nil {
				t.Fatalf("Add() by other user error = %v", err)
			}
			before := *store.recipes[1]

			got, err := svc.Add(ctx, list, 200, 1)
			if err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if got != 2 {
				t.Errorf("Add() count = %d, want 2", got)
			}

			got, err = svc.Remove(ctx, list, 200, 1)
			if err != nil {
				t.Fatalf("Remove() error = %v", err)
			}
			if got != 1 {
				t.Errorf("Remove() count = %d, want 1", got)
			}
			if after := *store.recipes[1]; after != before {
				t.Errorf("counters after add/remove = %+v, want %+v", after, before)
			}
		})
	}
}

func TestListsAreIndependent(t *testing.T) {
	store := newFakeStore(1)
	svc := New(store)
	ctx := context.Background()

	if _, err := svc.Add(ctx, Cart, 1, 1); err != nil {
		t.Fatalf("Add(cart) error = %v", err)
	}
	if _, err := svc.Add(ctx, Favorite, 1, 1); err != nil {
		t.Fatalf("Add(favorite) error = %v", err)
	}
	want := database.GetRecipeCountersRow{FavoriteCount: 1, InShoppingCartCount: 1}
	if got := *store.recipes[1]; got != want {
		t.Errorf("counters = %+v, want %+v", got, want)
	}
}

func TestAddDuplicateRejected(t *testing.T) {
	store := newFakeStore(1)
	svc := New(store)
	ctx := context.Background()

	if _, err := svc.Add(ctx, Cart, 7, 1); err != nil {
		t.Fatalf("first Add() error = %v", err)
	}
	_, err := svc.Add(ctx, Cart, 7, 1)
	if !errors.Is(err, ErrAlreadyListed) {
		t.Fatalf("second Add() error = %v, want %v", err, ErrAlreadyListed)
	}
	if got := store.recipes[1].InShoppingCartCount; got != 1 {
		t.Errorf("cart count = %d, want 1", got)
	}
}

func TestAddUnknownRecipe(t *testing.T) {
	svc := New(newFakeStore())
	_, err := svc.Add(context.Background(), Favorite, 1, 99)
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Fatalf("Add() error = %v, want %v", err, ErrRecipeNotFound)
	}
}

func TestRemoveErrors(t *testing.T) {
	tests := []struct {
		name     string
		recipeID int64
		wantErr  error
	}{
		{name: "not listed", recipeID: 1, wantErr: ErrNotListed},
		{name: "unknown recipe", recipeID: 99, wantErr: ErrRecipeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(newFakeStore(1))
			_, err := svc.Remove(context.Background(), Cart, 1, tt.recipeID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Remove() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecountFailureRollsBack(t *testing.T) {
	store := newFakeStore(1)
	store.failRecount = true
	svc := New(store)

	if _, err := svc.Add(context.Background(), Cart, 1, 1); err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(store.cart) != 0 {
		t.Errorf("cart entry survived a failed transaction: %v", store.cart)
	}
}

func TestRecipeDeletedConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := database.NewMockQuerier(ctrl)
	params := database.MembershipParams{UserID: 1, RecipeID: 5}

	gomock.InOrder(
		mockDB.EXPECT().CreateFavoriteEntry(gomock.Any(), params).Return(nil),
		mockDB.EXPECT().RecountRecipeFavorites(gomock.Any(), int64(5)).Return(int64(0), nil),
	)

	svc := New(&database.Database{Querier: mockDB})
	got, err := svc.Add(context.Background(), Favorite, 1, 5)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got != 0 {
		t.Errorf("Add() count = %d, want 0", got)
	}
}

func TestUnknownList(t *testing.T) {
	svc := New(newFakeStore(1))
	if _, err := svc.Add(context.Background(), List("wishlist"), 1, 1); !errors.Is(err, ErrUnknownList) {
		t.Fatalf("Add() error = %v, want %v", err, ErrUnknownList)
	}
}
