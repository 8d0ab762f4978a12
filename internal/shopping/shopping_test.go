package shopping

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/mign0n/foodgram-project/internal/database"
	"go.uber.org/mock/gomock"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		rows    []Row
		want    []Item
		wantErr error
	}{
		{
			name: "empty cart",
			rows: nil,
			want: []Item{},
		},
		{
			name: "shared ingredient is summed",
			rows: []Row{
				{RecipeID: 1, IngredientID: 5, Name: "Salt", MeasurementUnit: "g", Amount: 10},
				{RecipeID: 2, IngredientID: 5, Name: "Salt", MeasurementUnit: "g", Amount: 15},
			},
			want: []Item{{ID: 5, Name: "Salt", MeasurementUnit: "g", Amount: 25}},
		},
		{
			name: "ordered by id",
			rows: []Row{
				{RecipeID: 1, IngredientID: 9, Name: "Water", MeasurementUnit: "ml", Amount: 200},
				{RecipeID: 1, IngredientID: 3, Name: "Sugar", MeasurementUnit: "g", Amount: 5},
				{RecipeID: 2, IngredientID: 7, Name: "Eggs", MeasurementUnit: "pcs", Amount: 2},
			},
			want: []Item{
				{ID: 3, Name: "Sugar", MeasurementUnit: "g", Amount: 5},
				{ID: 7, Name: "Eggs", MeasurementUnit: "pcs", Amount: 2},
				{ID: 9, Name: "Water", MeasurementUnit: "ml", Amount: 200},
			},
		},
		{
			name: "non-positive amount",
			rows: []Row{
				{RecipeID: 1, IngredientID: 5, Name: "Salt", MeasurementUnit: "g", Amount: 0},
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "overflow",
			rows: []Row{
				{RecipeID: 1, IngredientID: 5, Name: "Salt", MeasurementUnit: "g", Amount: math.MaxInt64},
				{RecipeID: 2, IngredientID: 5, Name: "Salt", MeasurementUnit: "g", Amount: 1},
			},
			wantErr: ErrAmountOverflow,
		},
		{
			name: "mismatched unit",
			rows: []Row{
				{RecipeID: 1, IngredientID: 5, Name: "Salt", MeasurementUnit: "g", Amount: 1},
				{RecipeID: 2, IngredientID: 5, Name: "Salt", MeasurementUnit: "kg", Amount: 1},
			},
			wantErr: ErrInconsistentIngredient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Aggregate(tt.rows)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Aggregate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Aggregate() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Aggregate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestListStrategiesAgree(t *testing.T) {
	const userID = int64(42)

	ctrl := gomock.NewController(t)
	mockDB := database.NewMockQuerier(ctrl)
	mockDB.EXPECT().
		AggregateShoppingCart(gomock.Any(), userID).
		Return([]database.AggregateShoppingCartRow{
			{ID: 1, Name: "Flour", MeasurementUnit: "g", Amount: 700},
			{ID: 2, Name: "Milk", MeasurementUnit: "ml", Amount: 250},
		}, nil)
	mockDB.EXPECT().
		ListCartIngredientAmounts(gomock.Any(), userID).
		Return([]database.ListCartIngredientAmountsRow{
			{RecipeID: 10, IngredientID: 2, Name: "Milk", MeasurementUnit: "ml", Amount: 250},
			{RecipeID: 10, IngredientID: 1, Name: "Flour", MeasurementUnit: "g", Amount: 500},
			{RecipeID: 11, IngredientID: 1, Name: "Flour", MeasurementUnit: "g", Amount: 200},
		}, nil)

	ctx := context.Background()
	byQuery, err := List(ctx, mockDB, StrategyQuery, userID)
	if err != nil {
		t.Fatalf("List(query) error = %v", err)
	}
	inMemory, err := List(ctx, mockDB, StrategyMemory, userID)
	if err != nil {
		t.Fatalf("List(memory) error = %v", err)
	}
	if !reflect.DeepEqual(byQuery, inMemory) {
		t.Errorf("strategies disagree:\nquery:  %+v\nmemory: %+v", byQuery, inMemory)
	}
}

func TestListEmptyCart(t *testing.T) {
	for _, strategy := range []Strategy{StrategyQuery, StrategyMemory} {
		t.Run(string(strategy), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := database.NewMockQuerier(ctrl)
			mockDB.EXPECT().AggregateShoppingCart(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			mockDB.EXPECT().ListCartIngredientAmounts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

			items, err := List(context.Background(), mockDB, strategy, 1)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if items == nil || len(items) != 0 {
				t.Errorf("expected an empty non-nil list, got %#v", items)
			}
		})
	}
}

func TestListUnknownStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := database.NewMockQuerier(ctrl)

	if _, err := List(context.Background(), mockDB, Strategy("bogus"), 1); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestListDatabaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := database.NewMockQuerier(ctrl)
	mockDB.EXPECT().
		AggregateShoppingCart(gomock.Any(), int64(1)).
		Return(nil, errors.New("connection reset"))

	if _, err := List(context.Background(), mockDB, StrategyQuery, 1); err == nil {
		t.Fatal("expected error, got nil")
	}
}
