package database

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (e *Role) Scan(src interface{}) error {
	switch s := src.(type) {
	case []byte:
		*e = Role(s)
	case string:
		*e = Role(s)
	default:
		return fmt.Errorf("unsupported scan type for Role: %T", src)
	}
	return nil
}

func (e Role) Value() (driver.Value, error) {
	return string(e), nil
}

type User struct {
	ID           int64
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         Role
	CreatedAt    pgtype.Timestamptz
}

type Tag struct {
	ID    int64
	Name  string
	Color string
	Slug  string
}

type Ingredient struct {
	ID              int64
	Name            string
	MeasurementUnit string
}

type Recipe struct {
	ID                  int64
	AuthorID            int64
	Name                string
	Text                string
	CookingTime         int32
	FavoriteCount       int32
	InShoppingCartCount int32
	PubDate             pgtype.Timestamptz
}

type RecipeIngredient struct {
	ID           int64
	RecipeID     int64
	IngredientID int64
	Amount       int32
}

type CartEntry struct {
	ID       int64
	UserID   int64
	RecipeID int64
}

type FavoriteEntry struct {
	ID       int64
	UserID   int64
	RecipeID int64
}

type Subscription struct {
	ID       int64
	UserID   int64
	AuthorID int64
}
