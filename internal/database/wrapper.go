// Package database contains the Postgres queries and the transaction wrapper.
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mign0n/foodgram-project/internal/sql"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

type Pool interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Database struct {
	Querier

	Pool Pool
}

func NewDatabase(pool *pgxpool.Pool) *Database {
	return &Database{
		Querier: New(pool),
		Pool:    pool,
	}
}

// InTx runs fn inside a single transaction. The transaction is committed
// when fn returns nil and rolled back otherwise. Without a pool, fn is
// handed the plain Querier.
func (d *Database) InTx(ctx context.Context, fn func(q Querier) error) error {
	if d.Pool == nil {
		return fn(d.Querier)
	}

	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(New(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// EnsureSchema ensures the database schema is applied to the
// Postgres database. The schema is applied to the database
// if the schema is not detected.
func (d *Database) EnsureSchema(ctx context.Context) error {
	exists, err := d.CheckUsersTableExists(ctx)
	if err != nil {
		return fmt.Errorf("ensuring schema exists: %w", err)
	}

	if exists {
		return nil
	}

	if d.Pool == nil {
		return errors.New("no connection to apply schema with")
	}
	if _, err := d.Pool.Exec(ctx, sql.Schema()); err != nil {
		return fmt.Errorf("applying database schema: %w", err)
	}

	return nil
}

// IsUniqueViolation reports whether err is a Postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation reports whether err is a Postgres foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// ConstraintName returns the violated constraint, or "" when err is not a
// Postgres error.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
