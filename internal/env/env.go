// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/mign0n/foodgram-project/internal/catalog"
	"github.com/mign0n/foodgram-project/internal/config"
	"github.com/mign0n/foodgram-project/internal/database"
	"github.com/mign0n/foodgram-project/internal/log"
	"github.com/mign0n/foodgram-project/internal/membership"
)

type Env struct {
	Logger     *slog.Logger
	Database   *database.Database
	Membership *membership.Service
	Catalog    *catalog.Searcher
	Config     config.Config
}

// New builds an Env around db. A nil logger is replaced with one that
// discards everything.
func New(logger *slog.Logger, db *database.Database, conf config.Config) (*Env, error) {
	if logger == nil {
		logger = log.NullLogger()
	}

	e := &Env{
		Logger:   logger,
		Database: db,
		Config:   conf,
	}
	if db != nil {
		searcher, err := catalog.NewSearcher(db, catalog.DefaultCacheSize, catalog.DefaultCacheTTL)
		if err != nil {
			return nil, err
		}
		e.Catalog = searcher
		e.Membership = membership.New(db)
	}
	return e, nil
}

// Null returns an Env with a discarding logger and no database.
func Null() *Env {
	return &Env{
		Logger: log.NullLogger(),
	}
}

type envKeyType struct{}

var envKey envKeyType

// WithCtx stores env in ctx.
func WithCtx(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey, env)
}

// EnvFromCtx returns the Env stored in ctx, or Null when there is none.
func EnvFromCtx(ctx context.Context) *Env {
	if e, ok := ctx.Value(envKey).(*Env); ok && e != nil {
		return e
	}
	return Null()
}
