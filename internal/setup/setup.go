// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mign0n/foodgram-project/internal/argon2id"
	"github.com/mign0n/foodgram-project/internal/config"
	"github.com/mign0n/foodgram-project/internal/database"
	"github.com/mign0n/foodgram-project/internal/env"
	"github.com/mign0n/foodgram-project/internal/password"
)

// DatabaseConnectTimeout bounds how long Database waits for Postgres to
// accept connections.
const DatabaseConnectTimeout = 20 * time.Second

// Database connects to Postgres, retrying with exponential backoff until
// it answers, and applies the schema when it is missing.
func Database(ctx context.Context, conf config.Config, logger *slog.Logger) (*database.Database, error) {
	if conf.Database.Database == "" {
		return nil, MissingConfigError{Key: "database.database"}
	}
	if conf.Database.User == "" {
		return nil, MissingConfigError{Key: "database.user"}
	}

	pool, err := pgxpool.New(ctx, conf.Database.ConnString())
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}

	attempt := 0
	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		if err := pool.Ping(ctx); err != nil {
			logger.WarnContext(ctx, "database not ready", slog.Int("attempt", attempt), slog.Any("error", err))
			return struct{}{}, err
		}
		return struct{}{}, nil
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(DatabaseConnectTimeout),
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	db := database.NewDatabase(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	return db, nil
}

// Admin creates the configured admin user unless an admin already exists.
// Requires env.Database.
func Admin(ctx context.Context, env *env.Env) error {
	admin := env.Config.Admin
	if admin.Email == "" || admin.Password == "" {
		env.Logger.InfoContext(ctx, "admin credentials not configured, skipping admin setup")
		return nil
	}
	if err := password.ValidatePassword(string(admin.Password)); err != nil {
		return fmt.Errorf("validating admin password: %w", err)
	}

	count, err := env.Database.GetAdminCount(ctx)
	if err != nil {
		return fmt.Errorf("getting admin count: %w", err)
	}
	if count > 0 {
		env.Logger.InfoContext(ctx, "admin already setup, skipping setup")
		return nil
	}

	hashedPassword, err := argon2id.EncodeHash(string(admin.Password), argon2id.DefaultParams)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	username := admin.Username
	if username == "" {
		username = "admin"
	}
	_, err = env.Database.CreateUser(ctx, database.CreateUserParams{
		Email:        strings.ToLower(strings.TrimSpace(admin.Email)),
		Username:     username,
		FirstName:    admin.FirstName,
		LastName:     admin.LastName,
		PasswordHash: hashedPassword,
		Role:         database.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}
	env.Logger.InfoContext(ctx, "successfully setup admin")

	return nil
}
