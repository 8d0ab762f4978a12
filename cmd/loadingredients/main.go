// Command loadingredients imports the ingredient or tag catalog from a CSV
// or JSON file, local or remote. Existing rows are left untouched, so the
// command can be rerun safely.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mign0n/foodgram-project/internal/catalog"
	"github.com/mign0n/foodgram-project/internal/config"
	"github.com/mign0n/foodgram-project/internal/database"
	"github.com/mign0n/foodgram-project/internal/http"
	"github.com/mign0n/foodgram-project/internal/log"
	"github.com/mign0n/foodgram-project/internal/setup"
)

const (
	kindIngredients = "ingredients"
	kindTags        = "tags"
)

func main() {
	source := flag.String("source", "", "file path or http(s) URL to import")
	kind := flag.String("kind", kindIngredients, "what the source holds: ingredients or tags")
	format := flag.String("format", "", "csv or json; inferred from the source extension when empty")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(nil)
	if err := run(ctx, logger, *source, *kind, *format); err != nil {
		logger.Error("import failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, source, kind, format string) error {
	if source == "" {
		return errors.New("-source is required")
	}
	f := catalog.Format(format)
	if format == "" {
		var err error
		if f, err = catalog.FormatFromPath(source); err != nil {
			return err
		}
	}

	conf, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	db, err := setup.Database(ctx, conf, logger)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	body, err := catalog.Open(ctx, source, http.New(http.DefaultConfig(logger)))
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	var loaded int
	switch kind {
	case kindIngredients:
		entries, err := catalog.ParseIngredients(body, f)
		if err != nil {
			return err
		}
		err = db.InTx(ctx, func(q database.Querier) error {
			n, err := catalog.LoadIngredients(ctx, q, entries)
			loaded = n
			return err
		})
		if err != nil {
			return err
		}
	case kindTags:
		entries, err := catalog.ParseTags(body, f)
		if err != nil {
			return err
		}
		err = db.InTx(ctx, func(q database.Querier) error {
			n, err := catalog.LoadTags(ctx, q, entries)
			loaded = n
			return err
		})
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}

	logger.InfoContext(ctx, "import finished",
		slog.String("kind", kind),
		slog.String("source", source),
		slog.Int("rows", loaded))
	return nil
}
