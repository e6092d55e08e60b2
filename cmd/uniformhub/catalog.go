package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Spok95/uniformhub/internal/config"
	"github.com/Spok95/uniformhub/internal/domain/catalog"
	"github.com/Spok95/uniformhub/internal/infra/db"
)

// loadCatalog reads the startup snapshot from the configured source. gen
// supplies the items for the generated source.
func loadCatalog(ctx context.Context, cfg config.Config, log *slog.Logger, gen catalog.Generator) ([]catalog.Item, error) {
	switch cfg.Catalog.Source {
	case config.SourceXLSX:
		f, err := os.Open(cfg.Catalog.Path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return catalog.ImportXLSX(f)

	case config.SourcePostgres:
		if cfg.Postgres.RunMigrations {
			if err := db.Migrate(cfg.Postgres.DSN, cfg.Postgres.Migrations); err != nil {
				return nil, fmt.Errorf("migrations: %w", err)
			}
			log.Info("migrations applied")
		}
		pool, err := db.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		log.Info("db connected")
		return catalog.NewRepo(pool).LoadSnapshot(ctx)

	default:
		return gen.Items(), nil
	}
}
