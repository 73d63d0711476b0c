package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/msomdec/anime-service/internal/config"
	"github.com/msomdec/anime-service/internal/domain"
	"github.com/msomdec/anime-service/internal/fixtures"
	"github.com/msomdec/anime-service/internal/handler"
	"github.com/msomdec/anime-service/internal/metrics"
	"github.com/msomdec/anime-service/internal/repository/memory"
	"github.com/msomdec/anime-service/internal/repository/sqlite"
	"github.com/msomdec/anime-service/internal/service"
)

// newRepositories opens the configured backend. The returned close func
// releases it and is never nil.
func newRepositories(ctx context.Context, sc config.StoreConfig) (fixtures.Repositories, func() error, error) {
	switch sc.Driver {
	case config.DriverSQLite:
		db, err := sqlite.New(sc.DSN)
		if err != nil {
			return fixtures.Repositories{}, nil, fmt.Errorf("open database: %w", err)
		}
		if err := migrate(ctx, db); err != nil {
			return fixtures.Repositories{}, nil, err
		}
		slog.Info("sqlite store ready", "dsn", sc.DSN)
		return fixtures.Repositories{
			Animes:    db.Animes(),
			Producers: db.Producers(),
			Users:     db.Users(),
		}, db.Close, nil
	default:
		return fixtures.Repositories{
			Animes:    memory.NewAnimeRepository(memory.NewAnimeStore()),
			Producers: memory.NewProducerRepository(memory.NewProducerStore()),
			Users:     memory.NewUserRepository(memory.NewUserStore()),
		}, func() error { return nil }, nil
	}
}

// migrate prepares db's schema and closes db when that fails.
func migrate(ctx context.Context, db domain.Database) error {
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// seed loads the configured fixture set into repos.
func seed(ctx context.Context, fc config.FixturesConfig, repos fixtures.Repositories) error {
	set, err := fixtures.Load(fc.Path)
	if err != nil {
		return err
	}
	if err := set.Seed(ctx, repos, time.Now()); err != nil {
		return err
	}
	slog.Info("fixtures seeded",
		"animes", len(set.Animes), "producers", len(set.Producers), "users", len(set.Users))
	return nil
}

// newHandler wires services, routes and middleware into the server handler.
func newHandler(repos fixtures.Repositories, apiKeyHeader string, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux,
		service.NewAnimeService(repos.Animes),
		service.NewProducerService(repos.Producers),
		service.NewUserService(repos.Users),
		apiKeyHeader,
	)
	mux.Handle("GET /metrics", m.Handler())

	return handler.SecurityHeaders(handler.RequestLogger(m, mux))
}
