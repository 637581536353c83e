// Package storage selects and wires the account store backend.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	"github.com/polkiloo/accounts/internal/config"
	"github.com/polkiloo/accounts/internal/domain/repository"
	"github.com/polkiloo/accounts/internal/storage/postgres"
	"github.com/polkiloo/accounts/internal/storage/sqlite"
)

const sqliteScheme = "sqlite://"

// Storage is an opened account store.
type Storage interface {
	Accounts() repository.AccountRepository
	HealthCheck(ctx context.Context) error
	Close() error
}

// Module wires the storage backend chosen by the database URI.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(func(s Storage) repository.AccountRepository { return s.Accounts() }),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (Storage, error) {
	return Open(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

// Open connects to the backend named by the URI scheme: postgres:// and
// postgresql:// select PostgreSQL, sqlite://<path> selects SQLite.
func Open(ctx context.Context, uri string, logger *slog.Logger) (Storage, error) {
	switch {
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		st, err := postgres.New(ctx, uri, logger.With(slog.String("component", "postgres")))
		if err != nil {
			return nil, err
		}
		return st, nil
	case strings.HasPrefix(uri, sqliteScheme):
		st, err := sqlite.Open(ctx, strings.TrimPrefix(uri, sqliteScheme), logger.With(slog.String("component", "sqlite")))
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unsupported database uri scheme: %q", schemeOf(uri))
	}
}

func schemeOf(uri string) string {
	if i := strings.Index(uri, "://"); i >= 0 {
		return uri[:i]
	}
	return uri
}

func registerLifecycle(lc fx.Lifecycle, storage Storage, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := storage.HealthCheck(ctx); err != nil {
				return fmt.Errorf("storage health check: %w", err)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := storage.Close(); err != nil {
				logger.Error("close storage", slog.String("error", err.Error()))
				return err
			}
			return nil
		},
	})
}
