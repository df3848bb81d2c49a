package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/editorial/config"
	"github.com/daniilsolovey/editorial/internal/db"
	"github.com/daniilsolovey/editorial/internal/editorial"
	"github.com/daniilsolovey/editorial/internal/memstore"
	"github.com/daniilsolovey/editorial/internal/rest"
	"github.com/daniilsolovey/editorial/internal/rpc"
)

const rpcPath = "/rpc"

type App struct {
	DB      *db.Repository
	Service *editorial.Service
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  *config.Config
}

// New wires the application. A nil dbConnect selects the in-memory store.
func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	a := &App{
		Logger: logger,
		Config: cfg,
	}

	var (
		repo   editorial.Repository
		pinger rest.Pinger
	)
	if dbConnect != nil {
		a.DB = db.New(dbConnect)
		repo, pinger = a.DB, a.DB
	} else {
		repo = memstore.New()
	}

	a.Service = editorial.NewService(repo, logger, editorial.Config{
		AllowDirectPublish: cfg.Editorial.AllowDirectPublish,
	})
	a.Echo = rest.NewHandler(a.Service, pinger, logger).RegisterRoutes()
	a.Echo.Any(rpcPath, echo.WrapHandler(rpc.New(logger, a.Service)))

	return a
}

// Connect opens the Postgres pool described by cfg, applying migrations when enabled.
func Connect(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pg.DB, error) {
	if cfg.DB.Migrate {
		if err := db.Migrate(ctx, &cfg.Database); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("database migrations applied")
	}

	dbc := pg.Connect(&cfg.Database)
	if cfg.DB.LogQueries {
		dbc.AddQueryHook(db.NewQueryHook(logger))
		logger.Info("SQL query logging enabled")
	}

	if err := dbc.Ping(ctx); err != nil {
		_ = dbc.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return dbc, nil
}

func (a *App) Run(ctx context.Context) error {
	addr := a.Config.Addr()
	a.Logger.InfoContext(ctx, "service started", "addr", addr, "inMemory", a.DB == nil)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	if a.DB != nil {
		if cerr := a.DB.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}
	return err
}
