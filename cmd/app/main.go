package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/editorial/config"
	"github.com/daniilsolovey/editorial/internal/app"
)

var (
	flConfig        = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug         = flag.Bool("debug", false, "enable debug mode")
	flDatabaseURL   = flag.String("database-url", "", "database connection URL, overrides [Database] (DATABASE_URL)")
	flDBMaxConns    = flag.Int("db-max-conns", 0, "maximum number of database connections (DB_MAX_CONNS)")
	flDBMaxConnLife = flag.String("db-max-conn-lifetime", "", "maximum lifetime of database connection (DB_MAX_CONN_LIFETIME)")
	flPort          = flag.Int("port", 0, "HTTP server port, overrides [App] (PORT)")
	flDirectPublish = flag.Bool("allow-direct-publish", false, "allow publishing drafts without review (ALLOW_DIRECT_PUBLISH)")
	cfg             config.Config
	lg              *slog.Logger
)

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	var err error
	cfg, err = config.Load(*flConfig)
	exitOnError(err)

	if *flDatabaseURL != "" {
		exitOnError(cfg.ApplyDatabaseURL(*flDatabaseURL, *flDBMaxConns, *flDBMaxConnLife))
	}
	if *flPort != 0 {
		cfg.App.Port = *flPort
	}
	if *flDirectPublish {
		cfg.Editorial.AllowDirectPublish = true
	}

	ctx := context.Background()

	var dbc *pg.DB
	if !cfg.InMemory() {
		dbc, err = app.Connect(ctx, &cfg, lg)
		exitOnError(err)
	} else {
		lg.Warn("database is not configured, using in-memory storage")
	}

	service := app.New(&cfg, dbc, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
