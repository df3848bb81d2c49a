package db

import (
	"context"
	"embed"
	"fmt"
	"net"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded goose migrations to the database described by opts.
func Migrate(ctx context.Context, opts *pg.Options) error {
	config, err := connConfig(opts)
	if err != nil {
		return err
	}

	sqldb := stdlib.OpenDB(config)
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqldb, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

func connConfig(opts *pg.Options) (pgx.ConnConfig, error) {
	config := pgx.ConnConfig{
		Host:     "localhost",
		Port:     5432,
		Database: opts.Database,
		User:     opts.User,
		Password: opts.Password,
	}
	if opts.Addr == "" {
		return config, nil
	}

	host, port, err := net.SplitHostPort(opts.Addr)
	if err != nil {
		return pgx.ConnConfig{}, fmt.Errorf("parse db addr %q: %w", opts.Addr, err)
	}
	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return pgx.ConnConfig{}, fmt.Errorf("parse db port %q: %w", port, err)
	}
	if host != "" {
		config.Host = host
	}
	config.Port = uint16(p)
	return config, nil
}
