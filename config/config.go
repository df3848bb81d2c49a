package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	DB       struct {
		LogQueries bool
		Migrate    bool
	}
	App struct {
		Host string
		Port int
	}
	Editorial struct {
		AllowDirectPublish bool
	}
	Storage struct {
		InMemory bool
	}
}

// Load decodes a TOML file and fills defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Decode parses TOML from a string and fills defaults.
func Decode(data string) (Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 3000
	}
}

// ApplyDatabaseURL replaces the database options with the ones parsed from a postgres:// URL.
func (c *Config) ApplyDatabaseURL(url string, maxConns int, maxConnLifetime string) error {
	opt, err := pg.ParseURL(url)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.MaxRetries = 3
	if maxConns > 0 {
		opt.PoolSize = maxConns
	}
	if maxConnLifetime != "" {
		lifetime, err := time.ParseDuration(maxConnLifetime)
		if err != nil {
			return fmt.Errorf("failed to parse db max conn lifetime: %w", err)
		}
		opt.MaxConnAge = lifetime
	}

	c.Database = *opt
	return nil
}

// InMemory reports whether the in-process store should be used instead of Postgres.
func (c Config) InMemory() bool {
	return c.Storage.InMemory || c.Database.Addr == ""
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}
