package setup

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/povarna/aoc2022/internal/cache"
	"github.com/povarna/aoc2022/internal/config"
	"github.com/povarna/aoc2022/internal/database"
	"github.com/povarna/aoc2022/internal/days"
	"github.com/povarna/aoc2022/internal/puzzle"
	"github.com/povarna/aoc2022/internal/redis"
	"github.com/povarna/aoc2022/internal/runner"
)

type Dependencies struct {
	Config   *config.Config
	Registry *puzzle.Registry
	Runner   *runner.Runner
	Redis    *goredis.Client // nil when REDIS_ADDR is unset or unreachable
	DB       *database.DB    // nil when DB_HOST is unset or unreachable
	Logger   *zerolog.Logger
}

func LoadConfig() (*config.Config, error) {
	return config.Load()
}

// Wire builds the registry and runner. Redis and Postgres are optional:
// when configured but unreachable the runner falls back to no-op
// collaborators and a warning is logged.
func Wire(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Dependencies, error) {
	// Per-day tunables
	puzzlesConfig, err := config.LoadPuzzlesConfig(cfg.PuzzlesConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzles config: %w", err)
	}

	registry := puzzle.NewRegistry()
	days.Register(registry, puzzlesConfig)

	deps := &Dependencies{
		Config:   cfg,
		Registry: registry,
		Logger:   logger,
	}

	// Answer cache
	var answerCache runner.Cache
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.MaxRetries, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("Answer cache disabled")
		} else {
			deps.Redis = client
			answerCache = cache.NewRedisCache(client, cfg.CacheTTL)
		}
	}

	// Run history
	var recorder runner.Recorder
	if cfg.Database.Enabled() {
		db, err := connectDatabase(ctx, cfg.Database)
		if err != nil {
			logger.Warn().Err(err).Msg("Run history disabled")
		} else {
			deps.DB = db
			recorder = db
		}
	}

	deps.Runner = runner.NewRunner(registry, answerCache, recorder, logger)

	return deps, nil
}

func connectDatabase(ctx context.Context, cfg config.DatabaseConfig) (*database.DB, error) {
	db, err := database.New(ctx, database.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
		Database: cfg.Name,
		SSLMode:  cfg.SSLMode,
	})
	if err != nil {
		return nil, err
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Close releases the Redis client and database pool, if any.
func (d *Dependencies) Close() {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
	if d.DB != nil {
		d.DB.Close()
	}
}
