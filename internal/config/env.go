package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration read from the environment.
type Config struct {
	LogLevel      string        `env:"AOC_LOG_LEVEL" envDefault:"info"`
	PuzzlesConfig string        `env:"AOC_PUZZLES_CONFIG" envDefault:"configs/puzzles.yaml"`
	APIPort       int           `env:"AOC_API_PORT" envDefault:"8080"`
	CacheTTL      time.Duration `env:"AOC_CACHE_TTL" envDefault:"24h"`
	Redis         RedisConfig
	Stream        StreamConfig
	Database      DatabaseConfig
}

type StreamConfig struct {
	Requests string `env:"AOC_STREAM" envDefault:"aoc-solve"`
	Group    string `env:"AOC_STREAM_GROUP" envDefault:"aoc-workers"`
	Answers  string `env:"AOC_RESULT_STREAM" envDefault:"aoc-answers"`
}

type RedisConfig struct {
	Addr       string `env:"REDIS_ADDR"`
	Password   string `env:"REDIS_PASSWORD"`
	MaxRetries int    `env:"REDIS_MAX_RETRIES" envDefault:"3"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"aoc"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// Enabled reports whether a database host was configured.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.APIPort <= 0 || cfg.APIPort > 65535 {
		return nil, fmt.Errorf("invalid AOC_API_PORT %d", cfg.APIPort)
	}
	if cfg.CacheTTL < 0 {
		return nil, fmt.Errorf("negative AOC_CACHE_TTL %s", cfg.CacheTTL)
	}
	return &cfg, nil
}
