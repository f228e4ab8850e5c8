package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v3"
)

const defaultPuzzlesConfigPath = "configs/puzzles.yaml"

// PuzzlesConfig holds per-day tunables. Unset values take the published
// puzzle's constants.
type PuzzlesConfig struct {
	Days Days `yaml:"days"`
}

type Days struct {
	Day01 CalorieConfig    `yaml:"day01"`
	Day06 MarkerConfig     `yaml:"day06"`
	Day07 FilesystemConfig `yaml:"day07"`
	Day09 RopeConfig       `yaml:"day09"`
	Day11 MonkeyConfig     `yaml:"day11"`
}

type CalorieConfig struct {
	TopCount int `yaml:"top_count"`
}

type MarkerConfig struct {
	PacketMarker  int `yaml:"packet_marker"`
	MessageMarker int `yaml:"message_marker"`
}

type FilesystemConfig struct {
	DiskSize      int `yaml:"disk_size"`
	RequiredSpace int `yaml:"required_space"`
	SmallDirLimit int `yaml:"small_dir_limit"`
}

type RopeConfig struct {
	Knots int `yaml:"knots"`
}

type MonkeyConfig struct {
	Rounds     int `yaml:"rounds"`
	Relief     int `yaml:"relief"`
	LongRounds int `yaml:"long_rounds"`
}

// LoadPuzzlesConfig reads the YAML file at path. An empty path falls back
// to configs/puzzles.yaml, and a missing file yields the defaults.
func LoadPuzzlesConfig(path string) (*PuzzlesConfig, error) {
	if path == "" {
		path = defaultPuzzlesConfigPath
	}

	var cfg PuzzlesConfig

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultPuzzlesConfig returns the published puzzle constants.
func DefaultPuzzlesConfig() *PuzzlesConfig {
	var cfg PuzzlesConfig
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *PuzzlesConfig) {
	d := &cfg.Days
	setDefault(&d.Day01.TopCount, 3)
	setDefault(&d.Day06.PacketMarker, 4)
	setDefault(&d.Day06.MessageMarker, 14)
	setDefault(&d.Day07.DiskSize, 70000000)
	setDefault(&d.Day07.RequiredSpace, 30000000)
	setDefault(&d.Day07.SmallDirLimit, 100000)
	setDefault(&d.Day09.Knots, 10)
	setDefault(&d.Day11.Rounds, 20)
	setDefault(&d.Day11.Relief, 3)
	setDefault(&d.Day11.LongRounds, 10000)
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func (c *PuzzlesConfig) Validate() error {
	d := c.Days
	positive := []struct {
		name  string
		value int
	}{
		{"day01.top_count", d.Day01.TopCount},
		{"day06.packet_marker", d.Day06.PacketMarker},
		{"day06.message_marker", d.Day06.MessageMarker},
		{"day07.disk_size", d.Day07.DiskSize},
		{"day07.required_space", d.Day07.RequiredSpace},
		{"day07.small_dir_limit", d.Day07.SmallDirLimit},
		{"day11.rounds", d.Day11.Rounds},
		{"day11.relief", d.Day11.Relief},
		{"day11.long_rounds", d.Day11.LongRounds},
	}
	for _, p := range positive {
		if p.value < 0 {
			return fmt.Errorf("%s must be positive, got %d", p.name, p.value)
		}
	}

	if d.Day07.RequiredSpace > d.Day07.DiskSize {
		return fmt.Errorf("day07.required_space %d exceeds disk_size %d", d.Day07.RequiredSpace, d.Day07.DiskSize)
	}
	if d.Day09.Knots < 2 {
		return fmt.Errorf("day09.knots must be at least 2, got %d", d.Day09.Knots)
	}
	return nil
}
