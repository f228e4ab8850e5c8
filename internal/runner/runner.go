// Package runner solves requests against the puzzle registry, fronted by
// an optional answer cache and run recorder.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/povarna/aoc2022/internal/models"
	"github.com/povarna/aoc2022/internal/puzzle"
	"github.com/rs/zerolog"
)

// Cache stores answers by key
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, answer string) error
}

// Recorder persists solve attempts
type Recorder interface {
	Record(ctx context.Context, run models.Run) error
}

type Runner struct {
	registry *puzzle.Registry
	cache    Cache
	recorder Recorder
	logger   *zerolog.Logger
}

// NewRunner wires a runner. Nil cache or recorder disables that step.
func NewRunner(registry *puzzle.Registry, cache Cache, recorder Recorder, logger *zerolog.Logger) *Runner {
	if cache == nil {
		cache = NopCache{}
	}
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &Runner{
		registry: registry,
		cache:    cache,
		recorder: recorder,
		logger:   logger,
	}
}

// Registry returns the registry the runner solves against.
func (r *Runner) Registry() *puzzle.Registry {
	return r.registry
}

// InputDigest is the hex xxhash of an input, used in cache keys and run
// records.
func InputDigest(input string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(input))
}

func CacheKey(day, part int, digest string) string {
	return fmt.Sprintf("answer:%d:%d:%s", day, part, digest)
}

func (r *Runner) Solve(ctx context.Context, req models.SolveRequest) (models.SolveResult, error) {
	solve, err := r.registry.Lookup(req.Day, req.Part)
	if err != nil {
		return models.SolveResult{}, err
	}

	result := models.SolveResult{
		RequestID: req.RequestID,
		Day:       req.Day,
		Part:      req.Part,
	}

	digest := InputDigest(req.Input)
	key := CacheKey(req.Day, req.Part, digest)

	answer, hit, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("Cache lookup failed")
	} else if hit {
		r.logger.Debug().Int("day", req.Day).Int("part", req.Part).Msg("Cache hit")
		result.Answer = answer
		result.Cached = true
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return models.SolveResult{}, err
	}

	start := time.Now()
	answer, err = solve(req.Input)
	result.Duration = time.Since(start)

	run := models.Run{
		Day:       req.Day,
		Part:      req.Part,
		InputHash: digest,
		Duration:  result.Duration,
		CreatedAt: start,
	}

	if err != nil {
		run.Status = models.RunStatusFailed
		run.Error = err.Error()
		r.record(ctx, run)
		r.logger.Debug().Err(err).Int("day", req.Day).Int("part", req.Part).Msg("Solve failed")
		return models.SolveResult{}, err
	}

	result.Answer = answer
	run.Status = models.RunStatusSolved
	run.Answer = answer

	if err := r.cache.Set(ctx, key, answer); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("Cache store failed")
	}
	r.record(ctx, run)

	r.logger.Debug().
		Int("day", req.Day).
		Int("part", req.Part).
		Dur("duration", result.Duration).
		Msg("Solve complete")

	return result, nil
}

func (r *Runner) record(ctx context.Context, run models.Run) {
	if err := r.recorder.Record(ctx, run); err != nil {
		r.logger.Warn().Err(err).Int("day", run.Day).Int("part", run.Part).Msg("Failed to record run")
	}
}

// NopCache never hits and drops every store.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (NopCache) Set(context.Context, string, string) error         { return nil }

// NopRecorder discards runs.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, models.Run) error { return nil }
