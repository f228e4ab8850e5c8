// Package stream moves solve requests and answers through Redis streams.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/povarna/aoc2022/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Solver answers one request
type Solver interface {
	Solve(ctx context.Context, req models.SolveRequest) (models.SolveResult, error)
}

type Consumer struct {
	client redis.Cmdable
	cfg    *Config
	solver Solver
	logger *zerolog.Logger
}

func NewConsumer(client redis.Cmdable, cfg *Config, solver Solver, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client: client,
		cfg:    cfg,
		solver: solver,
		logger: logger,
	}
}

// Setup creates the consumer group, and the stream with it, if missing.
func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.cfg.Stream, c.cfg.Group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("create group %s on %s: %w", c.cfg.Group, c.cfg.Stream, err)
	}
	return nil
}

// Start reads the stream until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.cfg.Stream).
		Str("group", c.cfg.Group).
		Str("consumer", c.cfg.ConsumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.cfg.Group,
			Consumer: c.cfg.ConsumerName,
			Streams:  []string{c.cfg.Stream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// timeout, no message -> loop again
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err() // context cancelled during block
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, s := range streams {
			for _, msg := range s.Messages {
				c.process(ctx, msg)
			}
		}
	}
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Debug().Str("id", msg.ID).Msg("Message received")

	payload, ok := msg.Values[payloadField].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		c.ack(ctx, msg.ID)
		return
	}

	var req models.SolveRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message, ACK to skip it
		return
	}
	if req.RequestID == "" {
		req.RequestID = msg.ID
	}

	reply := models.SolveReply{}
	result, err := c.solver.Solve(ctx, req)
	if err != nil {
		reply.SolveResult = models.SolveResult{RequestID: req.RequestID, Day: req.Day, Part: req.Part}
		reply.Error = err.Error()
		c.logger.Warn().Err(err).Str("id", msg.ID).Int("day", req.Day).Int("part", req.Part).Msg("Solve failed")
	} else {
		reply.SolveResult = result
		c.logger.Info().
			Str("id", msg.ID).
			Int("day", req.Day).
			Int("part", req.Part).
			Bool("cached", result.Cached).
			Msg("Solve complete")
	}

	if err := c.publish(ctx, reply); err != nil {
		// Leave the message pending so it can be claimed again.
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to publish answer")
		return
	}

	c.ack(ctx, msg.ID)
}

func (c *Consumer) publish(ctx context.Context, reply models.SolveReply) error {
	data, err := json.Marshal(reply)
	if err != nil {
		return err
	}
	return c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.cfg.ResultStream,
		Values: map[string]any{payloadField: string(data)},
	}).Err()
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
