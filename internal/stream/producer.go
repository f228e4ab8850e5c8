package stream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/povarna/aoc2022/internal/models"
	"github.com/redis/go-redis/v9"
)

// Publish appends req to stream and returns the entry ID.
func Publish(ctx context.Context, client redis.Cmdable, stream string, req models.SolveRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{payloadField: string(data)},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("publish to %s: %w", stream, err)
	}
	return id, nil
}
