package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Registry keeps a capped redis stream of JSON payloads.
type Registry struct {
	redis  *redis.Client
	stream string
	maxLen int64
}

func NewRegistry(r *redis.Client, stream string, maxLen int64) *Registry {
	return &Registry{redis: r, stream: stream, maxLen: maxLen}
}

func (r *Registry) Append(ctx context.Context, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("registry marshal failed: %w", err)
	}

	id, err := r.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		Values: map[string]any{
			"data": data,
		},
		MaxLen: r.maxLen,
		Approx: true,
	}).Result()
	if err != nil {
		return "", fmt.Errorf("registry xadd failed: %w", err)
	}

	return id, nil
}

// Recent returns up to limit payloads, oldest first.
func (r *Registry) Recent(ctx context.Context, limit int64) ([]json.RawMessage, error) {
	msgs, err := r.redis.XRevRangeN(ctx, r.stream, "+", "-", limit).Result()
	if err != nil {
		return nil, fmt.Errorf("registry xrevrange failed: %w", err)
	}

	out := make([]json.RawMessage, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		switch data := msgs[i].Values["data"].(type) {
		case string:
			out = append(out, json.RawMessage(data))
		case []byte:
			out = append(out, json.RawMessage(data))
		}
	}

	return out, nil
}
