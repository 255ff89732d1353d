package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"inkwell/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	postKeyPrefix = "post:"
	setRetries    = 3
)

type PostCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewPostCache(r *redis.Client, ttl time.Duration) domain.PostCache {
	return &PostCache{redis: r, ttl: ttl}
}

func postKey(postID uuid.UUID) string {
	return postKeyPrefix + postID.String()
}

func (c *PostCache) Get(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	raw, err := c.redis.Get(ctx, postKey(postID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get failed: %w", err)
	}

	var post domain.Post
	if err := json.Unmarshal(raw, &post); err != nil {
		return nil, fmt.Errorf("cache decode failed: %w", err)
	}

	return &post, nil
}

// Set stores post unless the cached copy has a later UpdatedAt, so a slow
// reader cannot overwrite a fresher entry written by an update.
func (c *PostCache) Set(ctx context.Context, post *domain.Post) error {
	data, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("cache encode failed: %w", err)
	}

	key := postKey(post.ID)
	write := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		if err == nil {
			var cached domain.Post
			if json.Unmarshal(current, &cached) == nil && cached.UpdatedAt.After(post.UpdatedAt) {
				return nil
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, c.ttl)
			return nil
		})
		return err
	}

	for range setRetries {
		err = c.redis.Watch(ctx, write, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("cache set failed: %w", err)
	}

	return nil
}

func (c *PostCache) Delete(ctx context.Context, postID uuid.UUID) error {
	if err := c.redis.Del(ctx, postKey(postID)).Err(); err != nil {
		return fmt.Errorf("cache del failed: %w", err)
	}
	return nil
}
