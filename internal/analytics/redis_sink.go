package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisSink keeps the newest events in a capped Redis list.
type RedisSink struct {
	client   *redis.Client
	key      string
	capacity int64
}

func NewRedisSink(client *redis.Client, key string, capacity int) *RedisSink {
	return &RedisSink{client: client, key: key, capacity: int64(capacity)}
}

func (s *RedisSink) Name() string { return "redis" }

func (s *RedisSink) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, s.key, data)
	pipe.LTrim(ctx, s.key, 0, s.capacity-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push event to %s: %w", s.key, err)
	}
	return nil
}
