//go:build integration

package analytics

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_RedisSink(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL required for integration tests")
	}

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	defer client.Close()

	ctx := context.Background()
	key := "test:recommendations:" + time.Now().Format("150405.000")
	defer client.Del(ctx, key)

	sink := NewRedisSink(client, key, 2)
	for _, id := range []string{`"u1"`, `"u2"`, `"u3"`} {
		require.NoError(t, sink.Publish(ctx, Event{
			Variant:     VariantInterests,
			UserID:      json.RawMessage(id),
			ProcessedAt: time.Now().UTC(),
		}))
	}

	raw, err := client.LRange(ctx, key, 0, -1).Result()
	require.NoError(t, err)
	require.Len(t, raw, 2)

	var newest, oldest Event
	require.NoError(t, json.Unmarshal([]byte(raw[0]), &newest))
	require.NoError(t, json.Unmarshal([]byte(raw[1]), &oldest))
	assert.Equal(t, `"u3"`, string(newest.UserID))
	assert.Equal(t, `"u2"`, string(oldest.UserID))
}
