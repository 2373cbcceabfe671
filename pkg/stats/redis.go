package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// RunsStream receives one entry per published run.
	RunsStream = "gblur:runs"

	// RunTTL is how long the per-run key lives.
	RunTTL = 24 * time.Hour
)

// RedisPublisher records finished runs in Redis: each run is stored under
// its own key and appended to RunsStream.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher connects to addr and verifies the connection.
func NewRedisPublisher(ctx context.Context, addr string) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisPublisher{client: client}, nil
}

func (r *RedisPublisher) Close() error {
	return r.client.Close()
}

// RunKey returns the key a run is stored under.
func RunKey(data *PerformanceData) string {
	return fmt.Sprintf("gblur:run:%s:%d", data.AlgorithmName, data.Timestamp.UnixNano())
}

// Publish stores data under RunKey with RunTTL and appends it to RunsStream,
// returning the stream entry ID.
func (r *RedisPublisher) Publish(ctx context.Context, data *PerformanceData) (string, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal run: %w", err)
	}

	if err := r.client.Set(ctx, RunKey(data), b, RunTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store run: %w", err)
	}

	id, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: RunsStream,
		Values: map[string]interface{}{
			"algorithm": data.AlgorithmName,
			"data":      b,
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to append run: %w", err)
	}

	return id, nil
}
