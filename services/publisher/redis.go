package publisher

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher implements Publisher on Redis streams. Scan output is
// fanned out to one stream per source so downstream consumers (badge and
// stat surfaces) can follow a single directory site.
type RedisPublisher struct {
	client          *redis.Client
	ctx             context.Context
	streamPrefix    string
	streamMaxLength int
}

// NewRedisPublisher creates a new Redis publisher
func NewRedisPublisher(ctx context.Context, addr string, db int, streamPrefix string, streamMaxLength int) *RedisPublisher {
	return &RedisPublisher{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		}),
		ctx:             ctx,
		streamPrefix:    streamPrefix,
		streamMaxLength: streamMaxLength,
	}
}

// streamFor maps a source key to its stream name, e.g. leads:yelp
func (p *RedisPublisher) streamFor(key string) string {
	return p.streamPrefix + ":" + strings.ToLower(key)
}

// Publish appends a base64-encoded message to the source's stream
func (p *RedisPublisher) Publish(key string, message []byte) error {
	encoded := base64.StdEncoding.EncodeToString(message)

	return p.client.XAdd(p.ctx, &redis.XAddArgs{
		Stream: p.streamFor(key),
		Values: map[string]interface{}{
			"lead": encoded,
		},
	}).Err()
}

// TrimStreams trims every source stream to the configured maximum length
func (p *RedisPublisher) TrimStreams() error {
	streams, err := p.client.Keys(p.ctx, p.streamPrefix+":*").Result()
	if err != nil {
		return err
	}

	for _, stream := range streams {
		if err := p.client.XTrimMaxLen(p.ctx, stream, int64(p.streamMaxLength)).Err(); err != nil {
			return err
		}
	}

	return nil
}

// Close closes the Redis connection
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
