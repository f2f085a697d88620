package publisher

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a local Redis; skipped when one is not running
func newTestPublisher(t *testing.T) (*RedisPublisher, *redis.Client) {
	t.Helper()
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not available: %v", err)
	}
	require.NoError(t, client.FlushDB(ctx).Err())

	return NewRedisPublisher(ctx, "localhost:6379", 15, "leadfinder-test", 3), client
}

func TestRedisPublisher_Publish(t *testing.T) {
	p, client := newTestPublisher(t)
	defer p.Close()
	defer client.Close()

	ctx := context.Background()
	message := []byte(`{"id":"alpha-cafe","name":"Alpha Cafe"}`)
	require.NoError(t, p.Publish("Yelp", message))

	entries, err := client.XRange(ctx, "leadfinder-test:yelp", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	encoded, ok := entries[0].Values["lead"].(string)
	require.True(t, ok)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, message, decoded)
}

func TestRedisPublisher_StreamPerSource(t *testing.T) {
	p, client := newTestPublisher(t)
	defer p.Close()
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, p.Publish("Yelp", []byte("a")))
	require.NoError(t, p.Publish("YellowPages", []byte("b")))

	keys, err := client.Keys(ctx, "leadfinder-test:*").Result()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"leadfinder-test:yelp", "leadfinder-test:yellowpages"}, keys)
}

func TestRedisPublisher_TrimStreams(t *testing.T) {
	p, client := newTestPublisher(t)
	defer p.Close()
	defer client.Close()

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		require.NoError(t, p.Publish("Yelp", []byte{byte('0' + i)}))
	}

	require.NoError(t, p.TrimStreams())

	length, err := client.XLen(ctx, "leadfinder-test:yelp").Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, length, int64(3))
}
