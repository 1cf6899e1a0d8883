package redis

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-service/infrastructure/memory"
)

func TestRequestCounterFallsBackWhenRedisIsDown(t *testing.T) {
	// port 1 ไม่มี Redis ฟังอยู่ ทุก INCR จะ error
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 50 * time.Millisecond,
	})
	client := NewClientFromRedis(rdb)
	defer client.Close()

	counter := NewRequestCounter(client, memory.NewRequestCounter())

	for want := int64(1); want <= 2; want++ {
		n, err := counter.Next(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
}

func TestRequestCounterWithoutFallbackReturnsError(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 50 * time.Millisecond,
	})
	client := NewClientFromRedis(rdb)
	defer client.Close()

	_, err := NewRequestCounter(client, nil).Next(context.Background())
	assert.Error(t, err)
}
