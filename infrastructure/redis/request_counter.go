package redis

import (
	"context"
	"time"

	"todo-service/domain/ports"
	"todo-service/pkg/logger"
)

// RequestCounterKey key ที่ใช้นับ request ร่วมกันทุก instance
const RequestCounterKey = "todo:request_counter"

// RequestCounter ใช้ INCR ของ Redis ให้ทุก replica ได้ลำดับ request ชุดเดียวกัน
// ถ้า Redis ใช้ไม่ได้จะ fallback ไปใช้ counter ใน process
type RequestCounter struct {
	client   *Client
	key      string
	timeout  time.Duration
	fallback ports.RequestCounterPort
}

func NewRequestCounter(client *Client, fallback ports.RequestCounterPort) *RequestCounter {
	return &RequestCounter{
		client:   client,
		key:      RequestCounterKey,
		timeout:  200 * time.Millisecond,
		fallback: fallback,
	}
}

func (c *RequestCounter) Next(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	n, err := c.client.Incr(ctx, c.key)
	if err == nil {
		return n, nil
	}

	logger.Warn("Redis request counter unavailable, using local counter", "error", err)
	if c.fallback == nil {
		return 0, err
	}
	return c.fallback.Next(ctx)
}

var _ ports.RequestCounterPort = (*RequestCounter)(nil)
