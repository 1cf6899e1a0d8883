package memory

import (
	"context"
	"sync/atomic"

	"todo-service/domain/ports"
)

// RequestCounter นับ request ภายใน process เริ่มที่ 1
type RequestCounter struct {
	n atomic.Int64
}

func NewRequestCounter() *RequestCounter {
	return &RequestCounter{}
}

func (c *RequestCounter) Next(ctx context.Context) (int64, error) {
	return c.n.Add(1), nil
}

var _ ports.RequestCounterPort = (*RequestCounter)(nil)
