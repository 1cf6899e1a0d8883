package ports

import "context"

// RequestCounterPort - แจกลำดับ request (#1, #2, ...) สำหรับ log
type RequestCounterPort interface {
	Next(ctx context.Context) (int64, error)
}
