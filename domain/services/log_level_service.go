package services

import "context"

type LogLevelService interface {
	GetLevel(ctx context.Context, loggerName string) (string, error)
	// SetLevel คืน level ใหม่หลังเปลี่ยน
	SetLevel(ctx context.Context, loggerName, level string) (string, error)
}
