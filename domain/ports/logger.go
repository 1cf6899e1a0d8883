package ports

import "context"

// ═══════════════════════════════════════════════════════════════════════════════
// Logger Port - log channel ที่ inject เข้า service/handler
// ═══════════════════════════════════════════════════════════════════════════════

// LoggerPort - request number อ่านจาก ctx
type LoggerPort interface {
	Debug(ctx context.Context, msg string)
	Info(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// LeveledLoggerPort - LoggerPort ที่เปลี่ยน level ได้ตอน runtime (/logs/level)
type LeveledLoggerPort interface {
	LoggerPort
	Name() string
	Level() string
	SetLevel(level string) error
}
