package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// รูปแบบเวลาใน log line: dd-MM-yyyy HH:mm:ss.SSS
const channelTimeLayout = "02-01-2006 15:04:05.000"

// ชื่อ level ที่เปลี่ยนได้ตอน runtime
const (
	LevelNameError = "ERROR"
	LevelNameInfo  = "INFO"
	LevelNameDebug = "DEBUG"
)

// ChannelConfig สำหรับ log channel (requests, todos)
type ChannelConfig struct {
	Name     string // request-logger, todo-logger
	Level    string // ERROR, INFO, DEBUG (ไม่สนตัวพิมพ์ตอนอ่านจาก config)
	Console  bool   // เขียนออก stdout ด้วย
	FilePath string // logs/requests.log, ว่าง = ไม่เขียนไฟล์
	Rotation RotationConfig

	// Writers ใช้แทน stdout/file (สำหรับ test)
	Writers []io.Writer
}

// Channel - logger แยกตามหน้าที่ แต่ละตัวมี level ของตัวเอง
// เขียนแต่ละบรรทัดเป็น "[timestamp] LEVEL: message | request #N"
type Channel struct {
	name   string
	level  *slog.LevelVar
	logger *slog.Logger
}

// NewChannel สร้าง channel จาก config
func NewChannel(cfg ChannelConfig) (*Channel, error) {
	level, err := ParseLevelName(strings.ToUpper(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("logger %s: %w", cfg.Name, err)
	}

	writers := cfg.Writers
	if len(writers) == 0 {
		if cfg.Console {
			writers = append(writers, os.Stdout)
		}
		if cfg.FilePath != "" {
			fileWriter, err := newFileWriter(cfg.FilePath, cfg.Rotation)
			if err != nil {
				return nil, fmt.Errorf("logger %s: %w", cfg.Name, err)
			}
			writers = append(writers, fileWriter)
		}
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = io.Discard
	case 1:
		writer = writers[0]
	default:
		writer = io.MultiWriter(writers...)
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(level)

	return &Channel{
		name:   cfg.Name,
		level:  levelVar,
		logger: slog.New(newLineHandler(writer, levelVar)),
	}, nil
}

// NewDiscardChannel channel ที่ไม่เขียนอะไรเลย
func NewDiscardChannel(name string) *Channel {
	levelVar := &slog.LevelVar{}
	levelVar.Set(slog.LevelInfo)
	return &Channel{
		name:   name,
		level:  levelVar,
		logger: slog.New(newLineHandler(io.Discard, levelVar)),
	}
}

func (c *Channel) Name() string {
	return c.name
}

func (c *Channel) Debug(ctx context.Context, msg string) {
	c.logger.DebugContext(ctx, msg)
}

func (c *Channel) Info(ctx context.Context, msg string) {
	c.logger.InfoContext(ctx, msg)
}

func (c *Channel) Error(ctx context.Context, msg string) {
	c.logger.ErrorContext(ctx, msg)
}

// Level คืนชื่อ level ปัจจุบัน (ERROR, INFO, DEBUG)
func (c *Channel) Level() string {
	return LevelName(c.level.Level())
}

// SetLevel เปลี่ยน level ตอน runtime รับเฉพาะ ERROR, INFO, DEBUG
func (c *Channel) SetLevel(name string) error {
	level, err := ParseLevelName(name)
	if err != nil {
		return err
	}
	c.level.Set(level)
	return nil
}

// ParseLevelName แปลงชื่อ level (ตัวพิมพ์ใหญ่เท่านั้น) เป็น slog.Level
func ParseLevelName(name string) (slog.Level, error) {
	switch name {
	case LevelNameError:
		return slog.LevelError, nil
	case LevelNameInfo:
		return slog.LevelInfo, nil
	case LevelNameDebug:
		return slog.LevelDebug, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// LevelName แปลง slog.Level กลับเป็นชื่อ
func LevelName(level slog.Level) string {
	switch {
	case level <= slog.LevelDebug:
		return LevelNameDebug
	case level < slog.LevelWarn:
		return LevelNameInfo
	case level < slog.LevelError:
		return "WARN"
	default:
		return LevelNameError
	}
}

// ========== line handler ==========

type lineHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
}

func newLineHandler(w io.Writer, level slog.Leveler) *lineHandler {
	return &lineHandler{
		mu:    &sync.Mutex{},
		w:     w,
		level: level,
	}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *lineHandler) Handle(ctx context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(ts.Format(channelTimeLayout))
	b.WriteString("] ")
	b.WriteString(LevelName(r.Level))
	b.WriteString(": ")
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&b, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, a)
		return true
	})

	if n := GetRequestNumber(ctx); n > 0 {
		fmt.Fprintf(&b, " | request #%d", n)
	}
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

// WithGroup ไม่รองรับ group ใน format นี้
func (h *lineHandler) WithGroup(_ string) slog.Handler {
	return h
}

func writeAttr(b *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(b, " %s=%v", a.Key, a.Value.Any())
}
