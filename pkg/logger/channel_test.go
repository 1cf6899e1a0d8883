package logger

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChannel(t *testing.T, level string) (*Channel, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	ch, err := NewChannel(ChannelConfig{
		Name:    "todo-logger",
		Level:   level,
		Writers: []io.Writer{&buf},
	})
	require.NoError(t, err)
	return ch, &buf
}

func TestChannelLineFormat(t *testing.T) {
	ch, buf := newTestChannel(t, "info")

	ctx := ContextWithRequestNumber(context.Background(), 7)
	ch.Info(ctx, "Creating new TODO with Title [A] and ID [1]")

	line := strings.TrimSuffix(buf.String(), "\n")
	pattern := regexp.MustCompile(`^\[\d{2}-\d{2}-\d{4} \d{2}:\d{2}:\d{2}\.\d{3}\] INFO: Creating new TODO with Title \[A\] and ID \[1\] \| request #7$`)
	assert.Regexp(t, pattern, line)
}

func TestChannelWithoutRequestNumber(t *testing.T) {
	ch, buf := newTestChannel(t, "INFO")

	ch.Error(context.Background(), "boom")

	assert.True(t, strings.HasSuffix(buf.String(), "] ERROR: boom\n"), buf.String())
}

func TestChannelLevelFiltering(t *testing.T) {
	ch, buf := newTestChannel(t, "INFO")
	ctx := context.Background()

	ch.Debug(ctx, "hidden")
	assert.Empty(t, buf.String())

	require.NoError(t, ch.SetLevel("DEBUG"))
	assert.Equal(t, LevelNameDebug, ch.Level())

	ch.Debug(ctx, "visible")
	assert.Contains(t, buf.String(), "DEBUG: visible")

	buf.Reset()
	require.NoError(t, ch.SetLevel("ERROR"))
	ch.Info(ctx, "hidden")
	ch.Error(ctx, "shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "ERROR: shown")
}

func TestChannelSetLevelRejectsUnknown(t *testing.T) {
	ch, _ := newTestChannel(t, "INFO")

	for _, level := range []string{"", "info", "WARN", "TRACE"} {
		assert.Error(t, ch.SetLevel(level), level)
	}
	assert.Equal(t, LevelNameInfo, ch.Level())
}

func TestNewChannelRejectsBadConfigLevel(t *testing.T) {
	_, err := NewChannel(ChannelConfig{Name: "request-logger", Level: "verbose"})
	assert.Error(t, err)
}
