package websocket

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-service/domain/dto"
	"todo-service/domain/models"
)

type fakeConn struct {
	mu       sync.Mutex
	messages []Message
	writeErr error
	closed   bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writeErr != nil {
		return c.writeErr
	}
	c.messages = append(c.messages, v.(Message))
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) received() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.messages...)
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func TestBroadcasterDeliversTaskEvents(t *testing.T) {
	m := NewWebSocketManager(8)
	defer m.Stop()

	a, b := &fakeConn{}, &fakeConn{}
	m.RegisterClient(a)
	m.RegisterClient(b)
	require.Eventually(t, func() bool { return m.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	broadcaster := NewTaskEventBroadcaster(m)
	err := broadcaster.PublishTaskEvent(context.Background(), &models.TaskEvent{
		Type:       models.TaskEventCreated,
		Task:       models.Task{ID: 1, Title: "A", Status: models.TaskStatusPending},
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)

	for _, conn := range []*fakeConn{a, b} {
		require.Eventually(t, func() bool { return len(conn.received()) == 1 }, time.Second, 5*time.Millisecond)
		msg := conn.received()[0]
		assert.Equal(t, MessageTypeTaskEvent, msg.Type)
		payload, ok := msg.Data.(*dto.TaskEventMessage)
		require.True(t, ok)
		assert.Equal(t, "created", payload.Type)
		assert.Equal(t, 1, payload.Task.ID)
	}
}

func TestFailingClientIsRemoved(t *testing.T) {
	m := NewWebSocketManager(8)
	defer m.Stop()

	bad := &fakeConn{writeErr: errors.New("broken pipe")}
	m.RegisterClient(bad)
	require.Eventually(t, func() bool { return m.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	assert.True(t, m.BroadcastToAll("ping", nil))
	require.Eventually(t, func() bool { return m.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	assert.True(t, bad.isClosed())
}

func TestUnregisterAndStop(t *testing.T) {
	m := NewWebSocketManager(1)

	a, b := &fakeConn{}, &fakeConn{}
	m.RegisterClient(a)
	m.RegisterClient(b)
	m.UnregisterClient(a)
	require.Eventually(t, func() bool { return m.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	assert.True(t, a.isClosed())

	m.Stop()
	require.Eventually(t, b.isClosed, time.Second, 5*time.Millisecond)
	assert.False(t, m.BroadcastToAll("ping", nil))
	// Stop ซ้ำต้องไม่ panic
	m.Stop()
}
