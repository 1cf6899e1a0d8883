package websocket

import (
	"context"
	"errors"

	"todo-service/domain/dto"
	"todo-service/domain/models"
	"todo-service/domain/ports"
)

// MessageTypeTaskEvent type ของ message ที่ส่งให้ client
const MessageTypeTaskEvent = "task_event"

var ErrBroadcastDropped = errors.New("websocket broadcast buffer full")

// TaskEventBroadcaster ส่ง task event ไปยัง WebSocket clients
type TaskEventBroadcaster struct {
	manager *WebSocketManager
}

func NewTaskEventBroadcaster(manager *WebSocketManager) *TaskEventBroadcaster {
	return &TaskEventBroadcaster{manager: manager}
}

func (b *TaskEventBroadcaster) PublishTaskEvent(ctx context.Context, event *models.TaskEvent) error {
	if !b.manager.BroadcastToAll(MessageTypeTaskEvent, dto.TaskEventToMessage(event)) {
		return ErrBroadcastDropped
	}
	return nil
}

var _ ports.TaskEventPublisherPort = (*TaskEventBroadcaster)(nil)
