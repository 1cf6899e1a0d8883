package messaging

import (
	"context"

	"todo-service/domain/models"
	"todo-service/domain/ports"
)

// NoopPublisher - publisher ที่ไม่ส่งอะไรเลย ใช้เมื่อไม่ได้ตั้งค่า NATS/WebSocket
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) PublishTaskEvent(ctx context.Context, event *models.TaskEvent) error {
	return nil
}

// Verify interface implementation
var _ ports.TaskEventPublisherPort = (*NoopPublisher)(nil)
