package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"todo-service/domain/dto"
	"todo-service/domain/models"
	"todo-service/domain/ports"
)

// Publisher ส่ง task event ออกไปทาง NATS (core publish, ไม่รอ ack)
type Publisher struct {
	client        *Client
	subjectPrefix string
}

// NewPublisher สร้าง Publisher ใหม่
func NewPublisher(client *Client, subjectPrefix string) *Publisher {
	return &Publisher{
		client:        client,
		subjectPrefix: subjectPrefix,
	}
}

// PublishTaskEvent ส่ง event เป็น JSON ไปที่ <prefix>.<type>
func (p *Publisher) PublishTaskEvent(ctx context.Context, event *models.TaskEvent) error {
	data, err := json.Marshal(dto.TaskEventToMessage(event))
	if err != nil {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}

	subject := subjectFor(p.subjectPrefix, string(event.Type))
	if err := p.client.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

var _ ports.TaskEventPublisherPort = (*Publisher)(nil)
