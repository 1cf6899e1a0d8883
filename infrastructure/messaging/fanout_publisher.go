package messaging

import (
	"context"
	"errors"

	"todo-service/domain/models"
	"todo-service/domain/ports"
)

// FanoutPublisher ส่ง event ไปทุก publisher แม้ตัวใดตัวหนึ่งจะ error
type FanoutPublisher struct {
	publishers []ports.TaskEventPublisherPort
}

func NewFanoutPublisher(publishers ...ports.TaskEventPublisherPort) *FanoutPublisher {
	return &FanoutPublisher{publishers: publishers}
}

// Add เพิ่ม publisher (เรียกตอน init เท่านั้น)
func (p *FanoutPublisher) Add(publisher ports.TaskEventPublisherPort) {
	p.publishers = append(p.publishers, publisher)
}

func (p *FanoutPublisher) Len() int {
	return len(p.publishers)
}

func (p *FanoutPublisher) PublishTaskEvent(ctx context.Context, event *models.TaskEvent) error {
	var errs []error
	for _, publisher := range p.publishers {
		if err := publisher.PublishTaskEvent(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ ports.TaskEventPublisherPort = (*FanoutPublisher)(nil)
