package ports

import (
	"context"

	"todo-service/domain/models"
)

// ═══════════════════════════════════════════════════════════════════════════════
// Task Event Port - แจ้ง event หลัง create / update status / delete สำเร็จ
// ═══════════════════════════════════════════════════════════════════════════════

// TaskEventPublisherPort - error จาก publisher ไม่มีผลกับผลลัพธ์ของ request
type TaskEventPublisherPort interface {
	PublishTaskEvent(ctx context.Context, event *models.TaskEvent) error
}
