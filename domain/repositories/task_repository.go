package repositories

import (
	"context"
	"errors"

	"todo-service/domain/models"
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrDuplicateTitle = errors.New("task title already exists")
)

// TaskRepository - store ของ task ทั้งหมด ค่าที่คืนเป็น copy เสมอ
type TaskRepository interface {
	// Create กำหนด ID ถัดไปให้ task แล้วต่อท้าย store
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id int) (*models.Task, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	// UpdateStatus คืน status เดิมก่อนเปลี่ยน
	UpdateStatus(ctx context.Context, id int, status models.TaskStatus) (models.TaskStatus, error)
	Delete(ctx context.Context, id int) error
	// List คืน task ทั้งหมดตามลำดับที่ insert
	List(ctx context.Context) ([]models.Task, error)
	Count(ctx context.Context) (int, error)
}
