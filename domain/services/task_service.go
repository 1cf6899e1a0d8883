package services

import (
	"context"

	"todo-service/domain/dto"
	"todo-service/domain/models"
)

type TaskService interface {
	// CreateTask คืน ID ของ task ใหม่
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (int, error)
	// GetTodoContent กรองตาม status แล้วเรียงตาม sortBy
	GetTodoContent(ctx context.Context, status, sortBy string) ([]models.Task, error)
	GetTodoSize(ctx context.Context, status string) (int, error)
	// UpdateTaskStatus คืน status เดิม
	UpdateTaskStatus(ctx context.Context, id int, status string) (models.TaskStatus, error)
	// DeleteTask คืนจำนวน task ที่เหลือ
	DeleteTask(ctx context.Context, id int) (int, error)
	// GetStatusCounts จำนวน task แยกตาม filter (ใช้ใน stats job)
	GetStatusCounts(ctx context.Context) (map[models.TaskFilter]int, error)
}
