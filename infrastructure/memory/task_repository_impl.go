package memory

import (
	"context"
	"fmt"
	"sync"

	"todo-service/domain/models"
	"todo-service/domain/repositories"
)

// TaskRepositoryImpl เก็บ task ใน slice ตามลำดับที่สร้าง
// ID เริ่มที่ 1 และไม่ถูกใช้ซ้ำแม้ task จะถูกลบ
type TaskRepositoryImpl struct {
	mu     sync.RWMutex
	tasks  []models.Task
	nextID int
}

func NewTaskRepository() repositories.TaskRepository {
	return &TaskRepositoryImpl{nextID: 1}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOfTitle(task.Title) >= 0 {
		return fmt.Errorf("%w: %s", repositories.ErrDuplicateTitle, task.Title)
	}

	task.ID = r.nextID
	r.nextID++
	r.tasks = append(r.tasks, *task)
	return nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id int) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOfID(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: id %d", repositories.ErrTaskNotFound, id)
	}
	task := r.tasks[i]
	return &task, nil
}

func (r *TaskRepositoryImpl) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOfTitle(title) >= 0, nil
}

func (r *TaskRepositoryImpl) UpdateStatus(ctx context.Context, id int, status models.TaskStatus) (models.TaskStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOfID(id)
	if i < 0 {
		return "", fmt.Errorf("%w: id %d", repositories.ErrTaskNotFound, id)
	}
	prev := r.tasks[i].Status
	r.tasks[i].Status = status
	return prev, nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOfID(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", repositories.ErrTaskNotFound, id)
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]models.Task, len(r.tasks))
	copy(tasks, r.tasks)
	return tasks, nil
}

func (r *TaskRepositoryImpl) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks), nil
}

func (r *TaskRepositoryImpl) indexOfID(id int) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *TaskRepositoryImpl) indexOfTitle(title string) int {
	for i := range r.tasks {
		if r.tasks[i].Title == title {
			return i
		}
	}
	return -1
}
