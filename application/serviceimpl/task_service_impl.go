package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"todo-service/domain/dto"
	"todo-service/domain/models"
	"todo-service/domain/ports"
	"todo-service/domain/repositories"
	"todo-service/domain/services"
	"todo-service/pkg/apperror"
)

// TaskServiceImpl - ทุกคำสั่งที่แก้ store (lookup + mutate) ทำภายใต้ mu ตัวเดียว
type TaskServiceImpl struct {
	mu        sync.Mutex
	taskRepo  repositories.TaskRepository
	publisher ports.TaskEventPublisherPort
	log       ports.LoggerPort
	now       func() time.Time
}

func NewTaskService(taskRepo repositories.TaskRepository, publisher ports.TaskEventPublisherPort, log ports.LoggerPort) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:  taskRepo,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (int, error) {
	task, count, err := s.createTask(ctx, req)
	if err != nil {
		return 0, err
	}

	s.log.Info(ctx, fmt.Sprintf("Creating new TODO with Title [%s]", task.Title))
	s.log.Debug(ctx, fmt.Sprintf("Currently there are %d TODOs in the system. New TODO will be assigned with id %d", count-1, task.ID))

	s.publish(ctx, &models.TaskEvent{
		Type:       models.TaskEventCreated,
		Task:       *task,
		OccurredAt: s.now(),
	})

	return task.ID, nil
}

func (s *TaskServiceImpl) createTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.taskRepo.ExistsByTitle(ctx, req.Title)
	if err != nil {
		return nil, 0, s.internal(ctx, "Failed to look up TODO title", err)
	}
	if exists {
		return nil, 0, s.fail(ctx, apperror.Conflict("Error: TODO with the title %s already exists in the system", req.Title))
	}

	if !req.DueDate.After(s.now()) {
		return nil, 0, s.fail(ctx, apperror.Conflict("Error: Can't create new TODO with a due date in the past"))
	}

	task := dto.CreateTaskRequestToTask(req)
	if err := s.taskRepo.Create(ctx, task); err != nil {
		if errors.Is(err, repositories.ErrDuplicateTitle) {
			return nil, 0, s.fail(ctx, apperror.Conflict("Error: TODO with the title %s already exists in the system", req.Title).Wrap(err))
		}
		return nil, 0, s.internal(ctx, "Failed to create TODO", err)
	}

	count, err := s.taskRepo.Count(ctx)
	if err != nil {
		return nil, 0, s.internal(ctx, "Failed to count TODOs", err)
	}

	return task, count, nil
}

func (s *TaskServiceImpl) GetTodoContent(ctx context.Context, status, sortBy string) ([]models.Task, error) {
	filter := models.TaskFilter(status)
	sortField := models.TaskSortField(sortBy)
	if !filter.IsValid() || !sortField.IsValid() {
		return nil, s.fail(ctx, apperror.Validation("Bad request."))
	}

	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, s.internal(ctx, "Failed to list TODOs", err)
	}

	result := filterTasks(tasks, filter, s.now())
	sortTasks(result, sortField)

	s.log.Info(ctx, fmt.Sprintf("Extracting todos content. Filter: %s | Sorting by: %s", filter, sortField))
	s.log.Debug(ctx, fmt.Sprintf("There are a total of %d todos in the system. The result holds %d todos", len(tasks), len(result)))

	return result, nil
}

func (s *TaskServiceImpl) GetTodoSize(ctx context.Context, status string) (int, error) {
	filter := models.TaskFilter(status)
	if !filter.IsValid() {
		return 0, s.fail(ctx, apperror.Validation("Bad request."))
	}

	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return 0, s.internal(ctx, "Failed to list TODOs", err)
	}

	size := len(filterTasks(tasks, filter, s.now()))
	s.log.Info(ctx, fmt.Sprintf("Total TODOs count for state %s is %d", filter, size))

	return size, nil
}

func (s *TaskServiceImpl) UpdateTaskStatus(ctx context.Context, id int, status string) (models.TaskStatus, error) {
	task, prev, err := s.updateTaskStatus(ctx, id, status)
	if err != nil {
		return "", err
	}

	s.log.Info(ctx, fmt.Sprintf("Update TODO id [%d] state to %s", id, task.Status))
	s.log.Debug(ctx, fmt.Sprintf("Todo id [%d] state change: %s --> %s", id, prev, task.Status))

	s.publish(ctx, &models.TaskEvent{
		Type:           models.TaskEventStatusUpdated,
		Task:           *task,
		PreviousStatus: prev,
		OccurredAt:     s.now(),
	})

	return prev, nil
}

func (s *TaskServiceImpl) updateTaskStatus(ctx context.Context, id int, status string) (*models.Task, models.TaskStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// ต้องเช็ค id ก่อน status
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", s.notFoundOrInternal(ctx, id, err)
	}

	newStatus := models.TaskStatus(status)
	if !newStatus.IsValid() {
		return nil, "", s.fail(ctx, apperror.Validation("Error: Invalid status"))
	}

	prev, err := s.taskRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, "", s.notFoundOrInternal(ctx, id, err)
	}

	task.Status = newStatus
	return task, prev, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id int) (int, error) {
	task, remaining, err := s.deleteTask(ctx, id)
	if err != nil {
		return 0, err
	}

	s.log.Info(ctx, fmt.Sprintf("Removing todo id %d", id))
	s.log.Debug(ctx, fmt.Sprintf("After removing todo id [%d] there are %d TODOs in the system", id, remaining))

	s.publish(ctx, &models.TaskEvent{
		Type:       models.TaskEventDeleted,
		Task:       *task,
		Remaining:  remaining,
		OccurredAt: s.now(),
	})

	return remaining, nil
}

func (s *TaskServiceImpl) deleteTask(ctx context.Context, id int) (*models.Task, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, 0, s.notFoundOrInternal(ctx, id, err)
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return nil, 0, s.notFoundOrInternal(ctx, id, err)
	}

	remaining, err := s.taskRepo.Count(ctx)
	if err != nil {
		return nil, 0, s.internal(ctx, "Failed to count TODOs", err)
	}

	return task, remaining, nil
}

func (s *TaskServiceImpl) GetStatusCounts(ctx context.Context) (map[models.TaskFilter]int, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return countByFilter(tasks, s.now()), nil
}

// ========== helpers ==========

// fail log error ลง todo logger แล้วคืน error เดิม
func (s *TaskServiceImpl) fail(ctx context.Context, err *apperror.Error) error {
	s.log.Error(ctx, err.Message)
	return err
}

func (s *TaskServiceImpl) internal(ctx context.Context, msg string, err error) error {
	s.log.Error(ctx, fmt.Sprintf("%s: %v", msg, err))
	return apperror.Internal(err)
}

func (s *TaskServiceImpl) notFoundOrInternal(ctx context.Context, id int, err error) error {
	if errors.Is(err, repositories.ErrTaskNotFound) {
		return s.fail(ctx, apperror.NotFound("Error: no such TODO with id %d", id).Wrap(err))
	}
	return s.internal(ctx, "Failed to access TODO store", err)
}

// publish ส่ง event แบบ fire-and-forget
func (s *TaskServiceImpl) publish(ctx context.Context, event *models.TaskEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishTaskEvent(ctx, event); err != nil {
		s.log.Error(ctx, fmt.Sprintf("Failed to publish %s event for TODO id [%d]: %v", event.Type, event.Task.ID, err))
	}
}
