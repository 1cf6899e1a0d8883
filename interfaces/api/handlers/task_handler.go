package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"todo-service/domain/dto"
	"todo-service/domain/ports"
	"todo-service/domain/services"
	"todo-service/pkg/apperror"
	"todo-service/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
	log         ports.LoggerPort
}

func NewTaskHandler(taskService services.TaskService, log ports.LoggerPort) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		log:         log,
	}
}

// CreateTask POST /todo
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return h.invalid(c, apperror.Validation("Error: invalid request body").Wrap(err))
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return h.invalid(c, apperror.Validation("Error: %s", utils.ValidationMessage(err)).Wrap(err))
	}

	id, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, id)
}

// GetTodoSize GET /todo/size?status=
func (h *TaskHandler) GetTodoSize(c *fiber.Ctx) error {
	var query dto.TaskQueryRequest
	if err := c.QueryParser(&query); err != nil {
		return h.invalid(c, apperror.Validation("Bad request.").Wrap(err))
	}

	size, err := h.taskService.GetTodoSize(c.UserContext(), query.Status)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, size)
}

// GetTodoContent GET /todo/content?status=&sortBy=
func (h *TaskHandler) GetTodoContent(c *fiber.Ctx) error {
	var query dto.TaskQueryRequest
	if err := c.QueryParser(&query); err != nil {
		return h.invalid(c, apperror.Validation("Bad request.").Wrap(err))
	}

	tasks, err := h.taskService.GetTodoContent(c.UserContext(), query.Status, query.SortBy)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

// UpdateTaskStatus PUT /todo?id=&status=
func (h *TaskHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	var query dto.UpdateTaskStatusRequest
	if err := c.QueryParser(&query); err != nil {
		return h.invalid(c, apperror.Validation("Bad request.").Wrap(err))
	}

	id, err := h.parseID(c, query.ID)
	if err != nil {
		return err
	}

	prev, err := h.taskService.UpdateTaskStatus(c.UserContext(), id, query.Status)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, string(prev))
}

// DeleteTask DELETE /todo?id=
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	id, err := h.parseID(c, c.Query("id"))
	if err != nil {
		return err
	}

	remaining, err := h.taskService.DeleteTask(c.UserContext(), id)
	if err != nil {
		return err
	}

	// จำนวนที่เหลือส่งกลับเป็น string
	return utils.SuccessResponse(c, strconv.Itoa(remaining))
}

// parseID รับเฉพาะเลขฐานสิบล้วน
func (h *TaskHandler) parseID(c *fiber.Ctx, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, h.invalid(c, apperror.Validation("Error: invalid TODO id %s", raw).Wrap(err))
	}
	return id, nil
}

// invalid log error ลง todo logger แล้วคืน error ให้ ErrorHandler
func (h *TaskHandler) invalid(c *fiber.Ctx, err *apperror.Error) error {
	h.log.Error(c.UserContext(), err.Message)
	return err
}
