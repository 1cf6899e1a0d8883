package handlers

import (
	"github.com/gofiber/fiber/v2"
	"todo-service/domain/dto"
	"todo-service/domain/ports"
	"todo-service/domain/services"
	"todo-service/pkg/apperror"
	"todo-service/pkg/utils"
)

type LogLevelHandler struct {
	logLevelService services.LogLevelService
	log             ports.LoggerPort
}

func NewLogLevelHandler(logLevelService services.LogLevelService, log ports.LoggerPort) *LogLevelHandler {
	return &LogLevelHandler{
		logLevelService: logLevelService,
		log:             log,
	}
}

// GetLevel GET /logs/level[?logger-name=]
func (h *LogLevelHandler) GetLevel(c *fiber.Ctx) error {
	req, err := h.parse(c)
	if err != nil {
		return err
	}

	level, err := h.logLevelService.GetLevel(c.UserContext(), req.LoggerName)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, level)
}

// SetLevel PUT /logs/level?logger-level=[&logger-name=] ไม่ระบุชื่อ = ตั้งทุก logger
func (h *LogLevelHandler) SetLevel(c *fiber.Ctx) error {
	req, err := h.parse(c)
	if err != nil {
		return err
	}
	if req.LoggerLevel == "" {
		return h.invalid(c, apperror.Validation("Error: logger-level is required"))
	}

	level, err := h.logLevelService.SetLevel(c.UserContext(), req.LoggerName, req.LoggerLevel)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, level)
}

func (h *LogLevelHandler) parse(c *fiber.Ctx) (*dto.LogLevelRequest, error) {
	var req dto.LogLevelRequest
	if err := c.QueryParser(&req); err != nil {
		return nil, h.invalid(c, apperror.Validation("Bad request.").Wrap(err))
	}
	return &req, nil
}

func (h *LogLevelHandler) invalid(c *fiber.Ctx, err *apperror.Error) error {
	h.log.Error(c.UserContext(), err.Message)
	return err
}
