package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"todo-service/domain/ports"
	"todo-service/pkg/utils"
)

type HealthHandler struct {
	log ports.LoggerPort
}

func NewHealthHandler(log ports.LoggerPort) *HealthHandler {
	return &HealthHandler{log: log}
}

// Health GET /todo/health ไม่แตะ store
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	start := time.Now()
	err := utils.TextResponse(c, "OK")
	h.log.Debug(c.UserContext(), fmt.Sprintf("health check handled in %dµs", time.Since(start).Microseconds()))
	return err
}
