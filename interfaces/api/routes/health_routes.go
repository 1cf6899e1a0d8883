package routes

import (
	"github.com/gofiber/fiber/v2"
	"todo-service/interfaces/api/handlers"
)

func SetupHealthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/todo/health", h.HealthHandler.Health)
}
