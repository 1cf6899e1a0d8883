package routes

import (
	"github.com/gofiber/fiber/v2"
	"todo-service/interfaces/api/handlers"
)

func SetupLogRoutes(app *fiber.App, h *handlers.Handlers) {
	logs := app.Group("/logs")
	logs.Get("/level", h.LogLevelHandler.GetLevel)
	logs.Put("/level", h.LogLevelHandler.SetLevel)
}
