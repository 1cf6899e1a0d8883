package routes

import (
	"github.com/gofiber/fiber/v2"
	"todo-service/interfaces/api/handlers"
)

func SetupTaskRoutes(app *fiber.App, h *handlers.Handlers) {
	todo := app.Group("/todo")
	todo.Post("/", h.TaskHandler.CreateTask)
	todo.Get("/size", h.TaskHandler.GetTodoSize)
	todo.Get("/content", h.TaskHandler.GetTodoContent)
	todo.Put("/", h.TaskHandler.UpdateTaskStatus)
	todo.Delete("/", h.TaskHandler.DeleteTask)
}
