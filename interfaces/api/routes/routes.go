package routes

import (
	"github.com/gofiber/fiber/v2"
	websocketManager "todo-service/infrastructure/websocket"
	"todo-service/interfaces/api/handlers"
)

// SetupRoutes - wsManager เป็น nil ได้ (ปิด /ws/todo)
func SetupRoutes(app *fiber.App, h *handlers.Handlers, wsManager *websocketManager.WebSocketManager) {
	SetupHealthRoutes(app, h)
	SetupTaskRoutes(app, h)
	SetupLogRoutes(app, h)

	if wsManager != nil {
		SetupWebSocketRoutes(app, wsManager)
	}
}
