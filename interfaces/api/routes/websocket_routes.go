package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	websocketManager "todo-service/infrastructure/websocket"
	websocketHandler "todo-service/interfaces/api/websocket"
)

func SetupWebSocketRoutes(app *fiber.App, manager *websocketManager.WebSocketManager) {
	wsHandler := websocketHandler.NewWebSocketHandler(manager)

	app.Use("/ws/todo", wsHandler.WebSocketUpgrade)
	app.Get("/ws/todo", websocket.New(wsHandler.HandleWebSocket))
}
