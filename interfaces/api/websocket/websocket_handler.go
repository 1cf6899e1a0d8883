package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	websocketManager "todo-service/infrastructure/websocket"
	"todo-service/pkg/logger"
)

// WebSocketHandler stream task events ให้ client ที่ต่อ /ws/todo
type WebSocketHandler struct {
	manager *websocketManager.WebSocketManager
}

func NewWebSocketHandler(manager *websocketManager.WebSocketManager) *WebSocketHandler {
	return &WebSocketHandler{manager: manager}
}

func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	clientID := h.manager.RegisterClient(c)

	defer func() {
		h.manager.UnregisterClient(c)
	}()

	// client ไม่ต้องส่งอะไรมา อ่านไว้เพื่อรู้ว่าปิด connection แล้ว
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			logger.Debug("WebSocket read closed", "client_id", clientID, "error", err)
			break
		}
	}
}
