package websocket

import (
	"sync"

	"github.com/google/uuid"

	"todo-service/pkg/logger"
)

// Conn - ส่วนที่ต้องใช้จาก *websocket.Conn
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

type Client struct {
	ID   uuid.UUID
	Conn Conn
}

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// WebSocketManager กระจาย message ให้ทุก client ที่ subscribe /ws/todo
type WebSocketManager struct {
	clients    map[Conn]Client
	register   chan Client
	unregister chan Conn
	broadcast  chan Message
	done       chan struct{}
	stopOnce   sync.Once
	mutex      sync.RWMutex
}

func NewWebSocketManager(bufferSize int) *WebSocketManager {
	m := &WebSocketManager{
		clients:    make(map[Conn]Client),
		register:   make(chan Client),
		unregister: make(chan Conn, 16),
		broadcast:  make(chan Message, bufferSize),
		done:       make(chan struct{}),
	}
	go m.run()
	return m
}

func (m *WebSocketManager) run() {
	for {
		select {
		case client := <-m.register:
			m.mutex.Lock()
			m.clients[client.Conn] = client
			m.mutex.Unlock()
			logger.Info("[WebSocket] Client connected", "client_id", client.ID)

		case conn := <-m.unregister:
			m.removeClient(conn)

		case message := <-m.broadcast:
			m.mutex.RLock()
			conns := make([]Conn, 0, len(m.clients))
			for conn := range m.clients {
				conns = append(conns, conn)
			}
			m.mutex.RUnlock()

			for _, conn := range conns {
				if err := conn.WriteJSON(message); err != nil {
					logger.Warn("[WebSocket] Error sending message", "error", err)
					m.removeClient(conn)
				}
			}

		case <-m.done:
			m.mutex.Lock()
			for conn := range m.clients {
				conn.Close()
				delete(m.clients, conn)
			}
			m.mutex.Unlock()
			return
		}
	}
}

func (m *WebSocketManager) removeClient(conn Conn) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if client, ok := m.clients[conn]; ok {
		delete(m.clients, conn)
		conn.Close()
		logger.Info("[WebSocket] Client disconnected", "client_id", client.ID)
	}
}

// RegisterClient คืน ID ของ client ที่ลงทะเบียน
func (m *WebSocketManager) RegisterClient(conn Conn) uuid.UUID {
	client := Client{ID: uuid.New(), Conn: conn}
	select {
	case m.register <- client:
	case <-m.done:
	}
	return client.ID
}

func (m *WebSocketManager) UnregisterClient(conn Conn) {
	select {
	case m.unregister <- conn:
	case <-m.done:
	}
}

// BroadcastToAll ไม่ block ถ้า buffer เต็มจะทิ้ง message และคืน false
func (m *WebSocketManager) BroadcastToAll(messageType string, data interface{}) bool {
	select {
	case <-m.done:
		return false
	default:
	}

	select {
	case m.broadcast <- Message{Type: messageType, Data: data}:
		return true
	case <-m.done:
		return false
	default:
		return false
	}
}

func (m *WebSocketManager) ClientCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}

// Stop ปิดทุก connection และหยุด loop
func (m *WebSocketManager) Stop() {
	m.stopOnce.Do(func() {
		close(m.done)
	})
}
