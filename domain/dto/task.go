package dto

// CreateTaskRequest body ของ POST /todo
type CreateTaskRequest struct {
	Title   string     `json:"title" validate:"required,min=1"`
	Content string     `json:"content"`
	DueDate *Timestamp `json:"dueDate" validate:"required"`
}

// TaskQueryRequest query ของ GET /todo/size และ GET /todo/content
// ค่าจะถูกตรวจใน TaskService เพื่อให้ทั้งสอง endpoint ใช้กติกาเดียวกัน
type TaskQueryRequest struct {
	Status string `query:"status"`
	SortBy string `query:"sortBy"`
}

// UpdateTaskStatusRequest query ของ PUT /todo
type UpdateTaskStatusRequest struct {
	ID     string `query:"id"`
	Status string `query:"status"`
}

type TaskResponse struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
	DueDate int64  `json:"dueDate"` // epoch milliseconds
}

// TaskEventMessage payload ที่ส่งออกทาง NATS และ WebSocket
type TaskEventMessage struct {
	Type           string       `json:"type"`
	Task           TaskResponse `json:"task"`
	PreviousStatus string       `json:"previousStatus,omitempty"`
	Remaining      *int         `json:"remaining,omitempty"`
	OccurredAt     int64        `json:"occurredAt"`
}
