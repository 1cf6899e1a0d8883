package handlers

import (
	"todo-service/domain/ports"
	"todo-service/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	TaskService     services.TaskService
	LogLevelService services.LogLevelService
	RequestLogger   ports.LoggerPort
	TodoLogger      ports.LoggerPort
}

// Handlers contains all HTTP handlers
type Handlers struct {
	TaskHandler     *TaskHandler
	HealthHandler   *HealthHandler
	LogLevelHandler *LogLevelHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		TaskHandler:     NewTaskHandler(services.TaskService, services.TodoLogger),
		HealthHandler:   NewHealthHandler(services.RequestLogger),
		LogLevelHandler: NewLogLevelHandler(services.LogLevelService, services.RequestLogger),
	}
}
