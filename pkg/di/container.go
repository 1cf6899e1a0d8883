package di

import (
	"context"
	"fmt"

	"todo-service/application/serviceimpl"
	"todo-service/domain/ports"
	"todo-service/domain/repositories"
	"todo-service/domain/services"
	"todo-service/infrastructure/memory"
	"todo-service/infrastructure/messaging"
	natspkg "todo-service/infrastructure/nats"
	redispkg "todo-service/infrastructure/redis"
	"todo-service/infrastructure/websocket"
	"todo-service/interfaces/api/handlers"
	"todo-service/pkg/config"
	"todo-service/pkg/logger"
	"todo-service/pkg/scheduler"
)

const (
	RequestLoggerName = "request-logger"
	TodoLoggerName    = "todo-logger"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Log channels (เปลี่ยน level ได้ผ่าน /logs/level)
	RequestLogger *logger.Channel
	TodoLogger    *logger.Channel

	// Infrastructure
	RedisClient      *redispkg.Client          // optional: shared request counter
	NATSClient       *natspkg.Client           // optional: task events
	WebSocketManager *websocket.WebSocketManager // nil ถ้าปิด
	RequestCounter   ports.RequestCounterPort
	TaskPublisher    ports.TaskEventPublisherPort
	EventScheduler   scheduler.EventScheduler

	// Repositories
	TaskRepository repositories.TaskRepository

	// Services
	TaskService     services.TaskService
	LogLevelService services.LogLevelService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	requestLogger, err := newChannel(RequestLoggerName, c.Config.Log.Request, logConfig.Rotation())
	if err != nil {
		return err
	}
	c.RequestLogger = requestLogger

	todoLogger, err := newChannel(TodoLoggerName, c.Config.Log.Todo, logConfig.Rotation())
	if err != nil {
		return err
	}
	c.TodoLogger = todoLogger

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
		"file", c.Config.Log.FilePath,
		"request_log_level", c.RequestLogger.Level(),
		"todo_log_level", c.TodoLogger.Level(),
	)
	return nil
}

func newChannel(name string, cfg config.LogChannelConfig, rotation logger.RotationConfig) (*logger.Channel, error) {
	return logger.NewChannel(logger.ChannelConfig{
		Name:     name,
		Level:    cfg.Level,
		Console:  cfg.Console,
		FilePath: cfg.FilePath,
		Rotation: rotation,
	})
}

func (c *Container) initInfrastructure() error {
	// Request counter: Redis ถ้ามี ไม่งั้นนับใน process
	localCounter := memory.NewRequestCounter()
	c.RequestCounter = localCounter

	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (using in-process request counter)", "error", err)
		} else {
			c.RedisClient = redisClient
			c.RequestCounter = redispkg.NewRequestCounter(redisClient, localCounter)
			logger.Info("Redis request counter initialized", "url", c.Config.Redis.URL)
		}
	}

	// Task event publishers
	fanout := messaging.NewFanoutPublisher()

	if c.Config.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{
			URL:  c.Config.NATS.URL,
			Name: c.Config.App.Name,
		})
		if err != nil {
			logger.Warn("NATS client initialization failed (task events disabled)", "error", err)
		} else {
			c.NATSClient = natsClient
			fanout.Add(natspkg.NewPublisher(natsClient, c.Config.NATS.SubjectPrefix))
			logger.Info("NATS task event publisher initialized", "subject_prefix", c.Config.NATS.SubjectPrefix)
		}
	}

	if c.Config.WebSocket.Enabled {
		c.WebSocketManager = websocket.NewWebSocketManager(c.Config.WebSocket.BufferSize)
		fanout.Add(websocket.NewTaskEventBroadcaster(c.WebSocketManager))
		logger.Info("WebSocket task event broadcaster initialized", "buffer_size", c.Config.WebSocket.BufferSize)
	}

	if fanout.Len() == 0 {
		c.TaskPublisher = messaging.NewNoopPublisher()
	} else {
		c.TaskPublisher = fanout
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.TaskRepository = memory.NewTaskRepository()
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.TaskPublisher, c.TodoLogger)
	c.LogLevelService = serviceimpl.NewLogLevelService(c.RequestLogger, c.RequestLogger, c.TodoLogger)
	logger.Info("Services initialized")
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	if c.Config.Scheduler.StatsCron == "" {
		logger.Info("TODO stats job disabled")
		return nil
	}

	statsJob := serviceimpl.NewTaskStatsJob(c.TaskService, c.TodoLogger)
	err := c.EventScheduler.AddJob(serviceimpl.TaskStatsJobID, c.Config.Scheduler.StatsCron, func() {
		statsJob.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule TODO stats job: %w", err)
	}

	c.EventScheduler.Start()
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Stop scheduler
	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
		logger.Info("Event scheduler stopped")
	}

	// Stop WebSocket manager
	if c.WebSocketManager != nil {
		c.WebSocketManager.Stop()
		logger.Info("WebSocket manager stopped")
	}

	// Close NATS connection
	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		}
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		TaskService:     c.TaskService,
		LogLevelService: c.LogLevelService,
		RequestLogger:   c.RequestLogger,
		TodoLogger:      c.TodoLogger,
	}
}
