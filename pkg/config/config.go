package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	Redis     RedisConfig // optional: request counter ร่วมกันหลาย instance
	NATS      NATSConfig  // optional: ส่ง task events
	Scheduler SchedulerConfig
	WebSocket WebSocketConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

// LogConfig - app log (startup/infra) และ log channel ของ requests/todos
type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int    // จำนวน backup files
	MaxAge     int    // วัน
	Compress   bool   // บีบอัด backup

	Request LogChannelConfig
	Todo    LogChannelConfig
}

// LogChannelConfig ค่าเริ่มต้นของ log channel (เปลี่ยน level ได้ผ่าน /logs/level)
type LogChannelConfig struct {
	Level    string // ERROR, INFO, DEBUG
	FilePath string
	Console  bool
}

// RedisConfig - URL ว่าง = ไม่ใช้ Redis
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

// NATSConfig - URL ว่าง = ไม่ส่ง event
type NATSConfig struct {
	URL           string // nats://localhost:4222
	SubjectPrefix string // todo.events
}

type SchedulerConfig struct {
	StatsCron string // cron ของ job สรุปจำนวน task, ว่าง = ปิด
}

type WebSocketConfig struct {
	Enabled    bool
	BufferSize int
}

func LoadConfig() (*Config, error) {
	// ไม่ error ถ้าไม่มี .env file (ใช้ environment variables แทน)
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"
	logConsole := getEnv("LOG_CHANNEL_CONSOLE", "true") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	wsBuffer, _ := strconv.Atoi(getEnv("WEBSOCKET_BUFFER_SIZE", "256"))

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Todo Service"),
			Port: getEnv("APP_PORT", "9583"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
			Request: LogChannelConfig{
				Level:    getEnv("REQUEST_LOG_LEVEL", "INFO"),
				FilePath: getEnv("REQUEST_LOG_FILE", "logs/requests.log"),
				Console:  logConsole,
			},
			Todo: LogChannelConfig{
				Level:    getEnv("TODO_LOG_LEVEL", "INFO"),
				FilePath: getEnv("TODO_LOG_FILE", "logs/todos.log"),
				Console:  logConsole,
			},
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		NATS: NATSConfig{
			URL:           getEnv("NATS_URL", ""),
			SubjectPrefix: getEnv("NATS_SUBJECT_PREFIX", "todo.events"),
		},
		Scheduler: SchedulerConfig{
			StatsCron: getEnv("STATS_CRON", "*/1 * * * *"),
		},
		WebSocket: WebSocketConfig{
			Enabled:    getEnv("WEBSOCKET_ENABLED", "true") == "true",
			BufferSize: wsBuffer,
		},
	}

	if config.WebSocket.BufferSize <= 0 {
		config.WebSocket.BufferSize = 256
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
