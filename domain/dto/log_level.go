package dto

// LogLevelRequest query ของ GET/PUT /logs/level
// logger-name ว่าง = ทุก logger; ชื่อและ level ถูกตรวจใน LogLevelService
type LogLevelRequest struct {
	LoggerName  string `query:"logger-name"`
	LoggerLevel string `query:"logger-level"`
}
