package serviceimpl

import (
	"context"
	"fmt"

	"todo-service/domain/ports"
	"todo-service/domain/services"
	"todo-service/pkg/apperror"
)

// LogLevelServiceImpl อ่าน/เปลี่ยน level ของ log channel ตามชื่อ (request-logger, todo-logger)
// ชื่อว่าง = ทุก channel
type LogLevelServiceImpl struct {
	loggers []ports.LeveledLoggerPort // ตามลำดับที่ลงทะเบียน ตัวแรกเป็นตัวหลัก
	byName  map[string]ports.LeveledLoggerPort
	log     ports.LoggerPort
}

func NewLogLevelService(log ports.LoggerPort, loggers ...ports.LeveledLoggerPort) services.LogLevelService {
	byName := make(map[string]ports.LeveledLoggerPort, len(loggers))
	for _, l := range loggers {
		byName[l.Name()] = l
	}
	return &LogLevelServiceImpl{
		loggers: loggers,
		byName:  byName,
		log:     log,
	}
}

// GetLevel ถ้าไม่ระบุชื่อ คืน level ของ channel แรก (ทุก channel ใช้ level เดียวกันหลัง PUT แบบไม่ระบุชื่อ)
func (s *LogLevelServiceImpl) GetLevel(ctx context.Context, loggerName string) (string, error) {
	targets, err := s.lookup(ctx, loggerName)
	if err != nil {
		return "", err
	}
	return targets[0].Level(), nil
}

func (s *LogLevelServiceImpl) SetLevel(ctx context.Context, loggerName, level string) (string, error) {
	targets, err := s.lookup(ctx, loggerName)
	if err != nil {
		return "", err
	}

	for _, l := range targets {
		prev := l.Level()
		if err := l.SetLevel(level); err != nil {
			appErr := apperror.Validation("Error: invalid logger level %s", level).Wrap(err)
			s.log.Error(ctx, appErr.Message)
			return "", appErr
		}
		s.log.Info(ctx, fmt.Sprintf("Logger %s level changed: %s --> %s", l.Name(), prev, l.Level()))
	}

	return targets[0].Level(), nil
}

func (s *LogLevelServiceImpl) lookup(ctx context.Context, loggerName string) ([]ports.LeveledLoggerPort, error) {
	if loggerName == "" {
		if len(s.loggers) == 0 {
			return nil, apperror.Internal(fmt.Errorf("no loggers registered"))
		}
		return s.loggers, nil
	}

	l, ok := s.byName[loggerName]
	if !ok {
		appErr := apperror.Validation("Error: no such logger %s", loggerName)
		s.log.Error(ctx, appErr.Message)
		return nil, appErr
	}
	return []ports.LeveledLoggerPort{l}, nil
}
