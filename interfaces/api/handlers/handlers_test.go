package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-service/application/serviceimpl"
	"todo-service/infrastructure/memory"
	"todo-service/infrastructure/messaging"
	"todo-service/interfaces/api/handlers"
	"todo-service/interfaces/api/middleware"
	"todo-service/interfaces/api/routes"
	"todo-service/pkg/logger"
)

type testServer struct {
	app        *fiber.App
	requestBuf *bytes.Buffer
	todoBuf    *bytes.Buffer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s := &testServer{
		requestBuf: &bytes.Buffer{},
		todoBuf:    &bytes.Buffer{},
	}

	requestLog, err := logger.NewChannel(logger.ChannelConfig{
		Name:    "request-logger",
		Level:   "INFO",
		Writers: []io.Writer{s.requestBuf},
	})
	require.NoError(t, err)

	todoLog, err := logger.NewChannel(logger.ChannelConfig{
		Name:    "todo-logger",
		Level:   "INFO",
		Writers: []io.Writer{s.todoBuf},
	})
	require.NoError(t, err)

	taskService := serviceimpl.NewTaskService(memory.NewTaskRepository(), messaging.NewNoopPublisher(), todoLog)
	logLevelService := serviceimpl.NewLogLevelService(requestLog, requestLog, todoLog)

	h := handlers.NewHandlers(&handlers.Services{
		TaskService:     taskService,
		LogLevelService: logLevelService,
		RequestLogger:   requestLog,
		TodoLogger:      todoLog,
	})

	s.app = fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	s.app.Use(middleware.RequestIDMiddleware())
	s.app.Use(middleware.LoggerMiddleware(memory.NewRequestCounter(), requestLog))
	routes.SetupRoutes(s.app, h, nil)

	return s
}

func (s *testServer) do(t *testing.T, method, target string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	return resp.StatusCode, decoded
}

func futureMillis() int64 {
	return time.Now().Add(24 * time.Hour).UnixMilli()
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/todo/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(raw))
	assert.Contains(t, s.requestBuf.String(), "INFO: Incoming request | #1 | resource: /todo/health | HTTP Verb GET | request #1")
}

func TestTodoLifecycle(t *testing.T) {
	s := newTestServer(t)
	due := futureMillis()

	code, body := s.do(t, http.MethodPost, "/todo", map[string]any{"title": "A", "content": "x", "dueDate": due})
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["result"])

	code, body = s.do(t, http.MethodPost, "/todo", map[string]any{"title": "A", "content": "y", "dueDate": due})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Error: TODO with the title A already exists in the system", body["errorMessage"])

	code, body = s.do(t, http.MethodGet, "/todo/content?status=ALL&sortBy=ID", nil)
	require.Equal(t, http.StatusOK, code)
	items, ok := body["result"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.EqualValues(t, 1, item["id"])
	assert.Equal(t, "A", item["title"])
	assert.Equal(t, "x", item["content"])
	assert.Equal(t, "PENDING", item["status"])
	assert.EqualValues(t, due, item["dueDate"])

	code, body = s.do(t, http.MethodPut, "/todo?id=1&status=DONE", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "PENDING", body["result"])

	code, body = s.do(t, http.MethodGet, "/todo/size?status=DONE", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["result"])

	code, body = s.do(t, http.MethodDelete, "/todo?id=1", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "0", body["result"])

	code, body = s.do(t, http.MethodDelete, "/todo?id=1", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Error: no such TODO with id 1", body["errorMessage"])

	todoLog := s.todoBuf.String()
	assert.Contains(t, todoLog, "INFO: Creating new TODO with Title [A]")
	assert.Contains(t, todoLog, "ERROR: Error: TODO with the title A already exists in the system")
	assert.Contains(t, todoLog, "INFO: Removing todo id 1")
}

func TestCreateTask_Validation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		body    map[string]any
		code    int
		message string
	}{
		{
			name:    "due date in the past",
			body:    map[string]any{"title": "B", "content": "", "dueDate": time.Now().Add(-time.Hour).UnixMilli()},
			code:    http.StatusConflict,
			message: "Error: Can't create new TODO with a due date in the past",
		},
		{
			name: "missing title",
			body: map[string]any{"content": "", "dueDate": futureMillis()},
			code: http.StatusBadRequest,
		},
		{
			name: "missing due date",
			body: map[string]any{"title": "C"},
			code: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := s.do(t, http.MethodPost, "/todo", tt.body)
			assert.Equal(t, tt.code, code)
			if tt.message != "" {
				assert.Equal(t, tt.message, body["errorMessage"])
			} else {
				assert.NotEmpty(t, body["errorMessage"])
			}
		})
	}
}

func TestQueryValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		target string
		code   int
		msg    string
	}{
		{"size unknown status", http.MethodGet, "/todo/size?status=bogus", http.StatusBadRequest, "Bad request."},
		{"size missing status", http.MethodGet, "/todo/size", http.StatusBadRequest, "Bad request."},
		{"content lowercase status", http.MethodGet, "/todo/content?status=all&sortBy=ID", http.StatusBadRequest, "Bad request."},
		{"content missing sortBy", http.MethodGet, "/todo/content?status=ALL", http.StatusBadRequest, "Bad request."},
		{"update invalid id", http.MethodPut, "/todo?id=abc&status=DONE", http.StatusBadRequest, "Error: invalid TODO id abc"},
		{"update unknown id", http.MethodPut, "/todo?id=9&status=DONE", http.StatusNotFound, "Error: no such TODO with id 9"},
		{"delete invalid id", http.MethodDelete, "/todo?id=1.5", http.StatusBadRequest, "Error: invalid TODO id 1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := s.do(t, tt.method, tt.target, nil)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.msg, body["errorMessage"])
		})
	}
}

func TestUpdateTaskStatus_InvalidStatus(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(t, http.MethodPost, "/todo", map[string]any{"title": "A", "content": "", "dueDate": futureMillis()})
	require.Equal(t, http.StatusOK, code)

	code, body := s.do(t, http.MethodPut, "/todo?id=1&status=done", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error: Invalid status", body["errorMessage"])

	code, body = s.do(t, http.MethodGet, "/todo/content?status=PENDING&sortBy=TITLE", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["result"], 1)
}

func TestLogLevel(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, http.MethodGet, "/logs/level?logger-name=request-logger", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "INFO", body["result"])

	code, body = s.do(t, http.MethodPut, "/logs/level?logger-name=todo-logger&logger-level=DEBUG", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "DEBUG", body["result"])

	code, body = s.do(t, http.MethodGet, "/logs/level?logger-name=todo-logger", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "DEBUG", body["result"])

	code, body = s.do(t, http.MethodPut, "/logs/level?logger-name=todo-logger&logger-level=debug", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error: invalid logger level debug", body["errorMessage"])

	code, body = s.do(t, http.MethodGet, "/logs/level?logger-name=nope", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error: no such logger nope", body["errorMessage"])

	code, body = s.do(t, http.MethodPut, "/logs/level?logger-name=todo-logger", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, body["errorMessage"])

	// debug ของ todo logger เปิดแล้ว
	code, _ = s.do(t, http.MethodPost, "/todo", map[string]any{"title": "A", "content": "", "dueDate": futureMillis()})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, strings.Contains(s.todoBuf.String(), "DEBUG: Currently there are 0 TODOs in the system. New TODO will be assigned with id 1"))
}

func TestLogLevel_WithoutLoggerName(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, http.MethodGet, "/logs/level", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "INFO", body["result"])

	code, body = s.do(t, http.MethodPut, "/logs/level?logger-level=DEBUG", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "DEBUG", body["result"])

	for _, name := range []string{"request-logger", "todo-logger"} {
		code, body = s.do(t, http.MethodGet, "/logs/level?logger-name="+name, nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "DEBUG", body["result"], name)
	}

	code, body = s.do(t, http.MethodGet, "/logs/level", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "DEBUG", body["result"])

	code, body = s.do(t, http.MethodPut, "/logs/level?logger-level=TRACE", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error: invalid logger level TRACE", body["errorMessage"])
}

func TestCreateTask_DueDateFormats(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		dueDate any
		code    int
	}{
		{"date only", "2099-01-01", http.StatusOK},
		{"local datetime", "2099-01-01T08:51:09", http.StatusOK},
		{"rfc3339", "2099-01-01T08:51:09Z", http.StatusOK},
		{"numeric string", "4070908800000", http.StatusOK},
		{"nan", "NaN", http.StatusBadRequest},
		{"infinity", "Infinity", http.StatusBadRequest},
		{"garbage", "next week", http.StatusBadRequest},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]any{"title": fmt.Sprintf("T%d", i), "content": "", "dueDate": tt.dueDate}
			code, resp := s.do(t, http.MethodPost, "/todo", body)
			assert.Equal(t, tt.code, code, "%v", resp)
		})
	}
}
