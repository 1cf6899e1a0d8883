package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"todo-service/pkg/apperror"
	"todo-service/pkg/logger"
	"todo-service/pkg/utils"
)

// ErrorHandler แปลง error จาก handler เป็น {"errorMessage": ...}
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, message := StatusFromError(err)

		if code >= fiber.StatusInternalServerError {
			logger.Error("Unhandled error",
				"request_id", GetRequestIDFromContext(c),
				"request_number", GetRequestNumberFromContext(c),
				"method", c.Method(),
				"path", c.Path(),
				"error", err,
			)
		}

		return utils.ErrorResponse(c, code, message)
	}
}

// StatusFromError map error เป็น HTTP status และข้อความที่ส่งให้ client
func StatusFromError(err error) (int, string) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindValidation:
			return fiber.StatusBadRequest, appErr.Message
		case apperror.KindConflict:
			return fiber.StatusConflict, appErr.Message
		case apperror.KindNotFound:
			return fiber.StatusNotFound, appErr.Message
		default:
			return fiber.StatusInternalServerError, appErr.Message
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	return fiber.StatusInternalServerError, "Internal server error"
}
