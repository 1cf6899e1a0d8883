package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ========== Response Structures ==========

// ResultResponse - body ของ request ที่สำเร็จ
type ResultResponse struct {
	Result any `json:"result"`
}

// ErrorMessageResponse - body ของ request ที่ล้มเหลว
type ErrorMessageResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, result any) error {
	return c.Status(fiber.StatusOK).JSON(ResultResponse{Result: result})
}

func TextResponse(c *fiber.Ctx, text string) error {
	return c.Status(fiber.StatusOK).SendString(text)
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorMessageResponse{ErrorMessage: message})
}
