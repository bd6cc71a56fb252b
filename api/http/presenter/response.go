package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse — единый формат ошибки API. MessageAr заполняется
// только на публичных ручках, которые видит кандидат; админка
// работает на английском.
type ErrorResponse struct {
	Message   string `json:"message"`
	MessageAr string `json:"messageAr,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// ErrorLocalized добавляет арабский текст ошибки для публичных ручек.
func ErrorLocalized(c *fiber.Ctx, status int, message, messageAr string) error {
	return JSON(c, status, ErrorResponse{Message: message, MessageAr: messageAr})
}
