package api

import "github.com/gofiber/fiber/v2"

// Success writes a 200 JSON envelope around data.
func Success(c *fiber.Ctx, message string, data any) error {
	return successWithCode(c, fiber.StatusOK, message, data)
}

func successWithCode(c *fiber.Ctx, code int, message string, data any) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// Error writes an error envelope. errorCode is the machine-readable code
// clients branch on.
func Error(c *fiber.Ctx, code int, errorCode string, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":       code,
		"status":     "error",
		"error_code": errorCode,
		"message":    message,
	})
}

// ErrorWithDetails is Error plus a list of field-level problems.
func ErrorWithDetails(c *fiber.Ctx, code int, errorCode string, message string, details []string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":       code,
		"status":     "error",
		"error_code": errorCode,
		"message":    message,
		"errors":     details,
	})
}
