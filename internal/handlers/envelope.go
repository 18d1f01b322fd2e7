package handlers

import "github.com/gofiber/fiber/v2"

// Envelope is the uniform response wrapper used by every endpoint.
type Envelope struct {
	AllOK   bool   `json:"allOK"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// respond writes an Envelope with the given status. AllOK follows the
// status class.
func respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Envelope{
		AllOK:   status < fiber.StatusBadRequest,
		Message: message,
		Data:    data,
	})
}
