package response

import "github.com/gofiber/fiber/v3"

const (
	MessageBadRequest          = "Bad request"
	MessageUnauthorized        = "Unauthorized"
	MessageNotFound            = "Not found"
	MessageInternalServerError = "Server error"
)

// Body is the common JSON envelope: a user-facing message plus optional
// payload fields merged at the top level, matching what the dashboard
// expects. Errors carry a detail string only outside production.
type Body map[string]any

func JSON(c fiber.Ctx, status int, message string, extra Body) error {
	out := Body{"message": message}
	for k, v := range extra {
		out[k] = v
	}
	return c.Status(status).JSON(out)
}

func Message(c fiber.Ctx, status int, message string) error {
	return JSON(c, status, message, nil)
}

func Error(c fiber.Ctx, status int, message string, detail string) error {
	out := Body{"message": message}
	if detail != "" {
		out["error"] = detail
	}
	return c.Status(status).JSON(out)
}
