package apperr

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrValidation         = errors.New("missing or malformed required field")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrPermissionDenied   = errors.New("access denied")
	ErrNotFound           = errors.New("not found")
)

// Status maps a service error to its HTTP status code. Unrecognized
// errors are treated as internal failures.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrInvalidCredentials):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrPermissionDenied):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Handler converts errors escaping route handlers into JSON responses.
// Internal error details are logged but not returned to the client.
func Handler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	code := Status(err)
	if code == fiber.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		return c.Status(code).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
