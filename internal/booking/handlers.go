package booking

import (
	"github.com/CyberFocus2410/toursphere-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/search", authMiddleware, func(c *fiber.Ctx) error {
		quotes, err := svc.SearchProviders(c.Context(), c.Query("origin"), c.Query("destination"), c.Query("mode"))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"results": quotes})
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req CreateBookingRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		b, err := svc.CreateBooking(c.Context(), auth.CallerID(c), req)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(b)
	})
}
