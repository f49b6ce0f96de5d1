package trip

import (
	"github.com/CyberFocus2410/toursphere-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req CreateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		t, err := svc.CreateTrip(c.Context(), auth.CallerID(c), req)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "trip created successfully",
			"trip_id": t.ID,
			"trip":    t,
		})
	})

	r.Post("/:tripID/data", authMiddleware, func(c *fiber.Ctx) error {
		var req DataRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		admin := auth.CallerRole(c) == auth.RoleAdmin
		t, err := svc.UpdateTripData(c.Context(), c.Params("tripID"), auth.CallerID(c), admin, req)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"message": "trip data updated successfully",
			"trip":    t,
		})
	})

	r.Get("/:tripID", authMiddleware, func(c *fiber.Ctx) error {
		t, err := svc.GetTrip(c.Context(), c.Params("tripID"))
		if err != nil {
			return err
		}
		return c.JSON(t)
	})
}
