package report

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware, adminMiddleware fiber.Handler) {
	r.Get("/reports", authMiddleware, adminMiddleware, func(c *fiber.Ctx) error {
		rep, err := svc.TripReport(c.Context())
		if err != nil {
			return err
		}
		return c.JSON(rep)
	})
}
