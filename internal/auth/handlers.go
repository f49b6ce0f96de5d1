package auth

import (
	"errors"

	"github.com/CyberFocus2410/toursphere-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, adminGroup fiber.Router, svc *Service) {
	r.Post("/register", func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		user, err := svc.Register(c.Context(), req)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "user registered successfully",
			"user":    user,
		})
	})

	r.Post("/login", func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "username and password required")
		}
		resp, err := svc.Login(c.Context(), req)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	})

	adminGroup.Post("/login", func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "username and password required")
		}
		resp, err := svc.AdminLogin(c.Context(), req)
		if err != nil {
			if errors.Is(err, apperr.ErrInvalidCredentials) {
				return fiber.NewError(fiber.StatusBadRequest, "invalid admin credentials")
			}
			return err
		}
		return c.JSON(resp)
	})
}
