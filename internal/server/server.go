package server

import (
	"github.com/CyberFocus2410/toursphere-backend/internal/apperr"
	"github.com/CyberFocus2410/toursphere-backend/internal/auth"
	"github.com/CyberFocus2410/toursphere-backend/internal/booking"
	"github.com/CyberFocus2410/toursphere-backend/internal/config"
	"github.com/CyberFocus2410/toursphere-backend/internal/metrics"
	"github.com/CyberFocus2410/toursphere-backend/internal/report"
	"github.com/CyberFocus2410/toursphere-backend/internal/stream"
	"github.com/CyberFocus2410/toursphere-backend/internal/trip"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: apperr.Handler,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(metrics.Middleware())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.App.Get("/metrics", metrics.Handler())

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)
	adminGate := auth.RequireAdmin()

	adminGroup := s.App.Group("/admin")

	auth.RegisterRoutes(s.App.Group("/auth"), adminGroup, auth.NewService(s.Cfg.JWTSecret, s.Cfg.TokenTTL(), s.DB))
	trip.RegisterRoutes(s.App.Group("/trips"), trip.NewService(s.DB, s.Stream), jwtMiddleware)
	booking.RegisterRoutes(s.App.Group("/bookings"), booking.NewService(s.DB, s.Redis, s.Cfg.QuoteCacheTTL()), jwtMiddleware)
	report.RegisterRoutes(adminGroup, report.NewService(s.DB), jwtMiddleware, adminGate)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}
