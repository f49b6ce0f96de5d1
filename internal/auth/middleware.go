package auth

import (
	"fmt"
	"strings"

	"github.com/CyberFocus2410/toursphere-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTMiddleware validates bearer tokens and stores user_id and role in locals.
func JWTMiddleware(secret string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		token := bearerFromHeader(c.Get("Authorization"))
		if token == "" {
			return fmt.Errorf("%w: missing bearer token", apperr.ErrUnauthenticated)
		}

		parsed, err := parseMiddlewareClaimsFn(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
			return secretBytes, nil
		})
		if err != nil {
			return fmt.Errorf("%w: token invalid", apperr.ErrUnauthenticated)
		}

		claims, ok := parsed.Claims.(*Claims)
		if !ok || !parsed.Valid || !claims.Role.Valid() {
			return fmt.Errorf("%w: token invalid", apperr.ErrUnauthenticated)
		}

		c.Locals("user_id", claims.Subject)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}

// RequireAdmin gates a route on the admin role. Must run after JWTMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(Role)
		if !ok || role != RoleAdmin {
			return apperr.ErrPermissionDenied
		}
		return c.Next()
	}
}

var parseMiddlewareClaimsFn = jwt.ParseWithClaims

func bearerFromHeader(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// CallerID returns the authenticated user id stored by JWTMiddleware.
func CallerID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// CallerRole returns the authenticated role stored by JWTMiddleware.
func CallerRole(c *fiber.Ctx) Role {
	role, _ := c.Locals("role").(Role)
	return role
}
