package serverutils

import (
	"jf-travels-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionChecker reports whether a token id still has a live server-side
// session. Revocation and TTL expiry both surface here.
type SessionChecker interface {
	Get(sessionID string) (*store.Session, bool)
}

// NewJwtMiddleware guards a route group with bearer-token auth and exposes
// the token claims through ctx.Locals. A cryptographically valid token is
// still rejected when its session has been revoked or has expired.
func NewJwtMiddleware(secret string, sessions SessionChecker) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		jti, _ := claims["jti"].(string)
		if jti == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}
		if _, live := sessions.Get(jti); !live {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Session revoked or expired"})
		}

		ctx.Locals("user_id", claims["user_id"])
		ctx.Locals("email", claims["email"])
		ctx.Locals("role", claims["role"])
		return ctx.Next()
	}
}
