package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/tvules/cat-charity-fund/internal/application/usecases"
	"github.com/tvules/cat-charity-fund/internal/domain/entities"
	"github.com/tvules/cat-charity-fund/internal/infrastructure/auth"
)

const currentUserKey = "currentUser"

func SetupMiddlewares(app *fiber.App) {
	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       300, // 5 minutes
	}))
}

// NewAuth returns the middleware guarding authenticated routes: it verifies
// the bearer token, loads the account, and stores it on the request context.
func NewAuth(tokens *auth.TokenManager, users usecases.UserUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		userID, err := tokens.Parse(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		user, err := users.GetByID(c.UserContext(), userID)
		if err != nil || !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unknown or inactive user",
			})
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// RequireSuperuser gates routes reserved for the superuser. It must run after
// NewAuth.
func RequireSuperuser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !user.IsSuperuser {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "superuser access required",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil outside guarded routes.
func CurrentUser(c *fiber.Ctx) *entities.User {
	user, _ := c.Locals(currentUserKey).(*entities.User)
	return user
}
