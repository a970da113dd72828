package authRoutes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	authController "edura/controllers/auth"
	validators "edura/validators/auth"
)

// SetupAuthRoutes sets up registration and the credential lifecycle routes.
// The group is rate-limited per IP to slow down credential stuffing.
func SetupAuthRoutes(app *fiber.App, ctl *authController.Controller) {
	authGroup := app.Group("/auth", limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
	}))

	authGroup.Post("/register", validators.Register(), ctl.Register)
	authGroup.Post("/login", validators.Login(), ctl.Login)
	authGroup.Post("/refresh", validators.Refresh(), ctl.Refresh)
	authGroup.Post("/logout", validators.Logout(), ctl.Logout)
}
