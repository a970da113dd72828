package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseControllers "edura/controllers/course"
	userController "edura/controllers/userControllers"
)

// SetupUserRoutes sets up profile, dashboard and upload routes
func SetupUserRoutes(app *fiber.App, ctl *userController.Controller, courseCtl *courseControllers.Controller, auth fiber.Handler) {
	userGroup := app.Group("/user", auth)

	userGroup.Get("/me", ctl.Me)
	userGroup.Get("/dashboard", courseCtl.GetDashboard)

	// Opaque pass-through to the media host
	app.Post("/upload", auth, ctl.UploadFile)
}
