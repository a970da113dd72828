package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"edura/config"
	authController "edura/controllers/auth"
	courseControllers "edura/controllers/course"
	userController "edura/controllers/userControllers"
	"edura/database"
	"edura/middleware"
	"edura/routers/authRoutes"
	"edura/routers/courseRoutes"
	"edura/routers/userRoutes"
	"edura/utils"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	emailService := utils.NewEmailService(cfg)
	mediaService := utils.NewMediaService(cfg)
	certRenderer := utils.NewCertificateRenderer(cfg)

	authCtl := authController.NewController(db, cfg, emailService)
	courseCtl := courseControllers.NewController(db, cfg, certRenderer)
	userCtl := userController.NewController(db, mediaService)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	auth := middleware.Protected(cfg)

	authRoutes.SetupAuthRoutes(app, authCtl)
	userRoutes.SetupUserRoutes(app, userCtl, courseCtl, auth)
	courseRoutes.SetupCourseRoutes(app, courseCtl, auth)
	courseRoutes.SetupInstructorRoutes(app, db, courseCtl, auth)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
