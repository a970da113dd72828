package courseRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controllers "edura/controllers/course"
	"edura/middleware"
	validators "edura/validators/course"
)

// SetupInstructorRoutes sets up all instructor-side course management routes.
// Every route is capability-gated; ownership is checked in the handlers.
func SetupInstructorRoutes(app *fiber.App, db *gorm.DB, ctl *controllers.Controller, auth fiber.Handler) {
	group := app.Group("/instructor", auth)

	// Course authoring
	group.Post("/course", middleware.RequireCapability(db, middleware.CapCourseCreate), validators.CreateCourse(), ctl.CreateCourse)
	group.Post("/course/:id/publish", middleware.RequireCapability(db, middleware.CapCourseCreate), validators.CourseID(), ctl.PublishCourse)
	group.Post("/course/:id/resources", middleware.RequireCapability(db, middleware.CapCourseResource), validators.AddResource(), ctl.AddCourseResource)

	// Curriculum builder
	group.Post("/module", middleware.RequireCapability(db, middleware.CapModuleCreate), validators.CreateModule(), ctl.CreateModule)
	group.Post("/lesson", middleware.RequireCapability(db, middleware.CapLessonCreate), validators.CreateLesson(), ctl.CreateLesson)

	// Quiz authoring
	group.Post("/quiz", middleware.RequireCapability(db, middleware.CapQuizCreate), validators.CreateQuiz(), ctl.CreateQuiz)
	group.Post("/quiz/generate", middleware.RequireCapability(db, middleware.CapQuizGenerate), ctl.GenerateQuizQuestions)

	// Aggregate stats
	group.Get("/stats", middleware.RequireCapability(db, middleware.CapStatsView), ctl.InstructorStats)
}
