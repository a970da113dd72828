package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "edura/controllers/course"
	validators "edura/validators/course"
)

// SetupCourseRoutes sets up all student-facing course routes. The catalog
// listing is public; everything else requires an access token.
func SetupCourseRoutes(app *fiber.App, ctl *controllers.Controller, auth fiber.Handler) {
	courseGroup := app.Group("/course")

	// Public catalog
	courseGroup.Get("/list", validators.CourseList(), ctl.GetAllCourses)

	// Course detail with modules/lessons and per-lesson access
	courseGroup.Get("/:id", auth, validators.CourseID(), ctl.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", auth, validators.CourseID(), ctl.EnrollInCourse)

	// Quizzes of a course
	courseGroup.Get("/:id/quizzes", auth, validators.CourseID(), ctl.ListQuizzes)

	// Completion certificate (re-checks progress on every request)
	courseGroup.Get("/:id/certificate", auth, validators.CourseID(), ctl.DownloadCertificate)

	// Lesson progress marks (upsert)
	lessonGroup := app.Group("/lesson")
	lessonGroup.Post("/:id/progress", auth, validators.SaveProgress(), ctl.SaveProgress)

	// Quiz submission and scoring
	quizGroup := app.Group("/quiz")
	quizGroup.Post("/:id/submit", auth, validators.SubmitQuiz(), ctl.SubmitQuiz)
}
