package courseValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"edura/middleware"
	courseModels "edura/models/course"
)

// CreateQuizRequest is the explicit schema for quiz authoring. Duration and
// correctIndex checks beyond the basics live with the quiz engine.
type CreateQuizRequest struct {
	CourseID  uint                    `json:"course_id"`
	Title     string                  `json:"title"`
	Duration  int                     `json:"duration"` // minutes
	Questions []courseModels.Question `json:"questions"`
}

// SubmitQuizRequest carries answer selections keyed by question index
type SubmitQuizRequest struct {
	Answers map[int]int `json:"answers"`
}

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateQuizRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if len(reqData.Questions) == 0 {
			errors["questions"] = "At least one question is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// SubmitQuiz validates the :id parameter and the answers payload
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || quizID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		reqData := new(SubmitQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Answers == nil {
			reqData.Answers = make(map[int]int)
		}

		c.Locals("quizID", quizID)
		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
