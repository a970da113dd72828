package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"edura/middleware"
	"edura/models"
	courseModels "edura/models/course"
	courseValidator "edura/validators/course"
)

// QuizResult is the outcome of scoring one submission
type QuizResult struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// scoreQuiz compares each submitted answer against the question's correct
// index; absent answers simply score nothing. An empty question set scores
// 0% rather than dividing by zero.
func scoreQuiz(questions []courseModels.Question, answers map[int]int) QuizResult {
	result := QuizResult{Total: len(questions)}
	if result.Total == 0 {
		return result
	}

	for i, q := range questions {
		if answer, ok := answers[i]; ok && answer == q.CorrectIndex {
			result.Score++
		}
	}

	result.Percentage = float64(result.Score) / float64(result.Total) * 100
	return result
}

// normalizeQuizDuration applies the default when authoring omits the duration
// or sends a non-positive one
func normalizeQuizDuration(minutes int) int {
	if minutes <= 0 {
		return courseModels.DefaultQuizDuration
	}
	return minutes
}

// validateQuestions checks each question's correctIndex against its own
// options list
func validateQuestions(questions []courseModels.Question) map[string]string {
	errors := make(map[string]string)
	for i, q := range questions {
		if len(q.Options) == 0 {
			errors[fmt.Sprintf("questions[%d]", i)] = "Question must have at least one option!"
			continue
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			errors[fmt.Sprintf("questions[%d]", i)] = "correctIndex is out of range for the options list!"
		}
	}
	return errors
}

// placeholderQuestions returns the fixed question set the generator stub hands
// back. The uploaded document's content is deliberately ignored; this is a
// placeholder, not content extraction.
func placeholderQuestions() []courseModels.Question {
	return []courseModels.Question{
		{
			QuestionText: "What is the primary function of React?",
			Options:      []string{"Database Management", "Building UI", "Sending Emails", "Server Logic"},
			CorrectIndex: 1,
		},
		{
			QuestionText: "Which symbol is used for comments in JavaScript?",
			Options:      []string{"", "#", "//", "/* */"},
			CorrectIndex: 2,
		},
		{
			QuestionText: "What does HTML stand for?",
			Options:      []string{"Hyper Text Markup Language", "High Tech Modern Language", "Hyper Transfer Mode Link", "Home Tool Markup Language"},
			CorrectIndex: 0,
		},
	}
}

// CreateQuiz stores a question set for a course the instructor owns
func (ctl *Controller) CreateQuiz(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)
	reqData := c.Locals("validatedQuiz").(*courseValidator.CreateQuizRequest)

	var crs courseModels.Course
	if err := ctl.DB.Where("id = ?", reqData.CourseID).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !canManageCourse(user, &crs) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	if errors := validateQuestions(reqData.Questions); len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	quiz := courseModels.Quiz{
		CourseID: reqData.CourseID,
		Title:    reqData.Title,
		Duration: normalizeQuizDuration(reqData.Duration),
	}
	if err := quiz.SetQuestions(reqData.Questions); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save quiz!", nil)
	}

	if err := ctl.DB.Create(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz saved successfully!", quiz)
}

// ListQuizzes returns the quizzes of a course
func (ctl *Controller) ListQuizzes(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := ctl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var quizzes []courseModels.Quiz
	if err := ctl.DB.Where("course_id = ?", courseID).Order("created_at desc").Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	type QuizWithQuestions struct {
		courseModels.Quiz
		QuestionSet []courseModels.Question `json:"questionSet"`
	}

	result := make([]QuizWithQuestions, len(quizzes))
	for i, quiz := range quizzes {
		result[i] = QuizWithQuestions{Quiz: quiz, QuestionSet: quiz.QuestionList()}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", result)
}

// SubmitQuiz scores a submission against the stored question set. Both the
// explicit submit and the client-side countdown expiry land here.
func (ctl *Controller) SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := ctl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID := c.Locals("quizID").(int)
	reqData := c.Locals("validatedSubmission").(*courseValidator.SubmitQuizRequest)

	var quiz courseModels.Quiz
	if err := ctl.DB.Where("id = ?", quizID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	result := scoreQuiz(quiz.QuestionList(), reqData.Answers)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz scored!", result)
}

// GenerateQuizQuestions is the placeholder question generator: it requires an
// uploaded document but returns the fixed set regardless of its content
func (ctl *Controller) GenerateQuizQuestions(c *fiber.Ctx) error {
	if _, err := c.FormFile("file"); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No document uploaded!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions generated!", placeholderQuestions())
}
