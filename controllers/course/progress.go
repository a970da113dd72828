package controllers

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"edura/middleware"
	"edura/models"
	courseModels "edura/models/course"
	courseValidator "edura/validators/course"
)

// CourseProgress is the aggregate completion state of one (user, course) pair
type CourseProgress struct {
	TotalLessons       int64 `json:"totalLessons"`
	CompletedLessons   int64 `json:"completedLessons"`
	ProgressPercentage int   `json:"progressPercentage"`
}

// courseProgress recomputes completion from scratch: modules of the course,
// lessons under them, completed marks restricted to that lesson set. The three
// reads are not wrapped in a transaction; a write landing between them can
// transiently undercount, which this domain tolerates.
func courseProgress(db *gorm.DB, courseID, userID uint) (CourseProgress, error) {
	var moduleIDs []uint
	if err := db.Model(&courseModels.Module{}).Where("course_id = ?", courseID).Pluck("id", &moduleIDs).Error; err != nil {
		return CourseProgress{}, err
	}
	if len(moduleIDs) == 0 {
		return CourseProgress{}, nil
	}

	var lessonIDs []uint
	if err := db.Model(&courseModels.Lesson{}).Where("module_id IN ?", moduleIDs).Pluck("id", &lessonIDs).Error; err != nil {
		return CourseProgress{}, err
	}
	if len(lessonIDs) == 0 {
		return CourseProgress{}, nil
	}

	var completed int64
	if err := db.Model(&courseModels.Progress{}).
		Where("user_id = ? AND is_completed = ? AND lesson_id IN ?", userID, true, lessonIDs).
		Count(&completed).Error; err != nil {
		return CourseProgress{}, err
	}

	total := int64(len(lessonIDs))
	percent := int(math.Round(float64(completed) / float64(total) * 100))

	return CourseProgress{
		TotalLessons:       total,
		CompletedLessons:   completed,
		ProgressPercentage: percent,
	}, nil
}

// saveLessonProgress upserts the (user, lesson) mark; last write wins
func saveLessonProgress(db *gorm.DB, userID, lessonID uint, position int, completed bool) (courseModels.Progress, error) {
	mark := courseModels.Progress{
		UserID:              userID,
		LessonID:            lessonID,
		IsCompleted:         completed,
		LastWatchedPosition: position,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_completed", "last_watched_position", "updated_at"}),
	}).Create(&mark).Error
	if err != nil {
		return courseModels.Progress{}, err
	}

	// Re-read so callers see the surviving row, not the candidate insert
	var saved courseModels.Progress
	if err := db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&saved).Error; err != nil {
		return courseModels.Progress{}, err
	}

	return saved, nil
}

// SaveProgress records playback position and completion for a lesson
func (ctl *Controller) SaveProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := ctl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lessonID := c.Locals("lessonID").(int)
	reqData := c.Locals("validatedProgress").(*courseValidator.SaveProgressRequest)

	// Referential check: the mark must point at an existing lesson
	var lesson courseModels.Lesson
	if err := ctl.DB.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	saved, err := saveLessonProgress(ctl.DB, userID, uint(lessonID), reqData.LastWatchedPosition, reqData.IsCompleted)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress saved!", saved)
}

// GetDashboard lists the user's enrolled courses with per-course progress
func (ctl *Controller) GetDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := ctl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := ctl.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	type EnrolledCourse struct {
		CourseProgress
		CourseID     uint    `json:"course_id"`
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		ThumbnailURL string  `json:"thumbnail_url"`
		Price        float64 `json:"price"`
		EnrolledAt   string  `json:"enrolled_at"`
	}

	result := make([]EnrolledCourse, 0, len(enrollments))
	for _, e := range enrollments {
		var crs courseModels.Course
		if err := ctl.DB.Where("id = ?", e.CourseID).First(&crs).Error; err != nil {
			continue
		}

		progress, err := courseProgress(ctl.DB, e.CourseID, userID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
		}

		result = append(result, EnrolledCourse{
			CourseProgress: progress,
			CourseID:       crs.ID,
			Title:          crs.Title,
			Description:    crs.Description,
			ThumbnailURL:   crs.ThumbnailURL,
			Price:          crs.Price,
			EnrolledAt:     e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"courses": result,
	})
}
