package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edura/middleware"
	"edura/models"
	courseModels "edura/models/course"
	courseValidator "edura/validators/course"
)

// GetAllCourses lists published courses for the public catalog, with optional
// text search and price-range filters
func (ctl *Controller) GetAllCourses(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourseList").(*courseValidator.CourseListRequest)

	db := ctl.DB.Model(&courseModels.Course{}).Where("published_status = ?", courseModels.StatusPublished)

	if reqData.Search != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+reqData.Search+"%")
	}
	if reqData.MinPrice != nil {
		db = db.Where("price >= ?", *reqData.MinPrice)
	}
	if reqData.MaxPrice != nil {
		db = db.Where("price <= ?", *reqData.MaxPrice)
	}

	var courses []courseModels.Course
	if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type CourseSummary struct {
		ID           uint    `json:"id"`
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		Price        float64 `json:"price"`
		ThumbnailURL string  `json:"thumbnail_url"`
	}

	result := make([]CourseSummary, len(courses))
	for i, crs := range courses {
		result[i] = CourseSummary{
			ID:           crs.ID,
			Title:        crs.Title,
			Description:  crs.Description,
			Price:        crs.Price,
			ThumbnailURL: crs.ThumbnailURL,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

// lessonView is the lesson payload with the access policy applied: metadata is
// always present, the playable source only when the verdict allows it
type lessonView struct {
	ID            uint    `json:"id"`
	ModuleID      uint    `json:"module_id"`
	Title         string  `json:"title"`
	VideoURL      *string `json:"video_url"`
	Duration      int     `json:"duration"`
	IsFreePreview bool    `json:"is_free_preview"`
	OrderIndex    int     `json:"order_index"`
	Locked        bool    `json:"locked"`
}

func newLessonView(lesson courseModels.Lesson, access LessonAccess) lessonView {
	view := lessonView{
		ID:            lesson.ID,
		ModuleID:      lesson.ModuleID,
		Title:         lesson.Title,
		Duration:      lesson.Duration,
		IsFreePreview: lesson.IsFreePreview,
		OrderIndex:    lesson.OrderIndex,
	}
	if access.Playable {
		url := lesson.VideoURL
		view.VideoURL = &url
	} else {
		view.Locked = true
	}
	return view
}

// courseCurriculum reads a course's modules and their lessons, each in
// order_index order. A store failure is reported, never folded into an empty
// curriculum.
func courseCurriculum(db *gorm.DB, courseID uint) ([]courseModels.Module, []courseModels.Lesson, error) {
	var modules []courseModels.Module
	if err := db.Where("course_id = ?", courseID).Order("order_index asc").Find(&modules).Error; err != nil {
		return nil, nil, err
	}

	moduleIDs := make([]uint, len(modules))
	for i, mod := range modules {
		moduleIDs[i] = mod.ID
	}

	var lessons []courseModels.Lesson
	if len(moduleIDs) > 0 {
		if err := db.Where("module_id IN ?", moduleIDs).Order("order_index asc").Find(&lessons).Error; err != nil {
			return nil, nil, err
		}
	}

	return modules, lessons, nil
}

// GetCourseDetails returns a course with its modules and lessons. Locked
// lessons keep their metadata but lose the playable source. Draft courses are
// visible only to their owner or an admin.
func (ctl *Controller) GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := ctl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var crs courseModels.Course
	if err := ctl.DB.Where("id = ?", courseID).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	isOwner := crs.InstructorID == user.ID
	isAdmin := user.Role == models.RoleAdmin

	if crs.PublishedStatus != courseModels.StatusPublished && !isOwner && !isAdmin {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	modules, lessons, err := courseCurriculum(ctl.DB, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	// Check if user is enrolled
	var enrollment courseModels.Enrollment
	isEnrolled := ctl.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error == nil

	progressPercentage := 0
	if isEnrolled {
		progress, err := courseProgress(ctl.DB, uint(courseID), userID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
		}
		progressPercentage = progress.ProgressPercentage
	}

	type ModuleWithLessons struct {
		courseModels.Module
		Lessons []lessonView `json:"lessons"`
	}

	result := make([]ModuleWithLessons, len(modules))
	for i, mod := range modules {
		views := make([]lessonView, 0)
		for _, lesson := range lessons {
			if lesson.ModuleID != mod.ID {
				continue
			}
			access := CanViewLesson(&lesson, user.Role, isOwner, isEnrolled)
			views = append(views, newLessonView(lesson, access))
		}
		result[i] = ModuleWithLessons{Module: mod, Lessons: views}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":       crs,
		"resources":    crs.ResourceList(),
		"modules":      result,
		"enrolled":     isEnrolled,
		"isInstructor": isOwner,
		"progress":     progressPercentage,
	})
}
