package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"

	"edura/middleware"
	"edura/models"
	courseModels "edura/models/course"
	courseValidator "edura/validators/course"
)

// CreateCourse creates a draft course owned by the authenticated instructor
func (ctl *Controller) CreateCourse(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)
	reqData := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)

	newCourse := courseModels.Course{
		Title:           reqData.Title,
		Description:     reqData.Description,
		Price:           reqData.Price,
		ThumbnailURL:    reqData.ThumbnailURL,
		PublishedStatus: courseModels.StatusDraft,
		InstructorID:    user.ID,
	}

	if err := ctl.DB.Create(&newCourse).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", newCourse)
}

// PublishCourse flips an owned course from draft to published
func (ctl *Controller) PublishCourse(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)
	courseID := c.Locals("courseID").(int)

	var crs courseModels.Course
	if err := ctl.DB.Where("id = ?", courseID).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !canManageCourse(user, &crs) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	crs.PublishedStatus = courseModels.StatusPublished
	if err := ctl.DB.Save(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", crs)
}

// AddCourseResource appends a resource link to an owned course
func (ctl *Controller) AddCourseResource(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)
	courseID := c.Locals("courseID").(int)
	reqData := c.Locals("validatedResource").(*courseValidator.AddResourceRequest)

	var crs courseModels.Course
	if err := ctl.DB.Where("id = ?", courseID).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !canManageCourse(user, &crs) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	if err := crs.AppendResource(courseModels.Resource{Title: reqData.Title, URL: reqData.URL}); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add resource!", nil)
	}

	if err := ctl.DB.Save(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource added successfully!", crs.ResourceList())
}

// InstructorSummary aggregates an instructor's catalog: course count, raw
// enrollment count (a student enrolled in two courses counts twice), revenue
// at each course's current price, and the current-month enrollment window.
type InstructorSummary struct {
	TotalCourses         int     `json:"totalCourses"`
	TotalStudents        int     `json:"totalStudents"`
	TotalRevenue         float64 `json:"totalRevenue"`
	EnrollmentsThisMonth int     `json:"enrollmentsThisMonth"`
}

// instructorStats recomputes the summary from the instructor's courses and
// their enrollments. Revenue is valued at the price each course carries now,
// not the price at enrollment time; no snapshots are kept.
func instructorStats(db *gorm.DB, instructorID uint) (InstructorSummary, error) {
	var courses []courseModels.Course
	if err := db.Where("instructor_id = ?", instructorID).Find(&courses).Error; err != nil {
		return InstructorSummary{}, err
	}

	summary := InstructorSummary{TotalCourses: len(courses)}
	if len(courses) == 0 {
		return summary, nil
	}

	priceByCourse := make(map[uint]float64, len(courses))
	courseIDs := make([]uint, len(courses))
	for i, crs := range courses {
		courseIDs[i] = crs.ID
		priceByCourse[crs.ID] = crs.Price
	}

	var enrollments []courseModels.Enrollment
	if err := db.Where("course_id IN ?", courseIDs).Find(&enrollments).Error; err != nil {
		return InstructorSummary{}, err
	}

	monthStart := now.BeginningOfMonth()
	for _, e := range enrollments {
		summary.TotalRevenue += priceByCourse[e.CourseID]
		if e.CreatedAt.After(monthStart) {
			summary.EnrollmentsThisMonth++
		}
	}
	summary.TotalStudents = len(enrollments)

	return summary, nil
}

// InstructorStats returns the authenticated instructor's catalog summary
func (ctl *Controller) InstructorStats(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)

	summary, err := instructorStats(ctl.DB, user.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", summary)
}
