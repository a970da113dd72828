package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edura/middleware"
	"edura/models"
	courseModels "edura/models/course"
)

var errAlreadyEnrolled = errors.New("already enrolled")

// createEnrollment writes the grant record for a (user, course) pair. The
// pre-check covers the common duplicate case; the unique index settles the
// concurrent one, so exactly one of two racing inserts wins.
func createEnrollment(db *gorm.DB, userID, courseID uint) (courseModels.Enrollment, error) {
	var existing courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return courseModels.Enrollment{}, errAlreadyEnrolled
	}

	// No payment processing; the transaction reference is a placeholder
	enrollment := courseModels.Enrollment{
		UserID:        userID,
		CourseID:      courseID,
		TransactionID: "MOCK-" + uuid.NewString(),
	}

	if err := db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return courseModels.Enrollment{}, errAlreadyEnrolled
		}
		return courseModels.Enrollment{}, err
	}

	return enrollment, nil
}

// EnrollInCourse grants the authenticated user access to a published course
func (ctl *Controller) EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := ctl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check if course exists and is published
	var crs courseModels.Course
	if err := ctl.DB.Where("id = ? AND published_status = ?", courseID, courseModels.StatusPublished).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	enrollment, err := createEnrollment(ctl.DB, userID, uint(courseID))
	if err != nil {
		if errors.Is(err, errAlreadyEnrolled) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}
