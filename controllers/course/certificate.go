package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"edura/middleware"
	"edura/models"
	courseModels "edura/models/course"
)

// DownloadCertificate streams a completion certificate. Progress is rechecked
// against the aggregator at request time, never trusted from an earlier call.
func (ctl *Controller) DownloadCertificate(c *fiber.Ctx) error {
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

	progress, err := courseProgress(ctl.DB, uint(courseID), userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check progress!", nil)
	}

	if progress.ProgressPercentage < 100 {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course not completed yet!", nil)
	}

	studentName := user.FullName
	if studentName == "" {
		studentName = user.Email
	}

	image, err := ctl.Certificates.Render(studentName, crs.Title, uuid.NewString(), time.Now())
	if err != nil {
		log.Printf("Error rendering certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate certificate!", nil)
	}

	c.Set("Content-Type", "image/png")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=certificate-%d.png", courseID))
	return c.Send(image)
}
