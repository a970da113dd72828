package controllers

import (
	"github.com/gofiber/fiber/v2"

	"edura/middleware"
	"edura/models"
	courseModels "edura/models/course"
	courseValidator "edura/validators/course"
)

// CreateModule adds a module to an owned course. The course reference is
// checked at write time; storage has no foreign keys.
func (ctl *Controller) CreateModule(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)
	reqData := c.Locals("validatedModule").(*courseValidator.CreateModuleRequest)

	var crs courseModels.Course
	if err := ctl.DB.Where("id = ?", reqData.CourseID).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !canManageCourse(user, &crs) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	module := courseModels.Module{
		CourseID:   reqData.CourseID,
		Title:      reqData.Title,
		OrderIndex: reqData.OrderIndex,
	}

	if err := ctl.DB.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// CreateLesson adds a lesson to a module of an owned course
func (ctl *Controller) CreateLesson(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)
	reqData := c.Locals("validatedLesson").(*courseValidator.CreateLessonRequest)

	var module courseModels.Module
	if err := ctl.DB.Where("id = ?", reqData.ModuleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var crs courseModels.Course
	if err := ctl.DB.Where("id = ?", module.CourseID).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !canManageCourse(user, &crs) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	lesson := courseModels.Lesson{
		ModuleID:      reqData.ModuleID,
		Title:         reqData.Title,
		VideoURL:      reqData.VideoURL,
		Duration:      reqData.Duration,
		IsFreePreview: reqData.IsFreePreview,
		OrderIndex:    reqData.OrderIndex,
	}

	if err := ctl.DB.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}
