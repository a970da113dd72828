package courseValidator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"edura/middleware"
)

var validate = validator.New()

// CourseListRequest filters the public catalog
type CourseListRequest struct {
	Search   string   `query:"search"`
	MinPrice *float64 `query:"minPrice"`
	MaxPrice *float64 `query:"maxPrice"`
}

// CreateCourseRequest is the explicit schema for course creation
type CreateCourseRequest struct {
	Title        string  `json:"title" validate:"required,min=3"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"gte=0"`
	ThumbnailURL string  `json:"thumbnail_url"`
}

// AddResourceRequest appends one resource link to a course
type AddResourceRequest struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

// CreateModuleRequest is the explicit schema for module creation
type CreateModuleRequest struct {
	CourseID   uint   `json:"course_id" validate:"required"`
	Title      string `json:"title" validate:"required"`
	OrderIndex int    `json:"order_index"`
}

// CreateLessonRequest is the explicit schema for lesson creation
type CreateLessonRequest struct {
	ModuleID      uint   `json:"module_id" validate:"required"`
	Title         string `json:"title" validate:"required"`
	VideoURL      string `json:"video_url"`
	Duration      int    `json:"duration" validate:"gte=0"`
	IsFreePreview bool   `json:"is_free_preview"`
	OrderIndex    int    `json:"order_index"`
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseListRequest)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		// Validate price range
		if reqData.MinPrice != nil && *reqData.MinPrice < 0 {
			errors["minPrice"] = "minPrice must not be negative!"
		}
		if reqData.MaxPrice != nil && *reqData.MaxPrice < 0 {
			errors["maxPrice"] = "maxPrice must not be negative!"
		}
		if reqData.MinPrice != nil && reqData.MaxPrice != nil && *reqData.MinPrice > *reqData.MaxPrice {
			errors["maxPrice"] = "maxPrice must not be below minPrice!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Search = strings.ToLower(strings.TrimSpace(reqData.Search))

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Title":
					errors["title"] = "Title must be at least 3 characters long!"
				case "Price":
					errors["price"] = "Price must not be negative!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// AddResource validates the :id parameter and the resource payload
func AddResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(AddResourceRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Title":
					errors["title"] = "Resource title is required!"
				case "URL":
					errors["url"] = "A valid resource URL is required!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}

func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateModuleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "CourseID":
					errors["course_id"] = "Course ID is required!"
				case "Title":
					errors["title"] = "Title is required!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "ModuleID":
					errors["module_id"] = "Module ID is required!"
				case "Title":
					errors["title"] = "Title is required!"
				case "Duration":
					errors["duration"] = "Duration must not be negative!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}
