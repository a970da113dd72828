package courseValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"edura/middleware"
)

// SaveProgressRequest is the explicit schema for a progress save. Saves are
// upserts; the whole mark is replaced with these values.
type SaveProgressRequest struct {
	LastWatchedPosition int  `json:"last_watched_position"`
	IsCompleted         bool `json:"is_completed"`
}

// SaveProgress validates the lesson :id parameter and the mark payload
func SaveProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || lessonID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		reqData := new(SaveProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.LastWatchedPosition < 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"last_watched_position": "Playback position must not be negative!",
			})
		}

		c.Locals("lessonID", lessonID)
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
