package middleware

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edura/models"
)

// Capabilities gating instructor-side operations. Handlers never branch on role
// strings directly; they declare the capability they need.
const (
	CapCourseCreate   = "course:create"
	CapCourseResource = "course:add-resource"
	CapModuleCreate   = "module:create"
	CapLessonCreate   = "lesson:create"
	CapQuizCreate     = "quiz:create"
	CapQuizGenerate   = "quiz:generate"
	CapStatsView      = "stats:view"
)

var instructorCapabilities = map[string]bool{
	CapCourseCreate:   true,
	CapCourseResource: true,
	CapModuleCreate:   true,
	CapLessonCreate:   true,
	CapQuizCreate:     true,
	CapQuizGenerate:   true,
	CapStatsView:      true,
}

var roleCapabilities = map[string]map[string]bool{
	models.RoleStudent:    {},
	models.RoleInstructor: instructorCapabilities,
	models.RoleAdmin:      instructorCapabilities, // admins hold every instructor capability
}

// HasCapability reports whether a role grants a capability
func HasCapability(role, capability string) bool {
	return roleCapabilities[role][capability]
}

// RequireCapability returns a middleware that loads the authenticated user and
// checks the required capability. The user record is stashed in the context so
// handlers don't fetch it again.
func RequireCapability(db *gorm.DB, capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		var user models.User
		if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}

		if !HasCapability(user.Role, capability) {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		c.Locals("currentUser", &user)
		return c.Next()
	}
}
