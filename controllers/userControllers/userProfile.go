package userController

import (
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edura/middleware"
	"edura/models"
	"edura/utils"
)

// Controller handles profile and media upload endpoints
type Controller struct {
	DB    *gorm.DB
	Media *utils.MediaService
}

func NewController(db *gorm.DB, media *utils.MediaService) *Controller {
	return &Controller{DB: db, Media: media}
}

// Me returns the authenticated user's own profile
func (ctl *Controller) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := ctl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"id":         user.ID,
		"email":      user.Email,
		"role":       user.Role,
		"full_name":  user.FullName,
		"avatar_url": user.AvatarURL,
	})
}

// UploadFile passes an uploaded file through to the media host and returns
// its public URL
func (ctl *Controller) UploadFile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := ctl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded!", nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read uploaded file!", nil)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read uploaded file!", nil)
	}

	url, err := ctl.Media.Upload(fileHeader.Filename, data)
	if err != nil {
		log.Printf("Error uploading to media host: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Upload failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded successfully!", fiber.Map{
		"url": url,
	})
}
