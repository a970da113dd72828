package controllers

import (
	"gorm.io/gorm"

	"edura/config"
	"edura/models"
	courseModels "edura/models/course"
	"edura/utils"
)

// Controller handles the course catalog, enrollment, progress, quiz and
// certificate endpoints
type Controller struct {
	DB           *gorm.DB
	Cfg          *config.Config
	Certificates *utils.CertificateRenderer
}

func NewController(db *gorm.DB, cfg *config.Config, certs *utils.CertificateRenderer) *Controller {
	return &Controller{DB: db, Cfg: cfg, Certificates: certs}
}

// canManageCourse reports whether a user may mutate a course: its owning
// instructor, or an admin
func canManageCourse(user *models.User, course *courseModels.Course) bool {
	return user.Role == models.RoleAdmin || course.InstructorID == user.ID
}
