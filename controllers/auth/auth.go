package authController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"edura/config"
	"edura/middleware"
	"edura/models"
	"edura/utils"
	authValidator "edura/validators/auth"
)

// Controller handles registration and the access/refresh credential lifecycle
type Controller struct {
	DB    *gorm.DB
	Cfg   *config.Config
	Email *utils.EmailService
}

func NewController(db *gorm.DB, cfg *config.Config, email *utils.EmailService) *Controller {
	return &Controller{DB: db, Cfg: cfg, Email: email}
}

func (ctl *Controller) Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRegister").(*authValidator.RegisterRequest)

	// Check if email already exists
	if err := ctl.DB.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), ctl.Cfg.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	role := reqData.Role
	if role == "" {
		role = models.RoleStudent
	}

	newUser := models.User{
		Email:        reqData.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		FullName:     reqData.FullName,
	}

	if err := ctl.DB.Create(&newUser).Error; err != nil {
		// Pre-check lost a race: the unique index on email settles it
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	access, refresh, err := ctl.issueTokens(&newUser)
	if err != nil {
		log.Printf("Error issuing tokens: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	go func(name, email string) {
		if err := ctl.Email.SendWelcomeEmail(name, email); err != nil {
			log.Printf("Error sending welcome email to %s: %v", email, err)
		}
	}(newUser.FullName, newUser.Email)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"accessToken":  access,
		"refreshToken": refresh,
		"user":         userPayload(&newUser),
	})
}

func (ctl *Controller) Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.LoginRequest)

	var user models.User
	if err := ctl.DB.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	access, refresh, err := ctl.issueTokens(&user)
	if err != nil {
		log.Printf("Error issuing tokens: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully.", fiber.Map{
		"accessToken":  access,
		"refreshToken": refresh,
		"user":         userPayload(&user),
	})
}

// Refresh exchanges a stored refresh credential for a new access token. A token
// absent from the account's list is treated as revoked or reused and rejected.
func (ctl *Controller) Refresh(c *fiber.Ctx) error {
	reqData := c.Locals("validatedToken").(*authValidator.TokenRequest)

	userID, err := middleware.ParseRefreshToken(ctl.Cfg, reqData.RefreshToken)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid refresh token!", nil)
	}

	var user models.User
	if err := ctl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid refresh token!", nil)
	}

	if !user.HasRefreshToken(reqData.RefreshToken) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Token reused or invalid!", nil)
	}

	access, err := middleware.GenerateAccessToken(ctl.Cfg, &user)
	if err != nil {
		log.Printf("Error issuing access token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refresh token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token refreshed.", fiber.Map{
		"accessToken": access,
	})
}

// Logout always reports success so clients can clear state unconditionally,
// even when the credential was already invalid.
func (ctl *Controller) Logout(c *fiber.Ctx) error {
	reqData := c.Locals("validatedToken").(*authValidator.TokenRequest)

	if reqData.RefreshToken != "" {
		if userID, err := middleware.ParseRefreshToken(ctl.Cfg, reqData.RefreshToken); err == nil {
			var user models.User
			if err := ctl.DB.Where("id = ?", userID).First(&user).Error; err == nil {
				user.RemoveRefreshToken(reqData.RefreshToken)
				if err := ctl.DB.Save(&user).Error; err != nil {
					log.Printf("Error revoking refresh token: %v", err)
				}
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}

func (ctl *Controller) issueTokens(user *models.User) (string, string, error) {
	access, err := middleware.GenerateAccessToken(ctl.Cfg, user)
	if err != nil {
		return "", "", err
	}

	refresh, err := middleware.GenerateRefreshToken(ctl.Cfg, user)
	if err != nil {
		return "", "", err
	}

	user.AppendRefreshToken(refresh)
	if err := ctl.DB.Save(user).Error; err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func userPayload(user *models.User) fiber.Map {
	return fiber.Map{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	}
}
