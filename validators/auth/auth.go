package authValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"edura/middleware"
)

var validate = validator.New()

// RegisterRequest is the explicit schema for account registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=student instructor"`
	FullName string `json:"full_name"`
}

// LoginRequest is the explicit schema for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenRequest carries a refresh credential
type TokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Email uniqueness is case-insensitive; normalize before validation
		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))
		reqData.FullName = strings.TrimSpace(reqData.FullName)

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Email":
					errors["email"] = "A valid email is required!"
				case "Password":
					errors["password"] = "Password must be at least 6 characters long!"
				case "Role":
					errors["role"] = "Role must be student or instructor!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Email":
					errors["email"] = "A valid email is required!"
				case "Password":
					errors["password"] = "Password is required!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

func Refresh() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TokenRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.RefreshToken) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"refreshToken": "Refresh token is required!",
			})
		}

		c.Locals("validatedToken", reqData)
		return c.Next()
	}
}

// Logout tolerates a missing or malformed body; logout is idempotent
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TokenRequest)
		_ = c.BodyParser(reqData)

		c.Locals("validatedToken", reqData)
		return c.Next()
	}
}
