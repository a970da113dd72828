package authController

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"edura/config"
	"edura/database"
	"edura/models"
	"edura/utils"
	authValidator "edura/validators/auth"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestController(t *testing.T) (*Controller, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    30 * 24 * time.Hour,
		SaltRound:     bcrypt.MinCost,
	}

	return NewController(db, cfg, utils.NewEmailService(cfg)), db
}

func TestUserEmailUniqueIndexArbitratesRace(t *testing.T) {
	db := newTestDB(t)

	// Insert directly, bypassing the handler's pre-check, the way the losing
	// side of two concurrent registrations would.
	first := models.User{Email: "jane@example.com", PasswordHash: "x", Role: models.RoleStudent}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	second := models.User{Email: "jane@example.com", PasswordHash: "y", Role: models.RoleStudent}
	err := db.Create(&second).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate insert returned %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	ctl, db := newTestController(t)

	app := fiber.New()
	app.Post("/auth/register", authValidator.Register(), ctl.Register)

	body := `{"email":"jane@example.com","password":"secret1","full_name":"Jane"}`

	register := func() int {
		req := httptest.NewRequest(fiber.MethodPost, "/auth/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		return resp.StatusCode
	}

	if code := register(); code != fiber.StatusCreated {
		t.Fatalf("first register returned %d, want %d", code, fiber.StatusCreated)
	}
	if code := register(); code != fiber.StatusConflict {
		t.Errorf("duplicate register returned %d, want %d", code, fiber.StatusConflict)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "jane@example.com").Count(&count).Error; err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("found %d accounts for the email, want 1", count)
	}
}
