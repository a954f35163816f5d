package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"stagi/config"
	"stagi/database"
	"stagi/models"
	authRoutes "stagi/routers/authRoutes"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTest(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "3000",
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// In-memory SQLite lives per connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	return resp, parsed
}

func signupBody() map[string]interface{} {
	return map[string]interface{}{
		"name":     "Jamie Doe",
		"email":    "jamie@example.com",
		"mobile":   "5551234567",
		"password": "password123",
	}
}

func TestSignupCreatesCandidate(t *testing.T) {
	app := setupTest(t)

	resp, parsed := doRequest(t, app, "POST", "/auth/signup", signupBody())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := parsed["data"].(map[string]interface{})
	assert.Equal(t, models.RoleCandidate, data["Role"])
	assert.Empty(t, data["Password"])

	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "jamie@example.com").First(&user).Error)
	assert.Equal(t, models.RoleCandidate, user.Role)
	assert.NotEqual(t, "password123", user.Password)

	// Default candidate permissions get seeded
	var count int64
	database.Database.Db.Model(&models.Permission{}).Where("user_id = ? AND permission = ?", user.ID, "apply-internship").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := setupTest(t)

	resp, _ := doRequest(t, app, "POST", "/auth/signup", signupBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := signupBody()
	body["mobile"] = "5559876543"
	resp, parsed := doRequest(t, app, "POST", "/auth/signup", body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, parsed["message"], "already registered")
}

func TestSignupValidation(t *testing.T) {
	app := setupTest(t)

	resp, parsed := doRequest(t, app, "POST", "/auth/signup", map[string]interface{}{
		"name":     "J",
		"email":    "not-an-email",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	errors := parsed["data"].(map[string]interface{})
	assert.Contains(t, errors, "name")
	assert.Contains(t, errors, "email")
	assert.Contains(t, errors, "password")
}

func TestLoginWithEmail(t *testing.T) {
	app := setupTest(t)

	resp, _ := doRequest(t, app, "POST", "/auth/signup", signupBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, parsed := doRequest(t, app, "POST", "/auth/login", map[string]interface{}{
		"email":    "jamie@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := parsed["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestLoginWithMobile(t *testing.T) {
	app := setupTest(t)

	resp, _ := doRequest(t, app, "POST", "/auth/signup", signupBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, parsed := doRequest(t, app, "POST", "/auth/login", map[string]interface{}{
		"mobile":   "5551234567",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := parsed["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupTest(t)

	resp, _ := doRequest(t, app, "POST", "/auth/signup", signupBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, parsed := doRequest(t, app, "POST", "/auth/login", map[string]interface{}{
		"email":    "jamie@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, parsed["message"], "Invalid credentials")
}

func TestLoginUnknownUser(t *testing.T) {
	app := setupTest(t)

	resp, _ := doRequest(t, app, "POST", "/auth/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
