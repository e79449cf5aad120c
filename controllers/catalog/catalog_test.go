package catalogController_test

import (
	"bytes"
	"campus/config"
	"campus/database"
	"campus/middleware"
	"campus/models"
	"campus/routers/classRoutes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	classRoutes.SetupClassRoutes(app)
	return app, db
}

func token(t *testing.T, role, email string) string {
	t.Helper()
	tok, err := middleware.GenerateJWT(1, "Test User", role, email)
	require.NoError(t, err)
	return tok
}

func doJSON(t *testing.T, app *fiber.App, method, path, tok string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func TestClassReviewRoundTrip(t *testing.T) {
	app, db := setupApp(t)
	admin := token(t, models.RoleAdmin, "admin@example.com")
	instructor := token(t, models.RoleInstructor, "teacher@example.com")

	// Submit a listing; it starts pending
	code, body := doJSON(t, app, http.MethodPost, "/new-class", instructor, fiber.Map{
		"name":             "Watercolor Basics",
		"instructor_name":  "Teacher",
		"instructor_email": "teacher@example.com",
		"price":            30.0,
		"available_seats":  15,
	})
	require.Equal(t, http.StatusCreated, code)
	created := body["data"].(map[string]interface{})
	assert.Equal(t, "pending", created["status"])
	classID := uint(created["ID"].(float64))

	// Not in the storefront yet
	code, body = doJSON(t, app, http.MethodGet, "/approved-classes", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["data"])

	// Approve it
	code, _ = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/change-status/%d", classID), admin, fiber.Map{
		"status": "approved",
	})
	require.Equal(t, http.StatusOK, code)

	code, body = doJSON(t, app, http.MethodGet, "/approved-classes", "", nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body["data"], 1)

	// Denying removes it from the storefront and records the reason
	code, _ = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/change-status/%d", classID), admin, fiber.Map{
		"status": "denied",
		"reason": "duplicate listing",
	})
	require.Equal(t, http.StatusOK, code)

	code, body = doJSON(t, app, http.MethodGet, "/approved-classes", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["data"])

	var stored models.Class
	require.NoError(t, db.First(&stored, classID).Error)
	assert.Equal(t, "denied", stored.Status)
	assert.Equal(t, "duplicate listing", stored.Reason)
}

func TestChangeStatusRejectsInvalidTransition(t *testing.T) {
	app, db := setupApp(t)
	admin := token(t, models.RoleAdmin, "admin@example.com")

	cl := models.Class{Name: "Approved", InstructorEmail: "t@example.com", Status: models.ClassApproved}
	require.NoError(t, db.Create(&cl).Error)

	// approved -> approved is not a transition
	code, body := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/change-status/%d", cl.ID), admin, fiber.Map{
		"status": "approved",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "validation", body["kind"])
}

func TestChangeStatusRequiresAdmin(t *testing.T) {
	app, db := setupApp(t)
	student := token(t, models.RoleStudent, "kid@example.com")

	cl := models.Class{Name: "Pending", InstructorEmail: "t@example.com", Status: models.ClassPending}
	require.NoError(t, db.Create(&cl).Error)

	code, body := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/change-status/%d", cl.ID), student, fiber.Map{
		"status": "approved",
	})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "forbidden", body["kind"])
}

func TestUpdateClassValidatesNumbers(t *testing.T) {
	app, db := setupApp(t)
	instructor := token(t, models.RoleInstructor, "teacher@example.com")

	cl := models.Class{Name: "Pottery", InstructorEmail: "teacher@example.com", Status: models.ClassPending, Price: 10, AvailableSeats: 5}
	require.NoError(t, db.Create(&cl).Error)

	// Non-numeric price fails the parse
	code, body := doJSON(t, app, http.MethodPut, fmt.Sprintf("/update-class/%d", cl.ID), instructor, fiber.Map{
		"name":            "Pottery",
		"price":           "not-a-number",
		"available_seats": 5,
		"total_enrolled":  0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "validation", body["kind"])

	// Negative seats fail validation
	code, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/update-class/%d", cl.ID), instructor, fiber.Map{
		"name":            "Pottery",
		"price":           12.5,
		"available_seats": -1,
		"total_enrolled":  0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	// A valid replace goes through
	code, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/update-class/%d", cl.ID), instructor, fiber.Map{
		"name":            "Pottery II",
		"price":           12.5,
		"available_seats": 8,
		"total_enrolled":  0,
	})
	require.Equal(t, http.StatusOK, code)

	var stored models.Class
	require.NoError(t, db.First(&stored, cl.ID).Error)
	assert.Equal(t, "Pottery II", stored.Name)
	assert.Equal(t, 12.5, stored.Price)
	assert.Equal(t, 8, stored.AvailableSeats)
}

func TestGetClassNotFound(t *testing.T) {
	app, _ := setupApp(t)

	code, body := doJSON(t, app, http.MethodGet, "/class/4242", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", body["kind"])
}
