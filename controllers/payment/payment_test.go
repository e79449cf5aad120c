package paymentController_test

import (
	"bytes"
	"campus/config"
	paymentController "campus/controllers/payment"
	"campus/database"
	"campus/gateway"
	"campus/middleware"
	"campus/models"
	"campus/routers/paymentRoutes"
	"campus/services"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeGateway struct {
	status string
}

func (f *fakeGateway) CreateIntent(amountCents int64, currency string) (*gateway.Intent, error) {
	return &gateway.Intent{ID: "pi_new", ClientSecret: "pi_new_secret", Status: "requires_payment_method", Amount: amountCents}, nil
}

func (f *fakeGateway) VerifyIntent(id string) (*gateway.Intent, error) {
	return &gateway.Intent{ID: id, Status: f.status}, nil
}

func setupApp(t *testing.T, gw gateway.Client) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}

	paymentController.Gateway = gw
	paymentController.Svc = services.NewSettlement(db, gw)

	app := fiber.New()
	paymentRoutes.SetupPaymentRoutes(app)
	return app, db
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

func studentToken(t *testing.T, email string) string {
	t.Helper()
	tok, err := middleware.GenerateJWT(1, "Student", models.RoleStudent, email)
	require.NoError(t, err)
	return tok
}

func TestCreatePaymentIntent(t *testing.T) {
	app, _ := setupApp(t, &fakeGateway{status: "succeeded"})
	tok := studentToken(t, "student@example.com")

	code, body := doJSON(t, app, http.MethodPost, "/create-payment-intent", tok, fiber.Map{"price": 49.99})
	require.Equal(t, http.StatusOK, code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "pi_new_secret", data["clientSecret"])

	// Zero price never reaches the gateway
	code, body = doJSON(t, app, http.MethodPost, "/create-payment-intent", tok, fiber.Map{"price": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "validation", body["kind"])
}

func TestPaymentInfoSettles(t *testing.T) {
	app, db := setupApp(t, &fakeGateway{status: "succeeded"})
	tok := studentToken(t, "student@example.com")

	cl := models.Class{Name: "Chess", InstructorEmail: "t@example.com", Status: models.ClassApproved, AvailableSeats: 3}
	require.NoError(t, db.Create(&cl).Error)
	require.NoError(t, db.Create(&models.CartItem{UserEmail: "student@example.com", ClassID: cl.ID}).Error)

	code, body := doJSON(t, app, http.MethodPost, "/payment-info", tok, fiber.Map{
		"class_ids":      []uint{cl.ID},
		"transaction_id": "pi_ok",
		"amount":         49.99,
	})
	require.Equal(t, http.StatusCreated, code)

	data := body["data"].(map[string]interface{})
	payment := data["payment"].(map[string]interface{})
	assert.Equal(t, "pi_ok", payment["transaction_id"])

	var seats models.Class
	require.NoError(t, db.First(&seats, cl.ID).Error)
	assert.Equal(t, 2, seats.AvailableSeats)

	// History reflects the settlement
	code, body = doJSON(t, app, http.MethodGet, "/payment-history/student@example.com", tok, nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body["data"], 1)

	code, body = doJSON(t, app, http.MethodGet, "/payment-history-length/student@example.com", tok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["data"].(map[string]interface{})["total"])
}

func TestPaymentInfoUnconfirmedIntent(t *testing.T) {
	app, db := setupApp(t, &fakeGateway{status: "requires_payment_method"})
	tok := studentToken(t, "student@example.com")

	cl := models.Class{Name: "Chess", InstructorEmail: "t@example.com", Status: models.ClassApproved, AvailableSeats: 3}
	require.NoError(t, db.Create(&cl).Error)

	code, body := doJSON(t, app, http.MethodPost, "/payment-info", tok, fiber.Map{
		"class_ids":      []uint{cl.ID},
		"transaction_id": "pi_unpaid",
		"amount":         49.99,
	})
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, "gateway", body["kind"])

	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.Zero(t, count)
}

func TestPaymentHistoryOrder(t *testing.T) {
	app, db := setupApp(t, &fakeGateway{status: "succeeded"})
	tok := studentToken(t, "student@example.com")

	older := models.Payment{UserEmail: "student@example.com", TransactionID: "pi_old", Amount: 10, Date: time.Now().Add(-time.Hour)}
	newer := models.Payment{UserEmail: "student@example.com", TransactionID: "pi_new", Amount: 20, Date: time.Now()}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	code, body := doJSON(t, app, http.MethodGet, "/payment-history/student@example.com", tok, nil)
	require.Equal(t, http.StatusOK, code)

	payments := body["data"].([]interface{})
	require.Len(t, payments, 2)
	assert.Equal(t, "pi_new", payments[0].(map[string]interface{})["transaction_id"])
	assert.Equal(t, "pi_old", payments[1].(map[string]interface{})["transaction_id"])
}
