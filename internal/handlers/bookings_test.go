package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/railbook/railbook-backend/internal/handlers"
	"github.com/railbook/railbook-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupHandlerTest wires the booking read routes over a test database with a
// stub auth middleware. Skipped when TEST_DATABASE_URL is unset.
func setupHandlerTest(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database-backed tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Train{}, &models.Booking{}))
	require.NoError(t, db.Exec("TRUNCATE bookings, trains, users RESTART IDENTITY CASCADE").Error)

	user := &models.User{Username: "tester", Email: "tester@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", uint(1))
	})
	r.GET("/bookings/:id", handlers.GetBookingStatus(db))
	r.POST("/bookings/:id/pay", handlers.PayBooking(db))

	return r
}

func TestGetBookingStatusRejectsMalformedID(t *testing.T) {
	r := setupHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/not-a-number", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Booking not found")
}

func TestPayBookingRejectsMalformedID(t *testing.T) {
	r := setupHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/99xyz/pay", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Booking not found")
}
