package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func healthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/health", NewHealthController(db).HealthCheck)
	return r
}

func TestHealthCheck_Memory(t *testing.T) {
	w := httptest.NewRecorder()
	healthRouter(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"memory"`)
}

func TestHealthCheck_Database(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "database up", wantStatus: http.StatusOK},
		{name: "database down", pingErr: assert.AnError, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer sqlDB.Close()

			db, err := gorm.Open(mysql.New(mysql.Config{
				Conn:                      sqlDB,
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				Logger:               logger.Default.LogMode(logger.Silent),
				DisableAutomaticPing: true,
			})
			require.NoError(t, err)

			mock.ExpectPing().WillReturnError(tt.pingErr)

			w := httptest.NewRecorder()
			healthRouter(db).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
