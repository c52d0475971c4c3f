package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"skill_graph_backend/internal/config"
	"skill_graph_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", CurrentUserMiddleware(cfg), func(c *gin.Context) {
		id, ok := util.GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, strconv.FormatUint(uint64(id), 10))
	})
	return r
}

func TestCurrentUserMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "secret"}, Auth: config.AuthConfig{DefaultUserID: 1}}
	token, err := util.GenerateJWT(7, "secret", time.Hour)
	require.NoError(t, err)
	badToken, err := util.GenerateJWT(7, "other", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		cfg        *config.Config
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", cfg: cfg, header: "Bearer " + token, wantStatus: http.StatusOK, wantBody: "7"},
		{name: "default user", cfg: cfg, wantStatus: http.StatusOK, wantBody: "1"},
		{name: "bad signature", cfg: cfg, header: "Bearer " + badToken, wantStatus: http.StatusUnauthorized},
		{name: "no token and no default", cfg: &config.Config{}, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			newRouter(tt.cfg).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
