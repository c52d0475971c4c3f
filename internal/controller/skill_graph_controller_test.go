package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skill_graph_backend/internal/config"
	"skill_graph_backend/internal/model"
	"skill_graph_backend/internal/repository"
	"skill_graph_backend/internal/service"
	"skill_graph_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenCourses struct{}

func (brokenCourses) ListCourses(ctx context.Context, userID uint) ([]model.Course, error) {
	return nil, assert.AnError
}

func setupRouter(svc *service.SkillGraphService, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewSkillGraphController(svc)

	api := r.Group("/api")
	api.Use(func(c *gin.Context) {
		if userID != 0 {
			c.Set(util.ContextUserIDKey, userID)
		}
		c.Next()
	})
	api.GET("/skill-graph", ctrl.GetSkillGraph)
	api.GET("/skill-graph/progress", ctrl.GetCourseProgress)
	api.GET("/skill-graph/radar", ctrl.GetSkillRadar)
	return r
}

func mockService() *service.SkillGraphService {
	repo := repository.NewMockRepository()
	return service.NewSkillGraphService(repo, repo, nil, config.SkillGraphConfig{})
}

type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func get[T any](t *testing.T, r *gin.Engine, path string) (int, envelope[T]) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var body envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestGetSkillGraph(t *testing.T) {
	r := setupRouter(mockService(), 1)

	code, body := get[model.SkillGraph](t, r, "/api/skill-graph")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", body.Message)

	graph := body.Data
	assert.Len(t, graph.EnrolledCourses, 3)
	assert.InDelta(t, (75.0+40.0+60.0)/3, graph.OverallProgress, 1e-9)
	assert.Equal(t, "58%", graph.Stats[3].Value)
	assert.Equal(t, "1250", graph.Stats[2].Value)
	assert.Len(t, graph.CourseProgress.Points, 3)
	assert.Nil(t, graph.EmptyState)
}

func TestGetSkillGraph_EmptyEnrollment(t *testing.T) {
	r := setupRouter(mockService(), 2)

	code, body := get[model.SkillGraph](t, r, "/api/skill-graph")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0.0, body.Data.OverallProgress)
	assert.Empty(t, body.Data.CourseProgress.Points)
	assert.Equal(t, service.NoCourseDataMessage, body.Data.CourseProgress.EmptyMessage)
	require.NotNil(t, body.Data.EmptyState)
}

func TestGetSkillGraph_Errors(t *testing.T) {
	code, _ := get[any](t, setupRouter(mockService(), 0), "/api/skill-graph")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = get[any](t, setupRouter(mockService(), 404), "/api/skill-graph")
	assert.Equal(t, http.StatusNotFound, code)

	repo := repository.NewMockRepository()
	broken := service.NewSkillGraphService(brokenCourses{}, repo, nil, config.SkillGraphConfig{})
	code, body := get[any](t, setupRouter(broken, 1), "/api/skill-graph")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body.Message)
}

func TestGetCourseProgress(t *testing.T) {
	r := setupRouter(mockService(), 1)

	code, body := get[model.ProgressChart](t, r, "/api/skill-graph/progress")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data.Points, 3)
	assert.Equal(t, "UX Research Fundamentals", body.Data.Points[0].Name)
	require.NotNil(t, body.Data.Points[0].Progress)
	assert.Equal(t, 75.0, *body.Data.Points[0].Progress)
	assert.Equal(t, "hsl(258, 74%, 65%)", body.Data.Fills[2])
}

func TestGetSkillRadar(t *testing.T) {
	r := setupRouter(mockService(), 0)

	code, body := get[model.RadarChart](t, r, "/api/skill-graph/radar")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 45, body.Data.DesignScore)
	assert.Len(t, body.Data.Points, 6)
}
