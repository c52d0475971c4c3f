package service

import (
	"context"
	"errors"
	"fmt"
	"skill_graph_backend/internal/config"
	"skill_graph_backend/internal/model"
	"skill_graph_backend/internal/util"
	"skill_graph_backend/pkg/logger"
	"skill_graph_backend/pkg/monitoring"
	"skill_graph_backend/pkg/tracing"
	"strconv"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type CourseSource interface {
	ListCourses(ctx context.Context, userID uint) ([]model.Course, error)
}

type UserSource interface {
	FindUser(ctx context.Context, userID uint) (*model.User, error)
}

// SkillGraphCache 可选缓存，Get 未命中时返回 util.ErrCacheMiss
type SkillGraphCache interface {
	Get(ctx context.Context, userID uint) (*model.SkillGraph, error)
	Set(ctx context.Context, userID uint, graph *model.SkillGraph) error
	Invalidate(ctx context.Context) error
}

const (
	TabRadar    = "radar"
	TabProgress = "progress"

	StatEnrolledCourses = "enrolled_courses"
	StatCompletedLevels = "completed_levels"
	StatTotalPoints     = "total_points"
	StatOverallProgress = "overall_progress"

	NoCourseDataMessage = "No course data available yet"
)

type SkillGraphService struct {
	CourseSource CourseSource
	UserSource   UserSource
	Cache        SkillGraphCache

	mu          sync.RWMutex
	radar       []model.SkillRadarPoint
	designScore int
}

func NewSkillGraphService(courses CourseSource, users UserSource, cache SkillGraphCache, cfg config.SkillGraphConfig) *SkillGraphService {
	s := &SkillGraphService{
		CourseSource: courses,
		UserSource:   users,
		Cache:        cache,
	}
	s.setRadar(cfg)
	return s
}

func (s *SkillGraphService) setRadar(cfg config.SkillGraphConfig) {
	subjects := cfg.Radar
	if len(subjects) == 0 {
		subjects = config.DefaultRadar()
	}

	radar := make([]model.SkillRadarPoint, len(subjects))
	for i, subject := range subjects {
		radar[i] = model.SkillRadarPoint{Subject: subject.Subject, Score: subject.Score, Max: subject.Max}
	}

	designScore := cfg.DesignScore
	if designScore == 0 {
		designScore = config.DefaultDesignScore
	}

	s.mu.Lock()
	s.radar = radar
	s.designScore = designScore
	s.mu.Unlock()
}

// UpdateSkillGraphConfig 配置热更新时替换雷达数据，并清空已缓存的图谱
func (s *SkillGraphService) UpdateSkillGraphConfig(cfg config.SkillGraphConfig) {
	s.setRadar(cfg)

	if s.Cache != nil {
		if err := s.Cache.Invalidate(context.Background()); err != nil {
			logger.Log.Warn("Failed to invalidate skill graph cache", zap.Error(err))
		}
	}
}

// GetSkillGraph 生成技能图谱页面的完整视图数据
func (s *SkillGraphService) GetSkillGraph(ctx context.Context, userID uint) (*model.SkillGraph, error) {
	ctx, span := tracing.Tracer.Start(ctx, "SkillGraphService.GetSkillGraph")
	defer span.End()
	span.SetAttributes(attribute.Int64("user.id", int64(userID)))

	if s.Cache != nil {
		graph, err := s.Cache.Get(ctx, userID)
		if err == nil {
			monitoring.SkillGraphRenders.WithLabelValues("cached").Inc()
			return graph, nil
		}
		if !errors.Is(err, util.ErrCacheMiss) {
			logger.Log.Warn("Skill graph cache read failed", zap.Uint("userID", userID), zap.Error(err))
		}
	}

	user, summary, err := s.loadSummary(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	graph := s.buildSkillGraph(user, summary)

	monitoring.SkillGraphRenders.WithLabelValues("computed").Inc()
	monitoring.MeanProgress.Observe(summary.MeanProgress)
	logger.Log.Debug("Skill graph computed",
		zap.Uint("userID", userID),
		zap.Int("enrolled", len(summary.EnrolledCourses)),
		zap.Float64("meanProgress", summary.MeanProgress),
	)

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, userID, graph); err != nil {
			logger.Log.Warn("Skill graph cache write failed", zap.Uint("userID", userID), zap.Error(err))
		}
	}

	return graph, nil
}

// GetCourseProgress 仅返回课程进度柱状图
func (s *SkillGraphService) GetCourseProgress(ctx context.Context, userID uint) (*model.ProgressChart, error) {
	ctx, span := tracing.Tracer.Start(ctx, "SkillGraphService.GetCourseProgress")
	defer span.End()

	_, summary, err := s.loadSummary(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	chart := progressChart(summary.ChartPoints)
	return &chart, nil
}

func (s *SkillGraphService) GetSkillRadar() *model.RadarChart {
	chart := s.radarChart()
	return &chart
}

func (s *SkillGraphService) loadSummary(ctx context.Context, userID uint) (*model.User, ProgressSummary, error) {
	user, err := s.UserSource.FindUser(ctx, userID)
	if err != nil {
		return nil, ProgressSummary{}, err
	}

	courses, err := s.CourseSource.ListCourses(ctx, user.ID)
	if err != nil {
		return nil, ProgressSummary{}, fmt.Errorf("load courses for user %d: %w", userID, err)
	}

	return user, AggregateProgress(courses, user.CoursesEnrolled), nil
}

func (s *SkillGraphService) buildSkillGraph(user *model.User, summary ProgressSummary) *model.SkillGraph {
	bar := util.ClampPercent(summary.MeanProgress)

	graph := &model.SkillGraph{
		Header: model.PageHeader{
			Title:    "Skill Graph",
			Subtitle: "Track your progress across different courses and skills.",
			Action:   model.Link{Label: "View Growth", Href: "#"},
		},
		Stats: []model.StatCard{
			{Key: StatEnrolledCourses, Title: "Enrolled Courses", Value: strconv.Itoa(len(summary.EnrolledCourses))},
			{Key: StatCompletedLevels, Title: "Completed Levels", Value: strconv.Itoa(len(user.CompletedLevels))},
			{Key: StatTotalPoints, Title: "Total Points", Value: strconv.Itoa(user.Points)},
			{Key: StatOverallProgress, Title: "Overall Progress", Value: util.FormatPercent(summary.MeanProgress), ProgressBar: &bar},
		},
		Tabs: []model.Tab{
			{Value: TabRadar, Label: "Skill Radar"},
			{Value: TabProgress, Label: "Course Progress"},
		},
		DefaultTab:      TabRadar,
		Radar:           s.radarChart(),
		CourseProgress:  progressChart(summary.ChartPoints),
		EnrolledCourses: summary.EnrolledCourses,
		OverallProgress: summary.MeanProgress,
	}

	if len(summary.EnrolledCourses) == 0 {
		graph.EmptyState = &model.EmptyState{
			Title:   "You haven't enrolled in any courses yet",
			Message: "Enroll in courses to track your progress",
		}
	}

	return graph
}

func (s *SkillGraphService) radarChart() model.RadarChart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.RadarChart{
		Title:       "Skill Graph",
		Description: "Your skills across different areas",
		DesignScore: s.designScore,
		Points:      append([]model.SkillRadarPoint(nil), s.radar...),
	}
}

func progressChart(points []model.ChartPoint) model.ProgressChart {
	chart := model.ProgressChart{
		Title:       "Course Progress",
		Description: "Visualizing your progress across different courses",
		YAxisLabel:  "Progress (%)",
		Points:      points,
		Fills:       make([]string, len(points)),
	}
	for i := range points {
		chart.Fills[i] = BarFill(i)
	}
	if len(points) == 0 {
		chart.EmptyMessage = NoCourseDataMessage
	}
	return chart
}

// BarFill 第 i 根柱子的颜色，亮度从 55% 起每根递增 5%
func BarFill(i int) string {
	return fmt.Sprintf("hsl(258, 74%%, %d%%)", 55+i*5)
}
