package controller

import (
	"errors"
	"skill_graph_backend/internal/service"
	"skill_graph_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SkillGraphController struct {
	SkillGraphService *service.SkillGraphService
}

func NewSkillGraphController(skillGraphService *service.SkillGraphService) *SkillGraphController {
	return &SkillGraphController{SkillGraphService: skillGraphService}
}

// @Summary 获取技能图谱
// @Description 获取当前用户的技能图谱页面数据：统计卡片、技能雷达图、课程进度图
// @Tags 技能图谱
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.SkillGraph}
// @Failure 401 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /skill-graph [get]
func (c *SkillGraphController) GetSkillGraph(ctx *gin.Context) {
	userID, ok := util.GetUserIDFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	graph, err := c.SkillGraphService.GetSkillGraph(ctx.Request.Context(), userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, graph)
}

// @Summary 获取课程进度图
// @Description 获取当前用户已报名课程的进度柱状图数据
// @Tags 技能图谱
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.ProgressChart}
// @Failure 401 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /skill-graph/progress [get]
func (c *SkillGraphController) GetCourseProgress(ctx *gin.Context) {
	userID, ok := util.GetUserIDFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	chart, err := c.SkillGraphService.GetCourseProgress(ctx.Request.Context(), userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, chart)
}

// @Summary 获取技能雷达图
// @Description 获取技能雷达图的分类得分与设计得分
// @Tags 技能图谱
// @Produce json
// @Success 200 {object} util.Response{data=model.RadarChart}
// @Router /skill-graph/radar [get]
func (c *SkillGraphController) GetSkillRadar(ctx *gin.Context) {
	util.Success(ctx, c.SkillGraphService.GetSkillRadar())
}

func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
