package service

import "skill_graph_backend/internal/model"

// ProgressSummary 已报名课程及其派生统计
type ProgressSummary struct {
	EnrolledCourses []model.Course
	MeanProgress    float64
	ChartPoints     []model.ChartPoint
}

// AggregateProgress 按报名 ID 过滤课程，保持目录顺序（重复项原样保留），
// 计算平均进度（未定义按 0 计，无课程时为 0），并生成柱状图数据点。
func AggregateProgress(courses []model.Course, enrolledIDs []uint) ProgressSummary {
	enrolled := make(map[uint]struct{}, len(enrolledIDs))
	for _, id := range enrolledIDs {
		enrolled[id] = struct{}{}
	}

	summary := ProgressSummary{
		EnrolledCourses: []model.Course{},
		ChartPoints:     []model.ChartPoint{},
	}

	var total float64
	for _, course := range courses {
		if _, ok := enrolled[course.ID]; !ok {
			continue
		}
		summary.EnrolledCourses = append(summary.EnrolledCourses, course)
		summary.ChartPoints = append(summary.ChartPoints, model.ChartPoint{
			Name:     course.Title,
			Progress: course.Progress,
		})
		total += course.ProgressOrZero()
	}

	if n := len(summary.EnrolledCourses); n > 0 {
		summary.MeanProgress = total / float64(n)
	}

	return summary
}
