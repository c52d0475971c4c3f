package repository

import "skill_graph_backend/internal/model"

func progress(v float64) *float64 {
	return &v
}

// MockCourses 内置课程目录，在接入真实数据源之前使用
func MockCourses() []model.Course {
	return []model.Course{
		{BaseModel: model.BaseModel{ID: 1}, Title: "UX Research Fundamentals", Category: "Research", Progress: progress(75)},
		{BaseModel: model.BaseModel{ID: 2}, Title: "Interaction Design Patterns", Category: "Interaction Design", Progress: progress(40)},
		{BaseModel: model.BaseModel{ID: 3}, Title: "Visual Design Principles", Category: "Visual Design", Progress: progress(10)},
		{BaseModel: model.BaseModel{ID: 4}, Title: "Design Systems in Practice", Category: "Visual Design", Progress: progress(60)},
		{BaseModel: model.BaseModel{ID: 5}, Title: "Leading Design Teams", Category: "Leadership"},
		{BaseModel: model.BaseModel{ID: 6}, Title: "Content Strategy Essentials", Category: "Content Strategy", Progress: progress(0)},
	}
}

// MockUsers 内置用户，ID 1 为默认的 currentUser
func MockUsers() []model.User {
	return []model.User{
		{
			BaseModel:       model.BaseModel{ID: 1},
			Name:            "Alex Morgan",
			Email:           "alex@example.com",
			Points:          1250,
			CoursesEnrolled: []uint{1, 2, 4},
			CompletedLevels: []uint{1, 2, 3, 5, 8},
		},
		{
			BaseModel: model.BaseModel{ID: 2},
			Name:      "Sam Lee",
			Email:     "sam@example.com",
		},
	}
}
