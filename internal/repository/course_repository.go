package repository

import (
	"context"
	"fmt"
	"skill_graph_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

type courseRow struct {
	ID          uint
	Title       string
	Description string
	Category    string
	Progress    *float64
}

// ListCourses 返回完整课程目录，并带上该用户报名记录中的进度
func (r *CourseRepository) ListCourses(ctx context.Context, userID uint) ([]model.Course, error) {
	var rows []courseRow
	err := r.DB.WithContext(ctx).
		Table("courses").
		Select("courses.id, courses.title, courses.description, courses.category, enrollments.progress").
		Joins("LEFT JOIN enrollments ON enrollments.course_id = courses.id AND enrollments.user_id = ? AND enrollments.deleted_at IS NULL", userID).
		Where("courses.deleted_at IS NULL").
		Order("courses.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	courses := make([]model.Course, len(rows))
	for i, row := range rows {
		courses[i] = model.Course{
			BaseModel:   model.BaseModel{ID: row.ID},
			Title:       row.Title,
			Description: row.Description,
			Category:    row.Category,
			Progress:    row.Progress,
		}
	}
	return courses, nil
}
