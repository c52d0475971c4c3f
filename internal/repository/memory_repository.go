package repository

import (
	"context"
	"skill_graph_backend/internal/model"
	"skill_graph_backend/internal/util"
)

// MemoryRepository 只读的内存数据源
type MemoryRepository struct {
	courses []model.Course
	users   map[uint]model.User
}

func NewMemoryRepository(courses []model.Course, users []model.User) *MemoryRepository {
	byID := make(map[uint]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return &MemoryRepository{courses: courses, users: byID}
}

func NewMockRepository() *MemoryRepository {
	return NewMemoryRepository(MockCourses(), MockUsers())
}

// ListCourses 返回课程目录副本；内存数据的进度不区分用户
func (r *MemoryRepository) ListCourses(ctx context.Context, userID uint) ([]model.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	courses := make([]model.Course, len(r.courses))
	copy(courses, r.courses)
	return courses, nil
}

func (r *MemoryRepository) FindUser(ctx context.Context, userID uint) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	user, ok := r.users[userID]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	user.CoursesEnrolled = append([]uint(nil), user.CoursesEnrolled...)
	user.CompletedLevels = append([]uint(nil), user.CompletedLevels...)
	return &user, nil
}
