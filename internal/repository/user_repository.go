package repository

import (
	"context"
	"errors"
	"fmt"
	"skill_graph_backend/internal/model"
	"skill_graph_backend/internal/util"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// FindUser 加载用户及其报名课程 ID、已完成关卡 ID
func (r *UserRepository) FindUser(ctx context.Context, userID uint) (*model.User, error) {
	db := r.DB.WithContext(ctx)

	var user model.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", userID, err)
	}

	if err := db.Model(&model.Enrollment{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("course_id", &user.CoursesEnrolled).Error; err != nil {
		return nil, fmt.Errorf("load enrollments for user %d: %w", userID, err)
	}

	if err := db.Model(&model.CompletedLevel{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("level_id", &user.CompletedLevels).Error; err != nil {
		return nil, fmt.Errorf("load completed levels for user %d: %w", userID, err)
	}

	return &user, nil
}
