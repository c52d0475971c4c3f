package repository

import (
	"context"
	"testing"

	"skill_graph_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_ListCourses(t *testing.T) {
	repo := NewMockRepository()

	courses, err := repo.ListCourses(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, courses, len(MockCourses()))

	// 返回的是副本
	courses[0].Title = "changed"
	again, err := repo.ListCourses(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, MockCourses()[0].Title, again[0].Title)
}

func TestMemoryRepository_FindUser(t *testing.T) {
	repo := NewMockRepository()

	user, err := repo.FindUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 4}, user.CoursesEnrolled)
	assert.Equal(t, 1250, user.Points)

	user.CoursesEnrolled[0] = 99
	again, err := repo.FindUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), again.CoursesEnrolled[0])

	_, err = repo.FindUser(context.Background(), 404)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestMemoryRepository_CanceledContext(t *testing.T) {
	repo := NewMockRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListCourses(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.FindUser(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
