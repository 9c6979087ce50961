package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"family-planner/domain/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "planner_test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestTaskRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(newTestDB(t))

	task := &models.Task{
		Title:    "Grocery Shopping",
		DueDay:   models.Monday,
		Priority: models.PriorityHigh,
		Status:   models.StatusTodo,
	}
	require.NoError(t, repo.Create(ctx, task))
	require.NotZero(t, task.ID)

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grocery Shopping", got.Title)
	assert.Equal(t, models.Monday, got.DueDay)
	assert.Nil(t, got.AssignedToUserID)
}

func TestTaskRepositoryGetMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(newTestDB(t))

	_, err := repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTaskRepositoryListOrdersByCreation(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTaskRepository(db)

	older := &models.Task{
		Title:     "Vacuum Living Room",
		DueDay:    models.Thursday,
		Priority:  models.PriorityLow,
		Status:    models.StatusDone,
		CreatedAt: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
	}
	newer := &models.Task{
		Title:     "Laundry",
		DueDay:    models.Friday,
		Priority:  models.PriorityMedium,
		Status:    models.StatusDoing,
		CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	// Insert newest first so ordering cannot come from insert order.
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, older))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Vacuum Living Room", tasks[0].Title)
	assert.Equal(t, "Laundry", tasks[1].Title)
}

func TestTaskRepositoryUpdateClearsAssignee(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	taskRepo := NewTaskRepository(db)

	user := models.User{Name: "Mom", Email: "mom@example.com", Role: models.RoleMom}
	require.NoError(t, db.Create(&user).Error)

	task := &models.Task{
		Title:            "Laundry",
		DueDay:           models.Friday,
		Priority:         models.PriorityMedium,
		Status:           models.StatusDoing,
		AssignedToUserID: &user.ID,
	}
	require.NoError(t, taskRepo.Create(ctx, task))

	task.AssignedToUserID = nil
	require.NoError(t, taskRepo.Update(ctx, task))

	got, err := taskRepo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AssignedToUserID)
}

func TestTaskRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(newTestDB(t))

	task := &models.Task{
		Title:    "Take Out Trash",
		DueDay:   models.Tuesday,
		Priority: models.PriorityMedium,
		Status:   models.StatusTodo,
	}
	require.NoError(t, repo.Create(ctx, task))

	require.NoError(t, repo.Delete(ctx, task.ID))
	assert.ErrorIs(t, repo.Delete(ctx, task.ID), gorm.ErrRecordNotFound)
}

func TestSeedFillsEmptyDatabaseOnce(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db))

	var userCount, taskCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Task{}).Count(&taskCount).Error)
	assert.EqualValues(t, 4, userCount)
	assert.EqualValues(t, 8, taskCount)

	// Re-running must not duplicate anything.
	require.NoError(t, Seed(db))
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Task{}).Count(&taskCount).Error)
	assert.EqualValues(t, 4, userCount)
	assert.EqualValues(t, 8, taskCount)
}
