package utils_test

import (
	"fmt"
	"stagi/database"
	"stagi/models/learning"
	"stagi/utils"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	return db
}

func seedProgressFixture(t *testing.T, db *gorm.DB, userID uint, taskCounts []int) (learning.LearningPath, []learning.Task) {
	t.Helper()

	path := learning.LearningPath{Title: "HTML Fundamentals", Description: "Web basics", IsActive: true}
	require.NoError(t, db.Create(&path).Error)
	require.NoError(t, db.Create(&learning.InternLearningProgress{UserID: userID, LearningPathID: path.ID}).Error)

	var tasks []learning.Task
	for i, count := range taskCounts {
		module := learning.Module{LearningPathID: path.ID, Title: fmt.Sprintf("Module %d", i+1), Description: "Module", OrderIndex: i + 1}
		require.NoError(t, db.Create(&module).Error)

		for j := 0; j < count; j++ {
			task := learning.Task{ModuleID: module.ID, Title: fmt.Sprintf("Task %d.%d", i+1, j+1), Description: "Task", OrderIndex: j + 1, IsRequired: true}
			require.NoError(t, db.Create(&task).Error)
			tasks = append(tasks, task)
		}
	}

	return path, tasks
}

func completeTask(t *testing.T, db *gorm.DB, userID, taskID uint) {
	t.Helper()
	now := time.Now()
	require.NoError(t, db.Create(&learning.TaskProgress{
		UserID:      userID,
		TaskID:      taskID,
		IsCompleted: true,
		CompletedAt: &now,
	}).Error)
}

func storedPercent(t *testing.T, db *gorm.DB, userID, pathID uint) int {
	t.Helper()
	var row learning.InternLearningProgress
	require.NoError(t, db.Where("user_id = ? AND learning_path_id = ?", userID, pathID).First(&row).Error)
	return row.ProgressPercent
}

func TestRecomputeUserPathProgressRounding(t *testing.T) {
	cases := []struct {
		name       string
		taskCounts []int
		complete   int
		want       int
	}{
		{"one of three", []int{2, 1}, 1, 33},
		{"two of three", []int{2, 1}, 2, 67},
		{"all of three", []int{2, 1}, 3, 100},
		{"one of five", []int{2, 3}, 1, 20},
		{"none", []int{2, 1}, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := openTestDb(t)
			const userID = 1

			path, tasks := seedProgressFixture(t, db, userID, tc.taskCounts)
			for i := 0; i < tc.complete; i++ {
				completeTask(t, db, userID, tasks[i].ID)
			}

			got := utils.RecomputeUserPathProgress(db, userID, path.ID)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, storedPercent(t, db, userID, path.ID))
		})
	}
}

func TestRecomputeEmptyPath(t *testing.T) {
	db := openTestDb(t)
	const userID = 1

	path := learning.LearningPath{Title: "Empty Path", Description: "No modules yet", IsActive: true}
	require.NoError(t, db.Create(&path).Error)
	require.NoError(t, db.Create(&learning.InternLearningProgress{UserID: userID, LearningPathID: path.ID}).Error)

	assert.Equal(t, 0, utils.RecomputeUserPathProgress(db, userID, path.ID))
}

func TestRecomputeIgnoresDeletedTasks(t *testing.T) {
	db := openTestDb(t)
	const userID = 1

	path, tasks := seedProgressFixture(t, db, userID, []int{2})
	completeTask(t, db, userID, tasks[0].ID)

	// Soft-deleting the incomplete task makes the path fully done
	require.NoError(t, db.Model(&learning.Task{}).Where("id = ?", tasks[1].ID).Update("is_deleted", true).Error)

	assert.Equal(t, 100, utils.RecomputeUserPathProgress(db, userID, path.ID))
}

func TestRecomputeIgnoresDeletedModules(t *testing.T) {
	db := openTestDb(t)
	const userID = 1

	path, tasks := seedProgressFixture(t, db, userID, []int{1, 1})
	completeTask(t, db, userID, tasks[0].ID)

	var modules []learning.Module
	require.NoError(t, db.Where("learning_path_id = ?", path.ID).Order("order_index asc").Find(&modules).Error)
	require.Len(t, modules, 2)

	// The second module and its task drop out of the denominator
	require.NoError(t, db.Model(&learning.Module{}).Where("id = ?", modules[1].ID).Update("is_deleted", true).Error)

	assert.Equal(t, 100, utils.RecomputeUserPathProgress(db, userID, path.ID))
}

func TestRecomputePathProgressRefreshesEveryIntern(t *testing.T) {
	db := openTestDb(t)

	path, tasks := seedProgressFixture(t, db, 1, []int{2})
	require.NoError(t, db.Create(&learning.InternLearningProgress{UserID: 2, LearningPathID: path.ID}).Error)

	completeTask(t, db, 1, tasks[0].ID)
	completeTask(t, db, 2, tasks[0].ID)
	completeTask(t, db, 2, tasks[1].ID)

	// Stale values get repaired in one pass
	require.NoError(t, db.Model(&learning.InternLearningProgress{}).Where("learning_path_id = ?", path.ID).
		Update("progress_percent", 7).Error)

	utils.RecomputePathProgress(db, path.ID)

	assert.Equal(t, 50, storedPercent(t, db, 1, path.ID))
	assert.Equal(t, 100, storedPercent(t, db, 2, path.ID))
}

func TestConcurrentCompletionsConverge(t *testing.T) {
	db := openTestDb(t)
	const userID = 1

	path, tasks := seedProgressFixture(t, db, userID, []int{2})

	// Two completions racing their recomputes. The counts are taken inside
	// the UPDATE itself, so whichever recompute executes last sees every
	// committed completion and the stored percent cannot end up below 100.
	var wg sync.WaitGroup
	for i := range tasks {
		wg.Add(1)
		go func(taskID uint) {
			defer wg.Done()
			now := time.Now()
			db.Create(&learning.TaskProgress{
				UserID:      userID,
				TaskID:      taskID,
				IsCompleted: true,
				CompletedAt: &now,
			})
			utils.RecomputeUserPathProgress(db, userID, path.ID)
		}(tasks[i].ID)
	}
	wg.Wait()

	assert.Equal(t, 100, storedPercent(t, db, userID, path.ID))
}

func TestRecomputeDerivesFromCurrentRows(t *testing.T) {
	db := openTestDb(t)
	const userID = 1

	path, tasks := seedProgressFixture(t, db, userID, []int{2})
	completeTask(t, db, userID, tasks[0].ID)

	// A recompute issued with an understated view of the world must still
	// write the value the committed rows imply
	completeTask(t, db, userID, tasks[1].ID)
	require.Equal(t, 100, utils.RecomputeUserPathProgress(db, userID, path.ID))

	// And a repeated recompute never walks the stored value backwards
	assert.Equal(t, 100, utils.RecomputeUserPathProgress(db, userID, path.ID))
	assert.Equal(t, 100, storedPercent(t, db, userID, path.ID))
}

func TestProgressDropsWhenTasksAdded(t *testing.T) {
	db := openTestDb(t)
	const userID = 1

	path, tasks := seedProgressFixture(t, db, userID, []int{1})
	completeTask(t, db, userID, tasks[0].ID)
	require.Equal(t, 100, utils.RecomputeUserPathProgress(db, userID, path.ID))

	var module learning.Module
	require.NoError(t, db.Where("learning_path_id = ?", path.ID).First(&module).Error)
	require.NoError(t, db.Create(&learning.Task{ModuleID: module.ID, Title: "New task", Description: "Task", OrderIndex: 2, IsRequired: true}).Error)

	utils.RecomputePathProgress(db, path.ID)
	assert.Equal(t, 50, storedPercent(t, db, userID, path.ID))
}
