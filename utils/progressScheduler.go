package utils

import (
	"log"
	"stagi/models/learning"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PROGRESS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// RecomputeUserPathProgress re-derives one intern's cached percent for one
// path and persists it. All tasks in the path count equally, required and
// optional alike. Counting and writing happen inside a single UPDATE so a
// recompute can never overwrite the row with a percent derived from counts
// it read before a concurrent completion committed. ROUND rounds half away
// from zero on both Postgres and SQLite, so 1 of 3 tasks lands on 33 and
// 2 of 3 on 67.
func RecomputeUserPathProgress(db *gorm.DB, userID uint, pathID uint) int {
	err := db.Exec(`
		UPDATE intern_learning_progresses
		SET progress_percent = (
			SELECT CASE
				WHEN COUNT(tasks.id) = 0 THEN 0
				ELSE CAST(ROUND(100.0 * (
					SELECT COUNT(task_progresses.id)
					FROM task_progresses
					JOIN tasks ON tasks.id = task_progresses.task_id
					JOIN modules ON modules.id = tasks.module_id
					WHERE task_progresses.user_id = ?
					  AND task_progresses.is_completed = ?
					  AND task_progresses.is_deleted = ?
					  AND modules.learning_path_id = ?
					  AND modules.is_deleted = ?
					  AND tasks.is_deleted = ?
				) / COUNT(tasks.id)) AS INTEGER)
			END
			FROM tasks
			JOIN modules ON modules.id = tasks.module_id
			WHERE modules.learning_path_id = ?
			  AND modules.is_deleted = ?
			  AND tasks.is_deleted = ?
		)
		WHERE user_id = ? AND learning_path_id = ? AND is_deleted = ?`,
		userID, true, false, pathID, false, false,
		pathID, false, false,
		userID, pathID, false,
	).Error
	if err != nil {
		logScheduler("Error recomputing progress: " + err.Error())
		return 0
	}

	var row learning.InternLearningProgress
	if err := db.Where("user_id = ? AND learning_path_id = ? AND is_deleted = ?", userID, pathID, false).First(&row).Error; err != nil {
		return 0
	}
	return row.ProgressPercent
}

// RecomputePathProgress refreshes the cached percent of every intern
// enrolled in a path. Used after catalog edits that change the task count.
func RecomputePathProgress(db *gorm.DB, pathID uint) {
	var rows []learning.InternLearningProgress
	if err := db.Where("learning_path_id = ? AND is_deleted = ?", pathID, false).Find(&rows).Error; err != nil {
		logScheduler("Error fetching progress rows: " + err.Error())
		return
	}

	for _, row := range rows {
		RecomputeUserPathProgress(db, row.UserID, row.LearningPathID)
	}
}

// reconcileAllProgress recomputes every cached percent in the system
func reconcileAllProgress(db *gorm.DB) {
	var rows []learning.InternLearningProgress
	if err := db.Where("is_deleted = ?", false).Find(&rows).Error; err != nil {
		logScheduler("Error fetching progress rows: " + err.Error())
		return
	}

	for _, row := range rows {
		RecomputeUserPathProgress(db, row.UserID, row.LearningPathID)
	}

	logScheduler("Reconciled progress for " + time.Now().Format("2006-01-02"))
}

// StartProgressScheduler runs the nightly reconciliation that repairs cached
// percents left stale by catalog edits
func StartProgressScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 3 * * *", func() {
		reconcileAllProgress(db)
	})
	if err != nil {
		logScheduler("Failed to register reconciliation job: " + err.Error())
		return c
	}

	c.Start()
	logScheduler("Progress reconciliation scheduled daily at 03:00")
	return c
}
