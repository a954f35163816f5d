package controllers

import (
	"stagi/database"
	"stagi/middleware"
	"stagi/models"
	"stagi/models/learning"
	"stagi/utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// TaskWithContent represents a task with its content blocks, submission
// requirement and (optionally) the viewing user's progress
type TaskWithContent struct {
	learning.Task
	Contents   []learning.TaskContent          `json:"contents"`
	Submission *learning.SubmissionRequirement `json:"submission,omitempty"`
	Progress   *learning.TaskProgress          `json:"progress,omitempty"`
}

// ModuleWithTasks represents a module with its ordered tasks
type ModuleWithTasks struct {
	learning.Module
	Tasks []TaskWithContent `json:"tasks"`
}

// buildPathTree loads the ordered module/task/content tree of a path.
// When userID is non-zero, each task carries that user's TaskProgress.
func buildPathTree(pathID uint, userID uint) ([]ModuleWithTasks, error) {
	var modules []learning.Module
	if err := database.Database.Db.Where("learning_path_id = ? AND is_deleted = ?", pathID, false).
		Order("order_index asc").Find(&modules).Error; err != nil {
		return nil, err
	}

	result := make([]ModuleWithTasks, len(modules))
	for i, module := range modules {
		var tasks []learning.Task
		if err := database.Database.Db.Where("module_id = ? AND is_deleted = ?", module.ID, false).
			Order("order_index asc").Find(&tasks).Error; err != nil {
			return nil, err
		}

		taskList := make([]TaskWithContent, len(tasks))
		for j, task := range tasks {
			taskList[j] = TaskWithContent{Task: task}

			var contents []learning.TaskContent
			database.Database.Db.Where("task_id = ? AND is_deleted = ?", task.ID, false).
				Order("order_index asc").Find(&contents)
			taskList[j].Contents = contents

			var submission learning.SubmissionRequirement
			if err := database.Database.Db.Where("task_id = ? AND is_deleted = ?", task.ID, false).First(&submission).Error; err == nil {
				taskList[j].Submission = &submission
			}

			if userID != 0 {
				var progress learning.TaskProgress
				if err := database.Database.Db.Where("user_id = ? AND task_id = ? AND is_deleted = ?", userID, task.ID, false).First(&progress).Error; err == nil {
					taskList[j].Progress = &progress
				}
			}
		}

		result[i] = ModuleWithTasks{Module: module, Tasks: taskList}
	}

	return result, nil
}

// GetMyLearningProgress lists every path assigned to the caller with the full
// module/task tree, the caller's task progress and the cached percent
func GetMyLearningProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var progressRows []learning.InternLearningProgress
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at asc").Find(&progressRows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch learning progress!", nil)
	}

	type PathProgress struct {
		Path            learning.LearningPath `json:"path"`
		Modules         []ModuleWithTasks     `json:"modules"`
		ProgressPercent int                   `json:"progress_percent"`
		IsCompleted     bool                  `json:"is_completed"`
	}

	result := make([]PathProgress, 0, len(progressRows))
	for _, row := range progressRows {
		var path learning.LearningPath
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", row.LearningPathID, false).First(&path).Error; err != nil {
			continue
		}

		tree, err := buildPathTree(row.LearningPathID, userID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch learning progress!", nil)
		}

		result = append(result, PathProgress{
			Path:            path,
			Modules:         tree,
			ProgressPercent: row.ProgressPercent,
			IsCompleted:     row.ProgressPercent >= 100,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning progress fetched successfully!", result)
}

// GetMyPathDetails gets one assigned path's tree for the caller
func GetMyPathDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	pathID := c.Locals("pathID").(int)

	// Only assigned interns may view a path
	var progressRow learning.InternLearningProgress
	if err := database.Database.Db.Where("user_id = ? AND learning_path_id = ? AND is_deleted = ?", userID, pathID, false).First(&progressRow).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not assigned to this learning path!", nil)
	}

	var path learning.LearningPath
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", pathID, false).First(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	tree, err := buildPathTree(uint(pathID), userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch path content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning path fetched successfully!", fiber.Map{
		"path":             path,
		"modules":          tree,
		"progress_percent": progressRow.ProgressPercent,
	})
}

// MarkTaskComplete marks a task done for the caller and refreshes the cached
// path percent. Completing an already-completed task is a no-op.
func MarkTaskComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	taskID := c.Locals("taskID").(int)

	reqData, _ := c.Locals("validatedTaskCompletion").(*struct {
		SubmissionData string `json:"submission_data"`
	})
	submissionData := ""
	if reqData != nil {
		submissionData = reqData.SubmissionData
	}

	// Resolve the task and its owning path
	var task learning.Task
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", taskID, false).First(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	var module learning.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", task.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	// Only tasks in paths assigned to the caller may be completed
	var pathProgress learning.InternLearningProgress
	if err := database.Database.Db.Where("user_id = ? AND learning_path_id = ? AND is_deleted = ?",
		userID, module.LearningPathID, false).First(&pathProgress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not assigned to this learning path!", nil)
	}

	// A mandatory submission requirement blocks completion without data
	var requirement learning.SubmissionRequirement
	if err := database.Database.Db.Where("task_id = ? AND is_deleted = ?", task.ID, false).First(&requirement).Error; err == nil {
		if requirement.IsRequired && requirement.SubmissionType != learning.SubmissionNone && strings.TrimSpace(submissionData) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"submission_data": "Submission is required for this task!",
			})
		}
	}

	// Upsert the task progress row
	var taskProgress learning.TaskProgress
	err := database.Database.Db.Where("user_id = ? AND task_id = ? AND is_deleted = ?", userID, task.ID, false).First(&taskProgress).Error
	if err == nil && taskProgress.IsCompleted {
		// Re-derive rather than echo the cached row; a catalog edit may have
		// changed the task count since the percent was last written
		percent := utils.RecomputeUserPathProgress(database.Database.Db, userID, module.LearningPathID)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Task already completed!", fiber.Map{
			"task_progress":    taskProgress,
			"progress_percent": percent,
		})
	}

	now := time.Now()
	tx := database.Database.Db.Begin()
	if err == nil {
		taskProgress.IsCompleted = true
		taskProgress.CompletedAt = &now
		taskProgress.SubmissionData = submissionData
		if err := tx.Save(&taskProgress).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark task as completed!", nil)
		}
	} else {
		taskProgress = learning.TaskProgress{
			UserID:         userID,
			TaskID:         task.ID,
			IsCompleted:    true,
			CompletedAt:    &now,
			SubmissionData: submissionData,
		}
		if err := tx.Create(&taskProgress).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark task as completed!", nil)
		}
	}
	tx.Commit()

	percent := utils.RecomputeUserPathProgress(database.Database.Db, userID, module.LearningPathID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task marked as completed successfully!", fiber.Map{
		"task_progress":    taskProgress,
		"progress_percent": percent,
	})
}
