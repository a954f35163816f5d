package controllers

import (
	"stagi/database"
	"stagi/middleware"
	"stagi/models"
	"stagi/models/learning"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboardStats returns the counters shown on the admin dashboard
func AdminDashboardStats(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	db := database.Database.Db

	var totalInternships, openInternships int64
	db.Model(&models.Internship{}).Where("is_deleted = ?", false).Count(&totalInternships)
	db.Model(&models.Internship{}).Where("is_open = ? AND is_deleted = ?", true, false).Count(&openInternships)

	var totalApplications, pendingApplications, acceptedApplications, rejectedApplications int64
	db.Model(&models.Application{}).Where("is_deleted = ?", false).Count(&totalApplications)
	db.Model(&models.Application{}).Where("status = ? AND is_deleted = ?", models.ApplicationPending, false).Count(&pendingApplications)
	db.Model(&models.Application{}).Where("status = ? AND is_deleted = ?", models.ApplicationAccepted, false).Count(&acceptedApplications)
	db.Model(&models.Application{}).Where("status = ? AND is_deleted = ?", models.ApplicationRejected, false).Count(&rejectedApplications)

	var totalInterns, activePaths int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleIntern, false).Count(&totalInterns)
	db.Model(&learning.LearningPath{}).Where("is_active = ? AND is_deleted = ?", true, false).Count(&activePaths)

	var avgProgress float64
	db.Model(&learning.InternLearningProgress{}).Where("is_deleted = ?", false).
		Select("COALESCE(AVG(progress_percent), 0)").Scan(&avgProgress)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"internships": fiber.Map{
			"total": totalInternships,
			"open":  openInternships,
		},
		"applications": fiber.Map{
			"total":    totalApplications,
			"pending":  pendingApplications,
			"accepted": acceptedApplications,
			"rejected": rejectedApplications,
		},
		"interns":          totalInterns,
		"active_paths":     activePaths,
		"average_progress": avgProgress,
	})
}

// AdminGetInternProgress gets one intern's progress across all assigned paths
func AdminGetInternProgress(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	internID := c.Locals("internID").(int)

	var intern models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", internID, false).First(&intern).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Intern not found!", nil)
	}
	intern.Password = ""

	var progressRows []learning.InternLearningProgress
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", internID, false).
		Order("created_at asc").Find(&progressRows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch intern progress!", nil)
	}

	type PathSummary struct {
		Path            learning.LearningPath `json:"path"`
		ProgressPercent int                   `json:"progress_percent"`
		CompletedTasks  int64                 `json:"completed_tasks"`
		TotalTasks      int64                 `json:"total_tasks"`
	}

	result := make([]PathSummary, 0, len(progressRows))
	for _, row := range progressRows {
		var path learning.LearningPath
		if err := database.Database.Db.Where("id = ?", row.LearningPathID).First(&path).Error; err != nil {
			continue
		}

		var totalTasks int64
		database.Database.Db.Model(&learning.Task{}).
			Joins("JOIN modules ON modules.id = tasks.module_id").
			Where("modules.learning_path_id = ? AND modules.is_deleted = ? AND tasks.is_deleted = ?", row.LearningPathID, false, false).
			Count(&totalTasks)

		var completedTasks int64
		database.Database.Db.Model(&learning.TaskProgress{}).
			Joins("JOIN tasks ON tasks.id = task_progresses.task_id").
			Joins("JOIN modules ON modules.id = tasks.module_id").
			Where("task_progresses.user_id = ? AND task_progresses.is_completed = ? AND task_progresses.is_deleted = ?", internID, true, false).
			Where("modules.learning_path_id = ? AND modules.is_deleted = ? AND tasks.is_deleted = ?", row.LearningPathID, false, false).
			Count(&completedTasks)

		result = append(result, PathSummary{
			Path:            path,
			ProgressPercent: row.ProgressPercent,
			CompletedTasks:  completedTasks,
			TotalTasks:      totalTasks,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Intern progress fetched successfully!", fiber.Map{
		"intern": intern,
		"paths":  result,
	})
}
