package controllers

import (
	"stagi/database"
	"stagi/middleware"
	"stagi/models"
	"stagi/models/learning"
	"stagi/utils"
	learningValidator "stagi/validators/learning"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateTask creates a task with its content blocks and optional
// submission requirement as one unit. A failed content write rolls back
// the whole task so no partial task is ever visible.
func AdminCreateTask(c *fiber.Ctx) error {
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

	moduleID := c.Locals("moduleID").(int)

	// Check if module exists
	var module learning.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedTask").(*learningValidator.TaskRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Append after the current last task
	var maxOrder int
	database.Database.Db.Model(&learning.Task{}).Where("module_id = ? AND is_deleted = ?", moduleID, false).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	isRequired := true
	if reqData.IsRequired != nil {
		isRequired = *reqData.IsRequired
	}

	task := learning.Task{
		ModuleID:         uint(moduleID),
		Title:            reqData.Title,
		Description:      reqData.Description,
		OrderIndex:       maxOrder + 1,
		IsRequired:       isRequired,
		EstimatedMinutes: reqData.EstimatedMinutes,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&task).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create task!", nil)
	}

	// Content blocks keep the caller-supplied order
	for _, content := range reqData.Contents {
		row := learning.TaskContent{
			TaskID:      task.ID,
			ContentType: content.ContentType,
			TextContent: content.TextContent,
			VideoURL:    content.VideoURL,
			FileURL:     content.FileURL,
			FileName:    content.FileName,
			LinkURL:     content.LinkURL,
			LinkTitle:   content.LinkTitle,
			OrderIndex:  content.OrderIndex,
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create task content!", nil)
		}
	}

	// A NONE submission type means no requirement
	if reqData.Submission != nil && reqData.Submission.SubmissionType != learning.SubmissionNone {
		requirement := learning.SubmissionRequirement{
			TaskID:         task.ID,
			SubmissionType: reqData.Submission.SubmissionType,
			Instructions:   reqData.Submission.Instructions,
			IsRequired:     reqData.Submission.IsRequired,
		}
		if err := tx.Create(&requirement).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create submission requirement!", nil)
		}
	}

	tx.Commit()

	// A new task changes every enrolled intern's denominator
	utils.RecomputePathProgress(database.Database.Db, module.LearningPathID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Task created successfully!", task)
}

// AdminUpdateTask updates task fields and replaces the full content list.
// The submission requirement is created, replaced or removed depending on
// whether a non-NONE type is supplied.
func AdminUpdateTask(c *fiber.Ctx) error {
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

	taskID := c.Locals("taskID").(int)

	var task learning.Task
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", taskID, false).First(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	reqData, ok := c.Locals("validatedTaskUpdate").(*learningValidator.TaskRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		task.Title = reqData.Title
	}
	if reqData.Description != "" {
		task.Description = reqData.Description
	}
	if reqData.IsRequired != nil {
		task.IsRequired = *reqData.IsRequired
	}
	if reqData.EstimatedMinutes > 0 {
		task.EstimatedMinutes = reqData.EstimatedMinutes
	}

	tx := database.Database.Db.Begin()
	if err := tx.Save(&task).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update task!", nil)
	}

	// Replace the content list wholesale
	if err := tx.Model(&learning.TaskContent{}).Where("task_id = ? AND is_deleted = ?", task.ID, false).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update task content!", nil)
	}
	for _, content := range reqData.Contents {
		row := learning.TaskContent{
			TaskID:      task.ID,
			ContentType: content.ContentType,
			TextContent: content.TextContent,
			VideoURL:    content.VideoURL,
			FileURL:     content.FileURL,
			FileName:    content.FileName,
			LinkURL:     content.LinkURL,
			LinkTitle:   content.LinkTitle,
			OrderIndex:  content.OrderIndex,
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update task content!", nil)
		}
	}

	// Replace or remove the submission requirement
	var existingRequirement learning.SubmissionRequirement
	hasExisting := tx.Where("task_id = ? AND is_deleted = ?", task.ID, false).First(&existingRequirement).Error == nil

	if reqData.Submission != nil && reqData.Submission.SubmissionType != learning.SubmissionNone {
		if hasExisting {
			existingRequirement.SubmissionType = reqData.Submission.SubmissionType
			existingRequirement.Instructions = reqData.Submission.Instructions
			existingRequirement.IsRequired = reqData.Submission.IsRequired
			if err := tx.Save(&existingRequirement).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update submission requirement!", nil)
			}
		} else {
			requirement := learning.SubmissionRequirement{
				TaskID:         task.ID,
				SubmissionType: reqData.Submission.SubmissionType,
				Instructions:   reqData.Submission.Instructions,
				IsRequired:     reqData.Submission.IsRequired,
			}
			if err := tx.Create(&requirement).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create submission requirement!", nil)
			}
		}
	} else if hasExisting {
		existingRequirement.IsDeleted = true
		if err := tx.Save(&existingRequirement).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove submission requirement!", nil)
		}
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task updated successfully!", task)
}

// AdminDeleteTask soft deletes a task with its contents, submission
// requirement and progress rows, then refreshes affected path percents
func AdminDeleteTask(c *fiber.Ctx) error {
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

	taskID := c.Locals("taskID").(int)

	var task learning.Task
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", taskID, false).First(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	var module learning.Module
	if err := database.Database.Db.Where("id = ?", task.ModuleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	tx := database.Database.Db.Begin()

	task.IsDeleted = true
	if err := tx.Save(&task).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete task!", nil)
	}

	if err := tx.Model(&learning.TaskContent{}).Where("task_id = ?", task.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete task content!", nil)
	}
	if err := tx.Model(&learning.SubmissionRequirement{}).Where("task_id = ?", task.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete submission requirement!", nil)
	}
	if err := tx.Model(&learning.TaskProgress{}).Where("task_id = ?", task.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete task progress!", nil)
	}

	tx.Commit()

	// A removed task changes every enrolled intern's denominator
	utils.RecomputePathProgress(database.Database.Db, module.LearningPathID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task deleted successfully!", nil)
}
