package controllers

import (
	"stagi/database"
	"stagi/middleware"
	"stagi/models"
	"stagi/models/learning"

	"github.com/gofiber/fiber/v2"
)

// AdminCreatePath creates a new learning path, active by default
func AdminCreatePath(c *fiber.Ctx) error {
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

	reqData, ok := c.Locals("validatedPath").(*struct {
		Title         string `json:"title"`
		Description   string `json:"description"`
		EstimatedDays int    `json:"estimated_days"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	path := learning.LearningPath{
		Title:         reqData.Title,
		Description:   reqData.Description,
		EstimatedDays: reqData.EstimatedDays,
		IsActive:      true,
	}

	if err := database.Database.Db.Create(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create learning path!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Learning path created successfully!", path)
}

// AdminUpdatePath updates path fields including the active flag.
// Deactivating has no side effect on existing progress.
func AdminUpdatePath(c *fiber.Ctx) error {
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

	pathID := c.Locals("pathID").(int)

	var path learning.LearningPath
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", pathID, false).First(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	reqData, ok := c.Locals("validatedPathUpdate").(*struct {
		Title         string `json:"title"`
		Description   string `json:"description"`
		EstimatedDays *int   `json:"estimated_days"`
		IsActive      *bool  `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		path.Title = reqData.Title
	}
	if reqData.Description != "" {
		path.Description = reqData.Description
	}
	if reqData.EstimatedDays != nil {
		path.EstimatedDays = *reqData.EstimatedDays
	}
	if reqData.IsActive != nil {
		path.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update learning path!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning path updated successfully!", path)
}

// AdminDeletePath soft deletes a path. Paths with enrolled interns cannot be
// deleted and must be deactivated instead.
func AdminDeletePath(c *fiber.Ctx) error {
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

	pathID := c.Locals("pathID").(int)

	var path learning.LearningPath
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", pathID, false).First(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	// Check for enrolled interns
	var progressCount int64
	database.Database.Db.Model(&learning.InternLearningProgress{}).Where("learning_path_id = ? AND is_deleted = ?", pathID, false).Count(&progressCount)
	if progressCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Learning path has enrolled interns! Deactivate it instead of deleting.", nil)
	}

	path.IsDeleted = true
	if err := database.Database.Db.Save(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete learning path!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning path deleted successfully!", nil)
}

// AdminGetPaths lists all learning paths with module and enrollment counts
func AdminGetPaths(c *fiber.Ctx) error {
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

	var paths []learning.LearningPath
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at asc").Find(&paths).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch learning paths!", nil)
	}

	type PathWithCounts struct {
		learning.LearningPath
		ModuleCount int64 `json:"module_count"`
		InternCount int64 `json:"intern_count"`
	}

	result := make([]PathWithCounts, len(paths))
	for i, path := range paths {
		var moduleCount, internCount int64
		database.Database.Db.Model(&learning.Module{}).Where("learning_path_id = ? AND is_deleted = ?", path.ID, false).Count(&moduleCount)
		database.Database.Db.Model(&learning.InternLearningProgress{}).Where("learning_path_id = ? AND is_deleted = ?", path.ID, false).Count(&internCount)
		result[i] = PathWithCounts{
			LearningPath: path,
			ModuleCount:  moduleCount,
			InternCount:  internCount,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning paths fetched successfully!", result)
}

// AdminGetPathDetails gets one path with its full module and task tree
func AdminGetPathDetails(c *fiber.Ctx) error {
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

	pathID := c.Locals("pathID").(int)

	var path learning.LearningPath
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", pathID, false).First(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	tree, err := buildPathTree(uint(pathID), 0)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch path content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning path fetched successfully!", fiber.Map{
		"path":    path,
		"modules": tree,
	})
}
