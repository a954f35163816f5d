package controllers

import (
	"stagi/database"
	"stagi/middleware"
	"stagi/models"
	"stagi/models/learning"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateInternship creates a new internship posting
func AdminCreateInternship(c *fiber.Ctx) error {
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

	reqData, ok := c.Locals("validatedInternship").(*struct {
		Title          string `json:"title"`
		Department     string `json:"department"`
		Description    string `json:"description"`
		Requirements   string `json:"requirements"`
		Location       string `json:"location"`
		Duration       string `json:"duration"`
		LearningPathID *uint  `json:"learning_path_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Verify the learning path exists when one is assigned
	if reqData.LearningPathID != nil {
		var path learning.LearningPath
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.LearningPathID, false).First(&path).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
		}
	}

	internship := models.Internship{
		Title:          reqData.Title,
		Department:     reqData.Department,
		Description:    reqData.Description,
		Requirements:   reqData.Requirements,
		Location:       reqData.Location,
		Duration:       reqData.Duration,
		IsOpen:         true,
		LearningPathID: reqData.LearningPathID,
	}

	if err := database.Database.Db.Create(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create internship!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Internship created successfully!", internship)
}

// AdminUpdateInternship updates posting fields, the open flag and the learning path assignment.
// Flipping IsOpen has no side effect on existing applications.
func AdminUpdateInternship(c *fiber.Ctx) error {
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

	internshipID := c.Locals("internshipID").(int)

	var internship models.Internship
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", internshipID, false).First(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	reqData, ok := c.Locals("validatedInternshipUpdate").(*struct {
		Title          string `json:"title"`
		Department     string `json:"department"`
		Description    string `json:"description"`
		Requirements   string `json:"requirements"`
		Location       string `json:"location"`
		Duration       string `json:"duration"`
		IsOpen         *bool  `json:"is_open"`
		LearningPathID *uint  `json:"learning_path_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		internship.Title = reqData.Title
	}
	if reqData.Department != "" {
		internship.Department = reqData.Department
	}
	if reqData.Description != "" {
		internship.Description = reqData.Description
	}
	if reqData.Requirements != "" {
		internship.Requirements = reqData.Requirements
	}
	if reqData.Location != "" {
		internship.Location = reqData.Location
	}
	if reqData.Duration != "" {
		internship.Duration = reqData.Duration
	}
	if reqData.IsOpen != nil {
		internship.IsOpen = *reqData.IsOpen
	}
	if reqData.LearningPathID != nil {
		var path learning.LearningPath
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.LearningPathID, false).First(&path).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
		}
		internship.LearningPathID = reqData.LearningPathID
	}

	if err := database.Database.Db.Save(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update internship!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internship updated successfully!", internship)
}

// AdminDeleteInternship soft deletes a posting. Postings with applications
// cannot be deleted and must be closed instead.
func AdminDeleteInternship(c *fiber.Ctx) error {
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

	internshipID := c.Locals("internshipID").(int)

	var internship models.Internship
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", internshipID, false).First(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	// Check for existing applications
	var applicationCount int64
	database.Database.Db.Model(&models.Application{}).Where("internship_id = ? AND is_deleted = ?", internshipID, false).Count(&applicationCount)
	if applicationCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Internship has applications! Close it instead of deleting.", nil)
	}

	internship.IsDeleted = true
	if err := database.Database.Db.Save(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete internship!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internship deleted successfully!", nil)
}

// AdminGetInternships lists all postings with application counts
func AdminGetInternships(c *fiber.Ctx) error {
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

	reqData, _ := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Internship{}).Where("is_deleted = ?", false)

	// Optional open/closed filter
	if isOpen := c.Query("is_open"); isOpen == "true" {
		db = db.Where("is_open = ?", true)
	} else if isOpen == "false" {
		db = db.Where("is_open = ?", false)
	}

	var total int64
	db.Count(&total)

	var internships []models.Internship
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&internships).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch internships!", nil)
	}

	type InternshipWithCount struct {
		models.Internship
		ApplicationCount int64 `json:"application_count"`
	}

	result := make([]InternshipWithCount, len(internships))
	for i, internship := range internships {
		var count int64
		database.Database.Db.Model(&models.Application{}).Where("internship_id = ? AND is_deleted = ?", internship.ID, false).Count(&count)
		result[i] = InternshipWithCount{
			Internship:       internship,
			ApplicationCount: count,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internships fetched successfully!", fiber.Map{
		"internships": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
