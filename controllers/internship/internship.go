package controllers

import (
	"stagi/database"
	"stagi/middleware"
	"stagi/models"

	"github.com/gofiber/fiber/v2"
)

// GetOpenInternships lists open internship postings for candidates
func GetOpenInternships(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	// Set default pagination
	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Internship{}).Where("is_open = ? AND is_deleted = ?", true, false)

	// Optional department filter
	if department := c.Query("department"); department != "" {
		db = db.Where("department = ?", department)
	}

	// Get total count
	var total int64
	db.Count(&total)

	// Fetch paginated data
	var internships []models.Internship
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&internships).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch internships!", nil)
	}

	// Prepare response
	response := map[string]interface{}{
		"internships": internships,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internships fetched successfully!", response)
}

// GetInternshipDetails gets one internship posting
func GetInternshipDetails(c *fiber.Ctx) error {
	internshipID := c.Locals("internshipID").(int)

	var internship models.Internship
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", internshipID, false).First(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internship fetched successfully!", internship)
}
