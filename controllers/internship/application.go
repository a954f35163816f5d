package controllers

import (
	"stagi/config"
	"stagi/database"
	"stagi/middleware"
	"stagi/models"
	"stagi/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ApplicationFields is the validated request body for submitting an application
type ApplicationFields struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Education     string `json:"education"`
	Experience    string `json:"experience"`
	WhyInterested string `json:"why_interested"`
	Availability  string `json:"availability"`
	ResumeURL     string `json:"resume_url"`
	CoverLetter   string `json:"cover_letter"`
	LinkedinURL   string `json:"linkedin_url"`
	GithubURL     string `json:"github_url"`
}

// SubmitApplication creates a new application for an open internship.
// One application per (user, internship); the internship must be open.
func SubmitApplication(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Retrieve validated internship ID and fields
	internshipID := c.Locals("internshipID").(int)
	reqData, ok := c.Locals("validatedApplication").(*ApplicationFields)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check if internship exists
	var internship models.Internship
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", internshipID, false).First(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	// Closed internships reject new applications
	if !internship.IsOpen {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Internship is closed for applications!", nil)
	}

	// Check if user already applied
	var existingApplication models.Application
	if err := database.Database.Db.Where("user_id = ? AND internship_id = ? AND is_deleted = ?", userID, internshipID, false).First(&existingApplication).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already applied to this internship!", nil)
	}

	application := models.Application{
		UserID:        userID,
		InternshipID:  uint(internshipID),
		Status:        models.ApplicationPending,
		FullName:      reqData.FullName,
		Email:         reqData.Email,
		Phone:         reqData.Phone,
		Education:     reqData.Education,
		Experience:    reqData.Experience,
		WhyInterested: reqData.WhyInterested,
		Availability:  reqData.Availability,
		ResumeURL:     reqData.ResumeURL,
		CoverLetter:   reqData.CoverLetter,
		LinkedinURL:   reqData.LinkedinURL,
		GithubURL:     reqData.GithubURL,
		AppliedAt:     time.Now(),
	}

	// Save to database with transaction
	tx := database.Database.Db.Begin()
	if err := tx.Create(&application).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit application!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", application)
}

// GetMyApplications lists the caller's applications with internship titles
func GetMyApplications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var applications []models.Application
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Internship").Order("applied_at desc").Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}

// UploadResume stores an uploaded resume file and returns its public URL
func UploadResume(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Resume file is required!", nil)
	}

	fileURL, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save resume!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resume uploaded successfully!", fiber.Map{
		"resume_url": fileURL,
	})
}
