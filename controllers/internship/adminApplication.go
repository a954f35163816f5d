package controllers

import (
	"stagi/database"
	"stagi/middleware"
	"stagi/models"
	"stagi/models/learning"
	"stagi/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminGetApplications lists applications with applicant info, filterable by status and internship
func AdminGetApplications(c *fiber.Ctx) error {
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

	reqData, _ := c.Locals("validatedApplicationQuery").(*struct {
		Page         *int   `json:"page"`
		Limit        *int   `json:"limit"`
		Status       string `json:"status"`
		InternshipID *int   `json:"internship_id"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Application{}).Where("is_deleted = ?", false)

	if reqData != nil && reqData.Status != "" {
		db = db.Where("status = ?", reqData.Status)
	}
	if reqData != nil && reqData.InternshipID != nil {
		db = db.Where("internship_id = ?", *reqData.InternshipID)
	}

	var total int64
	db.Count(&total)

	var applications []models.Application
	if err := db.Offset(offset).Limit(limit).Order("applied_at desc").
		Preload("Internship").Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", fiber.Map{
		"applications": applications,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminUpdateApplicationStatus changes an application's review status.
// Accepting an application enrolls the applicant into the internship's learning
// path: an InternLearningProgress row at 0 percent is created once, and the
// applicant's role is promoted to INTERN. Rejection or moving back to REVIEWING
// never removes progress already created.
func AdminUpdateApplicationStatus(c *fiber.Ctx) error {
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

	applicationID := c.Locals("applicationID").(int)

	reqData, ok := c.Locals("validatedStatusUpdate").(*struct {
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var application models.Application
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", applicationID, false).
		Preload("Internship").First(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	tx := database.Database.Db.Begin()

	application.Status = reqData.Status
	if err := tx.Model(&models.Application{}).Where("id = ?", application.ID).Update("status", reqData.Status).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update application status!", nil)
	}

	if reqData.Status == models.ApplicationAccepted && application.Internship.LearningPathID != nil {
		pathID := *application.Internship.LearningPathID

		// Enroll once; re-accepting must not create a second progress row
		var existingProgress learning.InternLearningProgress
		if err := tx.Where("user_id = ? AND learning_path_id = ? AND is_deleted = ?",
			application.UserID, pathID, false).First(&existingProgress).Error; err != nil {
			progress := learning.InternLearningProgress{
				UserID:          application.UserID,
				LearningPathID:  pathID,
				ProgressPercent: 0,
			}
			if err := tx.Create(&progress).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll applicant in learning path!", nil)
			}
		}

		// Promote the applicant to intern
		var applicant models.User
		if err := tx.Where("id = ? AND is_deleted = ?", application.UserID, false).First(&applicant).Error; err == nil && applicant.Role == models.RoleCandidate {
			applicant.Role = models.RoleIntern
			if err := tx.Save(&applicant).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update applicant role!", nil)
			}

			// Grant learning access
			var existingPermission models.Permission
			if err := tx.Where("user_id = ? AND permission = ? AND is_deleted = ?",
				applicant.ID, "view-learning", false).First(&existingPermission).Error; err != nil {
				permission := models.Permission{
					UserID:     applicant.ID,
					Role:       models.RoleIntern,
					Permission: "view-learning",
				}
				if err := tx.Create(&permission).Error; err != nil {
					tx.Rollback()
					return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grant learning access!", nil)
				}
			}
		}
	}

	tx.Commit()

	// Notify the applicant and the HR system (async)
	go utils.SendApplicationStatusEmail(application.Email, application.FullName, application.Internship.Title, reqData.Status)
	if reqData.Status == models.ApplicationAccepted {
		go utils.SyncAcceptedApplication(application.ID, application.UserID, application.FullName, application.Email, application.Internship.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application status updated successfully!", application)
}
