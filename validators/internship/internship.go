package internshipValidator

import (
	"stagi/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateInternship validates admin internship creation request
func CreateInternship() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title          string `json:"title"`
			Department     string `json:"department"`
			Description    string `json:"description"`
			Requirements   string `json:"requirements"`
			Location       string `json:"location"`
			Duration       string `json:"duration"`
			LearningPathID *uint  `json:"learning_path_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Department = strings.TrimSpace(reqData.Department)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Department == "" {
			errors["department"] = "Department is required!"
		}

		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		} else if len(reqData.Description) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInternship", reqData)
		return c.Next()
	}
}

// UpdateInternship validates admin internship update request
func UpdateInternship() fiber.Handler {
	return func(c *fiber.Ctx) error {
		internshipIDStr := strings.TrimSpace(c.Params("id"))
		internshipID, err := strconv.Atoi(internshipIDStr)
		if err != nil || internshipID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Internship ID!", nil)
		}

		reqData := new(struct {
			Title          string `json:"title"`
			Department     string `json:"department"`
			Description    string `json:"description"`
			Requirements   string `json:"requirements"`
			Location       string `json:"location"`
			Duration       string `json:"duration"`
			IsOpen         *bool  `json:"is_open"`
			LearningPathID *uint  `json:"learning_path_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Description != "" && len(reqData.Description) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("internshipID", internshipID)
		c.Locals("validatedInternshipUpdate", reqData)
		return c.Next()
	}
}

// InternshipID validates the internship ID path parameter
func InternshipID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		internshipIDStr := strings.TrimSpace(c.Params("id"))
		if internshipIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Internship ID is required!", nil)
		}

		internshipID, err := strconv.Atoi(internshipIDStr)
		if err != nil || internshipID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Internship ID!", nil)
		}

		c.Locals("internshipID", internshipID)
		return c.Next()
	}
}

// InternshipList validates the pagination query for internship listings
func InternshipList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request query!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
