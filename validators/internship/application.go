package internshipValidator

import (
	"regexp"
	controllers "stagi/controllers/internship"
	"stagi/middleware"
	"stagi/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// SubmitApplication validates the application form. Resume, cover letter and
// profile links are optional; everything else is required.
func SubmitApplication() fiber.Handler {
	return func(c *fiber.Ctx) error {
		internshipIDStr := strings.TrimSpace(c.Params("id"))
		internshipID, err := strconv.Atoi(internshipIDStr)
		if err != nil || internshipID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Internship ID!", nil)
		}

		reqData := new(controllers.ApplicationFields)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.FullName = strings.TrimSpace(reqData.FullName)
		reqData.Email = strings.TrimSpace(reqData.Email)
		reqData.Phone = strings.TrimSpace(reqData.Phone)
		reqData.Education = strings.TrimSpace(reqData.Education)
		reqData.Experience = strings.TrimSpace(reqData.Experience)
		reqData.WhyInterested = strings.TrimSpace(reqData.WhyInterested)
		reqData.Availability = strings.TrimSpace(reqData.Availability)

		if reqData.FullName == "" {
			errors["full_name"] = "Full name is required!"
		}
		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if reqData.Phone == "" {
			errors["phone"] = "Phone is required!"
		}
		if reqData.Education == "" {
			errors["education"] = "Education is required!"
		}
		if reqData.Experience == "" {
			errors["experience"] = "Experience is required!"
		}
		if reqData.WhyInterested == "" {
			errors["why_interested"] = "Please tell us why you are interested!"
		}
		if reqData.Availability == "" {
			errors["availability"] = "Availability is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("internshipID", internshipID)
		c.Locals("validatedApplication", reqData)
		return c.Next()
	}
}

// ApplicationQuery validates the admin application list query
func ApplicationQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page         *int   `json:"page"`
			Limit        *int   `json:"limit"`
			Status       string `json:"status"`
			InternshipID *int   `json:"internship_id"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request query!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != "" {
			validStatuses := map[string]bool{
				models.ApplicationPending:   true,
				models.ApplicationReviewing: true,
				models.ApplicationAccepted:  true,
				models.ApplicationRejected:  true,
			}
			if !validStatuses[reqData.Status] {
				errors["status"] = "Status must be PENDING, REVIEWING, ACCEPTED or REJECTED!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedApplicationQuery", reqData)
		return c.Next()
	}
}

// UpdateApplicationStatus validates the status change request
func UpdateApplicationStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		applicationIDStr := strings.TrimSpace(c.Params("id"))
		applicationID, err := strconv.Atoi(applicationIDStr)
		if err != nil || applicationID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Application ID!", nil)
		}

		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.TrimSpace(reqData.Status)

		validStatuses := map[string]bool{
			models.ApplicationPending:   true,
			models.ApplicationReviewing: true,
			models.ApplicationAccepted:  true,
			models.ApplicationRejected:  true,
		}
		if !validStatuses[reqData.Status] {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be PENDING, REVIEWING, ACCEPTED or REJECTED!",
			})
		}

		c.Locals("applicationID", applicationID)
		c.Locals("validatedStatusUpdate", reqData)
		return c.Next()
	}
}
