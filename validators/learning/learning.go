package learningValidator

import (
	"stagi/middleware"
	"stagi/models/learning"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreatePath validates learning path creation request
func CreatePath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title         string `json:"title"`
			Description   string `json:"description"`
			EstimatedDays int    `json:"estimated_days"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}
		if reqData.EstimatedDays < 0 {
			errors["estimated_days"] = "Estimated days cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPath", reqData)
		return c.Next()
	}
}

// UpdatePath validates learning path update request
func UpdatePath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pathIDStr := strings.TrimSpace(c.Params("id"))
		pathID, err := strconv.Atoi(pathIDStr)
		if err != nil || pathID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Learning Path ID!", nil)
		}

		reqData := new(struct {
			Title         string `json:"title"`
			Description   string `json:"description"`
			EstimatedDays *int   `json:"estimated_days"`
			IsActive      *bool  `json:"is_active"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.EstimatedDays != nil && *reqData.EstimatedDays < 0 {
			errors["estimated_days"] = "Estimated days cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("pathID", pathID)
		c.Locals("validatedPathUpdate", reqData)
		return c.Next()
	}
}

// PathID validates the learning path ID path parameter
func PathID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pathIDStr := strings.TrimSpace(c.Params("id"))
		if pathIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Learning Path ID is required!", nil)
		}

		pathID, err := strconv.Atoi(pathIDStr)
		if err != nil || pathID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Learning Path ID!", nil)
		}

		c.Locals("pathID", pathID)
		return c.Next()
	}
}

// CreateModule validates module creation request
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pathIDStr := strings.TrimSpace(c.Params("id"))
		pathID, err := strconv.Atoi(pathIDStr)
		if err != nil || pathID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Learning Path ID!", nil)
		}

		reqData := new(struct {
			Title          string `json:"title"`
			Description    string `json:"description"`
			EstimatedHours int    `json:"estimated_hours"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("pathID", pathID)
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validates module update request
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("id"))
		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Title          string `json:"title"`
			Description    string `json:"description"`
			EstimatedHours *int   `json:"estimated_hours"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// ModuleID validates the module ID path parameter
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("id"))
		if moduleIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID is required!", nil)
		}

		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// TaskContentInput is one content block in a task create/update request
type TaskContentInput struct {
	ContentType string `json:"content_type"`
	TextContent string `json:"text_content"`
	VideoURL    string `json:"video_url"`
	FileURL     string `json:"file_url"`
	FileName    string `json:"file_name"`
	LinkURL     string `json:"link_url"`
	LinkTitle   string `json:"link_title"`
	OrderIndex  int    `json:"order_index"`
}

// TaskSubmissionInput declares the expected submission in a task request
type TaskSubmissionInput struct {
	SubmissionType string `json:"submission_type"`
	Instructions   string `json:"instructions"`
	IsRequired     bool   `json:"is_required"`
}

// TaskRequest is the validated body for task create and update requests
type TaskRequest struct {
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	IsRequired       *bool                `json:"is_required"`
	EstimatedMinutes int                  `json:"estimated_minutes"`
	Contents         []TaskContentInput   `json:"contents"`
	Submission       *TaskSubmissionInput `json:"submission"`
}

func validateTaskRequest(reqData *TaskRequest, requireTitle bool) map[string]string {
	errors := make(map[string]string)

	reqData.Title = strings.TrimSpace(reqData.Title)
	reqData.Description = strings.TrimSpace(reqData.Description)

	if requireTitle {
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}
	}

	validContentTypes := map[string]bool{
		learning.ContentText:  true,
		learning.ContentVideo: true,
		learning.ContentPDF:   true,
		learning.ContentImage: true,
		learning.ContentLink:  true,
		learning.ContentCode:  true,
	}
	for _, content := range reqData.Contents {
		if !validContentTypes[content.ContentType] {
			errors["contents"] = "Content type must be TEXT, VIDEO, PDF, IMAGE, LINK or CODE!"
			break
		}

		// The payload matching the content type must be present
		switch content.ContentType {
		case learning.ContentText, learning.ContentCode:
			if strings.TrimSpace(content.TextContent) == "" {
				errors["contents"] = "Text content is required for TEXT and CODE blocks!"
			}
		case learning.ContentVideo:
			if strings.TrimSpace(content.VideoURL) == "" {
				errors["contents"] = "Video URL is required for VIDEO blocks!"
			}
		case learning.ContentPDF, learning.ContentImage:
			if strings.TrimSpace(content.FileURL) == "" {
				errors["contents"] = "File URL is required for PDF and IMAGE blocks!"
			}
		case learning.ContentLink:
			if strings.TrimSpace(content.LinkURL) == "" {
				errors["contents"] = "Link URL is required for LINK blocks!"
			}
		}
		if _, found := errors["contents"]; found {
			break
		}
	}

	if reqData.Submission != nil {
		validSubmissionTypes := map[string]bool{
			learning.SubmissionNone:        true,
			learning.SubmissionTextInput:   true,
			learning.SubmissionGithubRepo:  true,
			learning.SubmissionURLLink:     true,
			learning.SubmissionFileUpload:  true,
			learning.SubmissionImageUpload: true,
			learning.SubmissionCodeSnippet: true,
		}
		if !validSubmissionTypes[reqData.Submission.SubmissionType] {
			errors["submission"] = "Invalid submission type!"
		}
	}

	return errors
}

// CreateTask validates task creation with its content blocks
func CreateTask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("id"))
		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(TaskRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateTaskRequest(reqData, true); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedTask", reqData)
		return c.Next()
	}
}

// UpdateTask validates task update with its replacement content list
func UpdateTask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		taskIDStr := strings.TrimSpace(c.Params("id"))
		taskID, err := strconv.Atoi(taskIDStr)
		if err != nil || taskID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Task ID!", nil)
		}

		reqData := new(TaskRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateTaskRequest(reqData, false); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("taskID", taskID)
		c.Locals("validatedTaskUpdate", reqData)
		return c.Next()
	}
}

// TaskID validates the task ID path parameter
func TaskID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		taskIDStr := strings.TrimSpace(c.Params("id"))
		if taskIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Task ID is required!", nil)
		}

		taskID, err := strconv.Atoi(taskIDStr)
		if err != nil || taskID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Task ID!", nil)
		}

		c.Locals("taskID", taskID)
		return c.Next()
	}
}

// CompleteTask validates the task completion request
func CompleteTask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		taskIDStr := strings.TrimSpace(c.Params("id"))
		taskID, err := strconv.Atoi(taskIDStr)
		if err != nil || taskID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Task ID!", nil)
		}

		reqData := new(struct {
			SubmissionData string `json:"submission_data"`
		})

		// An empty body is fine; tasks without required submissions need none
		if err := c.BodyParser(reqData); err != nil {
			reqData.SubmissionData = ""
		}

		c.Locals("taskID", taskID)
		c.Locals("validatedTaskCompletion", reqData)
		return c.Next()
	}
}

// InternID validates the intern user ID path parameter
func InternID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		internIDStr := strings.TrimSpace(c.Params("user_id"))
		internID, err := strconv.Atoi(internIDStr)
		if err != nil || internID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Intern ID!", nil)
		}

		c.Locals("internID", internID)
		return c.Next()
	}
}
