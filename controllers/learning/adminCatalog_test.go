package controllers_test

import (
	"fmt"
	"stagi/database"
	"stagi/models"
	"stagi/models/learning"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminCreatePathValidation(t *testing.T) {
	app := setupTest(t)
	_, adminToken := createUser(t, "Admin", "admin@test.local", models.RoleAdmin)

	resp, parsed := doRequest(t, app, "POST", "/admin/learning/path", adminToken,
		map[string]interface{}{"title": "", "description": "Web basics"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	errors := parsed["data"].(map[string]interface{})
	assert.Contains(t, errors, "title")

	resp, parsed = doRequest(t, app, "POST", "/admin/learning/path", adminToken,
		map[string]interface{}{"title": "HTML Fundamentals", "description": "Web basics", "estimated_days": 14})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := parsed["data"].(map[string]interface{})
	assert.Equal(t, true, data["is_active"])
}

func TestAdminCreatePathRequiresAdmin(t *testing.T) {
	app := setupTest(t)
	_, internToken := createUser(t, "Sam", "sam@test.local", models.RoleIntern)

	resp, _ := doRequest(t, app, "POST", "/admin/learning/path", internToken,
		map[string]interface{}{"title": "HTML Fundamentals", "description": "Web basics"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminDeletePathWithEnrolledInterns(t *testing.T) {
	app := setupTest(t)
	_, adminToken := createUser(t, "Admin", "admin@test.local", models.RoleAdmin)
	intern, _ := createUser(t, "Sam", "sam@test.local", models.RoleIntern)

	path, _ := seedPath(t, []int{1})
	assignToPath(t, intern.ID, path.ID)

	resp, parsed := doRequest(t, app, "DELETE", fmt.Sprintf("/admin/learning/path/%d", path.ID), adminToken, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, parsed["message"], "Deactivate it instead")

	var found learning.LearningPath
	require.NoError(t, database.Database.Db.Where("id = ?", path.ID).First(&found).Error)
	assert.False(t, found.IsDeleted)
}

func TestAdminDeletePathWithoutInterns(t *testing.T) {
	app := setupTest(t)
	_, adminToken := createUser(t, "Admin", "admin@test.local", models.RoleAdmin)

	path, _ := seedPath(t, []int{1})

	resp, _ := doRequest(t, app, "DELETE", fmt.Sprintf("/admin/learning/path/%d", path.ID), adminToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var found learning.LearningPath
	require.NoError(t, database.Database.Db.Where("id = ?", path.ID).First(&found).Error)
	assert.True(t, found.IsDeleted)
}

func TestAdminCreateModuleAssignsOrder(t *testing.T) {
	app := setupTest(t)
	_, adminToken := createUser(t, "Admin", "admin@test.local", models.RoleAdmin)

	path := learning.LearningPath{Title: "HTML Fundamentals", Description: "Web basics", IsActive: true}
	require.NoError(t, database.Database.Db.Create(&path).Error)

	for i, title := range []string{"Document Structure", "Forms and Input"} {
		resp, parsed := doRequest(t, app, "POST", fmt.Sprintf("/admin/learning/path/%d/module", path.ID), adminToken,
			map[string]interface{}{"title": title, "description": "Module"})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		data := parsed["data"].(map[string]interface{})
		assert.Equal(t, float64(i+1), data["order_index"])
	}
}

func TestAdminDeleteModuleWithTasks(t *testing.T) {
	app := setupTest(t)
	_, adminToken := createUser(t, "Admin", "admin@test.local", models.RoleAdmin)

	path, _ := seedPath(t, []int{1})

	var module learning.Module
	require.NoError(t, database.Database.Db.Where("learning_path_id = ?", path.ID).First(&module).Error)

	resp, parsed := doRequest(t, app, "DELETE", fmt.Sprintf("/admin/learning/module/%d", module.ID), adminToken, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, parsed["message"], "Delete its tasks first")

	// An empty module deletes fine
	empty := learning.Module{LearningPathID: path.ID, Title: "Empty", Description: "Nothing yet", OrderIndex: 2}
	require.NoError(t, database.Database.Db.Create(&empty).Error)

	resp, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/admin/learning/module/%d", empty.ID), adminToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminCreateTaskWithContentAndSubmission(t *testing.T) {
	app := setupTest(t)
	_, adminToken := createUser(t, "Admin", "admin@test.local", models.RoleAdmin)

	path := learning.LearningPath{Title: "HTML Fundamentals", Description: "Web basics", IsActive: true}
	require.NoError(t, database.Database.Db.Create(&path).Error)
	module := learning.Module{LearningPathID: path.ID, Title: "Document Structure", Description: "Module", OrderIndex: 1}
	require.NoError(t, database.Database.Db.Create(&module).Error)

	body := map[string]interface{}{
		"title":             "Build a landing page",
		"description":       "Apply the lessons",
		"estimated_minutes": 90,
		"contents": []map[string]interface{}{
			{"content_type": learning.ContentText, "text_content": "Read the layout guide", "order_index": 1},
			{"content_type": learning.ContentVideo, "video_url": "https://videos.example.com/layout", "order_index": 2},
			{"content_type": learning.ContentLink, "link_url": "https://developer.mozilla.org", "link_title": "MDN", "order_index": 3},
		},
		"submission": map[string]interface{}{
			"submission_type": learning.SubmissionGithubRepo,
			"instructions":    "Push the page and share the repository link",
			"is_required":     true,
		},
	}

	resp, parsed := doRequest(t, app, "POST", fmt.Sprintf("/admin/learning/module/%d/task", module.ID), adminToken, body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := parsed["data"].(map[string]interface{})
	taskID := uint(data["ID"].(float64))

	var contents []learning.TaskContent
	require.NoError(t, database.Database.Db.Where("task_id = ? AND is_deleted = ?", taskID, false).
		Order("order_index asc").Find(&contents).Error)
	require.Len(t, contents, 3)
	assert.Equal(t, learning.ContentText, contents[0].ContentType)
	assert.Equal(t, learning.ContentVideo, contents[1].ContentType)
	assert.Equal(t, "MDN", contents[2].LinkTitle)

	var requirement learning.SubmissionRequirement
	require.NoError(t, database.Database.Db.Where("task_id = ?", taskID).First(&requirement).Error)
	assert.Equal(t, learning.SubmissionGithubRepo, requirement.SubmissionType)
	assert.True(t, requirement.IsRequired)
}

func TestAdminCreateTaskContentValidation(t *testing.T) {
	app := setupTest(t)
	_, adminToken := createUser(t, "Admin", "admin@test.local", models.RoleAdmin)

	path := learning.LearningPath{Title: "HTML Fundamentals", Description: "Web basics", IsActive: true}
	require.NoError(t, database.Database.Db.Create(&path).Error)
	module := learning.Module{LearningPathID: path.ID, Title: "Document Structure", Description: "Module", OrderIndex: 1}
	require.NoError(t, database.Database.Db.Create(&module).Error)

	// A VIDEO block without a URL is rejected before anything is written
	body := map[string]interface{}{
		"title":       "Broken task",
		"description": "Bad content",
		"contents": []map[string]interface{}{
			{"content_type": learning.ContentVideo, "order_index": 1},
		},
	}

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/admin/learning/module/%d/task", module.ID), adminToken, body)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&learning.Task{}).Count(&count)
	assert.Equal(t, int64(0), count)
	database.Database.Db.Model(&learning.TaskContent{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAdminCreateTaskWithoutSubmission(t *testing.T) {
	app := setupTest(t)
	_, adminToken := createUser(t, "Admin", "admin@test.local", models.RoleAdmin)

	path := learning.LearningPath{Title: "HTML Fundamentals", Description: "Web basics", IsActive: true}
	require.NoError(t, database.Database.Db.Create(&path).Error)
	module := learning.Module{LearningPathID: path.ID, Title: "Document Structure", Description: "Module", OrderIndex: 1}
	require.NoError(t, database.Database.Db.Create(&module).Error)

	body := map[string]interface{}{
		"title":       "Reading task",
		"description": "Just read",
		"submission": map[string]interface{}{
			"submission_type": learning.SubmissionNone,
		},
	}

	resp, parsed := doRequest(t, app, "POST", fmt.Sprintf("/admin/learning/module/%d/task", module.ID), adminToken, body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := parsed["data"].(map[string]interface{})
	taskID := uint(data["ID"].(float64))

	var count int64
	database.Database.Db.Model(&learning.SubmissionRequirement{}).Where("task_id = ?", taskID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAdminUpdateTaskReplacesContents(t *testing.T) {
	app := setupTest(t)
	_, adminToken := createUser(t, "Admin", "admin@test.local", models.RoleAdmin)

	_, tasks := seedPath(t, []int{1})
	task := tasks[0]

	require.NoError(t, database.Database.Db.Create(&learning.TaskContent{
		TaskID:      task.ID,
		ContentType: learning.ContentText,
		TextContent: "Old text",
		OrderIndex:  1,
	}).Error)

	body := map[string]interface{}{
		"title":       "Refreshed task",
		"description": "New description",
		"contents": []map[string]interface{}{
			{"content_type": learning.ContentCode, "text_content": "<html></html>", "order_index": 1},
		},
	}

	resp, _ := doRequest(t, app, "PUT", fmt.Sprintf("/admin/learning/task/%d", task.ID), adminToken, body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var contents []learning.TaskContent
	require.NoError(t, database.Database.Db.Where("task_id = ? AND is_deleted = ?", task.ID, false).Find(&contents).Error)
	require.Len(t, contents, 1)
	assert.Equal(t, learning.ContentCode, contents[0].ContentType)

	var old []learning.TaskContent
	require.NoError(t, database.Database.Db.Where("task_id = ? AND is_deleted = ?", task.ID, true).Find(&old).Error)
	assert.Len(t, old, 1)
}

func TestAdminDeleteTaskRecomputesProgress(t *testing.T) {
	app := setupTest(t)
	_, adminToken := createUser(t, "Admin", "admin@test.local", models.RoleAdmin)
	intern, internToken := createUser(t, "Sam", "sam@test.local", models.RoleIntern)

	path, tasks := seedPath(t, []int{2})
	assignToPath(t, intern.ID, path.ID)

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/learning/task/%d/complete", tasks[0].ID), internToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, 50, pathPercent(t, intern.ID, path.ID))

	// Removing the incomplete task leaves only completed work
	resp, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/admin/learning/task/%d", tasks[1].ID), adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, 100, pathPercent(t, intern.ID, path.ID))
}

func TestAdminGetInternProgress(t *testing.T) {
	app := setupTest(t)
	_, adminToken := createUser(t, "Admin", "admin@test.local", models.RoleAdmin)
	intern, internToken := createUser(t, "Sam", "sam@test.local", models.RoleIntern)

	path, tasks := seedPath(t, []int{2, 1})
	assignToPath(t, intern.ID, path.ID)

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/learning/task/%d/complete", tasks[0].ID), internToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, parsed := doRequest(t, app, "GET", fmt.Sprintf("/admin/intern/%d/progress", intern.ID), adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := parsed["data"].(map[string]interface{})
	paths := data["paths"].([]interface{})
	require.Len(t, paths, 1)

	summary := paths[0].(map[string]interface{})
	assert.Equal(t, float64(33), summary["progress_percent"])
	assert.Equal(t, float64(1), summary["completed_tasks"])
	assert.Equal(t, float64(3), summary["total_tasks"])
}
