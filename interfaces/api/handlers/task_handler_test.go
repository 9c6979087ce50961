package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"family-planner/application/serviceimpl"
	"family-planner/domain/dto"
	"family-planner/domain/models"
	"family-planner/infrastructure/postgres"
	"family-planner/interfaces/api/handlers"
	"family-planner/interfaces/api/middleware"
	"family-planner/interfaces/api/routes"
	"family-planner/pkg/utils"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "planner_test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	h := handlers.NewHandlers(&handlers.Services{
		TaskService:      serviceimpl.NewTaskService(taskRepo, userRepo),
		BootstrapService: serviceimpl.NewBootstrapService(userRepo, taskRepo),
	})

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestIDMiddleware())
	routes.SetupRoutes(app, h)

	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, name string, role models.Role) uint {
	t.Helper()
	user := models.User{Name: name, Email: name + "@example.com", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeTask(t *testing.T, resp *http.Response) dto.TaskResponse {
	t.Helper()

	var env struct {
		Success bool             `json:"success"`
		Data    dto.TaskResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.True(t, env.Success)
	return env.Data
}

func decodeError(t *testing.T, resp *http.Response) utils.ErrorInfo {
	t.Helper()

	var env struct {
		Success bool            `json:"success"`
		Error   utils.ErrorInfo `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.False(t, env.Success)
	return env.Error
}

func decodeBootstrap(t *testing.T, resp *http.Response) dto.BootstrapResponse {
	t.Helper()

	var boot dto.BootstrapResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&boot))
	return boot
}

func TestCreateTaskDefaultsToTodo(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{
		"title":    "Dishes",
		"dueDay":   "monday",
		"priority": "low",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	task := decodeTask(t, resp)
	assert.Equal(t, "Dishes", task.Title)
	assert.Equal(t, "todo", task.Status)
	assert.Nil(t, task.AssignedToUserID)
}

func TestCreateTaskRejectsBadDueDay(t *testing.T) {
	app, db := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{
		"title":    "Dishes",
		"dueDay":   "funday",
		"priority": "low",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	errInfo := decodeError(t, resp)
	assert.Equal(t, utils.ErrCodeValidation, errInfo.Code)
	details, ok := errInfo.Details.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "dueDay")

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	assert.Zero(t, count, "no row may be created on validation failure")
}

func TestCreateTaskValidationMessages(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name  string
		body  fiber.Map
		field string
	}{
		{"missing title", fiber.Map{"dueDay": "monday", "priority": "low"}, "title"},
		{"bad priority", fiber.Map{"title": "Dishes", "dueDay": "monday", "priority": "urgent"}, "priority"},
		{"bad status", fiber.Map{"title": "Dishes", "dueDay": "monday", "priority": "low", "status": "paused"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/tasks", tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

			errInfo := decodeError(t, resp)
			details, ok := errInfo.Details.(map[string]any)
			require.True(t, ok)
			assert.Contains(t, details, tt.field)
		})
	}
}

func TestCreateTaskRejectsDanglingAssignee(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{
		"title":            "Dishes",
		"dueDay":           "monday",
		"priority":         "low",
		"assignedToUserId": 999,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	errInfo := decodeError(t, resp)
	details, ok := errInfo.Details.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "assignedToUserId")
}

func TestPatchStatusLeavesOtherFieldsAlone(t *testing.T) {
	app, db := newTestApp(t)
	momID := seedUser(t, db, "Mom", models.RoleMom)

	resp := doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{
		"title":            "Laundry",
		"description":      "Wash, dry, and fold clothes",
		"dueDay":           "friday",
		"priority":         "medium",
		"assignedToUserId": momID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeTask(t, resp)

	resp = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/tasks/%d", created.ID), fiber.Map{
		"status": "doing",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decodeTask(t, resp)
	assert.Equal(t, "doing", updated.Status)
	assert.Equal(t, "Laundry", updated.Title)
	assert.Equal(t, "Wash, dry, and fold clothes", updated.Description)
	assert.Equal(t, "friday", updated.DueDay)
	assert.Equal(t, "medium", updated.Priority)
	require.NotNil(t, updated.AssignedToUserID)
	assert.Equal(t, momID, *updated.AssignedToUserID)
}

func TestPatchNullAssigneeReleasesTask(t *testing.T) {
	app, db := newTestApp(t)
	momID := seedUser(t, db, "Mom", models.RoleMom)

	resp := doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{
		"title":            "Laundry",
		"dueDay":           "friday",
		"priority":         "medium",
		"assignedToUserId": momID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeTask(t, resp)
	require.NotNil(t, created.AssignedToUserID)

	// An explicit null through the generic patch releases the task, the
	// same way the dedicated assignee endpoint does.
	resp = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/tasks/%d", created.ID), fiber.Map{
		"assignedToUserId": nil,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	released := decodeTask(t, resp)
	assert.Nil(t, released.AssignedToUserID)

	var stored models.Task
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Nil(t, stored.AssignedToUserID)
}

func TestPatchRejectsDanglingAssignee(t *testing.T) {
	app, db := newTestApp(t)
	momID := seedUser(t, db, "Mom", models.RoleMom)

	resp := doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{
		"title":            "Laundry",
		"dueDay":           "friday",
		"priority":         "medium",
		"assignedToUserId": momID,
	})
	created := decodeTask(t, resp)

	resp = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/tasks/%d", created.ID), fiber.Map{
		"assignedToUserId": 999,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var stored models.Task
	require.NoError(t, db.First(&stored, created.ID).Error)
	require.NotNil(t, stored.AssignedToUserID)
	assert.Equal(t, momID, *stored.AssignedToUserID)
}

func TestPatchUnknownTaskIs404(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPatch, "/tasks/999", fiber.Map{"status": "done"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	errInfo := decodeError(t, resp)
	assert.Equal(t, utils.ErrCodeNotFound, errInfo.Code)
}

func TestStatusEndpointRejectsUnknownValue(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{
		"title":    "Dishes",
		"dueDay":   "monday",
		"priority": "low",
	})
	created := decodeTask(t, resp)

	resp = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/tasks/%d/status", created.ID), fiber.Map{
		"status": "paused",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAssigneeEndpointClearsAndSets(t *testing.T) {
	app, db := newTestApp(t)
	momID := seedUser(t, db, "Mom", models.RoleMom)

	resp := doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{
		"title":    "Take Out Trash",
		"dueDay":   "tuesday",
		"priority": "medium",
	})
	created := decodeTask(t, resp)

	// Claim it.
	resp = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/tasks/%d/assignee", created.ID), fiber.Map{
		"assignedToUserId": momID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	claimed := decodeTask(t, resp)
	require.NotNil(t, claimed.AssignedToUserID)
	assert.Equal(t, momID, *claimed.AssignedToUserID)

	// A dangling reference fails validation and changes nothing.
	resp = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/tasks/%d/assignee", created.ID), fiber.Map{
		"assignedToUserId": 999,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// Null releases it back to open.
	resp = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/tasks/%d/assignee", created.ID), fiber.Map{
		"assignedToUserId": nil,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	released := decodeTask(t, resp)
	assert.Nil(t, released.AssignedToUserID)
}

func TestTaskLifecycleEndToEnd(t *testing.T) {
	app, _ := newTestApp(t)

	// Create.
	resp := doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{
		"title":    "Dishes",
		"dueDay":   "monday",
		"priority": "low",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeTask(t, resp)
	assert.Equal(t, "todo", created.Status)
	assert.Nil(t, created.AssignedToUserID)

	// Complete it.
	resp = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/tasks/%d/status", created.ID), fiber.Map{
		"status": "done",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "done", decodeTask(t, resp).Status)

	// Delete it.
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/tasks/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// A second delete is a 404.
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/tasks/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Bootstrap no longer lists it.
	resp = doJSON(t, app, http.MethodGet, "/bootstrap", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	boot := decodeBootstrap(t, resp)
	for _, task := range boot.Tasks {
		assert.NotEqual(t, created.ID, task.ID)
	}
}

func TestBootstrapReturnsBareUsersAndTasks(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "Mom", models.RoleMom)
	seedUser(t, db, "Dad", models.RoleDad)

	resp := doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{
		"title":    "Grocery Shopping",
		"dueDay":   "monday",
		"priority": "high",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/bootstrap", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	boot := decodeBootstrap(t, resp)
	require.Len(t, boot.Users, 2)
	assert.Equal(t, "mom", boot.Users[0].Role)
	assert.Equal(t, "dad", boot.Users[1].Role)
	require.Len(t, boot.Tasks, 1)
	assert.Equal(t, "Grocery Shopping", boot.Tasks[0].Title)
}

func TestInvalidTaskIDIsBadRequest(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPatch, "/tasks/abc", fiber.Map{"status": "done"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
