package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartunibot/unibot-api/internal/constants"
	"github.com/smartunibot/unibot-api/internal/models"
	"github.com/smartunibot/unibot-api/internal/repository"
	"github.com/smartunibot/unibot-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type TaskHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *TaskHandler
}

func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{}, &models.Task{})
	suite.Require().NoError(err)

	suite.handler = NewTaskHandler(services.NewTaskService(repository.NewTaskRepository(suite.db)))

	gin.SetMode(gin.TestMode)
}

func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskHandlerTestSuite) createTestUser(email string) *models.User {
	user := &models.User{Email: email, PasswordHash: "hashedpassword"}
	suite.db.Create(user)
	return user
}

func (suite *TaskHandlerTestSuite) createTestTask(title string, userID uint64, due time.Time) *models.Task {
	task := &models.Task{
		Title:    title,
		UserID:   userID,
		DueDate:  due,
		Priority: models.PriorityMedium,
	}
	suite.db.Create(task)
	return task
}

func (suite *TaskHandlerTestSuite) createAuthContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)
	return c, w
}

func (suite *TaskHandlerTestSuite) TestListTasks_OnlyOwnTasksDueDateOrdered() {
	user := suite.createTestUser("ana@example.com")
	other := suite.createTestUser("otro@example.com")
	suite.createTestTask("later", user.ID, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC))
	suite.createTestTask("sooner", user.ID, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	suite.createTestTask("foreign", other.ID, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))

	c, w := suite.createAuthContext("GET", "/api/tasks", nil, user.ID)
	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	tasks := response["data"].([]interface{})
	suite.Require().Len(tasks, 2)
	assert.Equal(suite.T(), "sooner", tasks[0].(map[string]interface{})["title"])
	assert.Equal(suite.T(), "later", tasks[1].(map[string]interface{})["title"])
}

func (suite *TaskHandlerTestSuite) TestListTasks_PendingFilter() {
	user := suite.createTestUser("ana@example.com")
	done := suite.createTestTask("done", user.ID, time.Now())
	done.IsCompleted = true
	suite.db.Save(done)
	suite.createTestTask("open", user.ID, time.Now())

	c, w := suite.createAuthContext("GET", "/api/tasks?filter=pending", nil, user.ID)
	c.Request.URL.RawQuery = "filter=pending"
	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	tasks := response["data"].([]interface{})
	suite.Require().Len(tasks, 1)
	assert.Equal(suite.T(), "open", tasks[0].(map[string]interface{})["title"])
}

func (suite *TaskHandlerTestSuite) TestListTasks_UnknownFilter() {
	user := suite.createTestUser("ana@example.com")

	c, w := suite.createAuthContext("GET", "/api/tasks", nil, user.ID)
	c.Request.URL.RawQuery = "filter=urgentes"
	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_DefaultsPriorityAndPending() {
	user := suite.createTestUser("ana@example.com")

	body, _ := json.Marshal(map[string]interface{}{
		"title":   "Ensayo final",
		"dueDate": "2026-09-15",
	})
	c, w := suite.createAuthContext("POST", "/api/tasks", body, user.ID)
	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), "Media", data["priority"])
	assert.Equal(suite.T(), false, data["isCompleted"])
	assert.Nil(suite.T(), data["completedAt"])
	assert.Equal(suite.T(), "2026-09-15", data["dueDate"])
}

func (suite *TaskHandlerTestSuite) TestCreateTask_MissingDueDate() {
	user := suite.createTestUser("ana@example.com")

	body, _ := json.Marshal(map[string]interface{}{"title": "Sin fecha"})
	c, w := suite.createAuthContext("POST", "/api/tasks", body, user.ID)
	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_RejectsUnknownPriority() {
	user := suite.createTestUser("ana@example.com")

	body, _ := json.Marshal(map[string]interface{}{
		"title":    "Ensayo",
		"dueDate":  "2026-09-15",
		"priority": "Urgentísima",
	})
	c, w := suite.createAuthContext("POST", "/api/tasks", body, user.ID)
	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_AbsentFieldsUntouched() {
	user := suite.createTestUser("ana@example.com")
	desc := "descripción original"
	task := suite.createTestTask("Original", user.ID, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))
	task.Description = &desc
	suite.db.Save(task)

	body := []byte(`{"title":"Renombrada"}`)
	c, w := suite.createAuthContext("PUT", "/api/tasks/1", body, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	assert.Equal(suite.T(), "Renombrada", stored.Title)
	suite.Require().NotNil(stored.Description)
	assert.Equal(suite.T(), "descripción original", *stored.Description)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_NullClearsDescription() {
	user := suite.createTestUser("ana@example.com")
	desc := "se borra"
	task := suite.createTestTask("Tarea", user.ID, time.Now())
	task.Description = &desc
	suite.db.Save(task)

	body := []byte(`{"description":null}`)
	c, w := suite.createAuthContext("PUT", "/api/tasks/1", body, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	assert.Nil(suite.T(), stored.Description)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_CompletionTogglesTimestamp() {
	user := suite.createTestUser("ana@example.com")
	task := suite.createTestTask("Tarea", user.ID, time.Now())

	body := []byte(`{"isCompleted":true}`)
	c, w := suite.createAuthContext("PUT", "/api/tasks/1", body, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.UpdateTask(c)
	suite.Require().Equal(http.StatusOK, w.Code)

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	suite.Require().True(stored.IsCompleted)
	suite.Require().NotNil(stored.CompletedAt)

	body = []byte(`{"isCompleted":false}`)
	c, w = suite.createAuthContext("PUT", "/api/tasks/1", body, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.UpdateTask(c)
	suite.Require().Equal(http.StatusOK, w.Code)

	// Read into a fresh struct: GORM leaves stale field values in place
	// when scanning a NULL column into an already-populated destination.
	var reloaded models.Task
	suite.Require().NoError(suite.db.First(&reloaded, task.ID).Error)
	assert.False(suite.T(), reloaded.IsCompleted)
	assert.Nil(suite.T(), reloaded.CompletedAt)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_NotOwned() {
	owner := suite.createTestUser("owner@example.com")
	intruder := suite.createTestUser("intruder@example.com")
	task := suite.createTestTask("Ajena", owner.ID, time.Now())

	body := []byte(`{"title":"Robada"}`)
	c, w := suite.createAuthContext("PUT", "/api/tasks/1", body, intruder.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.UpdateTask(c)

	// Not-owned and nonexistent are indistinguishable to the caller.
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	assert.Equal(suite.T(), "Ajena", stored.Title)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_Success() {
	user := suite.createTestUser("ana@example.com")
	task := suite.createTestTask("A eliminar", user.ID, time.Now())

	c, w := suite.createAuthContext("DELETE", "/api/tasks/1", nil, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.DeleteTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Task{}).Where("id = ?", task.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_NotOwnedLeavesRow() {
	owner := suite.createTestUser("owner@example.com")
	intruder := suite.createTestUser("intruder@example.com")
	task := suite.createTestTask("Ajena", owner.ID, time.Now())

	c, w := suite.createAuthContext("DELETE", "/api/tasks/1", nil, intruder.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.DeleteTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var count int64
	suite.db.Model(&models.Task{}).Where("id = ?", task.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
