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

type ChatHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *ChatHandler
}

func (suite *ChatHandlerTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{}, &models.Task{}, &models.Class{})
	suite.Require().NoError(err)

	scheduleService := services.NewScheduleService(repository.NewClassRepository(suite.db))
	taskService := services.NewTaskService(repository.NewTaskRepository(suite.db))
	// No AI provider configured in tests.
	suite.handler = NewChatHandler(scheduleService, taskService, nil)

	gin.SetMode(gin.TestMode)
}

func (suite *ChatHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ChatHandlerTestSuite) createUser(email string) *models.User {
	user := &models.User{Email: email, PasswordHash: "hashedpassword"}
	suite.db.Create(user)
	return user
}

func (suite *ChatHandlerTestSuite) postMessage(url, message string, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	body, err := json.Marshal(map[string]string{"message": message})
	suite.Require().NoError(err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)
	return c, w
}

func (suite *ChatHandlerTestSuite) TestQuery_PendingTasksFromStore() {
	user := suite.createUser("ana@example.com")
	suite.db.Create(&models.Task{
		UserID:   user.ID,
		Title:    "Ensayo de historia",
		DueDate:  time.Now().AddDate(0, 0, 2),
		Priority: models.PriorityMedium,
	})

	c, w := suite.postMessage("/api/chatbot/query", "¿Cuántas tareas pendientes tengo?", user.ID)
	suite.handler.Query(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	reply := response["data"].(map[string]interface{})["response"].(string)
	assert.Contains(suite.T(), reply, "1 tarea(s)")
	assert.Contains(suite.T(), reply, "Ensayo de historia")
}

func (suite *ChatHandlerTestSuite) TestQuery_OnlyCallerRows() {
	user := suite.createUser("ana@example.com")
	other := suite.createUser("otro@example.com")
	suite.db.Create(&models.Task{
		UserID:   other.ID,
		Title:    "Tarea ajena",
		DueDate:  time.Now().AddDate(0, 0, 2),
		Priority: models.PriorityMedium,
	})

	c, w := suite.postMessage("/api/chatbot/query", "tareas pendientes", user.ID)
	suite.handler.Query(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	reply := response["data"].(map[string]interface{})["response"].(string)
	assert.NotContains(suite.T(), reply, "Tarea ajena")
	assert.Contains(suite.T(), reply, "No tienes tareas pendientes")
}

func (suite *ChatHandlerTestSuite) TestQuery_MissingMessage() {
	user := suite.createUser("ana@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/chatbot/query", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, user.ID)

	suite.handler.Query(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ChatHandlerTestSuite) TestChat_UnconfiguredProvider() {
	user := suite.createUser("ana@example.com")

	c, w := suite.postMessage("/api/chat", "hola", user.ID)
	suite.handler.Chat(c)

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), false, response["success"])
}

func TestChatHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ChatHandlerTestSuite))
}
