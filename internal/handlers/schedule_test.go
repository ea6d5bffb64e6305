package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

type ScheduleHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *ScheduleHandler
}

func (suite *ScheduleHandlerTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{}, &models.Class{})
	suite.Require().NoError(err)

	suite.handler = NewScheduleHandler(services.NewScheduleService(repository.NewClassRepository(suite.db)))

	gin.SetMode(gin.TestMode)
}

func (suite *ScheduleHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ScheduleHandlerTestSuite) createUser(email string) *models.User {
	user := &models.User{Email: email, PasswordHash: "hashedpassword"}
	suite.db.Create(user)
	return user
}

func (suite *ScheduleHandlerTestSuite) createClass(userID uint64, subject string, day models.DayOfWeek, start string) *models.Class {
	class := &models.Class{
		UserID:         userID,
		SubjectName:    subject,
		DayOfWeek:      day,
		StartTime:      start,
		EndTime:        "23:00",
		SemesterYear:   2026,
		SemesterPeriod: "Otoño",
	}
	suite.db.Create(class)
	return class
}

func (suite *ScheduleHandlerTestSuite) authContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
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

func (suite *ScheduleHandlerTestSuite) TestListClasses_OrderedByDayThenStart() {
	user := suite.createUser("ana@example.com")
	suite.createClass(user.ID, "Física", models.Friday, "08:00")
	suite.createClass(user.ID, "Cálculo tarde", models.Monday, "16:00")
	suite.createClass(user.ID, "Cálculo mañana", models.Monday, "08:00")

	c, w := suite.authContext("GET", "/api/schedule", nil, user.ID)
	suite.handler.ListClasses(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	classes := response["data"].([]interface{})
	suite.Require().Len(classes, 3)
	assert.Equal(suite.T(), "Cálculo mañana", classes[0].(map[string]interface{})["subjectName"])
	assert.Equal(suite.T(), "Cálculo tarde", classes[1].(map[string]interface{})["subjectName"])
	assert.Equal(suite.T(), "Física", classes[2].(map[string]interface{})["subjectName"])
}

func (suite *ScheduleHandlerTestSuite) TestCreateClass_Success() {
	user := suite.createUser("ana@example.com")

	body, _ := json.Marshal(map[string]interface{}{
		"subjectName": "Química",
		"dayOfWeek":   2,
		"startTime":   "10:00",
		"endTime":     "12:00",
		"location":    "Lab 4",
	})
	c, w := suite.authContext("POST", "/api/schedule", body, user.ID)
	suite.handler.CreateClass(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Clase creada", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(2), data["dayOfWeek"])
	assert.Equal(suite.T(), "Otoño", data["semesterPeriod"])
	assert.Equal(suite.T(), "Lab 4", data["location"])
}

func (suite *ScheduleHandlerTestSuite) TestCreateClass_SundayIsValidDay() {
	user := suite.createUser("ana@example.com")

	body, _ := json.Marshal(map[string]interface{}{
		"subjectName": "Taller",
		"dayOfWeek":   0,
		"startTime":   "09:00",
		"endTime":     "11:00",
	})
	c, w := suite.authContext("POST", "/api/schedule", body, user.ID)
	suite.handler.CreateClass(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestCreateClass_DayOutOfRange() {
	user := suite.createUser("ana@example.com")

	body, _ := json.Marshal(map[string]interface{}{
		"subjectName": "Química",
		"dayOfWeek":   7,
		"startTime":   "10:00",
		"endTime":     "12:00",
	})
	c, w := suite.authContext("POST", "/api/schedule", body, user.ID)
	suite.handler.CreateClass(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestCreateClass_MissingDay() {
	user := suite.createUser("ana@example.com")

	body, _ := json.Marshal(map[string]interface{}{
		"subjectName": "Química",
		"startTime":   "10:00",
		"endTime":     "12:00",
	})
	c, w := suite.authContext("POST", "/api/schedule", body, user.ID)
	suite.handler.CreateClass(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestUpdateClass_SparseUpdate() {
	user := suite.createUser("ana@example.com")
	class := suite.createClass(user.ID, "Química", models.Tuesday, "10:00")

	body := []byte(`{"location":"Lab 7"}`)
	c, w := suite.authContext("PUT", "/api/schedule/1", body, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.UpdateClass(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var stored models.Class
	suite.Require().NoError(suite.db.First(&stored, class.ID).Error)
	assert.Equal(suite.T(), "Química", stored.SubjectName)
	suite.Require().NotNil(stored.Location)
	assert.Equal(suite.T(), "Lab 7", *stored.Location)
}

func (suite *ScheduleHandlerTestSuite) TestUpdateClass_NotOwned() {
	owner := suite.createUser("owner@example.com")
	intruder := suite.createUser("intruder@example.com")
	suite.createClass(owner.ID, "Ajena", models.Monday, "08:00")

	body := []byte(`{"subjectName":"Robada"}`)
	c, w := suite.authContext("PUT", "/api/schedule/1", body, intruder.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.UpdateClass(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestDeleteClass_Success() {
	user := suite.createUser("ana@example.com")
	class := suite.createClass(user.ID, "Química", models.Tuesday, "10:00")

	c, w := suite.authContext("DELETE", "/api/schedule/1", nil, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.DeleteClass(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Class{}).Where("id = ?", class.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *ScheduleHandlerTestSuite) TestClearSemester_ReportsCountAndScopesToOwner() {
	user := suite.createUser("ana@example.com")
	other := suite.createUser("otro@example.com")
	suite.createClass(user.ID, "Una", models.Monday, "08:00")
	suite.createClass(user.ID, "Dos", models.Tuesday, "08:00")
	foreign := suite.createClass(other.ID, "Ajena", models.Monday, "08:00")

	c, w := suite.authContext("DELETE", "/api/schedule", nil, user.ID)
	suite.handler.ClearSemester(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Semestre limpiado", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(2), data["deleted"])

	var count int64
	suite.db.Model(&models.Class{}).Where("id = ?", foreign.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *ScheduleHandlerTestSuite) TestClearSemester_EmptyIsSuccess() {
	user := suite.createUser("ana@example.com")

	c, w := suite.authContext("DELETE", "/api/schedule", nil, user.ID)
	suite.handler.ClearSemester(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), data["deleted"])
}

func TestScheduleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}
