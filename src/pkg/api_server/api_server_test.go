package api_server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"api.sahayatri.app/src/pkg/models/audit"
	"api.sahayatri.app/src/pkg/models/favourites"
	"api.sahayatri.app/src/pkg/models/user"
	"api.sahayatri.app/src/pkg/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	ctx := context.Background()

	test.SetupMockEnv()
	_, _, cleanup, err := test.MockMongoDB(ctx)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := favourites.EnsureIndexes(); err != nil {
		fmt.Println(err)
		cleanup()
		os.Exit(1)
	}

	// the per-client throttle would trip on a test that hammers /login
	AUTH_RATE_LIMIT = 1000

	gin.SetMode(gin.TestMode)
	router = gin.New()
	RegisterAllRoutes(router)

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func doJSON(t *testing.T, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		assert.Nil(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	response := map[string]interface{}{}
	if w.Body.Len() > 0 {
		assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

func register(t *testing.T, emailAddr string) {
	w, response := doJSON(t, http.MethodPost, "/register", gin.H{
		"firstName": "Api",
		"lastName":  "Tester",
		"email":     emailAddr,
		"password":  "Val1d@pw",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, response["success"], response["message"])
}

func login(t *testing.T, emailAddr, pw string) (bool, map[string]interface{}) {
	w, response := doJSON(t, http.MethodPost, "/login", gin.H{
		"email":    emailAddr,
		"password": pw,
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	success, _ := response["success"].(bool)
	return success, response
}

func TestRegisterValidation(t *testing.T) {
	// missing fields
	w, response := doJSON(t, http.MethodPost, "/register", gin.H{"email": "a@b.com"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Please enter all fields.", response["message"])

	// weak password
	_, response = doJSON(t, http.MethodPost, "/register", gin.H{
		"firstName": "Api",
		"lastName":  "Tester",
		"email":     "weak@test.com",
		"password":  "short",
	}, "")
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Password must be between 8 and 12 characters long.", response["message"])
}

func TestRegisterTwiceRejected(t *testing.T) {
	register(t, "twice@test.com")

	_, response := doJSON(t, http.MethodPost, "/register", gin.H{
		"firstName": "Api",
		"lastName":  "Tester",
		"email":     "twice@test.com",
		"password":  "0ther@Pw1",
	}, "")
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "User already exists.", response["message"])
}

func TestLoginFlow(t *testing.T) {
	register(t, "flow@test.com")

	success, response := login(t, "flow@test.com", "Wrong1@pw")
	assert.False(t, success)
	assert.Equal(t, float64(4), response["remainingAttempts"])

	success, response = login(t, "flow@test.com", "Val1d@pw")
	assert.True(t, success)
	assert.NotEmpty(t, response["token"])

	userData, ok := response["userData"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "flow@test.com", userData["email"])
	// the hash never leaves the API
	_, leaked := userData["passwordHash"]
	assert.False(t, leaked)
}

func TestPasswordStrengthEndpoint(t *testing.T) {
	_, response := doJSON(t, http.MethodPost, "/password_strength", gin.H{"password": "Aa1@aaaa"}, "")
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Strong", response["strength"])

	_, response = doJSON(t, http.MethodPost, "/password_strength", gin.H{"password": "abc"}, "")
	assert.Equal(t, "Fair", response["strength"])
}

func TestFavouriteEndpoints(t *testing.T) {
	register(t, "fav@test.com")
	_, response := login(t, "fav@test.com", "Val1d@pw")
	userData := response["userData"].(map[string]interface{})
	userID := userData["id"].(string)
	vehicleID := primitive.NewObjectID().Hex()

	_, response = doJSON(t, http.MethodPost, "/create_favourite", gin.H{
		"userId":    userID,
		"vehicleId": vehicleID,
	}, "")
	assert.Equal(t, true, response["success"], response["message"])

	_, response = doJSON(t, http.MethodPost, "/create_favourite", gin.H{
		"userId":    userID,
		"vehicleId": vehicleID,
	}, "")
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "You've already added it", response["message"])

	_, response = doJSON(t, http.MethodGet, "/get_favourite/"+userID+"?_page=1&_limit=10", nil, "")
	assert.Equal(t, true, response["success"])
	favs := response["favourites"].([]interface{})
	assert.Len(t, favs, 1)
}

func TestFeedbackEndpoints(t *testing.T) {
	vehicleID := primitive.NewObjectID().Hex()

	_, response := doJSON(t, http.MethodPost, "/create_feedback/"+vehicleID, gin.H{
		"feedback": "very comfortable seats",
	}, "")
	assert.Equal(t, true, response["success"], response["message"])

	_, response = doJSON(t, http.MethodGet, "/get_feedback/"+vehicleID, nil, "")
	assert.Equal(t, true, response["success"])
	feedbacks := response["feedbacks"].([]interface{})
	assert.Len(t, feedbacks, 1)
}

func TestUpdateUserRequiresAuth(t *testing.T) {
	w, _ := doJSON(t, http.MethodPost, "/update_user", gin.H{
		"firstName": "New",
		"lastName":  "Name",
		"email":     "whoever@test.com",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateUserAndAuditTrail(t *testing.T) {
	register(t, "update@test.com")
	_, response := login(t, "update@test.com", "Val1d@pw")
	token := response["token"].(string)
	userData := response["userData"].(map[string]interface{})
	userID, err := primitive.ObjectIDFromHex(userData["id"].(string))
	assert.Nil(t, err)

	_, response = doJSON(t, http.MethodPost, "/update_user", gin.H{
		"firstName": "Updated",
		"lastName":  "Name",
		"email":     "update@test.com",
	}, token)
	assert.Equal(t, true, response["success"], response["message"])

	updated := response["user"].(map[string]interface{})
	assert.Equal(t, "Updated", updated["firstName"])

	logs, err := audit.GetLogsForDocument(userID)
	assert.Nil(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, audit.OperationUpdate, logs[0].Operation)
	assert.Equal(t, user.UserCollection, logs[0].CollectionName)
	assert.Equal(t, "Api", logs[0].OldValue["firstName"])
	assert.Equal(t, "Updated", logs[0].NewValue["firstName"])
	// credentials are redacted from both snapshots
	_, leaked := logs[0].OldValue["passwordHash"]
	assert.False(t, leaked)
}

func TestPasswordReuseRejectedOnUpdate(t *testing.T) {
	register(t, "reuse@test.com")
	_, response := login(t, "reuse@test.com", "Val1d@pw")
	token := response["token"].(string)

	_, response = doJSON(t, http.MethodPost, "/update_user", gin.H{
		"firstName": "Api",
		"lastName":  "Tester",
		"email":     "reuse@test.com",
		"password":  "Val1d@pw",
	}, token)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "You cannot reuse a previous password.", response["message"])
}

func TestDeleteUserCascades(t *testing.T) {
	register(t, "delete@test.com")
	_, response := login(t, "delete@test.com", "Val1d@pw")
	token := response["token"].(string)
	userData := response["userData"].(map[string]interface{})
	userID := userData["id"].(string)

	_, response = doJSON(t, http.MethodPost, "/create_favourite", gin.H{
		"userId":    userID,
		"vehicleId": primitive.NewObjectID().Hex(),
	}, "")
	assert.Equal(t, true, response["success"])

	_, response = doJSON(t, http.MethodDelete, "/delete_user", nil, token)
	assert.Equal(t, true, response["success"], response["message"])

	w, _ := doJSON(t, http.MethodGet, "/get_user/"+userID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, response = doJSON(t, http.MethodGet, "/get_favourite/"+userID, nil, "")
	assert.Equal(t, true, response["success"])
	favs := response["favourites"].([]interface{})
	assert.Len(t, favs, 0)

	// the delete itself is in the audit trail
	id, err := primitive.ObjectIDFromHex(userID)
	assert.Nil(t, err)
	logs, err := audit.GetLogsForDocument(id)
	assert.Nil(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, audit.OperationDelete, logs[0].Operation)
	assert.Equal(t, "delete@test.com", logs[0].OldValue["email"])
}
