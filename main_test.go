package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"staffdir/internal/config"
	"staffdir/internal/database"
	"staffdir/internal/services"
)

// MockPublisher records directory events instead of sending them to RabbitMQ.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishEvent(eventType string, payload interface{}) error {
	args := m.Called(eventType, payload)
	return args.Error(0)
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestApp(t *testing.T, publisher services.EventPublisher) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		AppPort:        ":0",
		DatabaseDriver: "sqlite",
		DatabaseDSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		JWTSecret:      "test_jwt_secret",
		JWTTTL:         3 * time.Hour,
	}
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	require.NoError(t, err)

	app, err := NewApp(cfg, db, publisher)
	require.NoError(t, err)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestNewAppRequiresSecret(t *testing.T) {
	_, err := NewApp(&config.Config{JWTTTL: time.Hour}, nil, nil)
	assert.ErrorIs(t, err, services.ErrMissingSecret)
}

func TestHealthAndMetrics(t *testing.T) {
	app := newTestApp(t, nil)

	resp, body := doJSON(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"healthy"`)

	// Unauthenticated access to the employee routes is refused
	resp, body = doJSON(t, app, http.MethodGet, "/employees/getAll", "", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(body), "No token provided, access denied.")

	resp, body = doJSON(t, app, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	exposition := string(body)
	assert.Contains(t, exposition, "staffdir_http_requests_total")
	assert.True(t, strings.Contains(exposition, `staffdir_auth_token_rejections_total{reason="missing"} 1`), exposition)
}

// TestDirectoryScenario walks the registration, login and employee flow end to end.
func TestDirectoryScenario(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("PublishEvent", services.EventUserRegistered, mock.Anything).Return(nil).Once()
	publisher.On("PublishEvent", services.EventEmployeeCreated, mock.Anything).Return(nil).Once()
	app := newTestApp(t, publisher)

	resp, body := doJSON(t, app, http.MethodPost, "/users/create", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "secret1", "phoneNumber": "1234567890", "gender": "Female",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotContains(t, string(body), "secret1")
	assert.NotContains(t, string(body), "password")

	resp, body = doJSON(t, app, http.MethodPost, "/users/login", "", map[string]string{
		"email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Token    string `json:"token"`
		UserID   string `json:"userId"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(body, &login))
	assert.Equal(t, "Alice", login.Username)

	resp, body = doJSON(t, app, http.MethodPost, "/employees/create", login.Token, map[string]interface{}{
		"name": "Bob", "email": "bob@x.com", "gender": "Male", "age": 30, "role": "Developer",
		"phoneNumber": "9876543210", "joiningDate": "01/01/2024", "adminId": "not-alice",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var bob map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &bob))
	assert.Equal(t, login.UserID, bob["adminId"])

	resp, body = doJSON(t, app, http.MethodGet, "/employees/getAll", login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var employees []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &employees))
	require.Len(t, employees, 1)
	assert.Equal(t, "Bob", employees[0]["name"])

	// A forged token is rejected with the generic message
	forged := login.Token[:len(login.Token)-10] + "AAAAAAAAAA"
	resp, body = doJSON(t, app, http.MethodGet, "/employees/getAll", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(body), "Invalid or expired token.")

	publisher.AssertExpectations(t)
}
