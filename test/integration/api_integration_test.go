package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"sakhi-support-be/internal/bootstrap"
	"sakhi-support-be/internal/config"
	"sakhi-support-be/internal/server"
	"sakhi-support-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "integration_test_secret")
	}

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	return srv.GetApp()
}

func decodeBody(t *testing.T, resp io.Reader) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	raw, err := io.ReadAll(resp)
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestAuthRegisterLoginFlow(t *testing.T) {
	app := setupApp(t)

	email := fmt.Sprintf("it-%d@example.com", time.Now().UnixNano())
	username := fmt.Sprintf("ituser%d", time.Now().UnixNano())
	password := "Integration1!"

	// Register
	registerPayload, _ := json.Marshal(map[string]string{
		"email":    email,
		"username": username,
		"password": password,
	})
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader(registerPayload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 15000)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	// Login
	loginPayload, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	req = httptest.NewRequest("POST", "/auth/login", bytes.NewReader(loginPayload))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 15000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	data := body["data"].(map[string]interface{})
	accessToken := data["access_token"].(string)
	assert.NotEmpty(t, accessToken)
	assert.Equal(t, "bearer", data["token_type"])

	// Current user
	req = httptest.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	resp, err = app.Test(req, 15000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body = decodeBody(t, resp.Body)
	me := body["data"].(map[string]interface{})
	assert.Equal(t, email, me["email"])
}

func TestReportLifecycle(t *testing.T) {
	app := setupApp(t)

	// Submit a report with one attachment
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("name", "Integration Reporter")
	_ = writer.WriteField("email", "reporter@example.com")
	_ = writer.WriteField("subject", "Integration subject")
	_ = writer.WriteField("description", "Integration description")
	part, err := writer.CreateFormFile("files", "evidence.txt")
	assert.NoError(t, err)
	_, _ = part.Write([]byte("evidence content"))
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/reports", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req, 15000)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	data := body["data"].(map[string]interface{})
	reportId := data["id"].(string)
	assert.Equal(t, "pending", data["status"])

	files := data["files"].([]interface{})
	assert.Len(t, files, 1)
	fileMeta := files[0].(map[string]interface{})
	assert.Equal(t, "evidence.txt", fileMeta["name"])

	// Download the attachment back
	req = httptest.NewRequest("GET", fmt.Sprintf("/api/reports/%s/files/%s", reportId, fileMeta["id"]), nil)
	resp, err = app.Test(req, 15000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	content, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "evidence content", string(content))

	// Triage it
	statusPayload, _ := json.Marshal(map[string]string{"status": "reviewed"})
	req = httptest.NewRequest("PATCH", fmt.Sprintf("/api/reports/%s/status", reportId), bytes.NewReader(statusPayload))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 15000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// Invalid status is rejected
	badPayload, _ := json.Marshal(map[string]string{"status": "archived"})
	req = httptest.NewRequest("PATCH", fmt.Sprintf("/api/reports/%s/status", reportId), bytes.NewReader(badPayload))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 15000)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	// Search finds it
	req = httptest.NewRequest("GET", "/api/reports?search=Integration+subject", nil)
	resp, err = app.Test(req, 15000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body = decodeBody(t, resp.Body)
	results := body["data"].([]interface{})
	found := false
	for _, r := range results {
		if strings.EqualFold(r.(map[string]interface{})["id"].(string), reportId) {
			found = true
		}
	}
	assert.True(t, found)

	// Stats include it
	req = httptest.NewRequest("GET", "/api/reports/stats/summary", nil)
	resp, err = app.Test(req, 15000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// Clean up
	req = httptest.NewRequest("DELETE", "/api/reports/"+reportId, nil)
	resp, err = app.Test(req, 15000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
