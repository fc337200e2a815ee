package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quitly/quitly/internal/db"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecretKey  = "test-secret-key"
	testServiceKey = "test-service-key"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "quitly-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	keyHash, err := bcrypt.GenerateFromPassword([]byte(testServiceKey), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash service key: %v", err)
	}

	handler := NewHandler(database, testSecretKey, string(keyHash), time.Hour, time.UTC)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func obtainServiceToken(t *testing.T, app *fiber.App) string {
	t.Helper()

	body := decodeJSONResponse(t, performJSON(t, app, http.MethodPost, "/api/auth/token", "",
		map[string]any{"service_key": testServiceKey}, http.StatusOK))
	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatalf("expected token in response, got %#v", body)
	}
	return token
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any, expectedStatus int) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	if response.StatusCode != expectedStatus {
		raw, _ := io.ReadAll(response.Body)
		t.Fatalf("%s %s expected status %d, got %d (body: %s)", method, path, expectedStatus, response.StatusCode, raw)
	}
	return response
}

func decodeJSONResponse(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return decoded
}

func decodeJSONListResponse(t *testing.T, response *http.Response) []map[string]any {
	t.Helper()
	defer response.Body.Close()

	decoded := []map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	return decoded
}
