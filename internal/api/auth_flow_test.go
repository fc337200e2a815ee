package api

import (
	"net/http"
	"testing"
)

func TestAPIRoutesRequireBearerToken(t *testing.T) {
	app := newTestApp(t)

	performJSON(t, app, http.MethodPost, "/api/users", "",
		map[string]any{"id": 42}, http.StatusUnauthorized)
	performJSON(t, app, http.MethodGet, "/api/users/42/stats", "", nil, http.StatusUnauthorized)
	performJSON(t, app, http.MethodGet, "/api/users/42/stats", "not-a-token", nil, http.StatusUnauthorized)
}

func TestHealthEndpointIsOpen(t *testing.T) {
	app := newTestApp(t)

	body := decodeJSONResponse(t, performJSON(t, app, http.MethodGet, "/healthz", "", nil, http.StatusOK))
	if body["status"] != "ok" {
		t.Fatalf("unexpected health payload: %#v", body)
	}
}

func TestTokenExchange(t *testing.T) {
	app := newTestApp(t)

	performJSON(t, app, http.MethodPost, "/api/auth/token", "",
		map[string]any{"service_key": "wrong-key"}, http.StatusUnauthorized)

	token := obtainServiceToken(t, app)

	body := decodeJSONResponse(t, performJSON(t, app, http.MethodPost, "/api/users", token,
		map[string]any{"id": 42, "username": "oleh"}, http.StatusOK))
	if body["id"] != float64(42) {
		t.Fatalf("expected registered user 42, got %#v", body)
	}
}

func TestTokenExchangeRateLimitsFailures(t *testing.T) {
	app := newTestApp(t)

	for attempt := 0; attempt < tokenAttemptLimit; attempt++ {
		performJSON(t, app, http.MethodPost, "/api/auth/token", "",
			map[string]any{"service_key": "wrong-key"}, http.StatusUnauthorized)
	}

	performJSON(t, app, http.MethodPost, "/api/auth/token", "",
		map[string]any{"service_key": testServiceKey}, http.StatusTooManyRequests)
}
