package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/povarna/aoc2022/internal/api"
	"github.com/povarna/aoc2022/internal/api/middleware"
	"github.com/povarna/aoc2022/internal/days"
	"github.com/povarna/aoc2022/internal/days/day01"
	"github.com/povarna/aoc2022/internal/models"
	"github.com/povarna/aoc2022/internal/puzzle"
	"github.com/povarna/aoc2022/internal/runner"
	"github.com/rs/zerolog"
)

func setupTestAPI(t *testing.T) http.Handler {
	t.Helper()
	logger := zerolog.Nop()

	registry := puzzle.NewRegistry()
	days.Register(registry, nil)

	r := runner.NewRunner(registry, nil, nil, &logger)
	return api.NewServer(api.NewHandler(r, &logger))
}

func postSolve(t *testing.T, server http.Handler, path string, input string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(api.SolveBody{Input: input})
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func TestAPI_Health(t *testing.T) {
	server := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", recorder.Code)
	}

	var response api.HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response.Status)
	}
	if response.Version != api.Version {
		t.Errorf("Expected version %s, got %s", api.Version, response.Version)
	}
}

func TestAPI_ListDays(t *testing.T) {
	server := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/days", nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	var response []models.DayInfo
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(response) != 11 {
		t.Fatalf("Expected 11 days, got %d", len(response))
	}
	if response[0].Day != 1 || response[0].Title != "Calorie Counting" {
		t.Errorf("Expected day 1 Calorie Counting first, got %+v", response[0])
	}
}

func TestAPI_Solve(t *testing.T) {
	server := setupTestAPI(t)

	recorder := postSolve(t, server, "/api/v1/days/1/parts/2", day01.Examples[0].Input)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var result models.SolveResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if result.Day != 1 || result.Part != 2 || result.Answer != "45000" {
		t.Errorf("Expected day 1 part 2 answer 45000, got %+v", result)
	}
}

func TestAPI_Solve_ErrorStatus(t *testing.T) {
	server := setupTestAPI(t)

	tests := []struct {
		name   string
		path   string
		input  string
		status int
	}{
		{"day out of range", "/api/v1/days/26/parts/1", "1", http.StatusBadRequest},
		{"part out of range", "/api/v1/days/1/parts/3", "1", http.StatusBadRequest},
		{"day not a number", "/api/v1/days/one/parts/1", "1", http.StatusBadRequest},
		{"invalid input", "/api/v1/days/1/parts/1", "abc", http.StatusBadRequest},
		{"unsupported day", "/api/v1/days/12/parts/1", "1", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postSolve(t, server, tt.path, tt.input)
			if recorder.Code != tt.status {
				t.Fatalf("Expected status %d, got %d: %s", tt.status, recorder.Code, recorder.Body.String())
			}

			var response middleware.ErrorResponse
			if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to parse error response: %v", err)
			}
			if response.Code != tt.status || response.Message == "" {
				t.Errorf("Unexpected error response %+v", response)
			}
		})
	}
}

func TestAPI_Solve_OversizedBody(t *testing.T) {
	server := setupTestAPI(t)

	input := strings.Repeat("1\n", api.MaxBodyBytes)
	recorder := postSolve(t, server, "/api/v1/days/1/parts/1", input)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", recorder.Code)
	}

	var response middleware.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse error response: %v", err)
	}
	if response.Code != http.StatusBadRequest {
		t.Errorf("Expected code 400, got %d", response.Code)
	}
}

func TestAPI_OpenAPI(t *testing.T) {
	server := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, api.OpenAPIPath, nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
	body := recorder.Body.String()
	for _, want := range []string{"Advent of Code 2022 API", "/api/v1/days/{day}/parts/{part}"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected OpenAPI document to mention %q", want)
		}
	}
}

func TestAPI_CORS(t *testing.T) {
	server := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected Access-Control-Allow-Origin *, got %q", got)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{puzzle.ErrOutOfRange, http.StatusBadRequest},
		{puzzle.Invalidf("bad"), http.StatusBadRequest},
		{puzzle.ErrUnsupported, http.StatusNotFound},
		{http.ErrHandlerTimeout, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := api.StatusFor(tt.err); got != tt.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
