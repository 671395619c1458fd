package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	h := &Handler{
		Plans: service.NewPlanService(domain.DefaultGrade),
		Now:   func() time.Time { return time.Date(2025, 3, 4, 15, 0, 0, 0, time.UTC) },
	}
	return NewApp(h, nil)
}

type envelope struct {
	Code      int             `json:"code"`
	Status    string          `json:"status"`
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
	Errors    []string        `json:"errors"`
	Data      json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func TestHealth(t *testing.T) {
	app := newTestApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreatePlan_Success(t *testing.T) {
	body := `{
		"start_date": "2025-03-02",
		"end_date": "2025-03-11",
		"subjects": [
			{"name": "Math", "total_units": 8},
			{"name": "English", "grade": "4-2", "total_units": 20}
		]
	}`
	status, env := doRequest(t, newTestApp(), http.MethodPost, "/api/plans", body)
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.Equal(t, "success", env.Status)

	var data struct {
		PlanID    string `json:"plan_id"`
		TotalDays int    `json:"total_days"`
		Calendar  struct {
			LeadingBlanks int `json:"leading_blanks"`
			Cells         []struct {
				IsToday bool `json:"is_today"`
			} `json:"cells"`
		} `json:"calendar"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.PlanID)
	assert.Equal(t, 10, data.TotalDays)
	require.Len(t, data.Calendar.Cells, 10)
	assert.True(t, data.Calendar.Cells[2].IsToday, "2025-03-04 is the third day")
}

func TestCreatePlan_TodayQueryOverridesClock(t *testing.T) {
	body := `{"start_date":"2025-03-02","end_date":"2025-03-04","subjects":[{"name":"Math","total_units":3}]}`
	status, env := doRequest(t, newTestApp(), http.MethodPost, "/api/plans?today=2025-03-02", body)
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Calendar struct {
			Cells []struct {
				IsToday bool `json:"is_today"`
			} `json:"cells"`
		} `json:"calendar"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Calendar.Cells[0].IsToday)
	assert.False(t, data.Calendar.Cells[2].IsToday)
}

func TestCreatePlan_ValidationErrors(t *testing.T) {
	body := `{"start_date":"2025-03-10","end_date":"2025-03-01","subjects":[{"name":"Math","grade":"9-9","total_units":0}]}`
	status, env := doRequest(t, newTestApp(), http.MethodPost, "/api/plans", body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "INVALID_PLAN_FILE", env.ErrorCode)
	assert.NotEmpty(t, env.Errors)
}

func TestCreatePlan_BadBody(t *testing.T) {
	status, env := doRequest(t, newTestApp(), http.MethodPost, "/api/plans", `{not json`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_BODY", env.ErrorCode)
}

func TestCreatePlan_BadTodayQuery(t *testing.T) {
	body := `{"start_date":"2025-03-02","end_date":"2025-03-04","subjects":[{"name":"Math","total_units":3}]}`
	status, env := doRequest(t, newTestApp(), http.MethodPost, "/api/plans?today=tomorrow", body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_QUERY", env.ErrorCode)
}

func TestGetTimetable(t *testing.T) {
	status, env := doRequest(t, newTestApp(), http.MethodGet, "/api/plans/timetable?subjects=Math,%20English", "")
	require.Equal(t, http.StatusOK, status)

	var tt domain.Timetable
	require.NoError(t, json.Unmarshal(env.Data, &tt))
	require.Len(t, tt.Rows, 8)
	assert.Equal(t, domain.SlotStudy, tt.Rows[0][0].Kind)
	assert.Equal(t, "Math", tt.Rows[0][0].Subject)
	assert.Equal(t, domain.SlotLunch, tt.Rows[3][0].Kind)
}

func TestGetTimetable_NoSubjects(t *testing.T) {
	status, env := doRequest(t, newTestApp(), http.MethodGet, "/api/plans/timetable", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "NO_SUBJECTS", env.ErrorCode)
}

func TestUnknownRouteUsesJSONErrors(t *testing.T) {
	status, env := doRequest(t, newTestApp(), http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "error", env.Status)
}
