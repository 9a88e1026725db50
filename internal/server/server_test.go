package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lastminute/internal/auth"
	"lastminute/internal/repository"
	"lastminute/internal/service"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := repository.NewDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)

	tokens := auth.NewTokenManager("test-secret", time.Hour)

	return New(
		nil,
		tokens,
		service.NewUserService(userRepo, categoryRepo, tokens),
		service.NewCategoryService(categoryRepo, taskRepo),
		service.NewTaskService(taskRepo, categoryRepo),
		service.NewDocumentService(documentRepo),
		service.NewTestimonialService(testimonialRepo),
	)
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func signup(t *testing.T, srv *Server, email string) string {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name":     "Test Student",
		"email":    email,
		"password": "hunter2hunter2",
		"semester": 4,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode(t, rec)["token"].(string)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPlannerFlow(t *testing.T) {
	srv := newTestServer(t)
	token := signup(t, srv, "planner@example.com")

	rec := doJSON(t, srv, http.MethodPost, "/api/planner/categories", token, map[string]any{"name": "Study"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodPost, "/api/planner/tasks", token, map[string]any{
		"title":      "Weekly quiz prep",
		"category":   "Study",
		"priority":   "high",
		"dueDate":    "2025-06-24",
		"recurrence": "weekly",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	task := decode(t, rec)["task"].(map[string]any)
	taskID := uint(task["id"].(float64))

	// The June view materializes four weekly occurrences.
	rec = doJSON(t, srv, http.MethodGet, "/api/planner/view?mode=month&date=2025-06-15", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	occs := decode(t, rec)["occurrences"].([]any)
	assert.Len(t, occs, 4)

	// Toggle one occurrence and see its status flip in the view.
	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/planner/tasks/%d/toggle", taskID), token, map[string]any{"date": "2025-06-17"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "marked", decode(t, rec)["action"])

	rec = doJSON(t, srv, http.MethodGet, "/api/planner/view?mode=month&date=2025-06-15&status=completed", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	occs = decode(t, rec)["occurrences"].([]any)
	require.Len(t, occs, 1)
	assert.Equal(t, "2025-06-17", occs[0].(map[string]any)["date"])

	// A toggle on a non-occurrence date is rejected.
	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/planner/tasks/%d/toggle", taskID), token, map[string]any{"date": "2025-06-18"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlannerViewDefaultsToToday(t *testing.T) {
	srv := newTestServer(t)
	token := signup(t, srv, "today@example.com")

	restore := timeNow
	timeNow = func() time.Time { return time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { timeNow = restore })

	rec := doJSON(t, srv, http.MethodPost, "/api/planner/categories", token, map[string]any{"name": "Study"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodPost, "/api/planner/tasks", token, map[string]any{
		"title":    "Submit form",
		"category": "Study",
		"priority": "low",
		"dueDate":  "2025-06-10",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Without an explicit date the view anchors on the pinned "today".
	rec = doJSON(t, srv, http.MethodGet, "/api/planner/view?mode=day", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	occs := decode(t, rec)["occurrences"].([]any)
	require.Len(t, occs, 1)
	assert.Equal(t, "2025-06-10", occs[0].(map[string]any)["date"])
}

func TestPlannerRequiresAuth(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/planner/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/planner/tasks", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDocumentModeration(t *testing.T) {
	srv := newTestServer(t)
	token := signup(t, srv, "uploader@example.com")

	rec := doJSON(t, srv, http.MethodPost, "/api/documents", token, map[string]any{
		"title":    "OS previous year paper",
		"subject":  "Operating Systems",
		"semester": 3,
		"type":     "paper",
		"fileUrl":  "https://files.example.com/os-2024.pdf",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	doc := decode(t, rec)["document"].(map[string]any)
	assert.Equal(t, "pending", doc["status"])

	// Pending documents are invisible to the public listing and cannot be
	// downloaded.
	rec = doJSON(t, srv, http.MethodGet, "/api/documents", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode(t, rec)["documents"])

	publicID := doc["id"].(string)
	rec = doJSON(t, srv, http.MethodPost, "/api/documents/"+publicID+"/download", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Admin gating: a student cannot reach moderation routes.
	rec = doJSON(t, srv, http.MethodPut, "/api/admin/documents/"+publicID+"/status", token, map[string]any{"status": "approved"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTestimonialFlow(t *testing.T) {
	srv := newTestServer(t)
	token := signup(t, srv, "reviewer@example.com")

	rec := doJSON(t, srv, http.MethodPost, "/api/testimonials", token, map[string]any{
		"text":   "Saved my semester.",
		"rating": 5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Unapproved testimonials stay hidden.
	rec = doJSON(t, srv, http.MethodGet, "/api/testimonials", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode(t, rec)["testimonials"])
}
