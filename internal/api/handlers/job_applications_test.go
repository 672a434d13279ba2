package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hr-recruiting-api/internal/api/handlers"
	"hr-recruiting-api/internal/models"
	"hr-recruiting-api/internal/storage"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeApplicationRepo struct {
	storage.JobApplicationRepository
	applications map[int64]*models.JobApplication
	nextID       int64
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[int64]*models.JobApplication), nextID: 1}
}

func (r *fakeApplicationRepo) GetAll(ctx context.Context) ([]models.JobApplication, error) {
	out := []models.JobApplication{}
	for _, a := range r.applications {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id int64) (*models.JobApplication, error) {
	if a, ok := r.applications[id]; ok {
		return a, nil
	}
	return nil, storage.ErrNotFound
}

func (r *fakeApplicationRepo) GetByStatus(ctx context.Context, status models.ApplicationStatus) ([]models.JobApplication, error) {
	out := []models.JobApplication{}
	for _, a := range r.applications {
		if a.Status == status {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) Create(ctx context.Context, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error) {
	status := models.StatusApplied
	if req.Status != nil {
		status = *req.Status
	}
	a := &models.JobApplication{
		ApplicationID:   r.nextID,
		JobSeekerID:     req.JobSeekerID,
		PositionID:      req.PositionID,
		Status:          status,
		ApplicationDate: time.Now(),
	}
	r.applications[r.nextID] = a
	r.nextID++
	return a, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.JobApplication, error) {
	a, ok := r.applications[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	a.Status = status
	return a, nil
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.applications[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.applications, id)
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func newApplicationRouter(repo storage.JobApplicationRepository) *gin.Engine {
	h := handlers.NewJobApplicationHandler(repo, validator.New())
	r := gin.New()
	r.GET("/api/applications", h.GetApplications)
	r.GET("/api/applications/status/:status", h.GetApplicationsByStatus)
	r.GET("/api/applications/:id", h.GetApplicationByID)
	r.POST("/api/applications", h.CreateApplication)
	r.PATCH("/api/applications/:id/status", h.UpdateApplicationStatus)
	r.DELETE("/api/applications/:id", h.DeleteApplication)
	return r
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateApplication(t *testing.T) {
	repo := newFakeApplicationRepo()
	r := newApplicationRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/applications", gin.H{
		"job_seeker_id": 1,
		"position_id":   2,
	}))

	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var created models.JobApplication
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.StatusApplied, created.Status)
	assert.Equal(t, int64(1), created.JobSeekerID)
	assert.Equal(t, int64(2), created.PositionID)
}

func TestCreateApplication_Validation(t *testing.T) {
	repo := newFakeApplicationRepo()
	r := newApplicationRouter(repo)

	t.Run("Missing fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/applications", gin.H{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Success)
	})

	t.Run("Unknown status", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/applications", gin.H{
			"job_seeker_id": 1,
			"position_id":   2,
			"status":        "Ghosted",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid application status")
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	repo := newFakeApplicationRepo()
	_, err := repo.Create(context.Background(), &dto.CreateJobApplicationRequest{JobSeekerID: 1, PositionID: 2})
	require.NoError(t, err)

	r := newApplicationRouter(repo)

	t.Run("Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/api/applications/1/status", gin.H{
			"status": "Interview",
		}))

		require.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		var updated models.JobApplication
		require.NoError(t, json.Unmarshal(env.Data, &updated))
		assert.Equal(t, models.StatusInterview, updated.Status)
	})

	t.Run("Unknown status", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/api/applications/1/status", gin.H{
			"status": "Hired",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/api/applications/99/status", gin.H{
			"status": "Interview",
		}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetApplications_StatusFilter(t *testing.T) {
	repo := newFakeApplicationRepo()
	_, _ = repo.Create(context.Background(), &dto.CreateJobApplicationRequest{JobSeekerID: 1, PositionID: 2})
	offered := models.StatusOffered
	_, _ = repo.Create(context.Background(), &dto.CreateJobApplicationRequest{JobSeekerID: 3, PositionID: 2, Status: &offered})

	r := newApplicationRouter(repo)

	t.Run("Filtered", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/applications?status=Offered", nil))

		require.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		var list []models.JobApplication
		require.NoError(t, json.Unmarshal(env.Data, &list))
		require.Len(t, list, 1)
		assert.Equal(t, models.StatusOffered, list[0].Status)
	})

	t.Run("Invalid status value", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/applications?status=Pending", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetApplicationsByStatus(t *testing.T) {
	repo := newFakeApplicationRepo()
	_, _ = repo.Create(context.Background(), &dto.CreateJobApplicationRequest{JobSeekerID: 1, PositionID: 2})
	accepted := models.StatusAccepted
	_, _ = repo.Create(context.Background(), &dto.CreateJobApplicationRequest{JobSeekerID: 3, PositionID: 2, Status: &accepted})

	r := newApplicationRouter(repo)

	t.Run("Known status", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/applications/status/Accepted", nil))

		require.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		var list []models.JobApplication
		require.NoError(t, json.Unmarshal(env.Data, &list))
		require.Len(t, list, 1)
		assert.Equal(t, models.StatusAccepted, list[0].Status)
	})

	t.Run("Unknown status", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/applications/status/Shortlisted", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteApplication(t *testing.T) {
	repo := newFakeApplicationRepo()
	_, _ = repo.Create(context.Background(), &dto.CreateJobApplicationRequest{JobSeekerID: 1, PositionID: 2})
	r := newApplicationRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/applications/1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Application deleted successfully", env.Message)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/applications/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetApplicationByID_InvalidID(t *testing.T) {
	r := newApplicationRouter(newFakeApplicationRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/applications/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid id parameter")
}
