package handlers

import (
	"net/http"
	"strconv"

	"hr-recruiting-api/internal/services"
	"hr-recruiting-api/internal/storage"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// JobSeekerHandler holds the dependencies for job seeker operations,
// including the aggregate profile read and the application submission.
type JobSeekerHandler struct {
	repo         storage.JobSeekerRepository
	applications storage.JobApplicationRepository
	profiles     services.ProfileService
	validator    *validator.Validate
}

// NewJobSeekerHandler creates a new JobSeekerHandler.
func NewJobSeekerHandler(
	repo storage.JobSeekerRepository,
	applications storage.JobApplicationRepository,
	profiles services.ProfileService,
	validate *validator.Validate,
) *JobSeekerHandler {
	return &JobSeekerHandler{
		repo:         repo,
		applications: applications,
		profiles:     profiles,
		validator:    validate,
	}
}

// parsePagination reads limit/offset query parameters, falling back to sane
// defaults on absent or malformed values.
func parsePagination(c *gin.Context) (limit, offset int) {
	limit = defaultPageLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if raw := c.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}

// GetJobSeekers godoc
// @Summary      List job seekers
// @Tags         job-seekers
// @Produce      json
// @Param        limit   query  int  false  "Page size (max 200)"
// @Param        offset  query  int  false  "Page offset"
// @Success      200  {array}   models.JobSeeker
// @Router       /api/job-seekers [get]
func (h *JobSeekerHandler) GetJobSeekers(c *gin.Context) {
	limit, offset := parsePagination(c)

	jobSeekers, err := h.repo.GetAll(c.Request.Context(), limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, jobSeekers)
}

// SearchJobSeekers godoc
// @Summary      Search job seekers by name or city
// @Tags         job-seekers
// @Produce      json
// @Param        q  query  string  true  "Search term"
// @Success      200  {array}   models.JobSeeker
// @Router       /api/job-seekers/search [get]
func (h *JobSeekerHandler) SearchJobSeekers(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		respondError(c, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	jobSeekers, err := h.repo.Search(c.Request.Context(), term)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, jobSeekers)
}

// GetJobSeekerByID godoc
// @Summary      Get a job seeker by ID
// @Tags         job-seekers
// @Produce      json
// @Param        id   path      int  true  "Job seeker ID"
// @Success      200  {object}  models.JobSeeker
// @Failure      404  {object}  map[string]interface{} "Job seeker not found"
// @Router       /api/job-seekers/{id} [get]
func (h *JobSeekerHandler) GetJobSeekerByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	jobSeeker, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, jobSeeker)
}

// GetJobSeekerProfile godoc
// @Summary      Get a job seeker's full profile
// @Description  The job seeker row plus skills, degrees, experiences, volunteer work, awards, and applications, fetched concurrently.
// @Tags         job-seekers
// @Produce      json
// @Param        id   path      int  true  "Job seeker ID"
// @Success      200  {object}  models.JobSeekerProfile
// @Failure      404  {object}  map[string]interface{} "Job seeker not found"
// @Router       /api/job-seekers/{id}/profile [get]
func (h *JobSeekerHandler) GetJobSeekerProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	profile, err := h.profiles.JobSeekerProfile(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, profile)
}

// CreateJobSeeker godoc
// @Summary      Create a new job seeker
// @Tags         job-seekers
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateJobSeekerRequest true "Job seeker payload"
// @Success      201  {object}  models.JobSeeker
// @Failure      400  {object}  map[string]interface{} "Validation failure"
// @Router       /api/job-seekers [post]
func (h *JobSeekerHandler) CreateJobSeeker(c *gin.Context) {
	var req dto.CreateJobSeekerRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	jobSeeker, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, jobSeeker)
}

// UpdateJobSeeker godoc
// @Summary      Update a job seeker
// @Tags         job-seekers
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Job seeker ID"
// @Param        body body dto.UpdateJobSeekerRequest true "Job seeker payload"
// @Success      200  {object}  models.JobSeeker
// @Failure      404  {object}  map[string]interface{} "Job seeker not found"
// @Router       /api/job-seekers/{id} [put]
func (h *JobSeekerHandler) UpdateJobSeeker(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobSeekerRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	jobSeeker, err := h.repo.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, jobSeeker)
}

// DeleteJobSeeker godoc
// @Summary      Delete a job seeker
// @Tags         job-seekers
// @Produce      json
// @Param        id   path      int  true  "Job seeker ID"
// @Success      200  {object}  map[string]interface{} "Job seeker deleted"
// @Failure      404  {object}  map[string]interface{} "Job seeker not found"
// @Router       /api/job-seekers/{id} [delete]
func (h *JobSeekerHandler) DeleteJobSeeker(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	respondMessage(c, "Job seeker deleted successfully")
}

// GetJobSeekerApplications godoc
// @Summary      List a job seeker's applications
// @Tags         job-seekers
// @Produce      json
// @Param        id   path      int  true  "Job seeker ID"
// @Success      200  {array}   models.JobApplication
// @Router       /api/job-seekers/{id}/applications [get]
func (h *JobSeekerHandler) GetJobSeekerApplications(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	applications, err := h.applications.ListByJobSeeker(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, applications)
}

// ApplyForPosition godoc
// @Summary      Submit an application for a position
// @Description  Creates an application in the "Applied" status for the job seeker in the path.
// @Tags         job-seekers
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Job seeker ID"
// @Param        body body dto.ApplyForPositionRequest true "Application payload"
// @Success      201  {object}  models.JobApplication
// @Failure      400  {object}  map[string]interface{} "Unknown position or duplicate application"
// @Router       /api/job-seekers/{id}/applications [post]
func (h *JobSeekerHandler) ApplyForPosition(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ApplyForPositionRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	application, err := h.applications.Create(c.Request.Context(), &dto.CreateJobApplicationRequest{
		JobSeekerID: id,
		PositionID:  req.PositionID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, application)
}
