package handlers

import (
	"net/http"

	"hr-recruiting-api/internal/models"
	"hr-recruiting-api/internal/storage"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JobApplicationHandler holds the repository dependency for application
// operations. These routes are admin-gated.
type JobApplicationHandler struct {
	repo      storage.JobApplicationRepository
	validator *validator.Validate
}

// NewJobApplicationHandler creates a new JobApplicationHandler.
func NewJobApplicationHandler(repo storage.JobApplicationRepository, validate *validator.Validate) *JobApplicationHandler {
	return &JobApplicationHandler{repo: repo, validator: validate}
}

// GetApplications godoc
// @Summary      List applications
// @Description  All applications, optionally filtered by status, newest first.
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Filter by status"
// @Success      200  {array}   models.JobApplication
// @Failure      400  {object}  map[string]interface{} "Unknown status value"
// @Router       /api/applications [get]
func (h *JobApplicationHandler) GetApplications(c *gin.Context) {
	if raw := c.Query("status"); raw != "" {
		status := models.ApplicationStatus(raw)
		if !status.Valid() {
			respondError(c, http.StatusBadRequest, "Invalid application status")
			return
		}
		applications, err := h.repo.GetByStatus(c.Request.Context(), status)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		respondOK(c, applications)
		return
	}

	applications, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, applications)
}

// GetApplicationsByStatus godoc
// @Summary      List applications in one status
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        status  path  string  true  "Application status"
// @Success      200  {array}   models.JobApplication
// @Failure      400  {object}  map[string]interface{} "Unknown status value"
// @Router       /api/applications/status/{status} [get]
func (h *JobApplicationHandler) GetApplicationsByStatus(c *gin.Context) {
	status := models.ApplicationStatus(c.Param("status"))
	if !status.Valid() {
		respondError(c, http.StatusBadRequest, "Invalid application status")
		return
	}

	applications, err := h.repo.GetByStatus(c.Request.Context(), status)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, applications)
}

// GetApplicationByID godoc
// @Summary      Get an application by ID
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  models.JobApplication
// @Failure      404  {object}  map[string]interface{} "Application not found"
// @Router       /api/applications/{id} [get]
func (h *JobApplicationHandler) GetApplicationByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	application, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, application)
}

// CreateApplication godoc
// @Summary      Create an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateJobApplicationRequest true "Application payload"
// @Success      201  {object}  models.JobApplication
// @Failure      400  {object}  map[string]interface{} "Validation failure or unknown references"
// @Router       /api/applications [post]
func (h *JobApplicationHandler) CreateApplication(c *gin.Context) {
	var req dto.CreateJobApplicationRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		respondError(c, http.StatusBadRequest, "Invalid application status")
		return
	}

	application, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, application)
}

// UpdateApplicationStatus godoc
// @Summary      Update an application's status
// @Description  PATCH-only: the status is the single mutable field.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Application ID"
// @Param        body body dto.UpdateApplicationStatusRequest true "New status"
// @Success      200  {object}  models.JobApplication
// @Failure      400  {object}  map[string]interface{} "Unknown status value"
// @Failure      404  {object}  map[string]interface{} "Application not found"
// @Router       /api/applications/{id}/status [patch]
func (h *JobApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}
	if !req.Status.Valid() {
		respondError(c, http.StatusBadRequest, "Invalid application status")
		return
	}

	application, err := h.repo.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, application)
}

// DeleteApplication godoc
// @Summary      Delete an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  map[string]interface{} "Application deleted"
// @Failure      404  {object}  map[string]interface{} "Application not found"
// @Router       /api/applications/{id} [delete]
func (h *JobApplicationHandler) DeleteApplication(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	respondMessage(c, "Application deleted successfully")
}
