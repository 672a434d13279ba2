package handlers

import (
	"hr-recruiting-api/internal/storage"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RequirementHandler holds the repository dependency for requirement operations.
type RequirementHandler struct {
	repo      storage.RequirementRepository
	validator *validator.Validate
}

// NewRequirementHandler creates a new RequirementHandler with the given repository.
func NewRequirementHandler(repo storage.RequirementRepository, validate *validator.Validate) *RequirementHandler {
	return &RequirementHandler{repo: repo, validator: validate}
}

// GetRequirements godoc
// @Summary      List all requirements
// @Tags         requirements
// @Produce      json
// @Success      200  {array}   models.Requirement
// @Router       /api/requirements [get]
func (h *RequirementHandler) GetRequirements(c *gin.Context) {
	requirements, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, requirements)
}

// GetRequirementByID godoc
// @Summary      Get a requirement by ID
// @Tags         requirements
// @Produce      json
// @Param        id   path      int  true  "Requirement ID"
// @Success      200  {object}  models.Requirement
// @Failure      404  {object}  map[string]interface{} "Requirement not found"
// @Router       /api/requirements/{id} [get]
func (h *RequirementHandler) GetRequirementByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requirement, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, requirement)
}

// CreateRequirement godoc
// @Summary      Create a new requirement
// @Tags         requirements
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateRequirementRequest true "Requirement payload"
// @Success      201  {object}  models.Requirement
// @Failure      400  {object}  map[string]interface{} "Validation failure"
// @Router       /api/requirements [post]
func (h *RequirementHandler) CreateRequirement(c *gin.Context) {
	var req dto.CreateRequirementRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	requirement, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, requirement)
}

// UpdateRequirement godoc
// @Summary      Update a requirement
// @Tags         requirements
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Requirement ID"
// @Param        body body dto.UpdateRequirementRequest true "Requirement payload"
// @Success      200  {object}  models.Requirement
// @Failure      404  {object}  map[string]interface{} "Requirement not found"
// @Router       /api/requirements/{id} [put]
func (h *RequirementHandler) UpdateRequirement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRequirementRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	requirement, err := h.repo.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, requirement)
}

// DeleteRequirement godoc
// @Summary      Delete a requirement
// @Tags         requirements
// @Produce      json
// @Param        id   path      int  true  "Requirement ID"
// @Success      200  {object}  map[string]interface{} "Requirement deleted"
// @Failure      404  {object}  map[string]interface{} "Requirement not found"
// @Router       /api/requirements/{id} [delete]
func (h *RequirementHandler) DeleteRequirement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	respondMessage(c, "Requirement deleted successfully")
}
