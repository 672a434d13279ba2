package handlers

import (
	"hr-recruiting-api/internal/storage"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// PositionHandler holds the repository dependency for position operations,
// including the benefit/requirement links and the applicant listing.
type PositionHandler struct {
	repo      storage.PositionRepository
	validator *validator.Validate
}

// NewPositionHandler creates a new PositionHandler with the given repository.
func NewPositionHandler(repo storage.PositionRepository, validate *validator.Validate) *PositionHandler {
	return &PositionHandler{repo: repo, validator: validate}
}

// GetPositions godoc
// @Summary      List all positions
// @Tags         positions
// @Produce      json
// @Success      200  {array}   models.Position
// @Router       /api/positions [get]
func (h *PositionHandler) GetPositions(c *gin.Context) {
	positions, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, positions)
}

// GetPositionByID godoc
// @Summary      Get a position by ID
// @Tags         positions
// @Produce      json
// @Param        id   path      int  true  "Position ID"
// @Success      200  {object}  models.Position
// @Failure      404  {object}  map[string]interface{} "Position not found"
// @Router       /api/positions/{id} [get]
func (h *PositionHandler) GetPositionByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	position, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, position)
}

// CreatePosition godoc
// @Summary      Create a new position
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        body body dto.CreatePositionRequest true "Position payload"
// @Success      201  {object}  models.Position
// @Failure      400  {object}  map[string]interface{} "Validation failure"
// @Router       /api/positions [post]
func (h *PositionHandler) CreatePosition(c *gin.Context) {
	var req dto.CreatePositionRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	position, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, position)
}

// UpdatePosition godoc
// @Summary      Update a position
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Position ID"
// @Param        body body dto.UpdatePositionRequest true "Position payload"
// @Success      200  {object}  models.Position
// @Failure      404  {object}  map[string]interface{} "Position not found"
// @Router       /api/positions/{id} [put]
func (h *PositionHandler) UpdatePosition(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePositionRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	position, err := h.repo.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, position)
}

// DeletePosition godoc
// @Summary      Delete a position
// @Tags         positions
// @Produce      json
// @Param        id   path      int  true  "Position ID"
// @Success      200  {object}  map[string]interface{} "Position deleted"
// @Failure      404  {object}  map[string]interface{} "Position not found"
// @Router       /api/positions/{id} [delete]
func (h *PositionHandler) DeletePosition(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	respondMessage(c, "Position deleted successfully")
}

// GetPositionBenefits godoc
// @Summary      List a position's benefits
// @Tags         positions
// @Produce      json
// @Param        id   path      int  true  "Position ID"
// @Success      200  {array}   models.Benefit
// @Router       /api/positions/{id}/benefits [get]
func (h *PositionHandler) GetPositionBenefits(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	benefits, err := h.repo.GetBenefits(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, benefits)
}

// AddPositionBenefit godoc
// @Summary      Attach a benefit to a position
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Position ID"
// @Param        body body dto.LinkBenefitRequest true "Benefit link payload"
// @Success      201  {object}  map[string]interface{} "Benefit attached"
// @Failure      400  {object}  map[string]interface{} "Already attached or unknown benefit"
// @Router       /api/positions/{id}/benefits [post]
func (h *PositionHandler) AddPositionBenefit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.LinkBenefitRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	if err := h.repo.AddBenefit(c.Request.Context(), id, req.BenefitID); err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, gin.H{"position_id": id, "benefit_id": req.BenefitID})
}

// RemovePositionBenefit godoc
// @Summary      Detach a benefit from a position
// @Tags         positions
// @Produce      json
// @Param        id         path  int  true  "Position ID"
// @Param        benefitId  path  int  true  "Benefit ID"
// @Success      200  {object}  map[string]interface{} "Benefit detached"
// @Failure      404  {object}  map[string]interface{} "Link not found"
// @Router       /api/positions/{id}/benefits/{benefitId} [delete]
func (h *PositionHandler) RemovePositionBenefit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	benefitID, ok := parseIDParam(c, "benefitId")
	if !ok {
		return
	}

	if err := h.repo.RemoveBenefit(c.Request.Context(), id, benefitID); err != nil {
		handleServiceError(c, err)
		return
	}
	respondMessage(c, "Benefit removed from position")
}

// GetPositionRequirements godoc
// @Summary      List a position's requirements
// @Tags         positions
// @Produce      json
// @Param        id   path      int  true  "Position ID"
// @Success      200  {array}   models.Requirement
// @Router       /api/positions/{id}/requirements [get]
func (h *PositionHandler) GetPositionRequirements(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requirements, err := h.repo.GetRequirements(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, requirements)
}

// AddPositionRequirement godoc
// @Summary      Attach a requirement to a position
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Position ID"
// @Param        body body dto.LinkRequirementRequest true "Requirement link payload"
// @Success      201  {object}  map[string]interface{} "Requirement attached"
// @Failure      400  {object}  map[string]interface{} "Already attached or unknown requirement"
// @Router       /api/positions/{id}/requirements [post]
func (h *PositionHandler) AddPositionRequirement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.LinkRequirementRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	if err := h.repo.AddRequirement(c.Request.Context(), id, req.RequirementID); err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, gin.H{"position_id": id, "requirement_id": req.RequirementID})
}

// RemovePositionRequirement godoc
// @Summary      Detach a requirement from a position
// @Tags         positions
// @Produce      json
// @Param        id             path  int  true  "Position ID"
// @Param        requirementId  path  int  true  "Requirement ID"
// @Success      200  {object}  map[string]interface{} "Requirement detached"
// @Failure      404  {object}  map[string]interface{} "Link not found"
// @Router       /api/positions/{id}/requirements/{requirementId} [delete]
func (h *PositionHandler) RemovePositionRequirement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	requirementID, ok := parseIDParam(c, "requirementId")
	if !ok {
		return
	}

	if err := h.repo.RemoveRequirement(c.Request.Context(), id, requirementID); err != nil {
		handleServiceError(c, err)
		return
	}
	respondMessage(c, "Requirement removed from position")
}

// GetPositionApplicants godoc
// @Summary      List a position's applicants
// @Tags         positions
// @Produce      json
// @Param        id   path      int  true  "Position ID"
// @Success      200  {array}   models.Applicant
// @Router       /api/positions/{id}/applicants [get]
func (h *PositionHandler) GetPositionApplicants(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	applicants, err := h.repo.GetApplicants(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, applicants)
}
