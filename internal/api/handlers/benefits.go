package handlers

import (
	"hr-recruiting-api/internal/storage"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BenefitHandler holds the repository dependency for benefit operations.
type BenefitHandler struct {
	repo      storage.BenefitRepository
	validator *validator.Validate
}

// NewBenefitHandler creates a new BenefitHandler with the given repository.
func NewBenefitHandler(repo storage.BenefitRepository, validate *validator.Validate) *BenefitHandler {
	return &BenefitHandler{repo: repo, validator: validate}
}

// GetBenefits godoc
// @Summary      List all benefits
// @Tags         benefits
// @Produce      json
// @Success      200  {array}   models.Benefit
// @Router       /api/benefits [get]
func (h *BenefitHandler) GetBenefits(c *gin.Context) {
	benefits, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, benefits)
}

// GetBenefitByID godoc
// @Summary      Get a benefit by ID
// @Tags         benefits
// @Produce      json
// @Param        id   path      int  true  "Benefit ID"
// @Success      200  {object}  models.Benefit
// @Failure      404  {object}  map[string]interface{} "Benefit not found"
// @Router       /api/benefits/{id} [get]
func (h *BenefitHandler) GetBenefitByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	benefit, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, benefit)
}

// CreateBenefit godoc
// @Summary      Create a new benefit
// @Tags         benefits
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateBenefitRequest true "Benefit payload"
// @Success      201  {object}  models.Benefit
// @Failure      400  {object}  map[string]interface{} "Validation failure"
// @Router       /api/benefits [post]
func (h *BenefitHandler) CreateBenefit(c *gin.Context) {
	var req dto.CreateBenefitRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	benefit, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, benefit)
}

// UpdateBenefit godoc
// @Summary      Update a benefit
// @Tags         benefits
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Benefit ID"
// @Param        body body dto.UpdateBenefitRequest true "Benefit payload"
// @Success      200  {object}  models.Benefit
// @Failure      404  {object}  map[string]interface{} "Benefit not found"
// @Router       /api/benefits/{id} [put]
func (h *BenefitHandler) UpdateBenefit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBenefitRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	benefit, err := h.repo.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, benefit)
}

// DeleteBenefit godoc
// @Summary      Delete a benefit
// @Tags         benefits
// @Produce      json
// @Param        id   path      int  true  "Benefit ID"
// @Success      200  {object}  map[string]interface{} "Benefit deleted"
// @Failure      404  {object}  map[string]interface{} "Benefit not found"
// @Router       /api/benefits/{id} [delete]
func (h *BenefitHandler) DeleteBenefit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	respondMessage(c, "Benefit deleted successfully")
}
