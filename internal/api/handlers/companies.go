package handlers

import (
	"hr-recruiting-api/internal/storage"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CompanyHandler holds the repository dependency for company operations.
type CompanyHandler struct {
	repo      storage.CompanyRepository
	validator *validator.Validate
}

// NewCompanyHandler creates a new CompanyHandler with the given repository.
func NewCompanyHandler(repo storage.CompanyRepository, validate *validator.Validate) *CompanyHandler {
	return &CompanyHandler{repo: repo, validator: validate}
}

// GetCompanies godoc
// @Summary      List all companies
// @Tags         companies
// @Produce      json
// @Success      200  {array}   models.Company
// @Router       /api/companies [get]
func (h *CompanyHandler) GetCompanies(c *gin.Context) {
	companies, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, companies)
}

// GetCompanyByID godoc
// @Summary      Get a company by ID
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  models.Company
// @Failure      404  {object}  map[string]interface{} "Company not found"
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetCompanyByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	company, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, company)
}

// CreateCompany godoc
// @Summary      Create a new company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateCompanyRequest true "Company payload"
// @Success      201  {object}  models.Company
// @Failure      400  {object}  map[string]interface{} "Validation failure"
// @Router       /api/companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	company, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, company)
}

// UpdateCompany godoc
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Param        body body dto.UpdateCompanyRequest true "Company payload"
// @Success      200  {object}  models.Company
// @Failure      404  {object}  map[string]interface{} "Company not found"
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	company, err := h.repo.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, company)
}

// DeleteCompany godoc
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  map[string]interface{} "Company deleted"
// @Failure      404  {object}  map[string]interface{} "Company not found"
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	respondMessage(c, "Company deleted successfully")
}

// GetCompanyPositions godoc
// @Summary      List a company's positions
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {array}   models.Position
// @Router       /api/companies/{id}/positions [get]
func (h *CompanyHandler) GetCompanyPositions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	positions, err := h.repo.GetPositions(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, positions)
}

// GetCompanyEmployees godoc
// @Summary      List a company's employees
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {array}   models.Employee
// @Router       /api/companies/{id}/employees [get]
func (h *CompanyHandler) GetCompanyEmployees(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	employees, err := h.repo.GetEmployees(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, employees)
}
