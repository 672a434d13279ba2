package handlers

import (
	"net/http"

	"hr-recruiting-api/internal/services"
	"hr-recruiting-api/internal/storage"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// EmployeeHandler holds the dependencies for employee operations.
type EmployeeHandler struct {
	repo      storage.EmployeeRepository
	profiles  services.ProfileService
	validator *validator.Validate
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(repo storage.EmployeeRepository, profiles services.ProfileService, validate *validator.Validate) *EmployeeHandler {
	return &EmployeeHandler{repo: repo, profiles: profiles, validator: validate}
}

// GetEmployees godoc
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Param        limit   query  int  false  "Page size (max 200)"
// @Param        offset  query  int  false  "Page offset"
// @Success      200  {array}   models.Employee
// @Router       /api/employees [get]
func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	limit, offset := parsePagination(c)

	employees, err := h.repo.GetAll(c.Request.Context(), limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, employees)
}

// SearchEmployees godoc
// @Summary      Search employees by name
// @Tags         employees
// @Produce      json
// @Param        q  query  string  true  "Search term"
// @Success      200  {array}   models.Employee
// @Router       /api/employees/search [get]
func (h *EmployeeHandler) SearchEmployees(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		respondError(c, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	employees, err := h.repo.Search(c.Request.Context(), term)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, employees)
}

// GetEmployeeByID godoc
// @Summary      Get an employee by ID
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  models.Employee
// @Failure      404  {object}  map[string]interface{} "Employee not found"
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	employee, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, employee)
}

// GetEmployeeProfile godoc
// @Summary      Get an employee's full profile
// @Description  The employee row plus skills, degrees, experiences, volunteer work, and awards, fetched concurrently.
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  models.EmployeeProfile
// @Failure      404  {object}  map[string]interface{} "Employee not found"
// @Router       /api/employees/{id}/profile [get]
func (h *EmployeeHandler) GetEmployeeProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	profile, err := h.profiles.EmployeeProfile(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, profile)
}

// CreateEmployee godoc
// @Summary      Create a new employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateEmployeeRequest true "Employee payload"
// @Success      201  {object}  models.Employee
// @Failure      400  {object}  map[string]interface{} "Validation failure"
// @Router       /api/employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	employee, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, employee)
}

// UpdateEmployee godoc
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Param        body body dto.UpdateEmployeeRequest true "Employee payload"
// @Success      200  {object}  models.Employee
// @Failure      404  {object}  map[string]interface{} "Employee not found"
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	employee, err := h.repo.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, employee)
}

// DeleteEmployee godoc
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  map[string]interface{} "Employee deleted"
// @Failure      404  {object}  map[string]interface{} "Employee not found"
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	respondMessage(c, "Employee deleted successfully")
}
