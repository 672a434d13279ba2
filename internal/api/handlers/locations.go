package handlers

import (
	"hr-recruiting-api/internal/storage"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// LocationHandler holds the repository dependency for location operations.
type LocationHandler struct {
	repo      storage.LocationRepository
	validator *validator.Validate
}

// NewLocationHandler creates a new LocationHandler with the given repository.
func NewLocationHandler(repo storage.LocationRepository, validate *validator.Validate) *LocationHandler {
	return &LocationHandler{repo: repo, validator: validate}
}

// GetLocations godoc
// @Summary      List all locations
// @Tags         locations
// @Produce      json
// @Success      200  {array}   models.Location
// @Router       /api/locations [get]
func (h *LocationHandler) GetLocations(c *gin.Context) {
	locations, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, locations)
}

// GetLocationByID godoc
// @Summary      Get a location by ID
// @Tags         locations
// @Produce      json
// @Param        id   path      int  true  "Location ID"
// @Success      200  {object}  models.Location
// @Failure      404  {object}  map[string]interface{} "Location not found"
// @Router       /api/locations/{id} [get]
func (h *LocationHandler) GetLocationByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	location, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, location)
}

// CreateLocation godoc
// @Summary      Create a new location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateLocationRequest true "Location payload"
// @Success      201  {object}  models.Location
// @Failure      400  {object}  map[string]interface{} "Validation failure"
// @Router       /api/locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	location, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, location)
}

// UpdateLocation godoc
// @Summary      Update a location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Location ID"
// @Param        body body dto.UpdateLocationRequest true "Location payload"
// @Success      200  {object}  models.Location
// @Failure      404  {object}  map[string]interface{} "Location not found"
// @Router       /api/locations/{id} [put]
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateLocationRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	location, err := h.repo.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, location)
}

// DeleteLocation godoc
// @Summary      Delete a location
// @Tags         locations
// @Produce      json
// @Param        id   path      int  true  "Location ID"
// @Success      200  {object}  map[string]interface{} "Location deleted"
// @Failure      404  {object}  map[string]interface{} "Location not found"
// @Router       /api/locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	respondMessage(c, "Location deleted successfully")
}
