package dto

// CreateCompanyRequest defines the structure for creating a new company.
type CreateCompanyRequest struct {
	Name              string   `json:"name" validate:"required,max=255"`
	NumberOfEmployees *int     `json:"number_of_employees" validate:"omitempty,gte=0"`
	Rating            *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	LocationID        *int64   `json:"location_id" validate:"omitempty,gt=0"`
}

// UpdateCompanyRequest overwrites the full row.
type UpdateCompanyRequest struct {
	Name              string   `json:"name" validate:"required,max=255"`
	NumberOfEmployees *int     `json:"number_of_employees" validate:"omitempty,gte=0"`
	Rating            *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	LocationID        *int64   `json:"location_id" validate:"omitempty,gt=0"`
}
