package dto

// CreateEmployeeRequest defines the structure for creating a new employee.
type CreateEmployeeRequest struct {
	FirstName         string   `json:"first_name" validate:"required,max=100"`
	LastName          string   `json:"last_name" validate:"required,max=100"`
	FormerCurrent     *string  `json:"former_current" validate:"omitempty,oneof=Current Former"`
	PerformanceRating *float64 `json:"performance_rating" validate:"omitempty,gte=0,lte=5"`
	PromotionsCount   *int     `json:"promotions_count" validate:"omitempty,gte=0"`
	CompanyID         *int64   `json:"company_id" validate:"omitempty,gt=0"`
	PositionID        *int64   `json:"position_id" validate:"omitempty,gt=0"`
}

// UpdateEmployeeRequest overwrites the full row.
type UpdateEmployeeRequest struct {
	FirstName         string   `json:"first_name" validate:"required,max=100"`
	LastName          string   `json:"last_name" validate:"required,max=100"`
	FormerCurrent     *string  `json:"former_current" validate:"omitempty,oneof=Current Former"`
	PerformanceRating *float64 `json:"performance_rating" validate:"omitempty,gte=0,lte=5"`
	PromotionsCount   *int     `json:"promotions_count" validate:"omitempty,gte=0"`
	CompanyID         *int64   `json:"company_id" validate:"omitempty,gt=0"`
	PositionID        *int64   `json:"position_id" validate:"omitempty,gt=0"`
}
