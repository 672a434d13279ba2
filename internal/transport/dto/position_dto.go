package dto

// CreatePositionRequest defines the structure for creating a new position.
type CreatePositionRequest struct {
	Role       string   `json:"role" validate:"required,max=255"`
	FtPte      *string  `json:"ft_pte" validate:"omitempty,oneof=FT PTE"`
	Salary     *float64 `json:"salary" validate:"omitempty,gte=0"`
	CompanyID  *int64   `json:"company_id" validate:"omitempty,gt=0"`
	LocationID *int64   `json:"location_id" validate:"omitempty,gt=0"`
}

// UpdatePositionRequest overwrites the full row.
type UpdatePositionRequest struct {
	Role       string   `json:"role" validate:"required,max=255"`
	FtPte      *string  `json:"ft_pte" validate:"omitempty,oneof=FT PTE"`
	Salary     *float64 `json:"salary" validate:"omitempty,gte=0"`
	CompanyID  *int64   `json:"company_id" validate:"omitempty,gt=0"`
	LocationID *int64   `json:"location_id" validate:"omitempty,gt=0"`
}

// LinkBenefitRequest attaches an existing benefit to a position.
type LinkBenefitRequest struct {
	BenefitID int64 `json:"benefit_id" validate:"required,gt=0"`
}

// LinkRequirementRequest attaches an existing requirement to a position.
type LinkRequirementRequest struct {
	RequirementID int64 `json:"requirement_id" validate:"required,gt=0"`
}
