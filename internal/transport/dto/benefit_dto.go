package dto

// CreateBenefitRequest defines the structure for creating a new benefit.
type CreateBenefitRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// UpdateBenefitRequest overwrites the full row.
type UpdateBenefitRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// CreateRequirementRequest defines the structure for creating a new requirement.
type CreateRequirementRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// UpdateRequirementRequest overwrites the full row.
type UpdateRequirementRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}
