package dto

// CreateLocationRequest defines the structure for creating a new location.
type CreateLocationRequest struct {
	City    string  `json:"city" validate:"required,max=100"`
	State   *string `json:"state" validate:"omitempty,max=100"`
	Country *string `json:"country" validate:"omitempty,max=100"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

// UpdateLocationRequest overwrites the full row.
type UpdateLocationRequest struct {
	City    string  `json:"city" validate:"required,max=100"`
	State   *string `json:"state" validate:"omitempty,max=100"`
	Country *string `json:"country" validate:"omitempty,max=100"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}
