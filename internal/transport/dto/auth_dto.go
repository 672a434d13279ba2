package dto

import "hr-recruiting-api/internal/models"

// RegisterRequest defines the applicant signup payload. The profile fields
// seed the linked job seeker record created in the same transaction.
type RegisterRequest struct {
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=6,max=72"`
	FirstName     string  `json:"first_name" validate:"required,max=100"`
	LastName      string  `json:"last_name" validate:"required,max=100"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	State         *string `json:"state" validate:"omitempty,max=100"`
	Dob           *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	WillingToMove bool    `json:"willing_to_move"`
}

// LoginRequest defines the credential payload for login and admin login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRecord is the internal contract for inserting a user row; the
// password is hashed by the repository before storage.
type CreateUserRecord struct {
	Email       string      `json:"email" validate:"required,email"`
	Password    string      `json:"password" validate:"required,min=6,max=72"`
	FirstName   string      `json:"first_name" validate:"required,max=100"`
	LastName    string      `json:"last_name" validate:"required,max=100"`
	Role        models.Role `json:"role" validate:"required"`
	JobSeekerID *int64      `json:"job_seeker_id" validate:"omitempty,gt=0"`
}

// AuthResponse wraps the user and a freshly issued token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}
