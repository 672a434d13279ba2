package dto

// CreateJobSeekerRequest defines the structure for creating a new job seeker.
// Dates arrive as YYYY-MM-DD strings and are cast to date columns in SQL.
type CreateJobSeekerRequest struct {
	FirstName     string  `json:"first_name" validate:"required,max=100"`
	LastName      string  `json:"last_name" validate:"required,max=100"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	State         *string `json:"state" validate:"omitempty,max=100"`
	Dob           *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	WillingToMove bool    `json:"willing_to_move"`
}

// UpdateJobSeekerRequest overwrites the full row.
type UpdateJobSeekerRequest struct {
	FirstName     string  `json:"first_name" validate:"required,max=100"`
	LastName      string  `json:"last_name" validate:"required,max=100"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	State         *string `json:"state" validate:"omitempty,max=100"`
	Dob           *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	WillingToMove bool    `json:"willing_to_move"`
}

// --- Profile sub-entity requests (shared by job seekers and employees) ---

type AddSkillRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type AddDegreeRequest struct {
	SchoolName    string  `json:"school_name" validate:"required,max=255"`
	Level         *string `json:"level" validate:"omitempty,max=100"`
	Concentration *string `json:"concentration" validate:"omitempty,max=255"`
	Year          *int    `json:"year" validate:"omitempty,gte=1900,lte=2100"`
}

type AddExperienceRequest struct {
	Company     string   `json:"company" validate:"required,max=255"`
	Title       string   `json:"title" validate:"required,max=255"`
	Salary      *float64 `json:"salary" validate:"omitempty,gte=0"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	StartDate   *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type AddVolunteerWorkRequest struct {
	Role         string  `json:"role" validate:"required,max=255"`
	Organization *string `json:"organization" validate:"omitempty,max=255"`
	StartDate    *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type AddAwardRequest struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Organization *string `json:"organization" validate:"omitempty,max=255"`
	Date         *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
