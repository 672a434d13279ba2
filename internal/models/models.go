package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// --- Application Status Enum ---
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "Applied"
	StatusUnderReview ApplicationStatus = "Under Review"
	StatusInterview   ApplicationStatus = "Interview"
	StatusOffered     ApplicationStatus = "Offered"
	StatusAccepted    ApplicationStatus = "Accepted"
	StatusRejected    ApplicationStatus = "Rejected"
)

// Valid reports whether s is one of the known application statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusUnderReview, StatusInterview, StatusOffered, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- User Role Enum ---
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleApplicant Role = "applicant"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleApplicant
}

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Role: value is not string or []byte")
		}
	}
	v := Role(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
	*r = v
	return nil
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// Location is a physical address referenced by companies and positions.
type Location struct {
	LocationID int64   `json:"location_id" db:"location_id"`
	City       string  `json:"city" db:"city"`
	State      *string `json:"state,omitempty" db:"state"`
	Country    *string `json:"country,omitempty" db:"country"`
	Address    *string `json:"address,omitempty" db:"address"`
}

// Company owns positions and employees. City/State/Country/Address are
// display fields inlined from the joined location on reads.
type Company struct {
	CompanyID         int64   `json:"company_id" db:"company_id"`
	Name              string  `json:"name" db:"name"`
	NumberOfEmployees *int    `json:"number_of_employees,omitempty" db:"number_of_employees"`
	Rating            *float64 `json:"rating,omitempty" db:"rating"`
	LocationID        *int64  `json:"location_id,omitempty" db:"location_id"`
	City              *string `json:"city,omitempty" db:"city"`
	State             *string `json:"state,omitempty" db:"state"`
	Country           *string `json:"country,omitempty" db:"country"`
	Address           *string `json:"address,omitempty" db:"address"`
}

// Position is an open role at a company. CompanyName/City/State/Country/
// Address are display fields from joined rows.
type Position struct {
	PositionID  int64    `json:"position_id" db:"position_id"`
	Role        string   `json:"role" db:"role"`
	FtPte       *string  `json:"ft_pte,omitempty" db:"ft_pte"`
	Salary      *float64 `json:"salary,omitempty" db:"salary"`
	CompanyID   *int64   `json:"company_id,omitempty" db:"company_id"`
	LocationID  *int64   `json:"location_id,omitempty" db:"location_id"`
	CompanyName *string  `json:"company_name,omitempty" db:"company_name"`
	City        *string  `json:"city,omitempty" db:"city"`
	State       *string  `json:"state,omitempty" db:"state"`
	Country     *string  `json:"country,omitempty" db:"country"`
	Address     *string  `json:"address,omitempty" db:"address"`
}

// Benefit is linked to positions through a join table.
type Benefit struct {
	BenefitID   int64   `json:"benefit_id" db:"benefit_id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
}

// Requirement is linked to positions through a join table.
type Requirement struct {
	RequirementID int64   `json:"requirement_id" db:"requirement_id"`
	Name          string  `json:"name" db:"name"`
	Description   *string `json:"description,omitempty" db:"description"`
}

// JobSeeker is a candidate profile. Owns skills, degrees, experiences,
// volunteer work, awards and job applications.
type JobSeeker struct {
	JobSeekerID   int64      `json:"job_seeker_id" db:"job_seeker_id"`
	FirstName     string     `json:"first_name" db:"first_name"`
	LastName      string     `json:"last_name" db:"last_name"`
	City          *string    `json:"city,omitempty" db:"city"`
	State         *string    `json:"state,omitempty" db:"state"`
	Dob           *time.Time `json:"dob,omitempty" db:"dob"`
	WillingToMove bool       `json:"willing_to_move" db:"willing_to_move"`
}

// Employee belongs to a company and position. CompanyName/PositionRole/
// PositionSalary are display fields from joined rows.
type Employee struct {
	EmployeeID        int64    `json:"employee_id" db:"employee_id"`
	FirstName         string   `json:"first_name" db:"first_name"`
	LastName          string   `json:"last_name" db:"last_name"`
	FormerCurrent     *string  `json:"former_current,omitempty" db:"former_current"`
	PerformanceRating *float64 `json:"performance_rating,omitempty" db:"performance_rating"`
	PromotionsCount   *int     `json:"promotions_count,omitempty" db:"promotions_count"`
	CompanyID         *int64   `json:"company_id,omitempty" db:"company_id"`
	PositionID        *int64   `json:"position_id,omitempty" db:"position_id"`
	CompanyName       *string  `json:"company_name,omitempty" db:"company_name"`
	PositionRole      *string  `json:"position_role,omitempty" db:"position_role"`
	PositionSalary    *float64 `json:"position_salary,omitempty" db:"position_salary"`
}

// JobApplication links a job seeker to a position. Only Status is mutable
// after creation. ApplicantName/PositionRole/CompanyName come from joins.
type JobApplication struct {
	ApplicationID   int64             `json:"application_id" db:"application_id"`
	JobSeekerID     int64             `json:"job_seeker_id" db:"job_seeker_id"`
	PositionID      int64             `json:"position_id" db:"position_id"`
	Status          ApplicationStatus `json:"status" db:"status"`
	ApplicationDate time.Time         `json:"application_date" db:"application_date"`
	ApplicantName   *string           `json:"applicant_name,omitempty" db:"applicant_name"`
	PositionRole    *string           `json:"position_role,omitempty" db:"position_role"`
	CompanyName     *string           `json:"company_name,omitempty" db:"company_name"`
	Salary          *float64          `json:"salary,omitempty" db:"salary"`
	FtPte           *string           `json:"ft_pte,omitempty" db:"ft_pte"`
}

// Applicant is a job seeker row decorated with application status, as
// returned by the position applicants listing.
type Applicant struct {
	JobSeeker
	Status          ApplicationStatus `json:"status" db:"status"`
	ApplicationDate time.Time         `json:"application_date" db:"application_date"`
}

// User is an authentication identity. PasswordHash never serializes.
type User struct {
	UserID       int64     `json:"user_id" db:"user_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Role         Role      `json:"role" db:"role"`
	JobSeekerID  *int64    `json:"job_seeker_id,omitempty" db:"job_seeker_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// --- Profile sub-entities, shared by job seekers and employees ---

type Skill struct {
	SkillID     int64   `json:"skill_id" db:"skill_id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
}

type Degree struct {
	DegreeID      int64   `json:"degree_id" db:"degree_id"`
	SchoolName    string  `json:"school_name" db:"school_name"`
	Level         *string `json:"level,omitempty" db:"level"`
	Concentration *string `json:"concentration,omitempty" db:"concentration"`
	Year          *int    `json:"year,omitempty" db:"year"`
}

type Experience struct {
	ExperienceID int64      `json:"experience_id" db:"experience_id"`
	Company      string     `json:"company" db:"company"`
	Title        string     `json:"title" db:"title"`
	Salary       *float64   `json:"salary,omitempty" db:"salary"`
	Description  *string    `json:"description,omitempty" db:"description"`
	StartDate    *time.Time `json:"start_date,omitempty" db:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty" db:"end_date"`
}

type VolunteerWork struct {
	VolunteerID  int64      `json:"volunteer_id" db:"volunteer_id"`
	Role         string     `json:"role" db:"role"`
	Organization *string    `json:"organization,omitempty" db:"organization"`
	StartDate    *time.Time `json:"start_date,omitempty" db:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty" db:"end_date"`
}

type Award struct {
	AwardID      int64      `json:"award_id" db:"award_id"`
	Name         string     `json:"name" db:"name"`
	Organization *string    `json:"organization,omitempty" db:"organization"`
	Date         *time.Time `json:"date,omitempty" db:"date"`
}

// JobSeekerProfile is the aggregate returned by the full-profile read.
type JobSeekerProfile struct {
	JobSeeker
	Skills        []Skill          `json:"skills"`
	Degrees       []Degree         `json:"degrees"`
	Experiences   []Experience     `json:"experiences"`
	VolunteerWork []VolunteerWork  `json:"volunteer_work"`
	Awards        []Award          `json:"awards"`
	Applications  []JobApplication `json:"applications"`
}

// EmployeeProfile is the aggregate returned by the employee full-profile read.
type EmployeeProfile struct {
	Employee
	Skills        []Skill         `json:"skills"`
	Degrees       []Degree        `json:"degrees"`
	Experiences   []Experience    `json:"experiences"`
	VolunteerWork []VolunteerWork `json:"volunteer_work"`
	Awards        []Award         `json:"awards"`
}
