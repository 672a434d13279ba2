package storage

import (
	"context"

	"hr-recruiting-api/internal/models"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/jackc/pgx/v5"
)

// LocationRepository defines the interface for location data operations.
type LocationRepository interface {
	GetAll(ctx context.Context) ([]models.Location, error)
	GetByID(ctx context.Context, id int64) (*models.Location, error)
	Create(ctx context.Context, req *dto.CreateLocationRequest) (*models.Location, error)
	Update(ctx context.Context, id int64, req *dto.UpdateLocationRequest) (*models.Location, error)
	Delete(ctx context.Context, id int64) error
}

// CompanyRepository defines the interface for company data operations.
type CompanyRepository interface {
	GetAll(ctx context.Context) ([]models.Company, error)
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCompanyRequest) (*models.Company, error)
	Delete(ctx context.Context, id int64) error
	GetPositions(ctx context.Context, companyID int64) ([]models.Position, error)
	GetEmployees(ctx context.Context, companyID int64) ([]models.Employee, error)
}

// PositionRepository defines the interface for position data operations,
// including the benefit/requirement join tables and the applicant listing.
type PositionRepository interface {
	GetAll(ctx context.Context) ([]models.Position, error)
	GetByID(ctx context.Context, id int64) (*models.Position, error)
	Create(ctx context.Context, req *dto.CreatePositionRequest) (*models.Position, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePositionRequest) (*models.Position, error)
	Delete(ctx context.Context, id int64) error
	GetBenefits(ctx context.Context, positionID int64) ([]models.Benefit, error)
	AddBenefit(ctx context.Context, positionID, benefitID int64) error
	RemoveBenefit(ctx context.Context, positionID, benefitID int64) error
	GetRequirements(ctx context.Context, positionID int64) ([]models.Requirement, error)
	AddRequirement(ctx context.Context, positionID, requirementID int64) error
	RemoveRequirement(ctx context.Context, positionID, requirementID int64) error
	GetApplicants(ctx context.Context, positionID int64) ([]models.Applicant, error)
}

// BenefitRepository defines the interface for benefit data operations.
type BenefitRepository interface {
	GetAll(ctx context.Context) ([]models.Benefit, error)
	GetByID(ctx context.Context, id int64) (*models.Benefit, error)
	Create(ctx context.Context, req *dto.CreateBenefitRequest) (*models.Benefit, error)
	Update(ctx context.Context, id int64, req *dto.UpdateBenefitRequest) (*models.Benefit, error)
	Delete(ctx context.Context, id int64) error
}

// RequirementRepository defines the interface for requirement data operations.
type RequirementRepository interface {
	GetAll(ctx context.Context) ([]models.Requirement, error)
	GetByID(ctx context.Context, id int64) (*models.Requirement, error)
	Create(ctx context.Context, req *dto.CreateRequirementRequest) (*models.Requirement, error)
	Update(ctx context.Context, id int64, req *dto.UpdateRequirementRequest) (*models.Requirement, error)
	Delete(ctx context.Context, id int64) error
}

// JobSeekerRepository defines the interface for job seeker data operations.
type JobSeekerRepository interface {
	GetAll(ctx context.Context, limit, offset int) ([]models.JobSeeker, error)
	GetByID(ctx context.Context, id int64) (*models.JobSeeker, error)
	Create(ctx context.Context, req *dto.CreateJobSeekerRequest) (*models.JobSeeker, error)
	Update(ctx context.Context, id int64, req *dto.UpdateJobSeekerRequest) (*models.JobSeeker, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]models.JobSeeker, error)
	WithTx(tx pgx.Tx) JobSeekerRepository
}

// EmployeeRepository defines the interface for employee data operations.
type EmployeeRepository interface {
	GetAll(ctx context.Context, limit, offset int) ([]models.Employee, error)
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*models.Employee, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*models.Employee, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]models.Employee, error)
}

// ProfileItemRepository serves the five child-relation families (skills,
// degrees, experiences, volunteer work, awards) for one parent kind. The
// job seeker and employee variants differ only in table prefix.
type ProfileItemRepository interface {
	GetSkills(ctx context.Context, ownerID int64) ([]models.Skill, error)
	AddSkill(ctx context.Context, ownerID int64, req *dto.AddSkillRequest) (*models.Skill, error)
	RemoveSkill(ctx context.Context, skillID int64) error
	GetDegrees(ctx context.Context, ownerID int64) ([]models.Degree, error)
	AddDegree(ctx context.Context, ownerID int64, req *dto.AddDegreeRequest) (*models.Degree, error)
	RemoveDegree(ctx context.Context, degreeID int64) error
	GetExperiences(ctx context.Context, ownerID int64) ([]models.Experience, error)
	AddExperience(ctx context.Context, ownerID int64, req *dto.AddExperienceRequest) (*models.Experience, error)
	RemoveExperience(ctx context.Context, experienceID int64) error
	GetVolunteerWork(ctx context.Context, ownerID int64) ([]models.VolunteerWork, error)
	AddVolunteerWork(ctx context.Context, ownerID int64, req *dto.AddVolunteerWorkRequest) (*models.VolunteerWork, error)
	RemoveVolunteerWork(ctx context.Context, volunteerID int64) error
	GetAwards(ctx context.Context, ownerID int64) ([]models.Award, error)
	AddAward(ctx context.Context, ownerID int64, req *dto.AddAwardRequest) (*models.Award, error)
	RemoveAward(ctx context.Context, awardID int64) error
}

// JobApplicationRepository defines the interface for application data operations.
type JobApplicationRepository interface {
	GetAll(ctx context.Context) ([]models.JobApplication, error)
	GetByID(ctx context.Context, id int64) (*models.JobApplication, error)
	GetByStatus(ctx context.Context, status models.ApplicationStatus) ([]models.JobApplication, error)
	ListByJobSeeker(ctx context.Context, jobSeekerID int64) ([]models.JobApplication, error)
	Create(ctx context.Context, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.JobApplication, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, req *dto.CreateUserRecord) (*models.User, error)
	WithTx(tx pgx.Tx) UserRepository
}
