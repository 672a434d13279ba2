package handlers

import "github.com/gin-gonic/gin"

// Handler interfaces let the route registration functions accept stub
// implementations in tests.

// AuthHandlerInterface defines the handler surface for authentication routes.
type AuthHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	AdminLogin(c *gin.Context)
	Profile(c *gin.Context)
}

// LocationHandlerInterface defines the handler surface for location routes.
type LocationHandlerInterface interface {
	GetLocations(c *gin.Context)
	GetLocationByID(c *gin.Context)
	CreateLocation(c *gin.Context)
	UpdateLocation(c *gin.Context)
	DeleteLocation(c *gin.Context)
}

// CompanyHandlerInterface defines the handler surface for company routes.
type CompanyHandlerInterface interface {
	GetCompanies(c *gin.Context)
	GetCompanyByID(c *gin.Context)
	CreateCompany(c *gin.Context)
	UpdateCompany(c *gin.Context)
	DeleteCompany(c *gin.Context)
	GetCompanyPositions(c *gin.Context)
	GetCompanyEmployees(c *gin.Context)
}

// PositionHandlerInterface defines the handler surface for position routes.
type PositionHandlerInterface interface {
	GetPositions(c *gin.Context)
	GetPositionByID(c *gin.Context)
	CreatePosition(c *gin.Context)
	UpdatePosition(c *gin.Context)
	DeletePosition(c *gin.Context)
	GetPositionBenefits(c *gin.Context)
	AddPositionBenefit(c *gin.Context)
	RemovePositionBenefit(c *gin.Context)
	GetPositionRequirements(c *gin.Context)
	AddPositionRequirement(c *gin.Context)
	RemovePositionRequirement(c *gin.Context)
	GetPositionApplicants(c *gin.Context)
}

// BenefitHandlerInterface defines the handler surface for benefit routes.
type BenefitHandlerInterface interface {
	GetBenefits(c *gin.Context)
	GetBenefitByID(c *gin.Context)
	CreateBenefit(c *gin.Context)
	UpdateBenefit(c *gin.Context)
	DeleteBenefit(c *gin.Context)
}

// RequirementHandlerInterface defines the handler surface for requirement routes.
type RequirementHandlerInterface interface {
	GetRequirements(c *gin.Context)
	GetRequirementByID(c *gin.Context)
	CreateRequirement(c *gin.Context)
	UpdateRequirement(c *gin.Context)
	DeleteRequirement(c *gin.Context)
}

// JobSeekerHandlerInterface defines the handler surface for job seeker routes.
type JobSeekerHandlerInterface interface {
	GetJobSeekers(c *gin.Context)
	SearchJobSeekers(c *gin.Context)
	GetJobSeekerByID(c *gin.Context)
	GetJobSeekerProfile(c *gin.Context)
	CreateJobSeeker(c *gin.Context)
	UpdateJobSeeker(c *gin.Context)
	DeleteJobSeeker(c *gin.Context)
	GetJobSeekerApplications(c *gin.Context)
	ApplyForPosition(c *gin.Context)
}

// ProfileItemHandlerInterface defines the handler surface for the child
// profile relations, mounted under both parent kinds.
type ProfileItemHandlerInterface interface {
	GetSkills(c *gin.Context)
	AddSkill(c *gin.Context)
	RemoveSkill(c *gin.Context)
	GetDegrees(c *gin.Context)
	AddDegree(c *gin.Context)
	RemoveDegree(c *gin.Context)
	GetExperiences(c *gin.Context)
	AddExperience(c *gin.Context)
	RemoveExperience(c *gin.Context)
	GetVolunteerWork(c *gin.Context)
	AddVolunteerWork(c *gin.Context)
	RemoveVolunteerWork(c *gin.Context)
	GetAwards(c *gin.Context)
	AddAward(c *gin.Context)
	RemoveAward(c *gin.Context)
}

// EmployeeHandlerInterface defines the handler surface for employee routes.
type EmployeeHandlerInterface interface {
	GetEmployees(c *gin.Context)
	SearchEmployees(c *gin.Context)
	GetEmployeeByID(c *gin.Context)
	GetEmployeeProfile(c *gin.Context)
	CreateEmployee(c *gin.Context)
	UpdateEmployee(c *gin.Context)
	DeleteEmployee(c *gin.Context)
}

// JobApplicationHandlerInterface defines the handler surface for application routes.
type JobApplicationHandlerInterface interface {
	GetApplications(c *gin.Context)
	GetApplicationsByStatus(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	CreateApplication(c *gin.Context)
	UpdateApplicationStatus(c *gin.Context)
	DeleteApplication(c *gin.Context)
}
