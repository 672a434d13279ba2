package routes_test

import (
	"fmt"
	"net/http"
	"testing"

	"hr-recruiting-api/internal/api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubHandlers satisfies every handler interface with no-op endpoints so the
// route tables can be asserted without real dependencies.
type stubHandlers struct{}

func (stubHandlers) ok(c *gin.Context) { c.Status(http.StatusOK) }

func (s stubHandlers) Register(c *gin.Context)   { s.ok(c) }
func (s stubHandlers) Login(c *gin.Context)      { s.ok(c) }
func (s stubHandlers) AdminLogin(c *gin.Context) { s.ok(c) }
func (s stubHandlers) Profile(c *gin.Context)    { s.ok(c) }

func (s stubHandlers) GetLocations(c *gin.Context)    { s.ok(c) }
func (s stubHandlers) GetLocationByID(c *gin.Context) { s.ok(c) }
func (s stubHandlers) CreateLocation(c *gin.Context)  { s.ok(c) }
func (s stubHandlers) UpdateLocation(c *gin.Context)  { s.ok(c) }
func (s stubHandlers) DeleteLocation(c *gin.Context)  { s.ok(c) }

func (s stubHandlers) GetCompanies(c *gin.Context)        { s.ok(c) }
func (s stubHandlers) GetCompanyByID(c *gin.Context)      { s.ok(c) }
func (s stubHandlers) CreateCompany(c *gin.Context)       { s.ok(c) }
func (s stubHandlers) UpdateCompany(c *gin.Context)       { s.ok(c) }
func (s stubHandlers) DeleteCompany(c *gin.Context)       { s.ok(c) }
func (s stubHandlers) GetCompanyPositions(c *gin.Context) { s.ok(c) }
func (s stubHandlers) GetCompanyEmployees(c *gin.Context) { s.ok(c) }

func (s stubHandlers) GetPositions(c *gin.Context)              { s.ok(c) }
func (s stubHandlers) GetPositionByID(c *gin.Context)           { s.ok(c) }
func (s stubHandlers) CreatePosition(c *gin.Context)            { s.ok(c) }
func (s stubHandlers) UpdatePosition(c *gin.Context)            { s.ok(c) }
func (s stubHandlers) DeletePosition(c *gin.Context)            { s.ok(c) }
func (s stubHandlers) GetPositionBenefits(c *gin.Context)       { s.ok(c) }
func (s stubHandlers) AddPositionBenefit(c *gin.Context)        { s.ok(c) }
func (s stubHandlers) RemovePositionBenefit(c *gin.Context)     { s.ok(c) }
func (s stubHandlers) GetPositionRequirements(c *gin.Context)   { s.ok(c) }
func (s stubHandlers) AddPositionRequirement(c *gin.Context)    { s.ok(c) }
func (s stubHandlers) RemovePositionRequirement(c *gin.Context) { s.ok(c) }
func (s stubHandlers) GetPositionApplicants(c *gin.Context)     { s.ok(c) }

func (s stubHandlers) GetBenefits(c *gin.Context)    { s.ok(c) }
func (s stubHandlers) GetBenefitByID(c *gin.Context) { s.ok(c) }
func (s stubHandlers) CreateBenefit(c *gin.Context)  { s.ok(c) }
func (s stubHandlers) UpdateBenefit(c *gin.Context)  { s.ok(c) }
func (s stubHandlers) DeleteBenefit(c *gin.Context)  { s.ok(c) }

func (s stubHandlers) GetRequirements(c *gin.Context)    { s.ok(c) }
func (s stubHandlers) GetRequirementByID(c *gin.Context) { s.ok(c) }
func (s stubHandlers) CreateRequirement(c *gin.Context)  { s.ok(c) }
func (s stubHandlers) UpdateRequirement(c *gin.Context)  { s.ok(c) }
func (s stubHandlers) DeleteRequirement(c *gin.Context)  { s.ok(c) }

func (s stubHandlers) GetJobSeekers(c *gin.Context)            { s.ok(c) }
func (s stubHandlers) SearchJobSeekers(c *gin.Context)         { s.ok(c) }
func (s stubHandlers) GetJobSeekerByID(c *gin.Context)         { s.ok(c) }
func (s stubHandlers) GetJobSeekerProfile(c *gin.Context)      { s.ok(c) }
func (s stubHandlers) CreateJobSeeker(c *gin.Context)          { s.ok(c) }
func (s stubHandlers) UpdateJobSeeker(c *gin.Context)          { s.ok(c) }
func (s stubHandlers) DeleteJobSeeker(c *gin.Context)          { s.ok(c) }
func (s stubHandlers) GetJobSeekerApplications(c *gin.Context) { s.ok(c) }
func (s stubHandlers) ApplyForPosition(c *gin.Context)         { s.ok(c) }

func (s stubHandlers) GetSkills(c *gin.Context)           { s.ok(c) }
func (s stubHandlers) AddSkill(c *gin.Context)            { s.ok(c) }
func (s stubHandlers) RemoveSkill(c *gin.Context)         { s.ok(c) }
func (s stubHandlers) GetDegrees(c *gin.Context)          { s.ok(c) }
func (s stubHandlers) AddDegree(c *gin.Context)           { s.ok(c) }
func (s stubHandlers) RemoveDegree(c *gin.Context)        { s.ok(c) }
func (s stubHandlers) GetExperiences(c *gin.Context)      { s.ok(c) }
func (s stubHandlers) AddExperience(c *gin.Context)       { s.ok(c) }
func (s stubHandlers) RemoveExperience(c *gin.Context)    { s.ok(c) }
func (s stubHandlers) GetVolunteerWork(c *gin.Context)    { s.ok(c) }
func (s stubHandlers) AddVolunteerWork(c *gin.Context)    { s.ok(c) }
func (s stubHandlers) RemoveVolunteerWork(c *gin.Context) { s.ok(c) }
func (s stubHandlers) GetAwards(c *gin.Context)           { s.ok(c) }
func (s stubHandlers) AddAward(c *gin.Context)            { s.ok(c) }
func (s stubHandlers) RemoveAward(c *gin.Context)         { s.ok(c) }

func (s stubHandlers) GetEmployees(c *gin.Context)       { s.ok(c) }
func (s stubHandlers) SearchEmployees(c *gin.Context)    { s.ok(c) }
func (s stubHandlers) GetEmployeeByID(c *gin.Context)    { s.ok(c) }
func (s stubHandlers) GetEmployeeProfile(c *gin.Context) { s.ok(c) }
func (s stubHandlers) CreateEmployee(c *gin.Context)     { s.ok(c) }
func (s stubHandlers) UpdateEmployee(c *gin.Context)     { s.ok(c) }
func (s stubHandlers) DeleteEmployee(c *gin.Context)     { s.ok(c) }

func (s stubHandlers) GetApplications(c *gin.Context)         { s.ok(c) }
func (s stubHandlers) GetApplicationsByStatus(c *gin.Context) { s.ok(c) }
func (s stubHandlers) GetApplicationByID(c *gin.Context)      { s.ok(c) }
func (s stubHandlers) CreateApplication(c *gin.Context)       { s.ok(c) }
func (s stubHandlers) UpdateApplicationStatus(c *gin.Context) { s.ok(c) }
func (s stubHandlers) DeleteApplication(c *gin.Context)       { s.ok(c) }

func passthrough(c *gin.Context) { c.Next() }

func routeSet(r *gin.Engine) map[string]bool {
	set := make(map[string]bool)
	for _, ri := range r.Routes() {
		set[fmt.Sprintf("%s %s", ri.Method, ri.Path)] = true
	}
	return set
}

func TestRegisterResourceRoutes(t *testing.T) {
	r := gin.New()
	api := r.Group("/api")
	stub := stubHandlers{}

	routes.RegisterAuthRoutes(api, stub, passthrough, passthrough, passthrough)
	routes.RegisterLocationRoutes(api, stub)
	routes.RegisterCompanyRoutes(api, stub)
	routes.RegisterPositionRoutes(api, stub)
	routes.RegisterBenefitRoutes(api, stub)
	routes.RegisterRequirementRoutes(api, stub)
	routes.RegisterJobSeekerRoutes(api, stub, stub)
	routes.RegisterEmployeeRoutes(api, stub, stub)
	routes.RegisterApplicationRoutes(api, stub, passthrough)

	set := routeSet(r)

	expected := []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/auth/admin/login",
		"GET /api/auth/profile",

		"GET /api/locations",
		"GET /api/locations/:id",
		"POST /api/locations",
		"PUT /api/locations/:id",
		"DELETE /api/locations/:id",

		"GET /api/companies/:id/positions",
		"GET /api/companies/:id/employees",

		"GET /api/positions/:id/benefits",
		"POST /api/positions/:id/benefits",
		"DELETE /api/positions/:id/benefits/:benefitId",
		"GET /api/positions/:id/requirements",
		"POST /api/positions/:id/requirements",
		"DELETE /api/positions/:id/requirements/:requirementId",
		"GET /api/positions/:id/applicants",

		"GET /api/job-seekers/search",
		"GET /api/job-seekers/:id/profile",
		"POST /api/job-seekers/:id/applications",
		"GET /api/job-seekers/:id/applications",
		"GET /api/job-seekers/:id/skills",
		"DELETE /api/job-seekers/:id/skills/:skillId",
		"GET /api/job-seekers/:id/degrees",
		"GET /api/job-seekers/:id/experiences",
		"GET /api/job-seekers/:id/volunteer-work",
		"GET /api/job-seekers/:id/awards",

		"GET /api/employees/search",
		"GET /api/employees/:id/profile",
		"POST /api/employees/:id/skills",

		"GET /api/applications",
		"GET /api/applications/status/:status",
		"GET /api/applications/:id",
		"POST /api/applications",
		"PATCH /api/applications/:id/status",
		"DELETE /api/applications/:id",
	}

	for _, route := range expected {
		assert.True(t, set[route], "missing route: %s", route)
	}

	// Status updates are PATCH-only; a PUT on an application must not exist.
	assert.False(t, set["PUT /api/applications/:id"])
	assert.False(t, set["PUT /api/applications/:id/status"])
}
