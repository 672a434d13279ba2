package routes

import (
	"hr-recruiting-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobSeekerRoutes registers all routes related to job seekers,
// including the aggregate profile read, the child profile relations, and
// application submission.
func RegisterJobSeekerRoutes(
	rg *gin.RouterGroup,
	jobSeekerHandler handlers.JobSeekerHandlerInterface,
	itemHandler handlers.ProfileItemHandlerInterface,
) {
	jobSeekers := rg.Group("/job-seekers")
	{
		jobSeekers.GET("", jobSeekerHandler.GetJobSeekers)
		jobSeekers.GET("/search", jobSeekerHandler.SearchJobSeekers)
		jobSeekers.GET("/:id", jobSeekerHandler.GetJobSeekerByID)
		jobSeekers.GET("/:id/profile", jobSeekerHandler.GetJobSeekerProfile)
		jobSeekers.POST("", jobSeekerHandler.CreateJobSeeker)
		jobSeekers.PUT("/:id", jobSeekerHandler.UpdateJobSeeker)
		jobSeekers.DELETE("/:id", jobSeekerHandler.DeleteJobSeeker)

		jobSeekers.GET("/:id/applications", jobSeekerHandler.GetJobSeekerApplications)
		jobSeekers.POST("/:id/applications", jobSeekerHandler.ApplyForPosition)

		registerProfileItemRoutes(jobSeekers, itemHandler)
	}
}

// registerProfileItemRoutes mounts the five child-relation families under a
// parent resource group. Shared by job seekers and employees.
func registerProfileItemRoutes(rg *gin.RouterGroup, itemHandler handlers.ProfileItemHandlerInterface) {
	rg.GET("/:id/skills", itemHandler.GetSkills)
	rg.POST("/:id/skills", itemHandler.AddSkill)
	rg.DELETE("/:id/skills/:skillId", itemHandler.RemoveSkill)

	rg.GET("/:id/degrees", itemHandler.GetDegrees)
	rg.POST("/:id/degrees", itemHandler.AddDegree)
	rg.DELETE("/:id/degrees/:degreeId", itemHandler.RemoveDegree)

	rg.GET("/:id/experiences", itemHandler.GetExperiences)
	rg.POST("/:id/experiences", itemHandler.AddExperience)
	rg.DELETE("/:id/experiences/:experienceId", itemHandler.RemoveExperience)

	rg.GET("/:id/volunteer-work", itemHandler.GetVolunteerWork)
	rg.POST("/:id/volunteer-work", itemHandler.AddVolunteerWork)
	rg.DELETE("/:id/volunteer-work/:volunteerId", itemHandler.RemoveVolunteerWork)

	rg.GET("/:id/awards", itemHandler.GetAwards)
	rg.POST("/:id/awards", itemHandler.AddAward)
	rg.DELETE("/:id/awards/:awardId", itemHandler.RemoveAward)
}
