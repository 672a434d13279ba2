package routes

import (
	"hr-recruiting-api/internal/api/handlers"
	"hr-recruiting-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to job
// applications. The whole group requires an authenticated admin.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler handlers.JobApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	applications := rg.Group("/applications")
	applications.Use(authMiddleware, middleware.RequireAdmin())
	{
		applications.GET("", applicationHandler.GetApplications)
		applications.GET("/status/:status", applicationHandler.GetApplicationsByStatus)
		applications.GET("/:id", applicationHandler.GetApplicationByID)
		applications.POST("", applicationHandler.CreateApplication)
		applications.PATCH("/:id/status", applicationHandler.UpdateApplicationStatus)
		applications.DELETE("/:id", applicationHandler.DeleteApplication)
	}
}
