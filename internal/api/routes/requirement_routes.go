package routes

import (
	"hr-recruiting-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRequirementRoutes registers all routes related to requirements.
func RegisterRequirementRoutes(rg *gin.RouterGroup, requirementHandler handlers.RequirementHandlerInterface) {
	requirements := rg.Group("/requirements")
	{
		requirements.GET("", requirementHandler.GetRequirements)
		requirements.GET("/:id", requirementHandler.GetRequirementByID)
		requirements.POST("", requirementHandler.CreateRequirement)
		requirements.PUT("/:id", requirementHandler.UpdateRequirement)
		requirements.DELETE("/:id", requirementHandler.DeleteRequirement)
	}
}
