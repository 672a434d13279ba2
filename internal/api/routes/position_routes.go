package routes

import (
	"hr-recruiting-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterPositionRoutes registers all routes related to positions,
// including the benefit/requirement links and the applicant listing.
func RegisterPositionRoutes(rg *gin.RouterGroup, positionHandler handlers.PositionHandlerInterface) {
	positions := rg.Group("/positions")
	{
		positions.GET("", positionHandler.GetPositions)
		positions.GET("/:id", positionHandler.GetPositionByID)
		positions.POST("", positionHandler.CreatePosition)
		positions.PUT("/:id", positionHandler.UpdatePosition)
		positions.DELETE("/:id", positionHandler.DeletePosition)

		positions.GET("/:id/benefits", positionHandler.GetPositionBenefits)
		positions.POST("/:id/benefits", positionHandler.AddPositionBenefit)
		positions.DELETE("/:id/benefits/:benefitId", positionHandler.RemovePositionBenefit)

		positions.GET("/:id/requirements", positionHandler.GetPositionRequirements)
		positions.POST("/:id/requirements", positionHandler.AddPositionRequirement)
		positions.DELETE("/:id/requirements/:requirementId", positionHandler.RemovePositionRequirement)

		positions.GET("/:id/applicants", positionHandler.GetPositionApplicants)
	}
}
