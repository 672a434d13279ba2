package routes

import (
	"hr-recruiting-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBenefitRoutes registers all routes related to benefits.
func RegisterBenefitRoutes(rg *gin.RouterGroup, benefitHandler handlers.BenefitHandlerInterface) {
	benefits := rg.Group("/benefits")
	{
		benefits.GET("", benefitHandler.GetBenefits)
		benefits.GET("/:id", benefitHandler.GetBenefitByID)
		benefits.POST("", benefitHandler.CreateBenefit)
		benefits.PUT("/:id", benefitHandler.UpdateBenefit)
		benefits.DELETE("/:id", benefitHandler.DeleteBenefit)
	}
}
