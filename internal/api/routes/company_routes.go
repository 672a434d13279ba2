package routes

import (
	"hr-recruiting-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCompanyRoutes registers all routes related to companies.
func RegisterCompanyRoutes(rg *gin.RouterGroup, companyHandler handlers.CompanyHandlerInterface) {
	companies := rg.Group("/companies")
	{
		companies.GET("", companyHandler.GetCompanies)
		companies.GET("/:id", companyHandler.GetCompanyByID)
		companies.POST("", companyHandler.CreateCompany)
		companies.PUT("/:id", companyHandler.UpdateCompany)
		companies.DELETE("/:id", companyHandler.DeleteCompany)
		companies.GET("/:id/positions", companyHandler.GetCompanyPositions)
		companies.GET("/:id/employees", companyHandler.GetCompanyEmployees)
	}
}
