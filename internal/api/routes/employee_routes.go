package routes

import (
	"hr-recruiting-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterEmployeeRoutes registers all routes related to employees,
// including the aggregate profile read and the child profile relations.
func RegisterEmployeeRoutes(
	rg *gin.RouterGroup,
	employeeHandler handlers.EmployeeHandlerInterface,
	itemHandler handlers.ProfileItemHandlerInterface,
) {
	employees := rg.Group("/employees")
	{
		employees.GET("", employeeHandler.GetEmployees)
		employees.GET("/search", employeeHandler.SearchEmployees)
		employees.GET("/:id", employeeHandler.GetEmployeeByID)
		employees.GET("/:id/profile", employeeHandler.GetEmployeeProfile)
		employees.POST("", employeeHandler.CreateEmployee)
		employees.PUT("/:id", employeeHandler.UpdateEmployee)
		employees.DELETE("/:id", employeeHandler.DeleteEmployee)

		registerProfileItemRoutes(employees, itemHandler)
	}
}
