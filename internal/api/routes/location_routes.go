package routes

import (
	"hr-recruiting-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterLocationRoutes registers all routes related to locations.
func RegisterLocationRoutes(rg *gin.RouterGroup, locationHandler handlers.LocationHandlerInterface) {
	locations := rg.Group("/locations")
	{
		locations.GET("", locationHandler.GetLocations)
		locations.GET("/:id", locationHandler.GetLocationByID)
		locations.POST("", locationHandler.CreateLocation)
		locations.PUT("/:id", locationHandler.UpdateLocation)
		locations.DELETE("/:id", locationHandler.DeleteLocation)
	}
}
