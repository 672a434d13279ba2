package routes

import (
	"net/http"

	"hr-recruiting-api/internal/api/handlers"
	"hr-recruiting-api/internal/api/middleware"
	"hr-recruiting-api/internal/app"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific
// registration functions.
func RegisterRoutes(router *gin.Engine, application *app.Application) {
	// --- Base API Group ---
	api := router.Group("/api")

	// --- Rate Limits ---
	// The general limit covers the whole API surface; the stricter login and
	// register limits stack on top of it for the credential endpoints.
	counters := middleware.NewRedisCounterStore(application.RedisClient)
	api.Use(middleware.RateLimitMiddleware(counters, middleware.GeneralRateLimit))
	loginLimiter := middleware.RateLimitMiddleware(counters, middleware.LoginRateLimit)
	registerLimiter := middleware.RateLimitMiddleware(counters, middleware.RegisterRateLimit)

	// --- Create handlers ---
	authHandler := handlers.NewAuthHandler(application.AuthService, application.Validator)
	locationHandler := handlers.NewLocationHandler(application.LocationRepo, application.Validator)
	companyHandler := handlers.NewCompanyHandler(application.CompanyRepo, application.Validator)
	positionHandler := handlers.NewPositionHandler(application.PositionRepo, application.Validator)
	benefitHandler := handlers.NewBenefitHandler(application.BenefitRepo, application.Validator)
	requirementHandler := handlers.NewRequirementHandler(application.RequirementRepo, application.Validator)
	jobSeekerHandler := handlers.NewJobSeekerHandler(application.JobSeekerRepo, application.JobApplicationRepo, application.ProfileService, application.Validator)
	jobSeekerItemHandler := handlers.NewProfileItemHandler(application.JobSeekerItemRepo, application.Validator)
	employeeHandler := handlers.NewEmployeeHandler(application.EmployeeRepo, application.ProfileService, application.Validator)
	employeeItemHandler := handlers.NewProfileItemHandler(application.EmployeeItemRepo, application.Validator)
	applicationHandler := handlers.NewJobApplicationHandler(application.JobApplicationRepo, application.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(application.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(api, authHandler, authMiddleware, loginLimiter, registerLimiter)
	RegisterLocationRoutes(api, locationHandler)
	RegisterCompanyRoutes(api, companyHandler)
	RegisterPositionRoutes(api, positionHandler)
	RegisterBenefitRoutes(api, benefitHandler)
	RegisterRequirementRoutes(api, requirementHandler)
	RegisterJobSeekerRoutes(api, jobSeekerHandler, jobSeekerItemHandler)
	RegisterEmployeeRoutes(api, employeeHandler, employeeItemHandler)
	RegisterApplicationRoutes(api, applicationHandler, authMiddleware)

	// --- Root and Health ---
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "HR Recruiting API is running",
		})
	})
	router.GET("/health", handlers.HealthCheck(application.Config.Server.Environment))

	log.Debug("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Unknown routes get the standard envelope instead of gin's default body.
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "route not found",
		})
	})
}
