package main

import (
	"os"
	"os/signal"
	"syscall"

	"hr-recruiting-api/config"
	"hr-recruiting-api/internal/app"
	"hr-recruiting-api/internal/database"
	"hr-recruiting-api/internal/server"
	"hr-recruiting-api/internal/services"
	"hr-recruiting-api/internal/storage/postgres"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// @title           HR Recruiting API
// @version         1.0
// @description     Recruiting platform API: companies, positions, job seekers, employees, and applications.

// @host      localhost:5000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load .env before config so env overrides pick it up. Missing files are
	// fine in deployed environments.
	if err := godotenv.Load(); err != nil {
		log.Debugf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	configureLogging(cfg)

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	validate := validator.New()

	userRepo := postgres.NewUserRepo(dbPool)
	jobSeekerRepo := postgres.NewJobSeekerRepo(dbPool)
	employeeRepo := postgres.NewEmployeeRepo(dbPool)
	jobSeekerItemRepo := postgres.NewJobSeekerProfileItemRepo(dbPool)
	employeeItemRepo := postgres.NewEmployeeProfileItemRepo(dbPool)
	applicationRepo := postgres.NewJobApplicationRepo(dbPool)

	application := &app.Application{
		Config:             cfg,
		DBPool:             dbPool,
		RedisClient:        redisClient,
		Validator:          validate,
		LocationRepo:       postgres.NewLocationRepo(dbPool),
		CompanyRepo:        postgres.NewCompanyRepo(dbPool),
		PositionRepo:       postgres.NewPositionRepo(dbPool),
		BenefitRepo:        postgres.NewBenefitRepo(dbPool),
		RequirementRepo:    postgres.NewRequirementRepo(dbPool),
		JobSeekerRepo:      jobSeekerRepo,
		EmployeeRepo:       employeeRepo,
		JobSeekerItemRepo:  jobSeekerItemRepo,
		EmployeeItemRepo:   employeeItemRepo,
		JobApplicationRepo: applicationRepo,
		UserRepo:           userRepo,
		AuthService:        services.NewAuthService(dbPool, userRepo, jobSeekerRepo, cfg.JWT.Secret, cfg.JWT.Expiration),
		ProfileService:     services.NewProfileService(jobSeekerRepo, employeeRepo, jobSeekerItemRepo, employeeItemRepo, applicationRepo),
	}

	srv := server.NewServer(application)

	go func() {
		if err := srv.Start(); err != nil {
			log.Errorf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
}

func configureLogging(cfg *config.Config) {
	if cfg.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
		log.SetLevel(log.InfoLevel)
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.DebugLevel)
}
