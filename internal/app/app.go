package app

import (
	"hr-recruiting-api/config"
	"hr-recruiting-api/internal/services"
	"hr-recruiting-api/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate

	LocationRepo       storage.LocationRepository
	CompanyRepo        storage.CompanyRepository
	PositionRepo       storage.PositionRepository
	BenefitRepo        storage.BenefitRepository
	RequirementRepo    storage.RequirementRepository
	JobSeekerRepo      storage.JobSeekerRepository
	EmployeeRepo       storage.EmployeeRepository
	JobSeekerItemRepo  storage.ProfileItemRepository
	EmployeeItemRepo   storage.ProfileItemRepository
	JobApplicationRepo storage.JobApplicationRepository
	UserRepo           storage.UserRepository

	AuthService    services.AuthService
	ProfileService services.ProfileService
}
