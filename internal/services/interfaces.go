package services

import (
	"context"

	"hr-recruiting-api/internal/models"
	"hr-recruiting-api/internal/transport/dto"
)

// AuthService defines the interface for authentication business logic.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
}

// ProfileService assembles the aggregate profile reads.
type ProfileService interface {
	JobSeekerProfile(ctx context.Context, jobSeekerID int64) (*models.JobSeekerProfile, error)
	EmployeeProfile(ctx context.Context, employeeID int64) (*models.EmployeeProfile, error)
}
