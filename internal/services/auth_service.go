package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hr-recruiting-api/internal/models"
	"hr-recruiting-api/internal/storage"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v4"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// TxBeginner starts database transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type authService struct {
	db            TxBeginner
	users         storage.UserRepository
	jobSeekers    storage.JobSeekerRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(db TxBeginner, users storage.UserRepository, jobSeekers storage.JobSeekerRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	return &authService{
		db:            db,
		users:         users,
		jobSeekers:    jobSeekers,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates the job seeker record and the applicant user account in a
// single transaction, so a duplicate email never leaves an orphaned job
// seeker behind.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Errorf("AuthService: error starting registration transaction: %v", err)
		return nil, fmt.Errorf("internal error registering user: %w", err)
	}
	defer tx.Rollback(ctx) // no-op once committed

	jobSeeker, err := s.jobSeekers.WithTx(tx).Create(ctx, &dto.CreateJobSeekerRequest{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		City:          req.City,
		State:         req.State,
		Dob:           req.Dob,
		WillingToMove: req.WillingToMove,
	})
	if err != nil {
		log.Errorf("AuthService: error creating job seeker during registration: %v", err)
		return nil, fmt.Errorf("internal error registering user: %w", err)
	}

	user, err := s.users.WithTx(tx).Create(ctx, &dto.CreateUserRecord{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        models.RoleApplicant,
		JobSeekerID: &jobSeeker.JobSeekerID,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		log.Errorf("AuthService: error creating user during registration: %v", err)
		return nil, fmt.Errorf("internal error registering user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Errorf("AuthService: error committing registration: %v", err)
		return nil, fmt.Errorf("internal error registering user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	log.Infof("Registered applicant %d (job seeker %d)", user.UserID, jobSeeker.JobSeekerID)
	return &dto.AuthResponse{User: user, Token: token}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password return the same error so the response never reveals which one
// failed.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: user, Token: token}, nil
}

// AdminLogin verifies credentials first and only then checks the role, so a
// non-admin probing this endpoint with a wrong password still sees the
// generic credentials error.
func (s *authService) AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleAdmin {
		log.Warnf("Admin login rejected for non-admin user %d", user.UserID)
		return nil, fmt.Errorf("%w: admin access required", ErrForbidden)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: user, Token: token}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Errorf("AuthService: error fetching user %d: %v", userID, err)
		return nil, fmt.Errorf("internal error fetching profile: %w", err)
	}
	return user, nil
}

func (s *authService) authenticate(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Infof("Login attempt failed for %s: user not found", req.Email)
			return nil, ErrInvalidCredentials
		}
		log.Errorf("AuthService: error fetching user by email during login: %v", err)
		return nil, fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Infof("Login attempt failed for %s: invalid password", req.Email)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) issueToken(user *models.User) (string, error) {
	if s.jwtSecret == "" {
		return "", fmt.Errorf("%w: JWT secret is not set", ErrMisconfigured)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.UserID,
		"email":   user.Email,
		"role":    string(user.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(s.jwtExpiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.Errorf("Error signing token for user %d: %v", user.UserID, err)
		return "", fmt.Errorf("failed to generate login token: %w", err)
	}
	return tokenString, nil
}
