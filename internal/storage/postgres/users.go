package postgres

import (
	"context"
	"errors"
	"fmt"

	"hr-recruiting-api/internal/models"
	"hr-recruiting-api/internal/storage"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// WithTx creates a new UserRepo bound to the transaction.
func (r *UserRepo) WithTx(tx pgx.Tx) storage.UserRepository {
	return &UserRepo{db: tx}
}

var _ storage.UserRepository = (*UserRepo)(nil)

const userColumns = `user_id, email, password, first_name, last_name, role, job_seeker_id, created_at, updated_at`

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1`, id,
	).Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.JobSeekerID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error scanning user %d: %v", id, err)
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &u, nil
}

// GetByEmail returns the user including the password hash, for credential
// verification.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email,
	).Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.JobSeekerID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error scanning user by email: %v", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &u, nil
}

// Create hashes the password and inserts the user row. A unique violation
// on email maps to storage.ErrDuplicateEmail.
func (r *UserRepo) Create(ctx context.Context, req *dto.CreateUserRecord) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("Error hashing password: %v", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	query := `
		INSERT INTO users (email, password, first_name, last_name, role, job_seeker_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns
	var u models.User
	err = r.db.QueryRow(ctx, query,
		req.Email, string(hashedPassword), req.FirstName, req.LastName, req.Role, req.JobSeekerID,
	).Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.JobSeekerID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, storage.ErrDuplicateEmail
		}
		log.Errorf("Error creating user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", classifyError(err))
	}

	log.Infof("User created successfully with ID: %d", u.UserID)
	return &u, nil
}
