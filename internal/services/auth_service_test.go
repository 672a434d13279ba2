package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hr-recruiting-api/internal/models"
	"hr-recruiting-api/internal/services"
	"hr-recruiting-api/internal/storage"
	"hr-recruiting-api/internal/transport/dto"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	jwtSecret   = "test-secret-key"
	jwtDuration = 15 * time.Minute
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// --- fakes ---

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	if !tx.committed {
		tx.rolledBack = true
	}
	return nil
}

type fakeTxBeginner struct {
	tx *fakeTx
}

func (b *fakeTxBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	return b.tx, nil
}

type fakeUserRepo struct {
	storage.UserRepository
	usersByEmail map[string]*models.User
	usersByID    map[int64]*models.User
	createFn     func(req *dto.CreateUserRecord) (*models.User, error)
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := r.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, storage.ErrNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if u, ok := r.usersByID[id]; ok {
		return u, nil
	}
	return nil, storage.ErrNotFound
}

func (r *fakeUserRepo) Create(ctx context.Context, req *dto.CreateUserRecord) (*models.User, error) {
	return r.createFn(req)
}

func (r *fakeUserRepo) WithTx(tx pgx.Tx) storage.UserRepository { return r }

type fakeJobSeekerRepo struct {
	storage.JobSeekerRepository
	createFn func(req *dto.CreateJobSeekerRequest) (*models.JobSeeker, error)
}

func (r *fakeJobSeekerRepo) Create(ctx context.Context, req *dto.CreateJobSeekerRequest) (*models.JobSeeker, error) {
	return r.createFn(req)
}

func (r *fakeJobSeekerRepo) WithTx(tx pgx.Tx) storage.JobSeekerRepository { return r }

// --- tests ---

func TestAuthService_Login(t *testing.T) {
	hash := hashPassword(t, "password123")
	admin := &models.User{UserID: 1, Email: "admin@example.com", PasswordHash: hash, Role: models.RoleAdmin}
	applicant := &models.User{UserID: 2, Email: "jane@example.com", PasswordHash: hash, Role: models.RoleApplicant}

	users := &fakeUserRepo{usersByEmail: map[string]*models.User{
		admin.Email:     admin,
		applicant.Email: applicant,
	}}
	svc := services.NewAuthService(&fakeTxBeginner{}, users, &fakeJobSeekerRepo{}, jwtSecret, jwtDuration)

	tests := []struct {
		name          string
		req           *dto.LoginRequest
		expectedError error
	}{
		{
			name: "Success",
			req:  &dto.LoginRequest{Email: "jane@example.com", Password: "password123"},
		},
		{
			name:          "Unknown email",
			req:           &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"},
			expectedError: services.ErrInvalidCredentials,
		},
		{
			name:          "Wrong password",
			req:           &dto.LoginRequest{Email: "jane@example.com", Password: "wrong"},
			expectedError: services.ErrInvalidCredentials,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.Login(context.Background(), tc.req)
			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tc.req.Email, resp.User.Email)
			assert.NotEmpty(t, resp.Token)
		})
	}
}

func TestAuthService_Login_TokenClaims(t *testing.T) {
	hash := hashPassword(t, "password123")
	user := &models.User{UserID: 42, Email: "jane@example.com", PasswordHash: hash, Role: models.RoleApplicant}
	users := &fakeUserRepo{usersByEmail: map[string]*models.User{user.Email: user}}
	svc := services.NewAuthService(&fakeTxBeginner{}, users, &fakeJobSeekerRepo{}, jwtSecret, jwtDuration)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: user.Email, Password: "password123"})
	require.NoError(t, err)

	claims := jwtv5.MapClaims{}
	parsed, err := jwtv5.ParseWithClaims(resp.Token, claims, func(token *jwtv5.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, "applicant", claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(jwtDuration).Unix(), int64(exp), 5)
}

func TestAuthService_Login_MissingSecret(t *testing.T) {
	hash := hashPassword(t, "password123")
	user := &models.User{UserID: 1, Email: "jane@example.com", PasswordHash: hash, Role: models.RoleApplicant}
	users := &fakeUserRepo{usersByEmail: map[string]*models.User{user.Email: user}}
	svc := services.NewAuthService(&fakeTxBeginner{}, users, &fakeJobSeekerRepo{}, "", jwtDuration)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: user.Email, Password: "password123"})
	assert.ErrorIs(t, err, services.ErrMisconfigured)
}

func TestAuthService_AdminLogin(t *testing.T) {
	hash := hashPassword(t, "password123")
	admin := &models.User{UserID: 1, Email: "admin@example.com", PasswordHash: hash, Role: models.RoleAdmin}
	applicant := &models.User{UserID: 2, Email: "jane@example.com", PasswordHash: hash, Role: models.RoleApplicant}

	users := &fakeUserRepo{usersByEmail: map[string]*models.User{
		admin.Email:     admin,
		applicant.Email: applicant,
	}}
	svc := services.NewAuthService(&fakeTxBeginner{}, users, &fakeJobSeekerRepo{}, jwtSecret, jwtDuration)

	t.Run("Success", func(t *testing.T) {
		resp, err := svc.AdminLogin(context.Background(), &dto.LoginRequest{Email: admin.Email, Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, resp.User.Role)
	})

	t.Run("Non-admin gets forbidden", func(t *testing.T) {
		_, err := svc.AdminLogin(context.Background(), &dto.LoginRequest{Email: applicant.Email, Password: "password123"})
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	// Credentials are checked before the role, so a bad password never
	// reveals whether the account is an admin.
	t.Run("Non-admin with wrong password gets credentials error", func(t *testing.T) {
		_, err := svc.AdminLogin(context.Background(), &dto.LoginRequest{Email: applicant.Email, Password: "wrong"})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}

func TestAuthService_Register(t *testing.T) {
	jobSeekerID := int64(7)

	t.Run("Success commits and links the job seeker", func(t *testing.T) {
		tx := &fakeTx{}
		var gotUserReq *dto.CreateUserRecord

		jobSeekers := &fakeJobSeekerRepo{createFn: func(req *dto.CreateJobSeekerRequest) (*models.JobSeeker, error) {
			return &models.JobSeeker{JobSeekerID: jobSeekerID, FirstName: req.FirstName, LastName: req.LastName}, nil
		}}
		users := &fakeUserRepo{createFn: func(req *dto.CreateUserRecord) (*models.User, error) {
			gotUserReq = req
			return &models.User{UserID: 3, Email: req.Email, Role: req.Role, JobSeekerID: req.JobSeekerID}, nil
		}}

		svc := services.NewAuthService(&fakeTxBeginner{tx: tx}, users, jobSeekers, jwtSecret, jwtDuration)
		resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Email:     "new@example.com",
			Password:  "password123",
			FirstName: "New",
			LastName:  "User",
		})
		require.NoError(t, err)

		assert.True(t, tx.committed)
		assert.False(t, tx.rolledBack)
		require.NotNil(t, gotUserReq)
		assert.Equal(t, models.RoleApplicant, gotUserReq.Role)
		require.NotNil(t, gotUserReq.JobSeekerID)
		assert.Equal(t, jobSeekerID, *gotUserReq.JobSeekerID)
		require.NotNil(t, resp.User.JobSeekerID)
		assert.Equal(t, jobSeekerID, *resp.User.JobSeekerID)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("Duplicate email rolls back", func(t *testing.T) {
		tx := &fakeTx{}
		jobSeekers := &fakeJobSeekerRepo{createFn: func(req *dto.CreateJobSeekerRequest) (*models.JobSeeker, error) {
			return &models.JobSeeker{JobSeekerID: jobSeekerID}, nil
		}}
		users := &fakeUserRepo{createFn: func(req *dto.CreateUserRecord) (*models.User, error) {
			return nil, storage.ErrDuplicateEmail
		}}

		svc := services.NewAuthService(&fakeTxBeginner{tx: tx}, users, jobSeekers, jwtSecret, jwtDuration)
		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Email:     "dup@example.com",
			Password:  "password123",
			FirstName: "Dup",
			LastName:  "User",
		})

		assert.ErrorIs(t, err, services.ErrConflict)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
	})

	t.Run("Job seeker failure rolls back", func(t *testing.T) {
		tx := &fakeTx{}
		jobSeekers := &fakeJobSeekerRepo{createFn: func(req *dto.CreateJobSeekerRequest) (*models.JobSeeker, error) {
			return nil, errors.New("insert failed")
		}}
		users := &fakeUserRepo{createFn: func(req *dto.CreateUserRecord) (*models.User, error) {
			t.Fatal("user create should not be reached")
			return nil, nil
		}}

		svc := services.NewAuthService(&fakeTxBeginner{tx: tx}, users, jobSeekers, jwtSecret, jwtDuration)
		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Email:     "new@example.com",
			Password:  "password123",
			FirstName: "New",
			LastName:  "User",
		})

		require.Error(t, err)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
	})
}

func TestAuthService_GetProfile(t *testing.T) {
	user := &models.User{UserID: 5, Email: "jane@example.com", Role: models.RoleApplicant}
	users := &fakeUserRepo{usersByID: map[int64]*models.User{5: user}}
	svc := services.NewAuthService(&fakeTxBeginner{}, users, &fakeJobSeekerRepo{}, jwtSecret, jwtDuration)

	got, err := svc.GetProfile(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = svc.GetProfile(context.Background(), 99)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
