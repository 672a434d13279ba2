package postgres

import (
	"context"
	"errors"
	"fmt"

	"hr-recruiting-api/internal/models"
	"hr-recruiting-api/internal/storage"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// JobSeekerRepo implements the storage.JobSeekerRepository interface using PostgreSQL.
type JobSeekerRepo struct {
	db Querier
}

// NewJobSeekerRepo creates a new JobSeekerRepo.
func NewJobSeekerRepo(db *pgxpool.Pool) *JobSeekerRepo {
	return &JobSeekerRepo{db: db}
}

// WithTx creates a new JobSeekerRepo bound to the transaction.
func (r *JobSeekerRepo) WithTx(tx pgx.Tx) storage.JobSeekerRepository {
	return &JobSeekerRepo{db: tx}
}

var _ storage.JobSeekerRepository = (*JobSeekerRepo)(nil)

const jobSeekerColumns = `job_seeker_id, first_name, last_name, city, state, dob, willing_to_move`

func (r *JobSeekerRepo) GetAll(ctx context.Context, limit, offset int) ([]models.JobSeeker, error) {
	query := `
		SELECT ` + jobSeekerColumns + `
		FROM job_seekers
		ORDER BY last_name, first_name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		log.Errorf("Error querying job seekers: %v", err)
		return nil, fmt.Errorf("failed to query job seekers: %w", err)
	}
	defer rows.Close()

	return collectList[models.JobSeeker](rows)
}

func (r *JobSeekerRepo) GetByID(ctx context.Context, id int64) (*models.JobSeeker, error) {
	var js models.JobSeeker
	err := r.db.QueryRow(ctx,
		`SELECT `+jobSeekerColumns+` FROM job_seekers WHERE job_seeker_id = $1`, id,
	).Scan(&js.JobSeekerID, &js.FirstName, &js.LastName, &js.City, &js.State, &js.Dob, &js.WillingToMove)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error scanning job seeker %d: %v", id, err)
		return nil, fmt.Errorf("failed to get job seeker %d: %w", id, err)
	}
	return &js, nil
}

func (r *JobSeekerRepo) Create(ctx context.Context, req *dto.CreateJobSeekerRequest) (*models.JobSeeker, error) {
	query := `
		INSERT INTO job_seekers (first_name, last_name, city, state, dob, willing_to_move)
		VALUES ($1, $2, $3, $4, $5::date, $6)
		RETURNING ` + jobSeekerColumns
	var js models.JobSeeker
	err := r.db.QueryRow(ctx, query,
		req.FirstName, req.LastName, req.City, req.State, req.Dob, req.WillingToMove,
	).Scan(&js.JobSeekerID, &js.FirstName, &js.LastName, &js.City, &js.State, &js.Dob, &js.WillingToMove)
	if err != nil {
		log.Errorf("Error creating job seeker: %v", err)
		return nil, fmt.Errorf("failed to create job seeker: %w", classifyError(err))
	}
	return &js, nil
}

func (r *JobSeekerRepo) Update(ctx context.Context, id int64, req *dto.UpdateJobSeekerRequest) (*models.JobSeeker, error) {
	query := `
		UPDATE job_seekers
		SET first_name = $1, last_name = $2, city = $3, state = $4, dob = $5::date, willing_to_move = $6
		WHERE job_seeker_id = $7
		RETURNING ` + jobSeekerColumns
	var js models.JobSeeker
	err := r.db.QueryRow(ctx, query,
		req.FirstName, req.LastName, req.City, req.State, req.Dob, req.WillingToMove, id,
	).Scan(&js.JobSeekerID, &js.FirstName, &js.LastName, &js.City, &js.State, &js.Dob, &js.WillingToMove)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error updating job seeker %d: %v", id, err)
		return nil, fmt.Errorf("failed to update job seeker %d: %w", id, classifyError(err))
	}
	return &js, nil
}

func (r *JobSeekerRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM job_seekers WHERE job_seeker_id = $1`, id)
	if err != nil {
		log.Errorf("Error deleting job seeker %d: %v", id, err)
		return fmt.Errorf("failed to delete job seeker %d: %w", id, classifyError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Search performs case-insensitive substring matching over name and city.
func (r *JobSeekerRepo) Search(ctx context.Context, term string) ([]models.JobSeeker, error) {
	pattern := "%" + term + "%"
	query := `
		SELECT ` + jobSeekerColumns + `
		FROM job_seekers
		WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR city ILIKE $1
		ORDER BY last_name, first_name
	`
	rows, err := r.db.Query(ctx, query, pattern)
	if err != nil {
		log.Errorf("Error searching job seekers for %q: %v", term, err)
		return nil, fmt.Errorf("failed to search job seekers: %w", err)
	}
	defer rows.Close()

	return collectList[models.JobSeeker](rows)
}
