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

// JobApplicationRepo implements the storage.JobApplicationRepository interface using PostgreSQL.
type JobApplicationRepo struct {
	db Querier
}

// NewJobApplicationRepo creates a new JobApplicationRepo.
func NewJobApplicationRepo(db *pgxpool.Pool) *JobApplicationRepo {
	return &JobApplicationRepo{db: db}
}

var _ storage.JobApplicationRepository = (*JobApplicationRepo)(nil)

// Listing joins inline the applicant's name and the position/company display
// fields so the admin dashboard renders without follow-up reads.
const applicationListSelect = `
	SELECT ja.application_id, ja.job_seeker_id, ja.position_id, ja.status, ja.application_date,
	       js.first_name || ' ' || js.last_name AS applicant_name,
	       p.role AS position_role, c.name AS company_name
	FROM job_applications ja
	INNER JOIN job_seekers js ON ja.job_seeker_id = js.job_seeker_id
	INNER JOIN positions p ON ja.position_id = p.position_id
	LEFT JOIN companies c ON p.company_id = c.company_id
`

func (r *JobApplicationRepo) GetAll(ctx context.Context) ([]models.JobApplication, error) {
	rows, err := r.db.Query(ctx, applicationListSelect+` ORDER BY ja.application_date DESC`)
	if err != nil {
		log.Errorf("Error querying applications: %v", err)
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	return collectList[models.JobApplication](rows)
}

func (r *JobApplicationRepo) GetByID(ctx context.Context, id int64) (*models.JobApplication, error) {
	query := `
		SELECT ja.application_id, ja.job_seeker_id, ja.position_id, ja.status, ja.application_date,
		       js.first_name || ' ' || js.last_name AS applicant_name,
		       p.role AS position_role, p.salary, p.ft_pte, c.name AS company_name
		FROM job_applications ja
		INNER JOIN job_seekers js ON ja.job_seeker_id = js.job_seeker_id
		INNER JOIN positions p ON ja.position_id = p.position_id
		LEFT JOIN companies c ON p.company_id = c.company_id
		WHERE ja.application_id = $1
	`
	var a models.JobApplication
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ApplicationID, &a.JobSeekerID, &a.PositionID, &a.Status, &a.ApplicationDate,
		&a.ApplicantName, &a.PositionRole, &a.Salary, &a.FtPte, &a.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error scanning application %d: %v", id, err)
		return nil, fmt.Errorf("failed to get application %d: %w", id, err)
	}
	return &a, nil
}

func (r *JobApplicationRepo) GetByStatus(ctx context.Context, status models.ApplicationStatus) ([]models.JobApplication, error) {
	rows, err := r.db.Query(ctx, applicationListSelect+` WHERE ja.status = $1 ORDER BY ja.application_date DESC`, status)
	if err != nil {
		log.Errorf("Error querying applications by status %s: %v", status, err)
		return nil, fmt.Errorf("failed to query applications by status: %w", err)
	}
	defer rows.Close()

	return collectList[models.JobApplication](rows)
}

// ListByJobSeeker lists a job seeker's applications, newest first, joined
// with position/company display fields.
func (r *JobApplicationRepo) ListByJobSeeker(ctx context.Context, jobSeekerID int64) ([]models.JobApplication, error) {
	query := `
		SELECT ja.application_id, ja.job_seeker_id, ja.position_id, ja.status, ja.application_date,
		       p.role AS position_role, p.salary, p.ft_pte, c.name AS company_name
		FROM job_applications ja
		INNER JOIN positions p ON ja.position_id = p.position_id
		LEFT JOIN companies c ON p.company_id = c.company_id
		WHERE ja.job_seeker_id = $1
		ORDER BY ja.application_date DESC
	`
	rows, err := r.db.Query(ctx, query, jobSeekerID)
	if err != nil {
		log.Errorf("Error querying applications for job seeker %d: %v", jobSeekerID, err)
		return nil, fmt.Errorf("failed to query job seeker applications: %w", err)
	}
	defer rows.Close()

	return collectList[models.JobApplication](rows)
}

func (r *JobApplicationRepo) Create(ctx context.Context, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error) {
	status := models.StatusApplied
	if req.Status != nil {
		status = *req.Status
	}
	query := `
		INSERT INTO job_applications (job_seeker_id, position_id, status)
		VALUES ($1, $2, $3)
		RETURNING application_id, job_seeker_id, position_id, status, application_date
	`
	var a models.JobApplication
	err := r.db.QueryRow(ctx, query, req.JobSeekerID, req.PositionID, status).Scan(
		&a.ApplicationID, &a.JobSeekerID, &a.PositionID, &a.Status, &a.ApplicationDate,
	)
	if err != nil {
		log.Errorf("Error creating application (job_seeker=%d, position=%d): %v", req.JobSeekerID, req.PositionID, err)
		return nil, fmt.Errorf("failed to create application: %w", classifyError(err))
	}
	return &a, nil
}

// UpdateStatus patches the status field only; job_seeker_id, position_id and
// application_date are immutable after creation.
func (r *JobApplicationRepo) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.JobApplication, error) {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE job_applications SET status = $1 WHERE application_id = $2`,
		status, id,
	)
	if err != nil {
		log.Errorf("Error updating application %d status: %v", id, err)
		return nil, fmt.Errorf("failed to update application %d status: %w", id, classifyError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *JobApplicationRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM job_applications WHERE application_id = $1`, id)
	if err != nil {
		log.Errorf("Error deleting application %d: %v", id, err)
		return fmt.Errorf("failed to delete application %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
