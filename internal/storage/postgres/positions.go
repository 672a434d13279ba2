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

// PositionRepo implements the storage.PositionRepository interface using PostgreSQL.
type PositionRepo struct {
	db Querier
}

// NewPositionRepo creates a new PositionRepo.
func NewPositionRepo(db *pgxpool.Pool) *PositionRepo {
	return &PositionRepo{db: db}
}

var _ storage.PositionRepository = (*PositionRepo)(nil)

func (r *PositionRepo) GetAll(ctx context.Context) ([]models.Position, error) {
	query := `
		SELECT p.position_id, p.role, p.ft_pte, p.salary, p.company_id, p.location_id,
		       c.name AS company_name, l.city, l.state
		FROM positions p
		LEFT JOIN companies c ON p.company_id = c.company_id
		LEFT JOIN locations l ON p.location_id = l.location_id
		ORDER BY p.role
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Errorf("Error querying positions: %v", err)
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	return collectList[models.Position](rows)
}

func (r *PositionRepo) GetByID(ctx context.Context, id int64) (*models.Position, error) {
	query := `
		SELECT p.position_id, p.role, p.ft_pte, p.salary, p.company_id, p.location_id,
		       c.name AS company_name, l.city, l.state, l.country, l.address
		FROM positions p
		LEFT JOIN companies c ON p.company_id = c.company_id
		LEFT JOIN locations l ON p.location_id = l.location_id
		WHERE p.position_id = $1
	`
	var p models.Position
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.PositionID, &p.Role, &p.FtPte, &p.Salary, &p.CompanyID, &p.LocationID,
		&p.CompanyName, &p.City, &p.State, &p.Country, &p.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error scanning position %d: %v", id, err)
		return nil, fmt.Errorf("failed to get position %d: %w", id, err)
	}
	return &p, nil
}

func (r *PositionRepo) Create(ctx context.Context, req *dto.CreatePositionRequest) (*models.Position, error) {
	query := `
		INSERT INTO positions (role, ft_pte, salary, company_id, location_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING position_id, role, ft_pte, salary, company_id, location_id
	`
	var p models.Position
	err := r.db.QueryRow(ctx, query, req.Role, req.FtPte, req.Salary, req.CompanyID, req.LocationID).Scan(
		&p.PositionID, &p.Role, &p.FtPte, &p.Salary, &p.CompanyID, &p.LocationID,
	)
	if err != nil {
		log.Errorf("Error creating position: %v", err)
		return nil, fmt.Errorf("failed to create position: %w", classifyError(err))
	}
	return &p, nil
}

func (r *PositionRepo) Update(ctx context.Context, id int64, req *dto.UpdatePositionRequest) (*models.Position, error) {
	query := `
		UPDATE positions
		SET role = $1, ft_pte = $2, salary = $3, company_id = $4, location_id = $5
		WHERE position_id = $6
		RETURNING position_id, role, ft_pte, salary, company_id, location_id
	`
	var p models.Position
	err := r.db.QueryRow(ctx, query, req.Role, req.FtPte, req.Salary, req.CompanyID, req.LocationID, id).Scan(
		&p.PositionID, &p.Role, &p.FtPte, &p.Salary, &p.CompanyID, &p.LocationID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error updating position %d: %v", id, err)
		return nil, fmt.Errorf("failed to update position %d: %w", id, classifyError(err))
	}
	return &p, nil
}

func (r *PositionRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM positions WHERE position_id = $1`, id)
	if err != nil {
		log.Errorf("Error deleting position %d: %v", id, err)
		return fmt.Errorf("failed to delete position %d: %w", id, classifyError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// GetBenefits lists benefits attached to a position through the join table.
func (r *PositionRepo) GetBenefits(ctx context.Context, positionID int64) ([]models.Benefit, error) {
	query := `
		SELECT b.benefit_id, b.name, b.description
		FROM benefits b
		INNER JOIN position_benefits pb ON b.benefit_id = pb.benefit_id
		WHERE pb.position_id = $1
	`
	rows, err := r.db.Query(ctx, query, positionID)
	if err != nil {
		log.Errorf("Error querying benefits for position %d: %v", positionID, err)
		return nil, fmt.Errorf("failed to query position benefits: %w", err)
	}
	defer rows.Close()

	return collectList[models.Benefit](rows)
}

func (r *PositionRepo) AddBenefit(ctx context.Context, positionID, benefitID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO position_benefits (position_id, benefit_id) VALUES ($1, $2)`,
		positionID, benefitID,
	)
	if err != nil {
		log.Errorf("Error linking benefit %d to position %d: %v", benefitID, positionID, err)
		return fmt.Errorf("failed to add benefit to position: %w", classifyError(err))
	}
	return nil
}

func (r *PositionRepo) RemoveBenefit(ctx context.Context, positionID, benefitID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM position_benefits WHERE position_id = $1 AND benefit_id = $2`,
		positionID, benefitID,
	)
	if err != nil {
		log.Errorf("Error unlinking benefit %d from position %d: %v", benefitID, positionID, err)
		return fmt.Errorf("failed to remove benefit from position: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// GetRequirements lists requirements attached to a position through the join table.
func (r *PositionRepo) GetRequirements(ctx context.Context, positionID int64) ([]models.Requirement, error) {
	query := `
		SELECT rq.requirement_id, rq.name, rq.description
		FROM requirements rq
		INNER JOIN position_requirements pr ON rq.requirement_id = pr.requirement_id
		WHERE pr.position_id = $1
	`
	rows, err := r.db.Query(ctx, query, positionID)
	if err != nil {
		log.Errorf("Error querying requirements for position %d: %v", positionID, err)
		return nil, fmt.Errorf("failed to query position requirements: %w", err)
	}
	defer rows.Close()

	return collectList[models.Requirement](rows)
}

func (r *PositionRepo) AddRequirement(ctx context.Context, positionID, requirementID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO position_requirements (position_id, requirement_id) VALUES ($1, $2)`,
		positionID, requirementID,
	)
	if err != nil {
		log.Errorf("Error linking requirement %d to position %d: %v", requirementID, positionID, err)
		return fmt.Errorf("failed to add requirement to position: %w", classifyError(err))
	}
	return nil
}

func (r *PositionRepo) RemoveRequirement(ctx context.Context, positionID, requirementID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM position_requirements WHERE position_id = $1 AND requirement_id = $2`,
		positionID, requirementID,
	)
	if err != nil {
		log.Errorf("Error unlinking requirement %d from position %d: %v", requirementID, positionID, err)
		return fmt.Errorf("failed to remove requirement from position: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// GetApplicants lists job seekers who applied to a position, newest first.
func (r *PositionRepo) GetApplicants(ctx context.Context, positionID int64) ([]models.Applicant, error) {
	query := `
		SELECT js.job_seeker_id, js.first_name, js.last_name, js.city, js.state,
		       js.dob, js.willing_to_move, ja.status, ja.application_date
		FROM job_seekers js
		INNER JOIN job_applications ja ON js.job_seeker_id = ja.job_seeker_id
		WHERE ja.position_id = $1
		ORDER BY ja.application_date DESC
	`
	rows, err := r.db.Query(ctx, query, positionID)
	if err != nil {
		log.Errorf("Error querying applicants for position %d: %v", positionID, err)
		return nil, fmt.Errorf("failed to query position applicants: %w", err)
	}
	defer rows.Close()

	return collectList[models.Applicant](rows)
}
