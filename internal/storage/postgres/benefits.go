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

// BenefitRepo implements the storage.BenefitRepository interface using PostgreSQL.
type BenefitRepo struct {
	db Querier
}

// NewBenefitRepo creates a new BenefitRepo.
func NewBenefitRepo(db *pgxpool.Pool) *BenefitRepo {
	return &BenefitRepo{db: db}
}

var _ storage.BenefitRepository = (*BenefitRepo)(nil)

func (r *BenefitRepo) GetAll(ctx context.Context) ([]models.Benefit, error) {
	rows, err := r.db.Query(ctx, `SELECT benefit_id, name, description FROM benefits ORDER BY name`)
	if err != nil {
		log.Errorf("Error querying benefits: %v", err)
		return nil, fmt.Errorf("failed to query benefits: %w", err)
	}
	defer rows.Close()

	return collectList[models.Benefit](rows)
}

func (r *BenefitRepo) GetByID(ctx context.Context, id int64) (*models.Benefit, error) {
	var b models.Benefit
	err := r.db.QueryRow(ctx,
		`SELECT benefit_id, name, description FROM benefits WHERE benefit_id = $1`, id,
	).Scan(&b.BenefitID, &b.Name, &b.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error scanning benefit %d: %v", id, err)
		return nil, fmt.Errorf("failed to get benefit %d: %w", id, err)
	}
	return &b, nil
}

func (r *BenefitRepo) Create(ctx context.Context, req *dto.CreateBenefitRequest) (*models.Benefit, error) {
	var b models.Benefit
	err := r.db.QueryRow(ctx,
		`INSERT INTO benefits (name, description) VALUES ($1, $2)
		 RETURNING benefit_id, name, description`,
		req.Name, req.Description,
	).Scan(&b.BenefitID, &b.Name, &b.Description)
	if err != nil {
		log.Errorf("Error creating benefit: %v", err)
		return nil, fmt.Errorf("failed to create benefit: %w", classifyError(err))
	}
	return &b, nil
}

func (r *BenefitRepo) Update(ctx context.Context, id int64, req *dto.UpdateBenefitRequest) (*models.Benefit, error) {
	var b models.Benefit
	err := r.db.QueryRow(ctx,
		`UPDATE benefits SET name = $1, description = $2 WHERE benefit_id = $3
		 RETURNING benefit_id, name, description`,
		req.Name, req.Description, id,
	).Scan(&b.BenefitID, &b.Name, &b.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error updating benefit %d: %v", id, err)
		return nil, fmt.Errorf("failed to update benefit %d: %w", id, classifyError(err))
	}
	return &b, nil
}

func (r *BenefitRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM benefits WHERE benefit_id = $1`, id)
	if err != nil {
		log.Errorf("Error deleting benefit %d: %v", id, err)
		return fmt.Errorf("failed to delete benefit %d: %w", id, classifyError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
