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

// RequirementRepo implements the storage.RequirementRepository interface using PostgreSQL.
type RequirementRepo struct {
	db Querier
}

// NewRequirementRepo creates a new RequirementRepo.
func NewRequirementRepo(db *pgxpool.Pool) *RequirementRepo {
	return &RequirementRepo{db: db}
}

var _ storage.RequirementRepository = (*RequirementRepo)(nil)

func (r *RequirementRepo) GetAll(ctx context.Context) ([]models.Requirement, error) {
	rows, err := r.db.Query(ctx, `SELECT requirement_id, name, description FROM requirements ORDER BY name`)
	if err != nil {
		log.Errorf("Error querying requirements: %v", err)
		return nil, fmt.Errorf("failed to query requirements: %w", err)
	}
	defer rows.Close()

	return collectList[models.Requirement](rows)
}

func (r *RequirementRepo) GetByID(ctx context.Context, id int64) (*models.Requirement, error) {
	var req models.Requirement
	err := r.db.QueryRow(ctx,
		`SELECT requirement_id, name, description FROM requirements WHERE requirement_id = $1`, id,
	).Scan(&req.RequirementID, &req.Name, &req.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error scanning requirement %d: %v", id, err)
		return nil, fmt.Errorf("failed to get requirement %d: %w", id, err)
	}
	return &req, nil
}

func (r *RequirementRepo) Create(ctx context.Context, in *dto.CreateRequirementRequest) (*models.Requirement, error) {
	var req models.Requirement
	err := r.db.QueryRow(ctx,
		`INSERT INTO requirements (name, description) VALUES ($1, $2)
		 RETURNING requirement_id, name, description`,
		in.Name, in.Description,
	).Scan(&req.RequirementID, &req.Name, &req.Description)
	if err != nil {
		log.Errorf("Error creating requirement: %v", err)
		return nil, fmt.Errorf("failed to create requirement: %w", classifyError(err))
	}
	return &req, nil
}

func (r *RequirementRepo) Update(ctx context.Context, id int64, in *dto.UpdateRequirementRequest) (*models.Requirement, error) {
	var req models.Requirement
	err := r.db.QueryRow(ctx,
		`UPDATE requirements SET name = $1, description = $2 WHERE requirement_id = $3
		 RETURNING requirement_id, name, description`,
		in.Name, in.Description, id,
	).Scan(&req.RequirementID, &req.Name, &req.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error updating requirement %d: %v", id, err)
		return nil, fmt.Errorf("failed to update requirement %d: %w", id, classifyError(err))
	}
	return &req, nil
}

func (r *RequirementRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM requirements WHERE requirement_id = $1`, id)
	if err != nil {
		log.Errorf("Error deleting requirement %d: %v", id, err)
		return fmt.Errorf("failed to delete requirement %d: %w", id, classifyError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
