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

// LocationRepo implements the storage.LocationRepository interface using PostgreSQL.
type LocationRepo struct {
	db Querier
}

// NewLocationRepo creates a new LocationRepo.
func NewLocationRepo(db *pgxpool.Pool) *LocationRepo {
	return &LocationRepo{db: db}
}

var _ storage.LocationRepository = (*LocationRepo)(nil)

func (r *LocationRepo) GetAll(ctx context.Context) ([]models.Location, error) {
	query := `
		SELECT location_id, city, state, country, address
		FROM locations
		ORDER BY city
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Errorf("Error querying locations: %v", err)
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	return collectList[models.Location](rows)
}

func (r *LocationRepo) GetByID(ctx context.Context, id int64) (*models.Location, error) {
	query := `
		SELECT location_id, city, state, country, address
		FROM locations
		WHERE location_id = $1
	`
	var loc models.Location
	err := r.db.QueryRow(ctx, query, id).Scan(
		&loc.LocationID, &loc.City, &loc.State, &loc.Country, &loc.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error scanning location %d: %v", id, err)
		return nil, fmt.Errorf("failed to get location %d: %w", id, err)
	}
	return &loc, nil
}

func (r *LocationRepo) Create(ctx context.Context, req *dto.CreateLocationRequest) (*models.Location, error) {
	query := `
		INSERT INTO locations (city, state, country, address)
		VALUES ($1, $2, $3, $4)
		RETURNING location_id, city, state, country, address
	`
	var loc models.Location
	err := r.db.QueryRow(ctx, query, req.City, req.State, req.Country, req.Address).Scan(
		&loc.LocationID, &loc.City, &loc.State, &loc.Country, &loc.Address,
	)
	if err != nil {
		log.Errorf("Error creating location: %v", err)
		return nil, fmt.Errorf("failed to create location: %w", classifyError(err))
	}
	return &loc, nil
}

func (r *LocationRepo) Update(ctx context.Context, id int64, req *dto.UpdateLocationRequest) (*models.Location, error) {
	query := `
		UPDATE locations
		SET city = $1, state = $2, country = $3, address = $4
		WHERE location_id = $5
		RETURNING location_id, city, state, country, address
	`
	var loc models.Location
	err := r.db.QueryRow(ctx, query, req.City, req.State, req.Country, req.Address, id).Scan(
		&loc.LocationID, &loc.City, &loc.State, &loc.Country, &loc.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error updating location %d: %v", id, err)
		return nil, fmt.Errorf("failed to update location %d: %w", id, classifyError(err))
	}
	return &loc, nil
}

func (r *LocationRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM locations WHERE location_id = $1`, id)
	if err != nil {
		log.Errorf("Error deleting location %d: %v", id, err)
		return fmt.Errorf("failed to delete location %d: %w", id, classifyError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
