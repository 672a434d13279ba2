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

// CompanyRepo implements the storage.CompanyRepository interface using PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepo creates a new CompanyRepo.
func NewCompanyRepo(db *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{db: db}
}

var _ storage.CompanyRepository = (*CompanyRepo)(nil)

const companySelect = `
	SELECT c.company_id, c.name, c.number_of_employees, c.rating, c.location_id,
	       l.city, l.state, l.country, l.address
	FROM companies c
	LEFT JOIN locations l ON c.location_id = l.location_id
`

func (r *CompanyRepo) GetAll(ctx context.Context) ([]models.Company, error) {
	rows, err := r.db.Query(ctx, companySelect+` ORDER BY c.name`)
	if err != nil {
		log.Errorf("Error querying companies: %v", err)
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	return collectList[models.Company](rows)
}

func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	var c models.Company
	err := r.db.QueryRow(ctx, companySelect+` WHERE c.company_id = $1`, id).Scan(
		&c.CompanyID, &c.Name, &c.NumberOfEmployees, &c.Rating, &c.LocationID,
		&c.City, &c.State, &c.Country, &c.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error scanning company %d: %v", id, err)
		return nil, fmt.Errorf("failed to get company %d: %w", id, err)
	}
	return &c, nil
}

func (r *CompanyRepo) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	query := `
		INSERT INTO companies (name, number_of_employees, rating, location_id)
		VALUES ($1, $2, $3, $4)
		RETURNING company_id, name, number_of_employees, rating, location_id
	`
	var c models.Company
	err := r.db.QueryRow(ctx, query, req.Name, req.NumberOfEmployees, req.Rating, req.LocationID).Scan(
		&c.CompanyID, &c.Name, &c.NumberOfEmployees, &c.Rating, &c.LocationID,
	)
	if err != nil {
		log.Errorf("Error creating company: %v", err)
		return nil, fmt.Errorf("failed to create company: %w", classifyError(err))
	}
	return &c, nil
}

func (r *CompanyRepo) Update(ctx context.Context, id int64, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	query := `
		UPDATE companies
		SET name = $1, number_of_employees = $2, rating = $3, location_id = $4
		WHERE company_id = $5
		RETURNING company_id, name, number_of_employees, rating, location_id
	`
	var c models.Company
	err := r.db.QueryRow(ctx, query, req.Name, req.NumberOfEmployees, req.Rating, req.LocationID, id).Scan(
		&c.CompanyID, &c.Name, &c.NumberOfEmployees, &c.Rating, &c.LocationID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error updating company %d: %v", id, err)
		return nil, fmt.Errorf("failed to update company %d: %w", id, classifyError(err))
	}
	return &c, nil
}

func (r *CompanyRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE company_id = $1`, id)
	if err != nil {
		log.Errorf("Error deleting company %d: %v", id, err)
		return fmt.Errorf("failed to delete company %d: %w", id, classifyError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// GetPositions lists the positions owned by a company.
func (r *CompanyRepo) GetPositions(ctx context.Context, companyID int64) ([]models.Position, error) {
	query := `
		SELECT position_id, role, ft_pte, salary, company_id, location_id
		FROM positions
		WHERE company_id = $1
		ORDER BY role
	`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		log.Errorf("Error querying positions for company %d: %v", companyID, err)
		return nil, fmt.Errorf("failed to query company positions: %w", err)
	}
	defer rows.Close()

	return collectList[models.Position](rows)
}

// GetEmployees lists the employees of a company.
func (r *CompanyRepo) GetEmployees(ctx context.Context, companyID int64) ([]models.Employee, error) {
	query := `
		SELECT employee_id, first_name, last_name, former_current, performance_rating,
		       promotions_count, company_id, position_id
		FROM employees
		WHERE company_id = $1
		ORDER BY last_name, first_name
	`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		log.Errorf("Error querying employees for company %d: %v", companyID, err)
		return nil, fmt.Errorf("failed to query company employees: %w", err)
	}
	defer rows.Close()

	return collectList[models.Employee](rows)
}
