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

// EmployeeRepo implements the storage.EmployeeRepository interface using PostgreSQL.
type EmployeeRepo struct {
	db Querier
}

// NewEmployeeRepo creates a new EmployeeRepo.
func NewEmployeeRepo(db *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

var _ storage.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeJoinedSelect = `
	SELECT e.employee_id, e.first_name, e.last_name, e.former_current,
	       e.performance_rating, e.promotions_count, e.company_id, e.position_id,
	       c.name AS company_name, p.role AS position_role
	FROM employees e
	LEFT JOIN companies c ON e.company_id = c.company_id
	LEFT JOIN positions p ON e.position_id = p.position_id
`

func (r *EmployeeRepo) GetAll(ctx context.Context, limit, offset int) ([]models.Employee, error) {
	query := employeeJoinedSelect + ` ORDER BY e.last_name, e.first_name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		log.Errorf("Error querying employees: %v", err)
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	return collectList[models.Employee](rows)
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	query := `
		SELECT e.employee_id, e.first_name, e.last_name, e.former_current,
		       e.performance_rating, e.promotions_count, e.company_id, e.position_id,
		       c.name AS company_name, p.role AS position_role, p.salary AS position_salary
		FROM employees e
		LEFT JOIN companies c ON e.company_id = c.company_id
		LEFT JOIN positions p ON e.position_id = p.position_id
		WHERE e.employee_id = $1
	`
	var e models.Employee
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.EmployeeID, &e.FirstName, &e.LastName, &e.FormerCurrent,
		&e.PerformanceRating, &e.PromotionsCount, &e.CompanyID, &e.PositionID,
		&e.CompanyName, &e.PositionRole, &e.PositionSalary,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error scanning employee %d: %v", id, err)
		return nil, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	return &e, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*models.Employee, error) {
	query := `
		INSERT INTO employees (first_name, last_name, former_current, performance_rating,
		                       promotions_count, company_id, position_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING employee_id, first_name, last_name, former_current, performance_rating,
		          promotions_count, company_id, position_id
	`
	var e models.Employee
	err := r.db.QueryRow(ctx, query,
		req.FirstName, req.LastName, req.FormerCurrent, req.PerformanceRating,
		req.PromotionsCount, req.CompanyID, req.PositionID,
	).Scan(
		&e.EmployeeID, &e.FirstName, &e.LastName, &e.FormerCurrent,
		&e.PerformanceRating, &e.PromotionsCount, &e.CompanyID, &e.PositionID,
	)
	if err != nil {
		log.Errorf("Error creating employee: %v", err)
		return nil, fmt.Errorf("failed to create employee: %w", classifyError(err))
	}
	return &e, nil
}

func (r *EmployeeRepo) Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*models.Employee, error) {
	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, former_current = $3, performance_rating = $4,
		    promotions_count = $5, company_id = $6, position_id = $7
		WHERE employee_id = $8
		RETURNING employee_id, first_name, last_name, former_current, performance_rating,
		          promotions_count, company_id, position_id
	`
	var e models.Employee
	err := r.db.QueryRow(ctx, query,
		req.FirstName, req.LastName, req.FormerCurrent, req.PerformanceRating,
		req.PromotionsCount, req.CompanyID, req.PositionID, id,
	).Scan(
		&e.EmployeeID, &e.FirstName, &e.LastName, &e.FormerCurrent,
		&e.PerformanceRating, &e.PromotionsCount, &e.CompanyID, &e.PositionID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Errorf("Error updating employee %d: %v", id, err)
		return nil, fmt.Errorf("failed to update employee %d: %w", id, classifyError(err))
	}
	return &e, nil
}

func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, id)
	if err != nil {
		log.Errorf("Error deleting employee %d: %v", id, err)
		return fmt.Errorf("failed to delete employee %d: %w", id, classifyError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Search performs case-insensitive substring matching over employee names.
func (r *EmployeeRepo) Search(ctx context.Context, term string) ([]models.Employee, error) {
	pattern := "%" + term + "%"
	query := employeeJoinedSelect + `
		WHERE e.first_name ILIKE $1 OR e.last_name ILIKE $1
		ORDER BY e.last_name, e.first_name
	`
	rows, err := r.db.Query(ctx, query, pattern)
	if err != nil {
		log.Errorf("Error searching employees for %q: %v", term, err)
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	defer rows.Close()

	return collectList[models.Employee](rows)
}
