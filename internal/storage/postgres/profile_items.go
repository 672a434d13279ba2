package postgres

import (
	"context"
	"fmt"

	"hr-recruiting-api/internal/models"
	"hr-recruiting-api/internal/storage"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// ProfileItemRepo implements storage.ProfileItemRepository for one parent
// kind. The job seeker and employee child tables share a column layout and
// differ only in name ("job_seeker_skills" vs "employee_skills"), so the
// owner prefix is fixed at construction and interpolated into identifiers
// only, never into values.
type ProfileItemRepo struct {
	db    Querier
	owner string // "job_seeker" or "employee"
}

// NewJobSeekerProfileItemRepo serves the job_seeker_* child tables.
func NewJobSeekerProfileItemRepo(db *pgxpool.Pool) *ProfileItemRepo {
	return &ProfileItemRepo{db: db, owner: "job_seeker"}
}

// NewEmployeeProfileItemRepo serves the employee_* child tables.
func NewEmployeeProfileItemRepo(db *pgxpool.Pool) *ProfileItemRepo {
	return &ProfileItemRepo{db: db, owner: "employee"}
}

var _ storage.ProfileItemRepository = (*ProfileItemRepo)(nil)

func (r *ProfileItemRepo) table(family string) string {
	return r.owner + "_" + family
}

func (r *ProfileItemRepo) ownerColumn() string {
	return r.owner + "_id"
}

// --- Skills ---

func (r *ProfileItemRepo) GetSkills(ctx context.Context, ownerID int64) ([]models.Skill, error) {
	query := fmt.Sprintf(
		`SELECT skill_id, name, description FROM %s WHERE %s = $1 ORDER BY skill_id`,
		r.table("skills"), r.ownerColumn(),
	)
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		log.Errorf("Error querying %s skills for %d: %v", r.owner, ownerID, err)
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	return collectList[models.Skill](rows)
}

func (r *ProfileItemRepo) AddSkill(ctx context.Context, ownerID int64, req *dto.AddSkillRequest) (*models.Skill, error) {
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, name, description) VALUES ($1, $2, $3)
		 RETURNING skill_id, name, description`,
		r.table("skills"), r.ownerColumn(),
	)
	var s models.Skill
	err := r.db.QueryRow(ctx, query, ownerID, req.Name, req.Description).Scan(&s.SkillID, &s.Name, &s.Description)
	if err != nil {
		log.Errorf("Error adding skill for %s %d: %v", r.owner, ownerID, err)
		return nil, fmt.Errorf("failed to add skill: %w", classifyError(err))
	}
	return &s, nil
}

func (r *ProfileItemRepo) RemoveSkill(ctx context.Context, skillID int64) error {
	return r.remove(ctx, r.table("skills"), "skill_id", skillID)
}

// --- Degrees ---

func (r *ProfileItemRepo) GetDegrees(ctx context.Context, ownerID int64) ([]models.Degree, error) {
	query := fmt.Sprintf(
		`SELECT degree_id, school_name, level, concentration, year FROM %s WHERE %s = $1 ORDER BY degree_id`,
		r.table("degrees"), r.ownerColumn(),
	)
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		log.Errorf("Error querying %s degrees for %d: %v", r.owner, ownerID, err)
		return nil, fmt.Errorf("failed to query degrees: %w", err)
	}
	defer rows.Close()

	return collectList[models.Degree](rows)
}

func (r *ProfileItemRepo) AddDegree(ctx context.Context, ownerID int64, req *dto.AddDegreeRequest) (*models.Degree, error) {
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, school_name, level, concentration, year) VALUES ($1, $2, $3, $4, $5)
		 RETURNING degree_id, school_name, level, concentration, year`,
		r.table("degrees"), r.ownerColumn(),
	)
	var d models.Degree
	err := r.db.QueryRow(ctx, query, ownerID, req.SchoolName, req.Level, req.Concentration, req.Year).Scan(
		&d.DegreeID, &d.SchoolName, &d.Level, &d.Concentration, &d.Year,
	)
	if err != nil {
		log.Errorf("Error adding degree for %s %d: %v", r.owner, ownerID, err)
		return nil, fmt.Errorf("failed to add degree: %w", classifyError(err))
	}
	return &d, nil
}

func (r *ProfileItemRepo) RemoveDegree(ctx context.Context, degreeID int64) error {
	return r.remove(ctx, r.table("degrees"), "degree_id", degreeID)
}

// --- Experiences ---

func (r *ProfileItemRepo) GetExperiences(ctx context.Context, ownerID int64) ([]models.Experience, error) {
	query := fmt.Sprintf(
		`SELECT experience_id, company, title, salary, description, start_date, end_date
		 FROM %s WHERE %s = $1 ORDER BY start_date DESC`,
		r.table("experiences"), r.ownerColumn(),
	)
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		log.Errorf("Error querying %s experiences for %d: %v", r.owner, ownerID, err)
		return nil, fmt.Errorf("failed to query experiences: %w", err)
	}
	defer rows.Close()

	return collectList[models.Experience](rows)
}

func (r *ProfileItemRepo) AddExperience(ctx context.Context, ownerID int64, req *dto.AddExperienceRequest) (*models.Experience, error) {
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, company, title, salary, description, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6::date, $7::date)
		 RETURNING experience_id, company, title, salary, description, start_date, end_date`,
		r.table("experiences"), r.ownerColumn(),
	)
	var e models.Experience
	err := r.db.QueryRow(ctx, query,
		ownerID, req.Company, req.Title, req.Salary, req.Description, req.StartDate, req.EndDate,
	).Scan(&e.ExperienceID, &e.Company, &e.Title, &e.Salary, &e.Description, &e.StartDate, &e.EndDate)
	if err != nil {
		log.Errorf("Error adding experience for %s %d: %v", r.owner, ownerID, err)
		return nil, fmt.Errorf("failed to add experience: %w", classifyError(err))
	}
	return &e, nil
}

func (r *ProfileItemRepo) RemoveExperience(ctx context.Context, experienceID int64) error {
	return r.remove(ctx, r.table("experiences"), "experience_id", experienceID)
}

// --- Volunteer work ---

func (r *ProfileItemRepo) GetVolunteerWork(ctx context.Context, ownerID int64) ([]models.VolunteerWork, error) {
	query := fmt.Sprintf(
		`SELECT volunteer_id, role, organization, start_date, end_date
		 FROM %s WHERE %s = $1 ORDER BY volunteer_id`,
		r.table("volunteer_work"), r.ownerColumn(),
	)
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		log.Errorf("Error querying %s volunteer work for %d: %v", r.owner, ownerID, err)
		return nil, fmt.Errorf("failed to query volunteer work: %w", err)
	}
	defer rows.Close()

	return collectList[models.VolunteerWork](rows)
}

func (r *ProfileItemRepo) AddVolunteerWork(ctx context.Context, ownerID int64, req *dto.AddVolunteerWorkRequest) (*models.VolunteerWork, error) {
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, role, organization, start_date, end_date)
		 VALUES ($1, $2, $3, $4::date, $5::date)
		 RETURNING volunteer_id, role, organization, start_date, end_date`,
		r.table("volunteer_work"), r.ownerColumn(),
	)
	var v models.VolunteerWork
	err := r.db.QueryRow(ctx, query, ownerID, req.Role, req.Organization, req.StartDate, req.EndDate).Scan(
		&v.VolunteerID, &v.Role, &v.Organization, &v.StartDate, &v.EndDate,
	)
	if err != nil {
		log.Errorf("Error adding volunteer work for %s %d: %v", r.owner, ownerID, err)
		return nil, fmt.Errorf("failed to add volunteer work: %w", classifyError(err))
	}
	return &v, nil
}

func (r *ProfileItemRepo) RemoveVolunteerWork(ctx context.Context, volunteerID int64) error {
	return r.remove(ctx, r.table("volunteer_work"), "volunteer_id", volunteerID)
}

// --- Awards ---

func (r *ProfileItemRepo) GetAwards(ctx context.Context, ownerID int64) ([]models.Award, error) {
	query := fmt.Sprintf(
		`SELECT award_id, name, organization, date FROM %s WHERE %s = $1 ORDER BY award_id`,
		r.table("awards"), r.ownerColumn(),
	)
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		log.Errorf("Error querying %s awards for %d: %v", r.owner, ownerID, err)
		return nil, fmt.Errorf("failed to query awards: %w", err)
	}
	defer rows.Close()

	return collectList[models.Award](rows)
}

func (r *ProfileItemRepo) AddAward(ctx context.Context, ownerID int64, req *dto.AddAwardRequest) (*models.Award, error) {
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, name, organization, date) VALUES ($1, $2, $3, $4::date)
		 RETURNING award_id, name, organization, date`,
		r.table("awards"), r.ownerColumn(),
	)
	var a models.Award
	err := r.db.QueryRow(ctx, query, ownerID, req.Name, req.Organization, req.Date).Scan(
		&a.AwardID, &a.Name, &a.Organization, &a.Date,
	)
	if err != nil {
		log.Errorf("Error adding award for %s %d: %v", r.owner, ownerID, err)
		return nil, fmt.Errorf("failed to add award: %w", classifyError(err))
	}
	return &a, nil
}

func (r *ProfileItemRepo) RemoveAward(ctx context.Context, awardID int64) error {
	return r.remove(ctx, r.table("awards"), "award_id", awardID)
}

func (r *ProfileItemRepo) remove(ctx context.Context, table, idColumn string, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, idColumn)
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Errorf("Error deleting from %s (%s=%d): %v", table, idColumn, id, err)
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
