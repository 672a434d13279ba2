package services_test

import (
	"context"
	"errors"
	"testing"

	"hr-recruiting-api/internal/models"
	"hr-recruiting-api/internal/services"
	"hr-recruiting-api/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobSeekerGetter struct {
	storage.JobSeekerRepository
	jobSeeker *models.JobSeeker
}

func (r *fakeJobSeekerGetter) GetByID(ctx context.Context, id int64) (*models.JobSeeker, error) {
	if r.jobSeeker != nil && r.jobSeeker.JobSeekerID == id {
		return r.jobSeeker, nil
	}
	return nil, storage.ErrNotFound
}

type fakeEmployeeGetter struct {
	storage.EmployeeRepository
	employee *models.Employee
}

func (r *fakeEmployeeGetter) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	if r.employee != nil && r.employee.EmployeeID == id {
		return r.employee, nil
	}
	return nil, storage.ErrNotFound
}

type fakeProfileItems struct {
	storage.ProfileItemRepository
	skills        []models.Skill
	degrees       []models.Degree
	experiences   []models.Experience
	volunteerWork []models.VolunteerWork
	awards        []models.Award
	skillsErr     error
}

func (r *fakeProfileItems) GetSkills(ctx context.Context, ownerID int64) ([]models.Skill, error) {
	return r.skills, r.skillsErr
}

func (r *fakeProfileItems) GetDegrees(ctx context.Context, ownerID int64) ([]models.Degree, error) {
	return r.degrees, nil
}

func (r *fakeProfileItems) GetExperiences(ctx context.Context, ownerID int64) ([]models.Experience, error) {
	return r.experiences, nil
}

func (r *fakeProfileItems) GetVolunteerWork(ctx context.Context, ownerID int64) ([]models.VolunteerWork, error) {
	return r.volunteerWork, nil
}

func (r *fakeProfileItems) GetAwards(ctx context.Context, ownerID int64) ([]models.Award, error) {
	return r.awards, nil
}

type fakeApplicationLister struct {
	storage.JobApplicationRepository
	applications []models.JobApplication
}

func (r *fakeApplicationLister) ListByJobSeeker(ctx context.Context, jobSeekerID int64) ([]models.JobApplication, error) {
	return r.applications, nil
}

func TestProfileService_JobSeekerProfile(t *testing.T) {
	jobSeeker := &models.JobSeeker{JobSeekerID: 1, FirstName: "Jane", LastName: "Doe"}
	items := &fakeProfileItems{
		skills:  []models.Skill{{SkillID: 1, Name: "Go"}},
		degrees: []models.Degree{{DegreeID: 1, SchoolName: "State University"}},
		awards:  []models.Award{},
	}
	applications := &fakeApplicationLister{applications: []models.JobApplication{
		{ApplicationID: 10, JobSeekerID: 1, PositionID: 4, Status: models.StatusApplied},
	}}

	svc := services.NewProfileService(
		&fakeJobSeekerGetter{jobSeeker: jobSeeker},
		&fakeEmployeeGetter{},
		items,
		&fakeProfileItems{},
		applications,
	)

	profile, err := svc.JobSeekerProfile(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Jane", profile.FirstName)
	assert.Len(t, profile.Skills, 1)
	assert.Len(t, profile.Degrees, 1)
	assert.Len(t, profile.Applications, 1)
	assert.Empty(t, profile.Awards)
}

func TestProfileService_JobSeekerProfile_NotFound(t *testing.T) {
	svc := services.NewProfileService(
		&fakeJobSeekerGetter{},
		&fakeEmployeeGetter{},
		&fakeProfileItems{},
		&fakeProfileItems{},
		&fakeApplicationLister{},
	)

	_, err := svc.JobSeekerProfile(context.Background(), 99)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProfileService_JobSeekerProfile_ChildError(t *testing.T) {
	jobSeeker := &models.JobSeeker{JobSeekerID: 1}
	items := &fakeProfileItems{skillsErr: errors.New("query timeout")}

	svc := services.NewProfileService(
		&fakeJobSeekerGetter{jobSeeker: jobSeeker},
		&fakeEmployeeGetter{},
		items,
		&fakeProfileItems{},
		&fakeApplicationLister{},
	)

	_, err := svc.JobSeekerProfile(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrNotFound)
}

func TestProfileService_EmployeeProfile(t *testing.T) {
	employee := &models.Employee{EmployeeID: 2, FirstName: "Sam", LastName: "Smith"}
	items := &fakeProfileItems{
		skills:      []models.Skill{{SkillID: 1, Name: "SQL"}, {SkillID: 2, Name: "Go"}},
		experiences: []models.Experience{{ExperienceID: 3, Company: "Acme", Title: "Engineer"}},
	}

	svc := services.NewProfileService(
		&fakeJobSeekerGetter{},
		&fakeEmployeeGetter{employee: employee},
		&fakeProfileItems{},
		items,
		&fakeApplicationLister{},
	)

	profile, err := svc.EmployeeProfile(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, "Sam", profile.FirstName)
	assert.Len(t, profile.Skills, 2)
	assert.Len(t, profile.Experiences, 1)
}

func TestProfileService_EmployeeProfile_NotFound(t *testing.T) {
	svc := services.NewProfileService(
		&fakeJobSeekerGetter{},
		&fakeEmployeeGetter{},
		&fakeProfileItems{},
		&fakeProfileItems{},
		&fakeApplicationLister{},
	)

	_, err := svc.EmployeeProfile(context.Background(), 99)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
