package services

import (
	"context"
	"errors"
	"fmt"

	"hr-recruiting-api/internal/models"
	"hr-recruiting-api/internal/storage"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type profileService struct {
	jobSeekers     storage.JobSeekerRepository
	employees      storage.EmployeeRepository
	jobSeekerItems storage.ProfileItemRepository
	employeeItems  storage.ProfileItemRepository
	applications   storage.JobApplicationRepository
}

// NewProfileService creates a new instance of ProfileService.
func NewProfileService(
	jobSeekers storage.JobSeekerRepository,
	employees storage.EmployeeRepository,
	jobSeekerItems storage.ProfileItemRepository,
	employeeItems storage.ProfileItemRepository,
	applications storage.JobApplicationRepository,
) ProfileService {
	return &profileService{
		jobSeekers:     jobSeekers,
		employees:      employees,
		jobSeekerItems: jobSeekerItems,
		employeeItems:  employeeItems,
		applications:   applications,
	}
}

// JobSeekerProfile fetches the job seeker row first, then fans out the six
// child reads concurrently. A missing root short-circuits to ErrNotFound
// before any fan-out work starts.
func (s *profileService) JobSeekerProfile(ctx context.Context, jobSeekerID int64) (*models.JobSeekerProfile, error) {
	jobSeeker, err := s.jobSeekers.GetByID(ctx, jobSeekerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Errorf("ProfileService: error fetching job seeker %d: %v", jobSeekerID, err)
		return nil, fmt.Errorf("internal error fetching profile: %w", err)
	}

	profile := &models.JobSeekerProfile{JobSeeker: *jobSeeker}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		profile.Skills, err = s.jobSeekerItems.GetSkills(gCtx, jobSeekerID)
		return err
	})
	g.Go(func() (err error) {
		profile.Degrees, err = s.jobSeekerItems.GetDegrees(gCtx, jobSeekerID)
		return err
	})
	g.Go(func() (err error) {
		profile.Experiences, err = s.jobSeekerItems.GetExperiences(gCtx, jobSeekerID)
		return err
	})
	g.Go(func() (err error) {
		profile.VolunteerWork, err = s.jobSeekerItems.GetVolunteerWork(gCtx, jobSeekerID)
		return err
	})
	g.Go(func() (err error) {
		profile.Awards, err = s.jobSeekerItems.GetAwards(gCtx, jobSeekerID)
		return err
	})
	g.Go(func() (err error) {
		profile.Applications, err = s.applications.ListByJobSeeker(gCtx, jobSeekerID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Errorf("ProfileService: error assembling job seeker %d profile: %v", jobSeekerID, err)
		return nil, fmt.Errorf("internal error fetching profile: %w", err)
	}

	return profile, nil
}

// EmployeeProfile mirrors JobSeekerProfile for the employee child tables.
func (s *profileService) EmployeeProfile(ctx context.Context, employeeID int64) (*models.EmployeeProfile, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Errorf("ProfileService: error fetching employee %d: %v", employeeID, err)
		return nil, fmt.Errorf("internal error fetching profile: %w", err)
	}

	profile := &models.EmployeeProfile{Employee: *employee}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		profile.Skills, err = s.employeeItems.GetSkills(gCtx, employeeID)
		return err
	})
	g.Go(func() (err error) {
		profile.Degrees, err = s.employeeItems.GetDegrees(gCtx, employeeID)
		return err
	})
	g.Go(func() (err error) {
		profile.Experiences, err = s.employeeItems.GetExperiences(gCtx, employeeID)
		return err
	})
	g.Go(func() (err error) {
		profile.VolunteerWork, err = s.employeeItems.GetVolunteerWork(gCtx, employeeID)
		return err
	})
	g.Go(func() (err error) {
		profile.Awards, err = s.employeeItems.GetAwards(gCtx, employeeID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Errorf("ProfileService: error assembling employee %d profile: %v", employeeID, err)
		return nil, fmt.Errorf("internal error fetching profile: %w", err)
	}

	return profile, nil
}
