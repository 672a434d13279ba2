package dto

import "hr-recruiting-api/internal/models"

// CreateJobApplicationRequest defines the structure for creating a new
// application. Status defaults to "Applied" when omitted.
type CreateJobApplicationRequest struct {
	JobSeekerID int64                     `json:"job_seeker_id" validate:"required,gt=0"`
	PositionID  int64                     `json:"position_id" validate:"required,gt=0"`
	Status      *models.ApplicationStatus `json:"status" validate:"omitempty"`
}

// ApplyForPositionRequest is the nested job-seeker application submission;
// the job seeker id comes from the path.
type ApplyForPositionRequest struct {
	PositionID int64 `json:"position_id" validate:"required,gt=0"`
}

// UpdateApplicationStatusRequest patches only the status field.
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required"`
}
