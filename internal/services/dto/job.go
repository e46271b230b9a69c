package dto

import (
	"time"

	"giglink_backend/internal/models"
)

type CreateJobRequest struct {
	VenueID      string    `json:"venue_id" validate:"required,uuid4"`
	Title        string    `json:"title" validate:"required,max=200"`
	Description  string    `json:"description" validate:"required,max=5000"`
	Genre        string    `json:"genre" validate:"required,max=100"`
	EventDate    time.Time `json:"event_date" validate:"required"`
	Location     string    `json:"location" validate:"required,max=300"`
	PayRange     *string   `json:"pay_range" validate:"omitempty,max=100"`
	Requirements *string   `json:"requirements" validate:"omitempty,max=2000"`
	ContactInfo  *string   `json:"contact_info" validate:"omitempty,max=300"`
}

type UpdateJobRequest struct {
	Title        *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string    `json:"description" validate:"omitempty,min=1,max=5000"`
	Genre        *string    `json:"genre" validate:"omitempty,min=1,max=100"`
	EventDate    *time.Time `json:"event_date"`
	Location     *string    `json:"location" validate:"omitempty,min=1,max=300"`
	PayRange     *string    `json:"pay_range" validate:"omitempty,max=100"`
	Requirements *string    `json:"requirements" validate:"omitempty,max=2000"`
	ContactInfo  *string    `json:"contact_info" validate:"omitempty,max=300"`
	Status       *string    `json:"status" validate:"omitempty,oneof=open filled cancelled"`
}

type ApplyToJobRequest struct {
	Message *string `json:"message" validate:"omitempty,max=2000"`
}

type GroupApplyToJobRequest struct {
	GroupID string  `json:"group_id" validate:"required,uuid4"`
	Message *string `json:"message" validate:"omitempty,max=2000"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

// JobApplicationsResponse is what a venue sees for one of its jobs: solo
// and group applications side by side.
type JobApplicationsResponse struct {
	Applications      []models.JobApplication      `json:"applications"`
	GroupApplications []models.GroupJobApplication `json:"group_applications"`
}
