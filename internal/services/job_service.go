package services

import (
	"context"
	"errors"

	"giglink_backend/internal/authz"
	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"
)

type JobService struct {
	jobs     repositories.JobRepository
	profiles repositories.ProfileRepository
	gate     *authz.Gate
}

func NewJobService(jobs repositories.JobRepository, profiles repositories.ProfileRepository, gate *authz.Gate) *JobService {
	return &JobService{jobs: jobs, profiles: profiles, gate: gate}
}

// Create posts a gig. Only venue-type profiles post, and only on their own
// behalf: the job's venue must be the requester.
func (s *JobService) Create(ctx context.Context, requesterID string, req dto.CreateJobRequest) (*models.Job, error) {
	profile, err := s.profiles.FindByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if profile.Type != models.ProfileTypeVenue {
		return nil, apperrors.ErrInvalidProfileType
	}

	if err := s.gate.Authorize(authz.EntityJob, authz.OpCreate, requesterID, authz.JobRow{VenueID: req.VenueID}); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	job := &models.Job{
		VenueID:      req.VenueID,
		Title:        req.Title,
		Description:  req.Description,
		Genre:        req.Genre,
		EventDate:    req.EventDate,
		Location:     req.Location,
		PayRange:     req.PayRange,
		Requirements: req.Requirements,
		ContactInfo:  req.ContactInfo,
		Status:       models.JobStatusOpen,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Get is a public read.
func (s *JobService) Get(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// List is the public board, filterable by genre, location, status and venue.
func (s *JobService) List(ctx context.Context, criteria repositories.JobSearchCriteria) ([]models.Job, error) {
	jobs, err := s.jobs.List(ctx, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobService) Update(ctx context.Context, requesterID, jobID string, req dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.gate.Authorize(authz.EntityJob, authz.OpUpdate, requesterID, authz.JobRow{VenueID: job.VenueID}); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Genre != nil {
		job.Genre = *req.Genre
	}
	if req.EventDate != nil {
		job.EventDate = *req.EventDate
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.PayRange != nil {
		job.PayRange = req.PayRange
	}
	if req.Requirements != nil {
		job.Requirements = req.Requirements
	}
	if req.ContactInfo != nil {
		job.ContactInfo = req.ContactInfo
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, requesterID, jobID string) error {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.gate.Authorize(authz.EntityJob, authz.OpDelete, requesterID, authz.JobRow{VenueID: job.VenueID}); err != nil {
		return apperrors.ErrNotFound(err)
	}

	if err := s.jobs.Delete(ctx, jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
