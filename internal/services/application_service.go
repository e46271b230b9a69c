package services

import (
	"context"
	"errors"

	"giglink_backend/internal/authz"
	"giglink_backend/internal/email"
	"giglink_backend/internal/logger"
	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"
)

// ApplicationService owns the job-application lifecycle for both solo
// artists and groups.
type ApplicationService struct {
	apps     repositories.ApplicationRepository
	jobs     repositories.JobRepository
	groups   repositories.GroupRepository
	profiles repositories.ProfileRepository
	mail     email.Sender
	gate     *authz.Gate
}

func NewApplicationService(
	apps repositories.ApplicationRepository,
	jobs repositories.JobRepository,
	groups repositories.GroupRepository,
	profiles repositories.ProfileRepository,
	mail email.Sender,
	gate *authz.Gate,
) *ApplicationService {
	return &ApplicationService{
		apps:     apps,
		jobs:     jobs,
		groups:   groups,
		profiles: profiles,
		mail:     mail,
		gate:     gate,
	}
}

// Apply files a solo application. Only artist-type profiles apply, the job
// must still be open, and a second application to the same job is rejected.
func (s *ApplicationService) Apply(ctx context.Context, requesterID, jobID string, req dto.ApplyToJobRequest) (*models.JobApplication, error) {
	profile, err := s.profiles.FindByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if profile.Type != models.ProfileTypeArtist {
		return nil, apperrors.ErrInvalidProfileType
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrInvalidOperation("jobs", "Job is not open for applications")
	}

	row := authz.JobApplicationRow{ArtistID: requesterID, JobVenueID: job.VenueID}
	if err := s.gate.Authorize(authz.EntityJobApplication, authz.OpCreate, requesterID, row); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	app := &models.JobApplication{
		JobID:    jobID,
		ArtistID: requesterID,
		Message:  req.Message,
		Status:   models.ApplicationStatusPending,
	}
	if err := s.apps.CreateJobApplication(ctx, app); err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

// GroupApply files a collective application. The requester must belong to
// the group; one application per (job, group).
func (s *ApplicationService) GroupApply(ctx context.Context, requesterID, jobID string, req dto.GroupApplyToJobRequest) (*models.GroupJobApplication, error) {
	if _, err := s.groups.FindByID(ctx, req.GroupID); err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrInvalidOperation("jobs", "Job is not open for applications")
	}

	isMember, err := s.groups.IsMember(ctx, req.GroupID, requesterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	row := authz.GroupApplicationRow{RequesterIsMember: isMember, JobVenueID: job.VenueID}
	if err := s.gate.Authorize(authz.EntityGroupApplication, authz.OpCreate, requesterID, row); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	app := &models.GroupJobApplication{
		JobID:   jobID,
		GroupID: req.GroupID,
		Message: req.Message,
		Status:  models.ApplicationStatusPending,
	}
	if err := s.apps.CreateGroupApplication(ctx, app); err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

// ListForJob returns every application on a job, visible only to the job's
// venue.
func (s *ApplicationService) ListForJob(ctx context.Context, requesterID, jobID string) (*dto.JobApplicationsResponse, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	row := authz.JobApplicationRow{JobVenueID: job.VenueID}
	if err := s.gate.Authorize(authz.EntityJobApplication, authz.OpUpdateStatus, requesterID, row); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	apps, err := s.apps.ListJobApplicationsByJob(ctx, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	groupApps, err := s.apps.ListGroupApplicationsByJob(ctx, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobApplicationsResponse{
		Applications:      apps,
		GroupApplications: groupApps,
	}, nil
}

// ListMine returns the requester's own solo applications, newest first.
func (s *ApplicationService) ListMine(ctx context.Context, requesterID string) ([]models.JobApplication, error) {
	apps, err := s.apps.ListJobApplicationsByArtist(ctx, requesterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// ListForGroup returns a group's applications, visible to its members.
func (s *ApplicationService) ListForGroup(ctx context.Context, requesterID, groupID string) ([]models.GroupJobApplication, error) {
	if _, err := s.groups.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	isMember, err := s.groups.IsMember(ctx, groupID, requesterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !isMember {
		return nil, apperrors.ErrNotFound(authz.ErrDenied)
	}

	apps, err := s.apps.ListGroupApplicationsByGroup(ctx, groupID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// UpdateStatus moves a solo application through its lifecycle. Only the
// job's venue decides; setting the status it already has is a no-op.
func (s *ApplicationService) UpdateStatus(ctx context.Context, requesterID, applicationID string, req dto.UpdateApplicationStatusRequest) (*models.JobApplication, error) {
	app, err := s.apps.FindJobApplicationByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	row := authz.JobApplicationRow{ArtistID: app.ArtistID, JobVenueID: job.VenueID}
	if err := s.gate.Authorize(authz.EntityJobApplication, authz.OpUpdateStatus, requesterID, row); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	target := models.ApplicationStatus(req.Status)
	if target == app.Status {
		return app, nil
	}

	if err := s.apps.UpdateJobApplicationStatus(ctx, applicationID, target); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	app.Status = target

	if models.TerminalApplicationStatus(target) {
		s.notifyApplicant(ctx, app.ArtistID, job.Title, string(target))
	}
	return app, nil
}

// UpdateGroupStatus is UpdateStatus for group applications. The group's
// creator gets the notification mail.
func (s *ApplicationService) UpdateGroupStatus(ctx context.Context, requesterID, applicationID string, req dto.UpdateApplicationStatusRequest) (*models.GroupJobApplication, error) {
	app, err := s.apps.FindGroupApplicationByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	isMember, err := s.groups.IsMember(ctx, app.GroupID, requesterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	row := authz.GroupApplicationRow{RequesterIsMember: isMember, JobVenueID: job.VenueID}
	if err := s.gate.Authorize(authz.EntityGroupApplication, authz.OpUpdateStatus, requesterID, row); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	target := models.ApplicationStatus(req.Status)
	if target == app.Status {
		return app, nil
	}

	if err := s.apps.UpdateGroupApplicationStatus(ctx, applicationID, target); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	app.Status = target

	if models.TerminalApplicationStatus(target) {
		if group, err := s.groups.FindByID(ctx, app.GroupID); err == nil {
			s.notifyApplicant(ctx, group.CreatedBy, job.Title, string(target))
		}
	}
	return app, nil
}

func (s *ApplicationService) notifyApplicant(ctx context.Context, profileID, jobTitle, status string) {
	profile, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		logger.CtxWarn(ctx, "skipping status mail, applicant profile missing", "profile_id", profileID)
		return
	}
	go func() {
		if err := s.mail.SendApplicationStatus(profile.Email, jobTitle, status); err != nil {
			logger.Error("failed to send application status email", "error", err, "profile_id", profileID)
		}
	}()
}
