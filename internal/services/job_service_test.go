package services

import (
	"context"
	"testing"
	"time"

	"giglink_backend/internal/authz"
	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobFixture struct {
	svc      *JobService
	jobs     *fakeJobRepo
	profiles *fakeProfileRepo
}

func newJobFixture() *jobFixture {
	jobs := newFakeJobRepo()
	profiles := newFakeProfileRepo()

	profiles.add("venue-1", models.ProfileTypeVenue, "Venue One")
	profiles.add("venue-2", models.ProfileTypeVenue, "Venue Two")
	profiles.add("artist-1", models.ProfileTypeArtist, "Artist One")

	return &jobFixture{
		svc:      NewJobService(jobs, profiles, authz.NewGate()),
		jobs:     jobs,
		profiles: profiles,
	}
}

func validJobRequest(venueID string) dto.CreateJobRequest {
	return dto.CreateJobRequest{
		VenueID:     venueID,
		Title:       "Saturday headline",
		Description: "Two sets, full backline provided",
		Genre:       "jazz",
		EventDate:   time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC),
		Location:    "Berlin",
	}
}

func TestCreateJobVenueOnly(t *testing.T) {
	f := newJobFixture()

	_, err := f.svc.Create(context.Background(), "artist-1", validJobRequest("artist-1"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidProfileType)
}

func TestCreateJobOwnVenueOnly(t *testing.T) {
	f := newJobFixture()

	// Posting on another venue's behalf is denied.
	_, err := f.svc.Create(context.Background(), "venue-1", validJobRequest("venue-2"))
	assertNotFound(t, err)

	job, err := f.svc.Create(context.Background(), "venue-1", validJobRequest("venue-1"))
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.Equal(t, "venue-1", job.VenueID)
}

func TestUpdateJobOwnerOnly(t *testing.T) {
	f := newJobFixture()

	job, err := f.svc.Create(context.Background(), "venue-1", validJobRequest("venue-1"))
	require.NoError(t, err)

	status := "filled"
	_, err = f.svc.Update(context.Background(), "venue-2", job.ID, dto.UpdateJobRequest{Status: &status})
	assertNotFound(t, err)

	updated, err := f.svc.Update(context.Background(), "venue-1", job.ID, dto.UpdateJobRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFilled, updated.Status)
}

func TestListJobsFilters(t *testing.T) {
	f := newJobFixture()

	_, err := f.svc.Create(context.Background(), "venue-1", validJobRequest("venue-1"))
	require.NoError(t, err)

	rockReq := validJobRequest("venue-2")
	rockReq.Genre = "rock"
	_, err = f.svc.Create(context.Background(), "venue-2", rockReq)
	require.NoError(t, err)

	jazz, err := f.svc.List(context.Background(), repositories.JobSearchCriteria{Genre: "jazz"})
	require.NoError(t, err)
	require.Len(t, jazz, 1)
	assert.Equal(t, "venue-1", jazz[0].VenueID)

	all, err := f.svc.List(context.Background(), repositories.JobSearchCriteria{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteJobOwnerOnly(t *testing.T) {
	f := newJobFixture()

	job, err := f.svc.Create(context.Background(), "venue-1", validJobRequest("venue-1"))
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), "venue-2", job.ID)
	assertNotFound(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), "venue-1", job.ID))

	_, err = f.svc.Get(context.Background(), job.ID)
	assertNotFound(t, err)
}
