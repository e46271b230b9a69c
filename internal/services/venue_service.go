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

type VenueService struct {
	venues   repositories.VenueRepository
	profiles repositories.ProfileRepository
	gate     *authz.Gate
}

func NewVenueService(venues repositories.VenueRepository, profiles repositories.ProfileRepository, gate *authz.Gate) *VenueService {
	return &VenueService{venues: venues, profiles: profiles, gate: gate}
}

// Create inserts a venue owned by the requester.
func (s *VenueService) Create(ctx context.Context, requesterID string, req dto.CreateVenueRequest) (*models.Venue, error) {
	if err := s.gate.Authorize(authz.EntityVenue, authz.OpCreate, requesterID, nil); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	venue := &models.Venue{
		Name:        req.Name,
		Genre:       req.Genre,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Description: req.Description,
		Website:     req.Website,
		Phone:       req.Phone,
		Capacity:    req.Capacity,
		OwnerID:     &requesterID,
	}
	if err := s.venues.Create(ctx, venue); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return venue, nil
}

// Get is a public read.
func (s *VenueService) Get(ctx context.Context, id string) (*models.Venue, error) {
	venue, err := s.venues.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrVenueNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return venue, nil
}

// List is the public directory, filterable by genre and map viewport.
func (s *VenueService) List(ctx context.Context, criteria repositories.VenueSearchCriteria) ([]models.Venue, error) {
	venues, err := s.venues.List(ctx, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return venues, nil
}

// Update is owner-only. Unowned legacy rows are read-only until claimed, and
// that case gets its own message so the caller knows claiming is the fix.
func (s *VenueService) Update(ctx context.Context, requesterID, venueID string, req dto.UpdateVenueRequest) (*models.Venue, error) {
	venue, err := s.venues.FindByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, repositories.ErrVenueNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if venue.OwnerID == nil {
		return nil, apperrors.ErrVenueUnclaimed
	}
	if err := s.gate.Authorize(authz.EntityVenue, authz.OpUpdate, requesterID, authz.VenueRow{OwnerID: venue.OwnerID}); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Genre != nil {
		venue.Genre = *req.Genre
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.Latitude != nil {
		venue.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		venue.Longitude = *req.Longitude
	}
	if req.Description != nil {
		venue.Description = req.Description
	}
	if req.Website != nil {
		venue.Website = req.Website
	}
	if req.Phone != nil {
		venue.Phone = req.Phone
	}
	if req.Capacity != nil {
		venue.Capacity = req.Capacity
	}

	if err := s.venues.Update(ctx, venue); err != nil {
		if errors.Is(err, repositories.ErrVenueNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return venue, nil
}

// Claim takes ownership of an unowned legacy venue. Only venue-type
// profiles may claim; concurrent claims are settled by the conditional
// update, first writer wins.
func (s *VenueService) Claim(ctx context.Context, requesterID, venueID string) (*models.Venue, error) {
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

	if _, err := s.venues.FindByID(ctx, venueID); err != nil {
		if errors.Is(err, repositories.ErrVenueNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.venues.Claim(ctx, venueID, requesterID); err != nil {
		if errors.Is(err, repositories.ErrVenueAlreadyClaimed) {
			return nil, apperrors.ErrVenueAlreadyClaimed
		}
		return nil, apperrors.InternalError(err)
	}

	return s.Get(ctx, venueID)
}

func (s *VenueService) Delete(ctx context.Context, requesterID, venueID string) error {
	venue, err := s.venues.FindByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, repositories.ErrVenueNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if venue.OwnerID == nil {
		return apperrors.ErrVenueUnclaimed
	}
	if err := s.gate.Authorize(authz.EntityVenue, authz.OpDelete, requesterID, authz.VenueRow{OwnerID: venue.OwnerID}); err != nil {
		return apperrors.ErrNotFound(err)
	}

	if err := s.venues.Delete(ctx, venueID); err != nil {
		if errors.Is(err, repositories.ErrVenueNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
