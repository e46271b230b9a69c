package services

import (
	"context"
	"encoding/json"
	"errors"

	"giglink_backend/internal/authz"
	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type ProfileService struct {
	profiles repositories.ProfileRepository
	gate     *authz.Gate
}

func NewProfileService(profiles repositories.ProfileRepository, gate *authz.Gate) *ProfileService {
	return &ProfileService{profiles: profiles, gate: gate}
}

// Get is a public read; any profile is visible to any requester.
func (s *ProfileService) Get(ctx context.Context, id string) (*models.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// Update edits the requester's own profile. A denied edit surfaces as not
// found, the same as an absent row.
func (s *ProfileService) Update(ctx context.Context, requesterID, profileID string, req dto.UpdateProfileRequest) (*models.Profile, error) {
	if err := s.gate.Authorize(authz.EntityProfile, authz.OpUpdate, requesterID, authz.ProfileRow{ID: profileID}); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	profile, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.Website != nil {
		profile.Website = req.Website
	}
	if req.Phone != nil {
		profile.Phone = req.Phone
	}
	if req.PictureURL != nil {
		profile.PictureURL = req.PictureURL
	}
	if req.Location != nil {
		profile.Location = req.Location
	}
	if req.Role != nil {
		profile.Role = req.Role
	}
	if req.SocialLinks != nil {
		raw, err := json.Marshal(req.SocialLinks)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.SocialLinks = datatypes.JSON(raw)
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
