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

type MediaService struct {
	media    repositories.MediaRepository
	profiles repositories.ProfileRepository
	gate     *authz.Gate
}

func NewMediaService(media repositories.MediaRepository, profiles repositories.ProfileRepository, gate *authz.Gate) *MediaService {
	return &MediaService{media: media, profiles: profiles, gate: gate}
}

// Add attaches a media reference to the requester's own profile. The URL is
// stored as given; there is no upload pipeline.
func (s *MediaService) Add(ctx context.Context, requesterID, profileID string, req dto.AddMediaRequest) (*models.MediaItem, error) {
	if err := s.gate.Authorize(authz.EntityMedia, authz.OpCreate, requesterID, authz.MediaRow{OwnerID: profileID}); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	item := &models.MediaItem{
		ProfileID: profileID,
		Type:      models.MediaType(req.Type),
		URL:       req.URL,
		Caption:   req.Caption,
	}
	if !models.ValidMediaType(item.Type) {
		return nil, apperrors.NewBadRequestError("Unknown media type: " + req.Type)
	}

	if err := s.media.Create(ctx, item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

// List is a public read of a profile's media, newest first.
func (s *MediaService) List(ctx context.Context, profileID string) ([]models.MediaItem, error) {
	if _, err := s.profiles.FindByID(ctx, profileID); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	items, err := s.media.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *MediaService) Delete(ctx context.Context, requesterID, mediaID string) error {
	item, err := s.media.FindByID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.gate.Authorize(authz.EntityMedia, authz.OpDelete, requesterID, authz.MediaRow{OwnerID: item.ProfileID}); err != nil {
		return apperrors.ErrNotFound(err)
	}

	if err := s.media.Delete(ctx, mediaID); err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
