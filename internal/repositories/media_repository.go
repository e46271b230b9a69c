package repositories

import (
	"context"
	"errors"

	"giglink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMediaNotFound = errors.New("media item not found")

type MediaRepository interface {
	Create(ctx context.Context, item *models.MediaItem) error
	FindByID(ctx context.Context, id string) (*models.MediaItem, error)
	ListByProfile(ctx context.Context, profileID string) ([]models.MediaItem, error)
	Delete(ctx context.Context, id string) error
}

type MediaRepositoryImpl struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &MediaRepositoryImpl{db: db}
}

func (r *MediaRepositoryImpl) Create(ctx context.Context, item *models.MediaItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *MediaRepositoryImpl) FindByID(ctx context.Context, id string) (*models.MediaItem, error) {
	var item models.MediaItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return &item, nil
}

// ListByProfile returns the profile's media newest first.
func (r *MediaRepositoryImpl) ListByProfile(ctx context.Context, profileID string) ([]models.MediaItem, error) {
	var items []models.MediaItem
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *MediaRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.MediaItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}
