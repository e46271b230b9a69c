package repositories

import (
	"context"
	"errors"
	"time"

	"giglink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	Create(ctx context.Context, tx *gorm.DB, profile *models.Profile) error
	FindByID(ctx context.Context, id string) (*models.Profile, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// Create inserts the profile, joining the caller's transaction when tx is
// non-nil.
func (r *ProfileRepositoryImpl) Create(ctx context.Context, tx *gorm.DB, profile *models.Profile) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByIDs(ctx context.Context, ids []string) ([]models.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var profiles []models.Profile
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, profile *models.Profile) error {
	result := r.db.WithContext(ctx).Model(profile).Updates(map[string]interface{}{
		"display_name": profile.DisplayName,
		"bio":          profile.Bio,
		"website":      profile.Website,
		"phone":        profile.Phone,
		"picture_url":  profile.PictureURL,
		"location":     profile.Location,
		"role":         profile.Role,
		"social_links": profile.SocialLinks,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
