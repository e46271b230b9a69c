package repositories

import (
	"context"
	"errors"
	"time"

	"giglink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrVenueNotFound       = errors.New("venue not found")
	ErrVenueAlreadyClaimed = errors.New("venue already claimed")
)

// VenueSearchCriteria narrows the directory listing; zero values mean no
// filter. The bounding box is the map viewport.
type VenueSearchCriteria struct {
	Genre  string   `form:"genre"`
	MinLat *float64 `form:"min_lat"`
	MaxLat *float64 `form:"max_lat"`
	MinLng *float64 `form:"min_lng"`
	MaxLng *float64 `form:"max_lng"`
}

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	FindByID(ctx context.Context, id string) (*models.Venue, error)
	List(ctx context.Context, criteria VenueSearchCriteria) ([]models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) error
	Claim(ctx context.Context, venueID, ownerID string) error
	Delete(ctx context.Context, id string) error
}

type VenueRepositoryImpl struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &VenueRepositoryImpl{db: db}
}

func (r *VenueRepositoryImpl) Create(ctx context.Context, venue *models.Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *VenueRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *VenueRepositoryImpl) List(ctx context.Context, criteria VenueSearchCriteria) ([]models.Venue, error) {
	query := r.db.WithContext(ctx).Model(&models.Venue{})

	if criteria.Genre != "" {
		query = query.Where("genre = ?", criteria.Genre)
	}
	if criteria.MinLat != nil {
		query = query.Where("latitude >= ?", *criteria.MinLat)
	}
	if criteria.MaxLat != nil {
		query = query.Where("latitude <= ?", *criteria.MaxLat)
	}
	if criteria.MinLng != nil {
		query = query.Where("longitude >= ?", *criteria.MinLng)
	}
	if criteria.MaxLng != nil {
		query = query.Where("longitude <= ?", *criteria.MaxLng)
	}

	var venues []models.Venue
	err := query.Order("name ASC").Find(&venues).Error
	return venues, err
}

func (r *VenueRepositoryImpl) Update(ctx context.Context, venue *models.Venue) error {
	result := r.db.WithContext(ctx).Model(venue).Updates(map[string]interface{}{
		"name":        venue.Name,
		"genre":       venue.Genre,
		"address":     venue.Address,
		"latitude":    venue.Latitude,
		"longitude":   venue.Longitude,
		"description": venue.Description,
		"website":     venue.Website,
		"phone":       venue.Phone,
		"capacity":    venue.Capacity,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVenueNotFound
	}
	return nil
}

// Claim sets the owner on a legacy unowned row. The conditional UPDATE makes
// concurrent claims race safely: exactly one writer matches owner_id IS NULL.
func (r *VenueRepositoryImpl) Claim(ctx context.Context, venueID, ownerID string) error {
	result := r.db.WithContext(ctx).Model(&models.Venue{}).
		Where("id = ? AND owner_id IS NULL", venueID).
		Updates(map[string]interface{}{
			"owner_id":   ownerID,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVenueAlreadyClaimed
	}
	return nil
}

func (r *VenueRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Venue{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVenueNotFound
	}
	return nil
}
