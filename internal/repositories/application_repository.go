package repositories

import (
	"context"
	"errors"

	"giglink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this pair")
)

// ApplicationRepository covers both artist and group applications; they share
// the lifecycle and only differ in the applicant column.
type ApplicationRepository interface {
	CreateJobApplication(ctx context.Context, app *models.JobApplication) error
	FindJobApplicationByID(ctx context.Context, id string) (*models.JobApplication, error)
	ListJobApplicationsByJob(ctx context.Context, jobID string) ([]models.JobApplication, error)
	ListJobApplicationsByArtist(ctx context.Context, artistID string) ([]models.JobApplication, error)
	UpdateJobApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) error

	CreateGroupApplication(ctx context.Context, app *models.GroupJobApplication) error
	FindGroupApplicationByID(ctx context.Context, id string) (*models.GroupJobApplication, error)
	ListGroupApplicationsByJob(ctx context.Context, jobID string) ([]models.GroupJobApplication, error)
	ListGroupApplicationsByGroup(ctx context.Context, groupID string) ([]models.GroupJobApplication, error)
	UpdateGroupApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// CreateJobApplication inserts the row. The (job_id, artist_id) unique index
// is the duplicate guard: when two requests race, exactly one insert wins
// and the loser surfaces ErrDuplicateApplication.
func (r *ApplicationRepositoryImpl) CreateJobApplication(ctx context.Context, app *models.JobApplication) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindJobApplicationByID(ctx context.Context, id string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListJobApplicationsByJob(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListJobApplicationsByArtist(ctx context.Context, artistID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateJobApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	result := r.db.WithContext(ctx).Model(&models.JobApplication{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CreateGroupApplication(ctx context.Context, app *models.GroupJobApplication) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindGroupApplicationByID(ctx context.Context, id string) (*models.GroupJobApplication, error) {
	var app models.GroupJobApplication
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListGroupApplicationsByJob(ctx context.Context, jobID string) ([]models.GroupJobApplication, error) {
	var apps []models.GroupJobApplication
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListGroupApplicationsByGroup(ctx context.Context, groupID string) ([]models.GroupJobApplication, error) {
	var apps []models.GroupJobApplication
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateGroupApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	result := r.db.WithContext(ctx).Model(&models.GroupJobApplication{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
