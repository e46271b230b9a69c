package repositories

import (
	"context"
	"errors"
	"time"

	"giglink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobSearchCriteria narrows the board listing; zero values mean no filter.
type JobSearchCriteria struct {
	Genre    string `form:"genre"`
	Location string `form:"location"`
	Status   string `form:"status"`
	VenueID  string `form:"venue_id"`
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id string) (*models.Job, error)
	List(ctx context.Context, criteria JobSearchCriteria) ([]models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id string) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) List(ctx context.Context, criteria JobSearchCriteria) ([]models.Job, error) {
	query := r.db.WithContext(ctx).Model(&models.Job{})

	if criteria.Genre != "" {
		query = query.Where("genre = ?", criteria.Genre)
	}
	if criteria.Location != "" {
		query = query.Where("location = ?", criteria.Location)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.VenueID != "" {
		query = query.Where("venue_id = ?", criteria.VenueID)
	}

	var jobs []models.Job
	err := query.Order("event_date ASC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Update(ctx context.Context, job *models.Job) error {
	result := r.db.WithContext(ctx).Model(job).Updates(map[string]interface{}{
		"title":        job.Title,
		"description":  job.Description,
		"genre":        job.Genre,
		"event_date":   job.EventDate,
		"location":     job.Location,
		"pay_range":    job.PayRange,
		"requirements": job.Requirements,
		"contact_info": job.ContactInfo,
		"status":       job.Status,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
