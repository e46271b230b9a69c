package models

import "time"

// Job is a venue-posted gig.
type Job struct {
	BaseModel
	VenueID      string    `gorm:"type:uuid;not null;index" json:"venue_id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"not null" json:"description"`
	Genre        string    `gorm:"not null" json:"genre"`
	EventDate    time.Time `gorm:"not null" json:"event_date"`
	Location     string    `gorm:"not null" json:"location"`
	PayRange     *string   `json:"pay_range,omitempty"`
	Requirements *string   `json:"requirements,omitempty"`
	ContactInfo  *string   `json:"contact_info,omitempty"`
	Status       JobStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`

	VenueProfile *Profile `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"-"`
}

// JobApplication is an artist's interest in a Job. At most one row per
// (job, artist) pair; the unique index makes a second insert fail.
type JobApplication struct {
	BaseModel
	JobID    string            `gorm:"type:uuid;not null;uniqueIndex:idx_job_artist" json:"job_id"`
	ArtistID string            `gorm:"type:uuid;not null;uniqueIndex:idx_job_artist" json:"artist_id"`
	Message  *string           `json:"message,omitempty"`
	Status   ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Job    *Job     `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
	Artist *Profile `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"-"`
}
