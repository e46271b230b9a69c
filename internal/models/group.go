package models

// Group is an artist-formed ensemble.
type Group struct {
	BaseModel
	Name        string  `gorm:"not null" json:"name"`
	Description *string `json:"description,omitempty"`
	Genre       *string `json:"genre,omitempty"`
	CreatedBy   string  `gorm:"type:uuid;not null;index" json:"created_by"`

	Creator *Profile      `gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE" json:"-"`
	Members []GroupMember `gorm:"foreignKey:GroupID" json:"members,omitempty"`
}

// GroupMember links a profile into a group with a free-text role label.
// At most one membership per (group, profile).
type GroupMember struct {
	BaseModel
	GroupID   string `gorm:"type:uuid;not null;uniqueIndex:idx_group_profile" json:"group_id"`
	ProfileID string `gorm:"type:uuid;not null;uniqueIndex:idx_group_profile" json:"profile_id"`
	Role      string `gorm:"not null" json:"role"`

	Group   *Group   `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"-"`
	Profile *Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
}

// GroupJobApplication is a group's collective interest in a Job. At most one
// row per (job, group).
type GroupJobApplication struct {
	BaseModel
	JobID   string            `gorm:"type:uuid;not null;uniqueIndex:idx_job_group" json:"job_id"`
	GroupID string            `gorm:"type:uuid;not null;uniqueIndex:idx_job_group" json:"group_id"`
	Message *string           `json:"message,omitempty"`
	Status  ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Job   *Job   `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
	Group *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"-"`
}
