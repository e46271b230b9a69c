package models

// MediaItem is a user-submitted media reference. The URL is opaque; no file
// intake or transcoding happens here.
type MediaItem struct {
	BaseModel
	ProfileID string    `gorm:"type:uuid;not null;index" json:"profile_id"`
	Type      MediaType `gorm:"type:varchar(20);not null" json:"type"`
	URL       string    `gorm:"not null" json:"url"`
	Caption   *string   `json:"caption,omitempty"`

	Profile *Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
}
