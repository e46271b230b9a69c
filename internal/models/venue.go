package models

// Venue is a physical performance location. OwnerID is nullable: legacy rows
// predate ownership and stay read-only until claimed.
type Venue struct {
	BaseModel
	Name        string  `gorm:"not null" json:"name"`
	Genre       string  `gorm:"not null" json:"genre"`
	Address     string  `gorm:"not null" json:"address"`
	Latitude    float64 `gorm:"not null" json:"latitude"`
	Longitude   float64 `gorm:"not null" json:"longitude"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	OwnerID     *string `gorm:"type:uuid;index" json:"owner_id,omitempty"`

	Owner *Profile `gorm:"foreignKey:OwnerID" json:"-"`
}
