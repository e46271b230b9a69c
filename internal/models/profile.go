package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is the public identity record, one per account. Its ID equals the
// owning user's ID and the row is deleted with the user, never on its own.
type Profile struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string         `gorm:"not null" json:"email"`
	Type        ProfileType    `gorm:"type:varchar(20);not null;default:'artist'" json:"type"`
	DisplayName string         `gorm:"not null" json:"display_name"`
	Bio         *string        `json:"bio,omitempty"`
	Website     *string        `json:"website,omitempty"`
	Phone       *string        `json:"phone,omitempty"`
	PictureURL  *string        `json:"picture_url,omitempty"`
	Location    *string        `json:"location,omitempty"`
	Role        *string        `json:"role,omitempty"`
	SocialLinks datatypes.JSON `json:"social_links,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	User *User `gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}
