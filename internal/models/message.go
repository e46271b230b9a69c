package models

import "time"

// Message is a directed message between two profiles. sender != receiver is
// enforced both in validation and by the check constraint.
type Message struct {
	BaseModel
	SenderID   string `gorm:"type:uuid;not null;index:idx_messages_pair" json:"sender_id"`
	ReceiverID string `gorm:"type:uuid;not null;index:idx_messages_pair;check:chk_message_parties,sender_id <> receiver_id" json:"receiver_id"`
	Content    string `gorm:"not null" json:"content"`
	IsRead     bool   `gorm:"not null;default:false" json:"is_read"`

	Sender   *Profile `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	Receiver *Profile `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"-"`
}

// Conversation is the derived, unstored aggregate for one counterpart of a
// profile: the partner, the most recent message either way, and how many of
// the partner's messages are still unread.
type Conversation struct {
	PartnerID     string      `json:"partner_id"`
	PartnerName   string      `json:"partner_name"`
	PartnerType   ProfileType `json:"partner_type"`
	LastMessage   string      `json:"last_message"`
	LastMessageAt time.Time   `json:"last_message_at"`
	UnreadCount   int64       `json:"unread_count"`
}
