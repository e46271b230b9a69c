package dto

import "giglink_backend/internal/models"

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,uuid4,nefield=SenderID"`
	Content    string `json:"content" validate:"required,max=5000"`

	// SenderID is filled from the authenticated context, never from the
	// request body.
	SenderID string `json:"-"`
}

// ThreadParticipant names one side of a thread.
type ThreadParticipant struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// ThreadResponse is the two-way history with one partner, annotated with
// both parties' display names.
type ThreadResponse struct {
	Requester ThreadParticipant `json:"requester"`
	Partner   ThreadParticipant `json:"partner"`
	Messages  []models.Message  `json:"messages"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}
