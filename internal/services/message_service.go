package services

import (
	"context"
	"errors"
	"sort"

	"giglink_backend/internal/authz"
	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"
)

type MessageService struct {
	messages repositories.MessageRepository
	profiles repositories.ProfileRepository
	gate     *authz.Gate
}

func NewMessageService(messages repositories.MessageRepository, profiles repositories.ProfileRepository, gate *authz.Gate) *MessageService {
	return &MessageService{messages: messages, profiles: profiles, gate: gate}
}

// Send delivers a message from the requester to the receiver. Messaging
// yourself is rejected before anything touches storage.
func (s *MessageService) Send(ctx context.Context, requesterID string, req dto.SendMessageRequest) (*models.Message, error) {
	if req.ReceiverID == requesterID {
		return nil, apperrors.ErrSelfMessage
	}

	if _, err := s.profiles.FindByID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	row := authz.MessageRow{SenderID: requesterID, ReceiverID: req.ReceiverID}
	if err := s.gate.Authorize(authz.EntityMessage, authz.OpCreate, requesterID, row); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	message := &models.Message{
		SenderID:   requesterID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return message, nil
}

// Thread returns the full two-way history with one partner, oldest first,
// annotated with both parties' display names.
func (s *MessageService) Thread(ctx context.Context, requesterID, partnerID string) (*dto.ThreadResponse, error) {
	profiles, err := s.profiles.FindByIDs(ctx, []string{requesterID, partnerID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var requester, partner *models.Profile
	for i := range profiles {
		switch profiles[i].ID {
		case requesterID:
			requester = &profiles[i]
		case partnerID:
			partner = &profiles[i]
		}
	}
	if requester == nil || partner == nil {
		return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
	}

	messages, err := s.messages.Thread(ctx, requesterID, partnerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.ThreadResponse{
		Requester: dto.ThreadParticipant{ID: requester.ID, DisplayName: requester.DisplayName},
		Partner:   dto.ThreadParticipant{ID: partner.ID, DisplayName: partner.DisplayName},
		Messages:  messages,
	}, nil
}

// conversationSortKey keeps same-timestamp conversations deterministic.
type conversationSortKey struct {
	conv          models.Conversation
	lastMessageID string
}

// Conversations assembles the inbox: one entry per partner, each carrying
// the latest message either way and the count of that partner's unread
// messages. Recomputed per request, nothing is stored.
func (s *MessageService) Conversations(ctx context.Context, requesterID string) ([]models.Conversation, error) {
	partnerIDs, err := s.messages.DistinctPartnerIDs(ctx, requesterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(partnerIDs) == 0 {
		return []models.Conversation{}, nil
	}

	unread, err := s.messages.UnreadCountsBySender(ctx, requesterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	unreadBySender := make(map[string]int64, len(unread))
	for _, u := range unread {
		unreadBySender[u.SenderID] = u.Count
	}

	profiles, err := s.profiles.FindByIDs(ctx, partnerIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	profileByID := make(map[string]models.Profile, len(profiles))
	for _, p := range profiles {
		profileByID[p.ID] = p
	}

	entries := make([]conversationSortKey, 0, len(partnerIDs))
	for _, partnerID := range partnerIDs {
		partner, ok := profileByID[partnerID]
		if !ok {
			// Partner profile deleted; its thread no longer surfaces.
			continue
		}

		last, err := s.messages.LastMessageBetween(ctx, requesterID, partnerID)
		if err != nil {
			if errors.Is(err, repositories.ErrMessageNotFound) {
				continue
			}
			return nil, apperrors.InternalError(err)
		}

		entries = append(entries, conversationSortKey{
			conv: models.Conversation{
				PartnerID:     partnerID,
				PartnerName:   partner.DisplayName,
				PartnerType:   partner.Type,
				LastMessage:   last.Content,
				LastMessageAt: last.CreatedAt,
				UnreadCount:   unreadBySender[partnerID],
			},
			lastMessageID: last.ID,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.conv.LastMessageAt.Equal(b.conv.LastMessageAt) {
			return a.conv.LastMessageAt.After(b.conv.LastMessageAt)
		}
		return a.lastMessageID > b.lastMessageID
	})

	conversations := make([]models.Conversation, len(entries))
	for i, e := range entries {
		conversations[i] = e.conv
	}
	return conversations, nil
}

// MarkRead flips the partner's unread messages to read and reports how many
// changed. Concurrent sends may land after the flip; they simply stay
// unread for the next call.
func (s *MessageService) MarkRead(ctx context.Context, requesterID, partnerID string) (*dto.MarkReadResponse, error) {
	if _, err := s.profiles.FindByID(ctx, partnerID); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.messages.MarkRead(ctx, requesterID, partnerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.MarkReadResponse{Updated: updated}, nil
}
