package repositories

import (
	"context"
	"errors"

	"giglink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

// UnreadCount is one row of the grouped unread query: how many unread
// messages a given sender has waiting for the requester.
type UnreadCount struct {
	SenderID string
	Count    int64
}

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	Thread(ctx context.Context, userID, partnerID string) ([]models.Message, error)
	DistinctPartnerIDs(ctx context.Context, userID string) ([]string, error)
	LastMessageBetween(ctx context.Context, userID, partnerID string) (*models.Message, error)
	UnreadCountsBySender(ctx context.Context, receiverID string) ([]UnreadCount, error)
	MarkRead(ctx context.Context, receiverID, senderID string) (int64, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// Thread returns both directions of the pair conversation, oldest first.
func (r *MessageRepositoryImpl) Thread(ctx context.Context, userID, partnerID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

// DistinctPartnerIDs returns every profile the user has exchanged at least
// one message with, in either direction.
func (r *MessageRepositoryImpl) DistinctPartnerIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Raw(
		`SELECT DISTINCT CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END AS partner_id
		 FROM messages
		 WHERE sender_id = ? OR receiver_id = ?`,
		userID, userID, userID,
	).Scan(&ids).Error
	return ids, err
}

// LastMessageBetween picks the newest message of the pair; the id tiebreak
// keeps same-timestamp inserts deterministic.
func (r *MessageRepositoryImpl) LastMessageBetween(ctx context.Context, userID, partnerID string) (*models.Message, error) {
	var message models.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at DESC, id DESC").
		First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepositoryImpl) UnreadCountsBySender(ctx context.Context, receiverID string) ([]UnreadCount, error) {
	var counts []UnreadCount
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Select("sender_id, COUNT(*) AS count").
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Group("sender_id").
		Scan(&counts).Error
	return counts, err
}

// MarkRead flips every unread message from the partner and reports how many
// rows changed. Zero is not an error: the thread may simply hold nothing
// unread.
func (r *MessageRepositoryImpl) MarkRead(ctx context.Context, receiverID, senderID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = ?", receiverID, senderID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
