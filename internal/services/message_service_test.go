package services

import (
	"context"
	"testing"
	"time"

	"giglink_backend/internal/authz"
	"giglink_backend/internal/models"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageFixture struct {
	svc      *MessageService
	messages *fakeMessageRepo
	profiles *fakeProfileRepo
}

func newMessageFixture() *messageFixture {
	messages := newFakeMessageRepo()
	profiles := newFakeProfileRepo()

	profiles.add("user-1", models.ProfileTypeArtist, "User One")
	profiles.add("user-2", models.ProfileTypeArtist, "User Two")
	profiles.add("user-3", models.ProfileTypeVenue, "Venue Three")

	return &messageFixture{
		svc:      NewMessageService(messages, profiles, authz.NewGate()),
		messages: messages,
		profiles: profiles,
	}
}

func (f *messageFixture) seed(t *testing.T, sender, receiver, content string, at time.Time) {
	t.Helper()
	require.NoError(t, f.messages.Create(context.Background(), &models.Message{
		BaseModel:  models.BaseModel{CreatedAt: at},
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
	}))
}

func TestSendToSelfRejected(t *testing.T) {
	f := newMessageFixture()

	_, err := f.svc.Send(context.Background(), "user-1", dto.SendMessageRequest{
		ReceiverID: "user-1",
		Content:    "hello me",
	})
	assert.ErrorIs(t, err, apperrors.ErrSelfMessage)
}

func TestSendToUnknownReceiver(t *testing.T) {
	f := newMessageFixture()

	_, err := f.svc.Send(context.Background(), "user-1", dto.SendMessageRequest{
		ReceiverID: "ghost",
		Content:    "anyone there?",
	})
	assertNotFound(t, err)
}

func TestSendCreatesUnreadMessage(t *testing.T) {
	f := newMessageFixture()

	msg, err := f.svc.Send(context.Background(), "user-1", dto.SendMessageRequest{
		ReceiverID: "user-2",
		Content:    "hey",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", msg.SenderID)
	assert.Equal(t, "user-2", msg.ReceiverID)
	assert.False(t, msg.IsRead)
}

func TestConversationsAggregation(t *testing.T) {
	f := newMessageFixture()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Thread with user-2: two unread incoming, one outgoing.
	f.seed(t, "user-2", "user-1", "first", base)
	f.seed(t, "user-1", "user-2", "reply", base.Add(time.Minute))
	f.seed(t, "user-2", "user-1", "latest from two", base.Add(2*time.Minute))

	// Thread with user-3: newer, one unread.
	f.seed(t, "user-3", "user-1", "gig offer", base.Add(10*time.Minute))

	conversations, err := f.svc.Conversations(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	// Newest thread first.
	assert.Equal(t, "user-3", conversations[0].PartnerID)
	assert.Equal(t, "Venue Three", conversations[0].PartnerName)
	assert.Equal(t, models.ProfileTypeVenue, conversations[0].PartnerType)
	assert.Equal(t, "gig offer", conversations[0].LastMessage)
	assert.Equal(t, int64(1), conversations[0].UnreadCount)

	assert.Equal(t, "user-2", conversations[1].PartnerID)
	assert.Equal(t, "latest from two", conversations[1].LastMessage)
	// Own outgoing messages never count as unread.
	assert.Equal(t, int64(2), conversations[1].UnreadCount)
}

func TestConversationsRepeatable(t *testing.T) {
	f := newMessageFixture()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	f.seed(t, "user-2", "user-1", "first", base)
	f.seed(t, "user-3", "user-1", "offer", base.Add(time.Minute))

	first, err := f.svc.Conversations(context.Background(), "user-1")
	require.NoError(t, err)

	// Reading the inbox changes nothing; a second read is identical.
	second, err := f.svc.Conversations(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConversationsSkipDeletedPartner(t *testing.T) {
	f := newMessageFixture()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	f.seed(t, "user-2", "user-1", "hello", base)
	f.seed(t, "ghost", "user-1", "from nowhere", base.Add(time.Minute))

	conversations, err := f.svc.Conversations(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "user-2", conversations[0].PartnerID)
}

func TestConversationsEmpty(t *testing.T) {
	f := newMessageFixture()

	conversations, err := f.svc.Conversations(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, conversations)
}

func TestMarkReadIdempotent(t *testing.T) {
	f := newMessageFixture()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	f.seed(t, "user-2", "user-1", "one", base)
	f.seed(t, "user-2", "user-1", "two", base.Add(time.Minute))
	f.seed(t, "user-1", "user-2", "mine", base.Add(2*time.Minute))

	resp, err := f.svc.MarkRead(context.Background(), "user-1", "user-2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Updated)

	// Second call has nothing left to flip.
	resp, err = f.svc.MarkRead(context.Background(), "user-1", "user-2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Updated)

	// The outgoing message is untouched; user-2 still has one unread.
	counts, err := f.messages.UnreadCountsBySender(context.Background(), "user-2")
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, int64(1), counts[0].Count)
}

func TestThreadOrdering(t *testing.T) {
	f := newMessageFixture()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	f.seed(t, "user-1", "user-2", "a", base)
	f.seed(t, "user-2", "user-1", "b", base.Add(time.Minute))
	f.seed(t, "user-1", "user-2", "c", base.Add(2*time.Minute))
	// A message with a third party stays out of the thread.
	f.seed(t, "user-3", "user-1", "noise", base.Add(time.Second))

	thread, err := f.svc.Thread(context.Background(), "user-1", "user-2")
	require.NoError(t, err)
	require.Len(t, thread.Messages, 3)
	assert.Equal(t, "a", thread.Messages[0].Content)
	assert.Equal(t, "b", thread.Messages[1].Content)
	assert.Equal(t, "c", thread.Messages[2].Content)
}

func TestThreadCarriesDisplayNames(t *testing.T) {
	f := newMessageFixture()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	f.seed(t, "user-1", "user-3", "do you have a slot friday?", base)
	f.seed(t, "user-3", "user-1", "send a demo", base.Add(time.Minute))

	thread, err := f.svc.Thread(context.Background(), "user-1", "user-3")
	require.NoError(t, err)

	assert.Equal(t, "user-1", thread.Requester.ID)
	assert.Equal(t, "User One", thread.Requester.DisplayName)
	assert.Equal(t, "user-3", thread.Partner.ID)
	assert.Equal(t, "Venue Three", thread.Partner.DisplayName)
	require.Len(t, thread.Messages, 2)
}

func TestThreadUnknownPartner(t *testing.T) {
	f := newMessageFixture()

	_, err := f.svc.Thread(context.Background(), "user-1", "ghost")
	assertNotFound(t, err)
}
