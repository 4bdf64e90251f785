package messaging

import (
	"context"

	"github.com/google/uuid"
)

// MessageRepository persists messages.
type MessageRepository interface {
	Create(ctx context.Context, m *Message) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*Message, error)
	ListBetween(ctx context.Context, a, b uuid.UUID, limit, offset int) ([]*Message, int, error)
	// MarkRead marks every unread message from sender to receiver as read.
	MarkRead(ctx context.Context, senderID, receiverID uuid.UUID) error
	CountUnread(ctx context.Context, receiverID uuid.UUID) (int, error)
}
