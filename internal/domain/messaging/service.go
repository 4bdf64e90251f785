package messaging

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/brgycare/brgycare/internal/platform/telemetry"
)

type Service struct {
	messages MessageRepository
}

func NewService(messages MessageRepository) *Service {
	return &Service{messages: messages}
}

func (s *Service) Send(ctx context.Context, senderID uuid.UUID, senderName string, req *SendRequest) (*Message, error) {
	if req.ReceiverID == uuid.Nil {
		return nil, fmt.Errorf("receiver_id is required")
	}
	if req.ReceiverID == senderID {
		return nil, fmt.Errorf("cannot message yourself")
	}
	if req.Body == "" && (req.AttachmentURL == nil || *req.AttachmentURL == "") {
		return nil, fmt.Errorf("message body or attachment is required")
	}

	m := &Message{
		SenderID:      senderID,
		SenderName:    senderName,
		ReceiverID:    req.ReceiverID,
		ReceiverName:  req.ReceiverName,
		Body:          req.Body,
		AttachmentURL: req.AttachmentURL,
		Read:          false,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	telemetry.CountMessageSent()
	return m, nil
}

// Conversations derives the inbox for an account from its flat messages.
func (s *Service) Conversations(ctx context.Context, accountID uuid.UUID) ([]*Conversation, error) {
	msgs, err := s.messages.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return BuildConversations(accountID, msgs), nil
}

// Thread returns the messages between the account and a partner and marks
// the partner's messages as read. A failed mark-read does not fail the read;
// the messages stay unread and the next open retries.
func (s *Service) Thread(ctx context.Context, accountID, partnerID uuid.UUID, limit, offset int) ([]*Message, int, error) {
	items, total, err := s.messages.ListBetween(ctx, accountID, partnerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if err := s.messages.MarkRead(ctx, partnerID, accountID); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("account_id", accountID.String()).Msg("failed to mark thread read")
	}
	return items, total, nil
}

func (s *Service) MarkRead(ctx context.Context, accountID, partnerID uuid.UUID) error {
	return s.messages.MarkRead(ctx, partnerID, accountID)
}

func (s *Service) UnreadCount(ctx context.Context, accountID uuid.UUID) (int, error) {
	return s.messages.CountUnread(ctx, accountID)
}
