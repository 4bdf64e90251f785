package messaging

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Message maps to the messages table. Messages are flat records; there is no
// stored conversation entity. Conversations are derived at read time by
// grouping on the other party relative to the viewing account.
type Message struct {
	ID            uuid.UUID `db:"id" json:"id"`
	SenderID      uuid.UUID `db:"sender_id" json:"sender_id"`
	SenderName    string    `db:"sender_name" json:"sender_name"`
	ReceiverID    uuid.UUID `db:"receiver_id" json:"receiver_id"`
	ReceiverName  string    `db:"receiver_name" json:"receiver_name"`
	Body          string    `db:"body" json:"body"`
	AttachmentURL *string   `db:"attachment_url" json:"attachment_url,omitempty"`
	Read          bool      `db:"read" json:"read"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Conversation is the derived inbox entry for one counterpart.
type Conversation struct {
	PartnerID   uuid.UUID `json:"partner_id"`
	PartnerName string    `json:"partner_name"`
	LastMessage *Message  `json:"last_message"`
	UnreadCount int       `json:"unread_count"`
}

// SendRequest is the payload for sending a message.
type SendRequest struct {
	ReceiverID    uuid.UUID `json:"receiver_id"`
	ReceiverName  string    `json:"receiver_name"`
	Body          string    `json:"body"`
	AttachmentURL *string   `json:"attachment_url,omitempty"`
}

// BuildConversations groups an account's messages by counterpart. Entries
// come back ordered by most recent message first; unread counts only tally
// messages addressed to the account.
func BuildConversations(accountID uuid.UUID, msgs []*Message) []*Conversation {
	index := make(map[uuid.UUID]*Conversation)
	var convos []*Conversation

	for _, m := range msgs {
		partnerID, partnerName := m.SenderID, m.SenderName
		if m.SenderID == accountID {
			partnerID, partnerName = m.ReceiverID, m.ReceiverName
		}

		c, ok := index[partnerID]
		if !ok {
			c = &Conversation{PartnerID: partnerID, PartnerName: partnerName}
			index[partnerID] = c
			convos = append(convos, c)
		}
		if c.LastMessage == nil || m.CreatedAt.After(c.LastMessage.CreatedAt) {
			c.LastMessage = m
		}
		if m.ReceiverID == accountID && !m.Read {
			c.UnreadCount++
		}
	}

	sort.SliceStable(convos, func(i, j int) bool {
		return convos[i].LastMessage.CreatedAt.After(convos[j].LastMessage.CreatedAt)
	})
	return convos
}
