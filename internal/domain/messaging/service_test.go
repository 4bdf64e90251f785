package messaging

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockMessageRepo struct {
	messages    []*Message
	now         time.Time
	markReadErr error
}

func newMockMessageRepo() *mockMessageRepo {
	return &mockMessageRepo{now: time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)}
}

func (m *mockMessageRepo) Create(_ context.Context, msg *Message) error {
	msg.ID = uuid.New()
	m.now = m.now.Add(time.Minute)
	msg.CreatedAt = m.now
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockMessageRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]*Message, error) {
	var result []*Message
	for _, msg := range m.messages {
		if msg.SenderID == accountID || msg.ReceiverID == accountID {
			result = append(result, msg)
		}
	}
	return result, nil
}

func (m *mockMessageRepo) ListBetween(_ context.Context, a, b uuid.UUID, limit, offset int) ([]*Message, int, error) {
	var result []*Message
	for _, msg := range m.messages {
		if (msg.SenderID == a && msg.ReceiverID == b) || (msg.SenderID == b && msg.ReceiverID == a) {
			result = append(result, msg)
		}
	}
	total := len(result)
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

func (m *mockMessageRepo) MarkRead(_ context.Context, senderID, receiverID uuid.UUID) error {
	if m.markReadErr != nil {
		return m.markReadErr
	}
	for _, msg := range m.messages {
		if msg.SenderID == senderID && msg.ReceiverID == receiverID {
			msg.Read = true
		}
	}
	return nil
}

func (m *mockMessageRepo) CountUnread(_ context.Context, receiverID uuid.UUID) (int, error) {
	count := 0
	for _, msg := range m.messages {
		if msg.ReceiverID == receiverID && !msg.Read {
			count++
		}
	}
	return count, nil
}

// -- Tests --

func TestSendMessage(t *testing.T) {
	repo := newMockMessageRepo()
	svc := NewService(repo)

	sender := uuid.New()
	receiver := uuid.New()

	m, err := svc.Send(context.Background(), sender, "Ana Reyes", &SendRequest{
		ReceiverID:   receiver,
		ReceiverName: "Juan Cruz",
		Body:         "Kumusta po",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if m.Read {
		t.Error("new messages must be unread")
	}
	if m.SenderName != "Ana Reyes" {
		t.Errorf("SenderName = %q", m.SenderName)
	}
}

func TestSendMessageValidation(t *testing.T) {
	svc := NewService(newMockMessageRepo())
	sender := uuid.New()

	if _, err := svc.Send(context.Background(), sender, "A", &SendRequest{Body: "hi"}); err == nil {
		t.Error("expected error for missing receiver")
	}
	if _, err := svc.Send(context.Background(), sender, "A", &SendRequest{ReceiverID: sender, Body: "hi"}); err == nil {
		t.Error("expected error for messaging yourself")
	}
	if _, err := svc.Send(context.Background(), sender, "A", &SendRequest{ReceiverID: uuid.New()}); err == nil {
		t.Error("expected error for empty body without attachment")
	}

	// An attachment without a body is allowed.
	url := "/api/v1/files/abc"
	if _, err := svc.Send(context.Background(), sender, "A", &SendRequest{ReceiverID: uuid.New(), AttachmentURL: &url}); err != nil {
		t.Errorf("Send() with attachment only error = %v", err)
	}
}

func TestBuildConversations(t *testing.T) {
	me := uuid.New()
	ana := uuid.New()
	juan := uuid.New()

	base := time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)
	at := func(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }

	msgs := []*Message{
		{SenderID: ana, SenderName: "Ana", ReceiverID: me, Body: "1", CreatedAt: at(0)},
		{SenderID: me, ReceiverID: ana, ReceiverName: "Ana", Body: "2", Read: true, CreatedAt: at(1)},
		{SenderID: juan, SenderName: "Juan", ReceiverID: me, Body: "3", CreatedAt: at(2)},
		{SenderID: ana, SenderName: "Ana", ReceiverID: me, Body: "4", CreatedAt: at(3)},
	}

	convos := BuildConversations(me, msgs)

	if len(convos) != 2 {
		t.Fatalf("got %d conversations, want 2", len(convos))
	}

	// Ana's thread has the most recent message, so it lists first.
	if convos[0].PartnerID != ana {
		t.Errorf("first conversation partner = %v, want Ana", convos[0].PartnerID)
	}
	if convos[0].LastMessage.Body != "4" {
		t.Errorf("last message = %q, want %q", convos[0].LastMessage.Body, "4")
	}
	if convos[0].UnreadCount != 2 {
		t.Errorf("Ana unread = %d, want 2", convos[0].UnreadCount)
	}
	if convos[1].PartnerID != juan || convos[1].UnreadCount != 1 {
		t.Errorf("Juan conversation wrong: %+v", convos[1])
	}
}

func TestThreadMarksRead(t *testing.T) {
	repo := newMockMessageRepo()
	svc := NewService(repo)

	me := uuid.New()
	ana := uuid.New()

	if _, err := svc.Send(context.Background(), ana, "Ana", &SendRequest{ReceiverID: me, Body: "hello"}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	count, err := svc.UnreadCount(context.Background(), me)
	if err != nil {
		t.Fatalf("UnreadCount() error = %v", err)
	}
	if count != 1 {
		t.Fatalf("unread = %d, want 1", count)
	}

	items, total, err := svc.Thread(context.Background(), me, ana, 20, 0)
	if err != nil {
		t.Fatalf("Thread() error = %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Errorf("thread has %d messages (total %d), want 1", len(items), total)
	}

	count, _ = svc.UnreadCount(context.Background(), me)
	if count != 0 {
		t.Errorf("unread after Thread() = %d, want 0", count)
	}

	// The sender's own unread count is unaffected.
	count, _ = svc.UnreadCount(context.Background(), ana)
	if count != 0 {
		t.Errorf("sender unread = %d, want 0", count)
	}
}

func TestThreadReturnsWhenMarkReadFails(t *testing.T) {
	repo := newMockMessageRepo()
	svc := NewService(repo)

	me := uuid.New()
	ana := uuid.New()

	if _, err := svc.Send(context.Background(), ana, "Ana", &SendRequest{ReceiverID: me, Body: "hello"}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	repo.markReadErr = fmt.Errorf("write timeout")
	items, total, err := svc.Thread(context.Background(), me, ana, 20, 0)
	if err != nil {
		t.Fatalf("Thread() error = %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Errorf("thread has %d messages (total %d), want 1", len(items), total)
	}

	// The messages stay unread until a later open succeeds.
	count, _ := svc.UnreadCount(context.Background(), me)
	if count != 1 {
		t.Errorf("unread = %d, want 1", count)
	}
}
