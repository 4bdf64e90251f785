package announcements

import (
	"context"

	"github.com/google/uuid"
)

// AnnouncementRepository persists announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *Announcement) error
	GetByID(ctx context.Context, id uuid.UUID) (*Announcement, error)
	Update(ctx context.Context, a *Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByDate(ctx context.Context, date string) ([]*Announcement, error)
	ListByDateRange(ctx context.Context, from, to string) ([]*Announcement, error)
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Announcement, int, error)
}
