package announcements

import (
	"time"

	"github.com/google/uuid"
)

// Announcement maps to the announcements table. The date is stored as a
// plain "YYYY-MM-DD" string because the calendar widget matches on it
// exactly.
type Announcement struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	Date       string    `db:"date" json:"date"`
	Time       *string   `db:"time" json:"time,omitempty"`
	Important  bool      `db:"important" json:"important"`
	AuthorID   uuid.UUID `db:"author_id" json:"author_id"`
	AuthorName string    `db:"author_name" json:"author_name"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// CalendarResponse is the month view: the week grid plus the month's
// announcements keyed by date string.
type CalendarResponse struct {
	Year          int                        `json:"year"`
	Month         int                        `json:"month"`
	Weeks         [][]int                    `json:"weeks"`
	Announcements map[string][]*Announcement `json:"announcements"`
}
