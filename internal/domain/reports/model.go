package reports

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyReport maps to the weekly_reports table. One row per BHW per ISO
// week; resubmitting within the same week updates the existing row.
type WeeklyReport struct {
	ID        uuid.UUID `db:"id" json:"id"`
	BHWID     uuid.UUID `db:"bhw_id" json:"bhw_id"`
	BHWName   string    `db:"bhw_name" json:"bhw_name"`
	WeekStart time.Time `db:"week_start" json:"week_start"`
	Tasks     []string  `db:"tasks" json:"tasks"`
	Remarks   *string   `db:"remarks" json:"remarks,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// MonthlyReport maps to the monthly_reports table. One row per BHW per
// month, holding the uploaded scan URLs.
type MonthlyReport struct {
	ID        uuid.UUID `db:"id" json:"id"`
	BHWID     uuid.UUID `db:"bhw_id" json:"bhw_id"`
	BHWName   string    `db:"bhw_name" json:"bhw_name"`
	Month     string    `db:"month" json:"month"`
	FileURLs  []string  `db:"file_urls" json:"file_urls"`
	Remarks   *string   `db:"remarks" json:"remarks,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SubmitWeeklyRequest is the payload for submitting a weekly report.
type SubmitWeeklyRequest struct {
	WeekOf  time.Time `json:"week_of"`
	Tasks   []string  `json:"tasks"`
	Remarks *string   `json:"remarks,omitempty"`
}

// SubmitMonthlyRequest is the payload for submitting a monthly report.
type SubmitMonthlyRequest struct {
	Month    string   `json:"month"`
	FileURLs []string `json:"file_urls"`
	Remarks  *string  `json:"remarks,omitempty"`
}

// WeekStart normalizes a date to the Monday of its ISO week, at midnight UTC.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the preceding Monday's week
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -(weekday - 1))
}
