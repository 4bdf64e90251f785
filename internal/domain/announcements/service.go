package announcements

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type Service struct {
	announcements AnnouncementRepository
}

func NewService(announcements AnnouncementRepository) *Service {
	return &Service{announcements: announcements}
}

func (s *Service) validate(a *Announcement) error {
	if a.Title == "" {
		return fmt.Errorf("title is required")
	}
	if a.Content == "" {
		return fmt.Errorf("content is required")
	}
	if a.Date == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse(dateLayout, a.Date); err != nil {
		return fmt.Errorf("date must be formatted YYYY-MM-DD")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, a *Announcement) error {
	if err := s.validate(a); err != nil {
		return err
	}
	if a.AuthorName == "" {
		return fmt.Errorf("author_name is required")
	}
	return s.announcements.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Announcement, error) {
	return s.announcements.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, a *Announcement) error {
	if err := s.validate(a); err != nil {
		return err
	}
	return s.announcements.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.announcements.Delete(ctx, id)
}

func (s *Service) ListByDate(ctx context.Context, date string) ([]*Announcement, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("date must be formatted YYYY-MM-DD")
	}
	return s.announcements.ListByDate(ctx, date)
}

func (s *Service) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Announcement, int, error) {
	return s.announcements.Search(ctx, params, limit, offset)
}

// Calendar builds the month grid and attaches the month's announcements
// keyed by their exact date string. Month is zero-based.
func (s *Service) Calendar(ctx context.Context, year, month int) (*CalendarResponse, error) {
	if month < 0 || month > 11 {
		return nil, fmt.Errorf("month must be between 0 and 11")
	}

	from := fmt.Sprintf("%04d-%02d-01", year, month+1)
	to := fmt.Sprintf("%04d-%02d-%02d", year, month+1, DaysInMonth(year, month))

	items, err := s.announcements.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]*Announcement)
	for _, a := range items {
		byDate[a.Date] = append(byDate[a.Date], a)
	}

	return &CalendarResponse{
		Year:          year,
		Month:         month,
		Weeks:         BuildMonthCalendar(year, month),
		Announcements: byDate,
	}, nil
}
