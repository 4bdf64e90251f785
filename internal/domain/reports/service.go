package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brgycare/brgycare/internal/platform/telemetry"
)

type Service struct {
	weekly  WeeklyReportRepository
	monthly MonthlyReportRepository
}

func NewService(weekly WeeklyReportRepository, monthly MonthlyReportRepository) *Service {
	return &Service{weekly: weekly, monthly: monthly}
}

// SubmitWeekly creates or updates the BHW's report for the week containing
// req.WeekOf. Tasks must all come from the fixed catalog.
func (s *Service) SubmitWeekly(ctx context.Context, bhwID uuid.UUID, bhwName string, req *SubmitWeeklyRequest) (*WeeklyReport, error) {
	if req.WeekOf.IsZero() {
		return nil, fmt.Errorf("week_of is required")
	}
	if len(req.Tasks) == 0 {
		return nil, fmt.Errorf("at least one task is required")
	}
	seen := make(map[string]bool, len(req.Tasks))
	for _, task := range req.Tasks {
		if !IsValidTask(task) {
			return nil, fmt.Errorf("unknown task: %s", task)
		}
		if seen[task] {
			return nil, fmt.Errorf("duplicate task: %s", task)
		}
		seen[task] = true
	}

	weekStart := WeekStart(req.WeekOf)

	if existing, err := s.weekly.GetByBHWAndWeek(ctx, bhwID, weekStart); err == nil && existing != nil {
		existing.Tasks = req.Tasks
		existing.Remarks = req.Remarks
		if err := s.weekly.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	w := &WeeklyReport{
		BHWID:     bhwID,
		BHWName:   bhwName,
		WeekStart: weekStart,
		Tasks:     req.Tasks,
		Remarks:   req.Remarks,
	}
	if err := s.weekly.Create(ctx, w); err != nil {
		return nil, err
	}
	telemetry.CountReportSubmitted("weekly")
	return w, nil
}

func (s *Service) GetWeekly(ctx context.Context, id uuid.UUID) (*WeeklyReport, error) {
	return s.weekly.GetByID(ctx, id)
}

func (s *Service) WeeklyByWeek(ctx context.Context, weekOf time.Time) ([]*WeeklyReport, error) {
	return s.weekly.ListByWeek(ctx, WeekStart(weekOf))
}

func (s *Service) WeeklyByBHW(ctx context.Context, bhwID uuid.UUID, limit, offset int) ([]*WeeklyReport, int, error) {
	return s.weekly.ListByBHW(ctx, bhwID, limit, offset)
}

// SubmitMonthly creates or updates the BHW's report for a month ("YYYY-MM").
func (s *Service) SubmitMonthly(ctx context.Context, bhwID uuid.UUID, bhwName string, req *SubmitMonthlyRequest) (*MonthlyReport, error) {
	if _, err := time.Parse("2006-01", req.Month); err != nil {
		return nil, fmt.Errorf("month must be formatted YYYY-MM")
	}
	if len(req.FileURLs) == 0 {
		return nil, fmt.Errorf("at least one file is required")
	}
	for _, u := range req.FileURLs {
		if u == "" {
			return nil, fmt.Errorf("file URLs cannot be empty")
		}
	}

	if existing, err := s.monthly.GetByBHWAndMonth(ctx, bhwID, req.Month); err == nil && existing != nil {
		existing.FileURLs = req.FileURLs
		existing.Remarks = req.Remarks
		if err := s.monthly.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	m := &MonthlyReport{
		BHWID:    bhwID,
		BHWName:  bhwName,
		Month:    req.Month,
		FileURLs: req.FileURLs,
		Remarks:  req.Remarks,
	}
	if err := s.monthly.Create(ctx, m); err != nil {
		return nil, err
	}
	telemetry.CountReportSubmitted("monthly")
	return m, nil
}

func (s *Service) GetMonthly(ctx context.Context, id uuid.UUID) (*MonthlyReport, error) {
	return s.monthly.GetByID(ctx, id)
}

func (s *Service) MonthlyByMonth(ctx context.Context, month string) ([]*MonthlyReport, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, fmt.Errorf("month must be formatted YYYY-MM")
	}
	return s.monthly.ListByMonth(ctx, month)
}

func (s *Service) MonthlyByBHW(ctx context.Context, bhwID uuid.UUID, limit, offset int) ([]*MonthlyReport, int, error) {
	return s.monthly.ListByBHW(ctx, bhwID, limit, offset)
}
