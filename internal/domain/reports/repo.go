package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WeeklyReportRepository persists weekly reports.
type WeeklyReportRepository interface {
	Create(ctx context.Context, r *WeeklyReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*WeeklyReport, error)
	GetByBHWAndWeek(ctx context.Context, bhwID uuid.UUID, weekStart time.Time) (*WeeklyReport, error)
	Update(ctx context.Context, r *WeeklyReport) error
	ListByWeek(ctx context.Context, weekStart time.Time) ([]*WeeklyReport, error)
	ListByBHW(ctx context.Context, bhwID uuid.UUID, limit, offset int) ([]*WeeklyReport, int, error)
}

// MonthlyReportRepository persists monthly reports.
type MonthlyReportRepository interface {
	Create(ctx context.Context, r *MonthlyReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*MonthlyReport, error)
	GetByBHWAndMonth(ctx context.Context, bhwID uuid.UUID, month string) (*MonthlyReport, error)
	Update(ctx context.Context, r *MonthlyReport) error
	ListByMonth(ctx context.Context, month string) ([]*MonthlyReport, error)
	ListByBHW(ctx context.Context, bhwID uuid.UUID, limit, offset int) ([]*MonthlyReport, int, error)
}
