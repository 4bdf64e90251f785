package reports

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockWeeklyRepo struct {
	reports map[uuid.UUID]*WeeklyReport
}

func newMockWeeklyRepo() *mockWeeklyRepo {
	return &mockWeeklyRepo{reports: make(map[uuid.UUID]*WeeklyReport)}
}

func (m *mockWeeklyRepo) Create(_ context.Context, r *WeeklyReport) error {
	r.ID = uuid.New()
	m.reports[r.ID] = r
	return nil
}

func (m *mockWeeklyRepo) GetByID(_ context.Context, id uuid.UUID) (*WeeklyReport, error) {
	r, ok := m.reports[id]
	if !ok {
		return nil, fmt.Errorf("report not found")
	}
	return r, nil
}

func (m *mockWeeklyRepo) GetByBHWAndWeek(_ context.Context, bhwID uuid.UUID, weekStart time.Time) (*WeeklyReport, error) {
	for _, r := range m.reports {
		if r.BHWID == bhwID && r.WeekStart.Equal(weekStart) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("report not found")
}

func (m *mockWeeklyRepo) Update(_ context.Context, r *WeeklyReport) error {
	if _, ok := m.reports[r.ID]; !ok {
		return fmt.Errorf("report not found")
	}
	m.reports[r.ID] = r
	return nil
}

func (m *mockWeeklyRepo) ListByWeek(_ context.Context, weekStart time.Time) ([]*WeeklyReport, error) {
	var out []*WeeklyReport
	for _, r := range m.reports {
		if r.WeekStart.Equal(weekStart) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockWeeklyRepo) ListByBHW(_ context.Context, bhwID uuid.UUID, limit, offset int) ([]*WeeklyReport, int, error) {
	var out []*WeeklyReport
	for _, r := range m.reports {
		if r.BHWID == bhwID {
			out = append(out, r)
		}
	}
	total := len(out)
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

type mockMonthlyRepo struct {
	reports map[uuid.UUID]*MonthlyReport
}

func newMockMonthlyRepo() *mockMonthlyRepo {
	return &mockMonthlyRepo{reports: make(map[uuid.UUID]*MonthlyReport)}
}

func (m *mockMonthlyRepo) Create(_ context.Context, r *MonthlyReport) error {
	r.ID = uuid.New()
	m.reports[r.ID] = r
	return nil
}

func (m *mockMonthlyRepo) GetByID(_ context.Context, id uuid.UUID) (*MonthlyReport, error) {
	r, ok := m.reports[id]
	if !ok {
		return nil, fmt.Errorf("report not found")
	}
	return r, nil
}

func (m *mockMonthlyRepo) GetByBHWAndMonth(_ context.Context, bhwID uuid.UUID, month string) (*MonthlyReport, error) {
	for _, r := range m.reports {
		if r.BHWID == bhwID && r.Month == month {
			return r, nil
		}
	}
	return nil, fmt.Errorf("report not found")
}

func (m *mockMonthlyRepo) Update(_ context.Context, r *MonthlyReport) error {
	if _, ok := m.reports[r.ID]; !ok {
		return fmt.Errorf("report not found")
	}
	m.reports[r.ID] = r
	return nil
}

func (m *mockMonthlyRepo) ListByMonth(_ context.Context, month string) ([]*MonthlyReport, error) {
	var out []*MonthlyReport
	for _, r := range m.reports {
		if r.Month == month {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockMonthlyRepo) ListByBHW(_ context.Context, bhwID uuid.UUID, limit, offset int) ([]*MonthlyReport, int, error) {
	var out []*MonthlyReport
	for _, r := range m.reports {
		if r.BHWID == bhwID {
			out = append(out, r)
		}
	}
	total := len(out)
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func newTestService() (*Service, *mockWeeklyRepo, *mockMonthlyRepo) {
	weekly := newMockWeeklyRepo()
	monthly := newMockMonthlyRepo()
	return NewService(weekly, monthly), weekly, monthly
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "monday stays",
			in:   time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC),
			want: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "wednesday rolls back",
			in:   time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC),
			want: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to preceding monday",
			in:   time.Date(2026, 9, 6, 23, 59, 0, 0, time.UTC),
			want: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "crosses month boundary",
			in:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WeekStart(tc.in)
			if !got.Equal(tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSubmitWeekly(t *testing.T) {
	svc, weekly, _ := newTestService()
	bhwID := uuid.New()

	req := &SubmitWeeklyRequest{
		WeekOf: time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC),
		Tasks:  []string{BHWTasks[0], BHWTasks[1]},
	}
	w, err := svc.SubmitWeekly(context.Background(), bhwID, "Maria Santos", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
	if w.BHWName != "Maria Santos" {
		t.Errorf("expected bhw name set, got %s", w.BHWName)
	}
	wantWeek := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if !w.WeekStart.Equal(wantWeek) {
		t.Errorf("expected week start %v, got %v", wantWeek, w.WeekStart)
	}
	if len(weekly.reports) != 1 {
		t.Errorf("expected 1 stored report, got %d", len(weekly.reports))
	}
}

func TestSubmitWeekly_Validation(t *testing.T) {
	svc, _, _ := newTestService()
	bhwID := uuid.New()
	weekOf := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		req     *SubmitWeeklyRequest
		wantErr string
	}{
		{
			name:    "missing week",
			req:     &SubmitWeeklyRequest{Tasks: []string{BHWTasks[0]}},
			wantErr: "week_of is required",
		},
		{
			name:    "no tasks",
			req:     &SubmitWeeklyRequest{WeekOf: weekOf},
			wantErr: "at least one task",
		},
		{
			name:    "unknown task",
			req:     &SubmitWeeklyRequest{WeekOf: weekOf, Tasks: []string{"Moonlighting"}},
			wantErr: "unknown task",
		},
		{
			name:    "duplicate task",
			req:     &SubmitWeeklyRequest{WeekOf: weekOf, Tasks: []string{BHWTasks[0], BHWTasks[0]}},
			wantErr: "duplicate task",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitWeekly(context.Background(), bhwID, "Maria", tc.req)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %q", tc.wantErr, err)
			}
		})
	}
}

func TestSubmitWeekly_SameWeekUpdates(t *testing.T) {
	svc, weekly, _ := newTestService()
	bhwID := uuid.New()

	first := &SubmitWeeklyRequest{
		WeekOf: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Tasks:  []string{BHWTasks[0]},
	}
	created, err := svc.SubmitWeekly(context.Background(), bhwID, "Maria", first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	remarks := "covered two puroks"
	second := &SubmitWeeklyRequest{
		WeekOf:  time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC), // same ISO week
		Tasks:   []string{BHWTasks[2], BHWTasks[3]},
		Remarks: &remarks,
	}
	updated, err := svc.SubmitWeekly(context.Background(), bhwID, "Maria", second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.ID != created.ID {
		t.Error("expected resubmission to update the existing report")
	}
	if len(weekly.reports) != 1 {
		t.Errorf("expected 1 stored report, got %d", len(weekly.reports))
	}
	if len(updated.Tasks) != 2 || updated.Tasks[0] != BHWTasks[2] {
		t.Errorf("expected tasks replaced, got %v", updated.Tasks)
	}
	if updated.Remarks == nil || *updated.Remarks != remarks {
		t.Error("expected remarks replaced")
	}
}

func TestSubmitWeekly_DifferentBHWsSameWeek(t *testing.T) {
	svc, weekly, _ := newTestService()
	weekOf := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	for _, name := range []string{"Maria", "Juan"} {
		req := &SubmitWeeklyRequest{WeekOf: weekOf, Tasks: []string{BHWTasks[0]}}
		if _, err := svc.SubmitWeekly(context.Background(), uuid.New(), name, req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(weekly.reports) != 2 {
		t.Errorf("expected 2 stored reports, got %d", len(weekly.reports))
	}
}

func TestSubmitMonthly(t *testing.T) {
	svc, _, monthly := newTestService()
	bhwID := uuid.New()

	req := &SubmitMonthlyRequest{
		Month:    "2026-08",
		FileURLs: []string{"/api/v1/files/abc"},
	}
	m, err := svc.SubmitMonthly(context.Background(), bhwID, "Maria", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
	if len(monthly.reports) != 1 {
		t.Errorf("expected 1 stored report, got %d", len(monthly.reports))
	}
}

func TestSubmitMonthly_Validation(t *testing.T) {
	svc, _, _ := newTestService()
	bhwID := uuid.New()

	cases := []struct {
		name    string
		req     *SubmitMonthlyRequest
		wantErr string
	}{
		{
			name:    "bad month format",
			req:     &SubmitMonthlyRequest{Month: "August 2026", FileURLs: []string{"/f/1"}},
			wantErr: "month must be formatted",
		},
		{
			name:    "no files",
			req:     &SubmitMonthlyRequest{Month: "2026-08"},
			wantErr: "at least one file",
		},
		{
			name:    "empty file url",
			req:     &SubmitMonthlyRequest{Month: "2026-08", FileURLs: []string{""}},
			wantErr: "cannot be empty",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitMonthly(context.Background(), bhwID, "Maria", tc.req)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %q", tc.wantErr, err)
			}
		})
	}
}

func TestSubmitMonthly_SameMonthUpdates(t *testing.T) {
	svc, _, monthly := newTestService()
	bhwID := uuid.New()

	created, err := svc.SubmitMonthly(context.Background(), bhwID, "Maria", &SubmitMonthlyRequest{
		Month:    "2026-08",
		FileURLs: []string{"/api/v1/files/a"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.SubmitMonthly(context.Background(), bhwID, "Maria", &SubmitMonthlyRequest{
		Month:    "2026-08",
		FileURLs: []string{"/api/v1/files/b", "/api/v1/files/c"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.ID != created.ID {
		t.Error("expected resubmission to update the existing report")
	}
	if len(monthly.reports) != 1 {
		t.Errorf("expected 1 stored report, got %d", len(monthly.reports))
	}
	if len(updated.FileURLs) != 2 {
		t.Errorf("expected files replaced, got %v", updated.FileURLs)
	}
}

func TestMonthlyByMonth_BadFormat(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.MonthlyByMonth(context.Background(), "2026/08"); err == nil {
		t.Error("expected error for bad month format")
	}
}

func TestIsValidTask(t *testing.T) {
	for _, task := range BHWTasks {
		if !IsValidTask(task) {
			t.Errorf("catalog task %q should be valid", task)
		}
	}
	if IsValidTask("Not a real task") {
		t.Error("expected unknown task to be invalid")
	}
}
