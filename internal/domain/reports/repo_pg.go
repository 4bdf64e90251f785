package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brgycare/brgycare/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// =========== WeeklyReport Repository ===========

type weeklyRepoPG struct{ pool *pgxpool.Pool }

func NewWeeklyReportRepoPG(pool *pgxpool.Pool) WeeklyReportRepository {
	return &weeklyRepoPG{pool: pool}
}

func (r *weeklyRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const weeklyCols = `id, bhw_id, bhw_name, week_start, tasks, remarks, created_at, updated_at`

func (r *weeklyRepoPG) scanWeekly(row pgx.Row) (*WeeklyReport, error) {
	var w WeeklyReport
	err := row.Scan(&w.ID, &w.BHWID, &w.BHWName, &w.WeekStart, &w.Tasks, &w.Remarks,
		&w.CreatedAt, &w.UpdatedAt)
	return &w, err
}

func (r *weeklyRepoPG) Create(ctx context.Context, w *WeeklyReport) error {
	w.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO weekly_reports (id, bhw_id, bhw_name, week_start, tasks, remarks)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		w.ID, w.BHWID, w.BHWName, w.WeekStart, w.Tasks, w.Remarks)
	return err
}

func (r *weeklyRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*WeeklyReport, error) {
	return r.scanWeekly(r.conn(ctx).QueryRow(ctx, `SELECT `+weeklyCols+` FROM weekly_reports WHERE id = $1`, id))
}

func (r *weeklyRepoPG) GetByBHWAndWeek(ctx context.Context, bhwID uuid.UUID, weekStart time.Time) (*WeeklyReport, error) {
	return r.scanWeekly(r.conn(ctx).QueryRow(ctx,
		`SELECT `+weeklyCols+` FROM weekly_reports WHERE bhw_id = $1 AND week_start = $2`, bhwID, weekStart))
}

func (r *weeklyRepoPG) Update(ctx context.Context, w *WeeklyReport) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE weekly_reports SET tasks=$2, remarks=$3, updated_at=NOW() WHERE id = $1`,
		w.ID, w.Tasks, w.Remarks)
	return err
}

func (r *weeklyRepoPG) ListByWeek(ctx context.Context, weekStart time.Time) ([]*WeeklyReport, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+weeklyCols+` FROM weekly_reports WHERE week_start = $1 ORDER BY bhw_name`, weekStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*WeeklyReport
	for rows.Next() {
		w, err := r.scanWeekly(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, nil
}

func (r *weeklyRepoPG) ListByBHW(ctx context.Context, bhwID uuid.UUID, limit, offset int) ([]*WeeklyReport, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM weekly_reports WHERE bhw_id = $1`, bhwID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+weeklyCols+` FROM weekly_reports WHERE bhw_id = $1
		 ORDER BY week_start DESC LIMIT $2 OFFSET $3`, bhwID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*WeeklyReport
	for rows.Next() {
		w, err := r.scanWeekly(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, w)
	}
	return items, total, nil
}

// =========== MonthlyReport Repository ===========

type monthlyRepoPG struct{ pool *pgxpool.Pool }

func NewMonthlyReportRepoPG(pool *pgxpool.Pool) MonthlyReportRepository {
	return &monthlyRepoPG{pool: pool}
}

func (r *monthlyRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const monthlyCols = `id, bhw_id, bhw_name, month, file_urls, remarks, created_at, updated_at`

func (r *monthlyRepoPG) scanMonthly(row pgx.Row) (*MonthlyReport, error) {
	var m MonthlyReport
	err := row.Scan(&m.ID, &m.BHWID, &m.BHWName, &m.Month, &m.FileURLs, &m.Remarks,
		&m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *monthlyRepoPG) Create(ctx context.Context, m *MonthlyReport) error {
	m.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO monthly_reports (id, bhw_id, bhw_name, month, file_urls, remarks)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		m.ID, m.BHWID, m.BHWName, m.Month, m.FileURLs, m.Remarks)
	return err
}

func (r *monthlyRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*MonthlyReport, error) {
	return r.scanMonthly(r.conn(ctx).QueryRow(ctx, `SELECT `+monthlyCols+` FROM monthly_reports WHERE id = $1`, id))
}

func (r *monthlyRepoPG) GetByBHWAndMonth(ctx context.Context, bhwID uuid.UUID, month string) (*MonthlyReport, error) {
	return r.scanMonthly(r.conn(ctx).QueryRow(ctx,
		`SELECT `+monthlyCols+` FROM monthly_reports WHERE bhw_id = $1 AND month = $2`, bhwID, month))
}

func (r *monthlyRepoPG) Update(ctx context.Context, m *MonthlyReport) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE monthly_reports SET file_urls=$2, remarks=$3, updated_at=NOW() WHERE id = $1`,
		m.ID, m.FileURLs, m.Remarks)
	return err
}

func (r *monthlyRepoPG) ListByMonth(ctx context.Context, month string) ([]*MonthlyReport, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+monthlyCols+` FROM monthly_reports WHERE month = $1 ORDER BY bhw_name`, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*MonthlyReport
	for rows.Next() {
		m, err := r.scanMonthly(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, nil
}

func (r *monthlyRepoPG) ListByBHW(ctx context.Context, bhwID uuid.UUID, limit, offset int) ([]*MonthlyReport, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM monthly_reports WHERE bhw_id = $1`, bhwID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+monthlyCols+` FROM monthly_reports WHERE bhw_id = $1
		 ORDER BY month DESC LIMIT $2 OFFSET $3`, bhwID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*MonthlyReport
	for rows.Next() {
		m, err := r.scanMonthly(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, nil
}
