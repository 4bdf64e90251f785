package dashboard

import (
	"context"

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

type dashboardRepoPG struct{ pool *pgxpool.Pool }

func NewDashboardRepoPG(pool *pgxpool.Pool) DashboardRepository {
	return &dashboardRepoPG{pool: pool}
}

func (r *dashboardRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *dashboardRepoPG) CountHouseholds(ctx context.Context) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM households`).Scan(&n)
	return n, err
}

func (r *dashboardRepoPG) CountAccountsByRole(ctx context.Context, role string) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM accounts WHERE role = $1 AND is_active = TRUE`, role).Scan(&n)
	return n, err
}

func (r *dashboardRepoPG) ListResidentProfiles(ctx context.Context) ([]*ResidentProfile, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT birth_date, marginalized_groups FROM residents WHERE is_active = TRUE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*ResidentProfile
	for rows.Next() {
		var p ResidentProfile
		if err := rows.Scan(&p.BirthDate, &p.Tags); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *dashboardRepoPG) ListMedicineQuantities(ctx context.Context) ([]int, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT quantity FROM medicines`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var q int
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *dashboardRepoPG) RecentAnnouncements(ctx context.Context, limit int) ([]*RecentAnnouncement, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, title, date, important FROM announcements
		ORDER BY date DESC, created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*RecentAnnouncement
	for rows.Next() {
		var a RecentAnnouncement
		if err := rows.Scan(&a.ID, &a.Title, &a.Date, &a.Important); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
