package announcements

import (
	"context"
	"fmt"
	"strings"

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

type announcementRepoPG struct{ pool *pgxpool.Pool }

func NewAnnouncementRepoPG(pool *pgxpool.Pool) AnnouncementRepository {
	return &announcementRepoPG{pool: pool}
}

func (r *announcementRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const announcementCols = `id, title, content, date, time, important,
	author_id, author_name, created_at, updated_at`

func (r *announcementRepoPG) scanAnnouncement(row pgx.Row) (*Announcement, error) {
	var a Announcement
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Date, &a.Time, &a.Important,
		&a.AuthorID, &a.AuthorName, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *announcementRepoPG) Create(ctx context.Context, a *Announcement) error {
	a.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO announcements (id, title, content, date, time, important, author_id, author_name)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.Title, a.Content, a.Date, a.Time, a.Important, a.AuthorID, a.AuthorName)
	return err
}

func (r *announcementRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Announcement, error) {
	return r.scanAnnouncement(r.conn(ctx).QueryRow(ctx,
		`SELECT `+announcementCols+` FROM announcements WHERE id = $1`, id))
}

func (r *announcementRepoPG) Update(ctx context.Context, a *Announcement) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE announcements SET title=$2, content=$3, date=$4, time=$5, important=$6, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.Title, a.Content, a.Date, a.Time, a.Important)
	return err
}

func (r *announcementRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	return err
}

func (r *announcementRepoPG) list(ctx context.Context, query string, args ...interface{}) ([]*Announcement, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Announcement
	for rows.Next() {
		a, err := r.scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, nil
}

func (r *announcementRepoPG) ListByDate(ctx context.Context, date string) ([]*Announcement, error) {
	return r.list(ctx, `SELECT `+announcementCols+` FROM announcements WHERE date = $1 ORDER BY created_at`, date)
}

func (r *announcementRepoPG) ListByDateRange(ctx context.Context, from, to string) ([]*Announcement, error) {
	return r.list(ctx,
		`SELECT `+announcementCols+` FROM announcements WHERE date >= $1 AND date <= $2 ORDER BY date, created_at`,
		from, to)
}

func (r *announcementRepoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Announcement, int, error) {
	var where []string
	var args []interface{}

	if v := params["date"]; v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("date = $%d", len(args)))
	}
	if v := params["important"]; v != "" {
		args = append(args, v == "true")
		where = append(where, fmt.Sprintf("important = $%d", len(args)))
	}
	if v := params["q"]; v != "" {
		args = append(args, "%"+v+"%")
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", len(args), len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM announcements`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	items, err := r.list(ctx,
		`SELECT `+announcementCols+` FROM announcements`+clause+
			fmt.Sprintf(` ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
