package inventory

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

// =========== Medicine Repository ===========

type medicineRepoPG struct{ pool *pgxpool.Pool }

func NewMedicineRepoPG(pool *pgxpool.Pool) MedicineRepository {
	return &medicineRepoPG{pool: pool}
}

func (r *medicineRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const medicineCols = `id, med_code, name, description, med_type, category, supplier,
	quantity, expiry_date, status, created_at, updated_at`

func (r *medicineRepoPG) scanMedicine(row pgx.Row) (*Medicine, error) {
	var m Medicine
	err := row.Scan(&m.ID, &m.MedCode, &m.Name, &m.Description, &m.MedType, &m.Category, &m.Supplier,
		&m.Quantity, &m.ExpiryDate, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *medicineRepoPG) Create(ctx context.Context, m *Medicine) error {
	m.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO medicines (id, med_code, name, description, med_type, category, supplier,
			quantity, expiry_date, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		m.ID, m.MedCode, m.Name, m.Description, m.MedType, m.Category, m.Supplier,
		m.Quantity, m.ExpiryDate, m.Status)
	return err
}

func (r *medicineRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Medicine, error) {
	return r.scanMedicine(r.conn(ctx).QueryRow(ctx, `SELECT `+medicineCols+` FROM medicines WHERE id = $1`, id))
}

func (r *medicineRepoPG) Update(ctx context.Context, m *Medicine) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE medicines SET med_code=$2, name=$3, description=$4, med_type=$5, category=$6,
			supplier=$7, quantity=$8, expiry_date=$9, status=$10, updated_at=NOW()
		WHERE id = $1`,
		m.ID, m.MedCode, m.Name, m.Description, m.MedType, m.Category,
		m.Supplier, m.Quantity, m.ExpiryDate, m.Status)
	return err
}

func (r *medicineRepoPG) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int, status string) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE medicines SET quantity=$2, status=$3, updated_at=NOW() WHERE id = $1`,
		id, quantity, status)
	return err
}

func (r *medicineRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM medicines WHERE id = $1`, id)
	return err
}

func (r *medicineRepoPG) ListAll(ctx context.Context) ([]*Medicine, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+medicineCols+` FROM medicines ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Medicine
	for rows.Next() {
		m, err := r.scanMedicine(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, nil
}

func (r *medicineRepoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Medicine, int, error) {
	var where []string
	var args []interface{}

	if v := params["med_code"]; v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("med_code = $%d", len(args)))
	}
	if v := params["category"]; v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if v := params["status"]; v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if v := params["q"]; v != "" {
		args = append(args, "%"+v+"%")
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR med_code ILIKE $%d)", len(args), len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM medicines`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+medicineCols+` FROM medicines`+clause+
			fmt.Sprintf(` ORDER BY created_at LIMIT $%d OFFSET $%d`, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Medicine
	for rows.Next() {
		m, err := r.scanMedicine(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, nil
}

// =========== Release Repository ===========

type releaseRepoPG struct{ pool *pgxpool.Pool }

func NewReleaseRepoPG(pool *pgxpool.Pool) ReleaseRepository {
	return &releaseRepoPG{pool: pool}
}

func (r *releaseRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const releaseCols = `id, medicine_id, med_code, name, amount,
	quantity_before, quantity_after, barangay, released_by, created_at`

func (r *releaseRepoPG) scanRelease(row pgx.Row) (*Release, error) {
	var rel Release
	err := row.Scan(&rel.ID, &rel.MedicineID, &rel.MedCode, &rel.Name, &rel.Amount,
		&rel.QuantityBefore, &rel.QuantityAfter, &rel.Barangay, &rel.ReleasedBy, &rel.CreatedAt)
	return &rel, err
}

func (r *releaseRepoPG) Create(ctx context.Context, rel *Release) error {
	rel.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO medicine_releases (id, medicine_id, med_code, name, amount,
			quantity_before, quantity_after, barangay, released_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		rel.ID, rel.MedicineID, rel.MedCode, rel.Name, rel.Amount,
		rel.QuantityBefore, rel.QuantityAfter, rel.Barangay, rel.ReleasedBy)
	return err
}

func (r *releaseRepoPG) ListByMedicine(ctx context.Context, medicineID uuid.UUID) ([]*Release, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+releaseCols+` FROM medicine_releases WHERE medicine_id = $1 ORDER BY created_at DESC`, medicineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Release
	for rows.Next() {
		rel, err := r.scanRelease(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rel)
	}
	return items, nil
}

func (r *releaseRepoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Release, int, error) {
	var where []string
	var args []interface{}

	if v := params["med_code"]; v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("med_code = $%d", len(args)))
	}
	if v := params["barangay"]; v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("barangay = $%d", len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM medicine_releases`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+releaseCols+` FROM medicine_releases`+clause+
			fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Release
	for rows.Next() {
		rel, err := r.scanRelease(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rel)
	}
	return items, total, nil
}
