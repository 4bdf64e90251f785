package households

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

type householdRepoPG struct{ pool *pgxpool.Pool }

func NewHouseholdRepoPG(pool *pgxpool.Pool) HouseholdRepository {
	return &householdRepoPG{pool: pool}
}

func (r *householdRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const householdCols = `id, household_number,
	head_first_name, head_middle_name, head_last_name, head_suffix,
	address, contact_number, email, family_size, total_members,
	created_at, updated_at`

func (r *householdRepoPG) scanHousehold(row pgx.Row) (*Household, error) {
	var h Household
	err := row.Scan(&h.ID, &h.HouseholdNumber,
		&h.HeadFirstName, &h.HeadMiddleName, &h.HeadLastName, &h.HeadSuffix,
		&h.Address, &h.ContactNumber, &h.Email, &h.FamilySize, &h.TotalMembers,
		&h.CreatedAt, &h.UpdatedAt)
	return &h, err
}

func (r *householdRepoPG) Create(ctx context.Context, h *Household) error {
	h.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO households (id, household_number,
			head_first_name, head_middle_name, head_last_name, head_suffix,
			address, contact_number, email, family_size, total_members)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		h.ID, h.HouseholdNumber,
		h.HeadFirstName, h.HeadMiddleName, h.HeadLastName, h.HeadSuffix,
		h.Address, h.ContactNumber, h.Email, h.FamilySize, h.TotalMembers)
	return err
}

func (r *householdRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Household, error) {
	return r.scanHousehold(r.conn(ctx).QueryRow(ctx, `SELECT `+householdCols+` FROM households WHERE id = $1`, id))
}

func (r *householdRepoPG) GetByNumber(ctx context.Context, householdNumber string) (*Household, error) {
	return r.scanHousehold(r.conn(ctx).QueryRow(ctx,
		`SELECT `+householdCols+` FROM households WHERE household_number = $1`, householdNumber))
}

func (r *householdRepoPG) Update(ctx context.Context, h *Household) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE households SET head_first_name=$2, head_middle_name=$3, head_last_name=$4, head_suffix=$5,
			address=$6, contact_number=$7, email=$8, family_size=$9, updated_at=NOW()
		WHERE id = $1`,
		h.ID, h.HeadFirstName, h.HeadMiddleName, h.HeadLastName, h.HeadSuffix,
		h.Address, h.ContactNumber, h.Email, h.FamilySize)
	return err
}

func (r *householdRepoPG) UpdateTotalMembers(ctx context.Context, householdNumber string, total int) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE households SET total_members=$2, updated_at=NOW() WHERE household_number = $1`,
		householdNumber, total)
	return err
}

// DeleteWithResidents removes the household and its residents atomically.
func (r *householdRepoPG) DeleteWithResidents(ctx context.Context, id uuid.UUID, householdNumber string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM residents WHERE household_number = $1`, householdNumber); err != nil {
		return fmt.Errorf("delete residents: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM households WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete household: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *householdRepoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Household, int, error) {
	var where []string
	var args []interface{}

	if v := params["household_number"]; v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("household_number = $%d", len(args)))
	}
	if v := params["q"]; v != "" {
		args = append(args, "%"+v+"%")
		where = append(where, fmt.Sprintf("(head_first_name ILIKE $%d OR head_last_name ILIKE $%d OR household_number ILIKE $%d)",
			len(args), len(args), len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM households`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := ""
	if limit > 0 {
		args = append(args, limit, offset)
		page = fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+householdCols+` FROM households`+clause+
			` ORDER BY household_number`+page,
		args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Household
	for rows.Next() {
		h, err := r.scanHousehold(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, h)
	}
	return items, total, nil
}
