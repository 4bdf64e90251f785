package accounts

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

type accountRepoPG struct{ pool *pgxpool.Pool }

func NewAccountRepoPG(pool *pgxpool.Pool) AccountRepository {
	return &accountRepoPG{pool: pool}
}

func (r *accountRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const accountCols = `id, username, password_hash, role,
	first_name, middle_name, last_name, suffix,
	contact_number, email, address, household_number, profile_picture_url,
	is_active, last_login_at, created_at, updated_at`

func (r *accountRepoPG) scanAccount(row pgx.Row) (*Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role,
		&a.FirstName, &a.MiddleName, &a.LastName, &a.Suffix,
		&a.ContactNumber, &a.Email, &a.Address, &a.HouseholdNumber, &a.ProfilePictureURL,
		&a.IsActive, &a.LastLoginAt, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *accountRepoPG) Create(ctx context.Context, a *Account) error {
	a.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO accounts (id, username, password_hash, role,
			first_name, middle_name, last_name, suffix,
			contact_number, email, address, household_number, profile_picture_url,
			is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		a.ID, a.Username, a.PasswordHash, a.Role,
		a.FirstName, a.MiddleName, a.LastName, a.Suffix,
		a.ContactNumber, a.Email, a.Address, a.HouseholdNumber, a.ProfilePictureURL,
		a.IsActive)
	return err
}

func (r *accountRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return r.scanAccount(r.conn(ctx).QueryRow(ctx, `SELECT `+accountCols+` FROM accounts WHERE id = $1`, id))
}

func (r *accountRepoPG) GetByUsername(ctx context.Context, username string) (*Account, error) {
	return r.scanAccount(r.conn(ctx).QueryRow(ctx, `SELECT `+accountCols+` FROM accounts WHERE username = $1`, username))
}

func (r *accountRepoPG) Update(ctx context.Context, a *Account) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE accounts SET first_name=$2, middle_name=$3, last_name=$4, suffix=$5,
			contact_number=$6, email=$7, address=$8, household_number=$9,
			profile_picture_url=$10, is_active=$11, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.FirstName, a.MiddleName, a.LastName, a.Suffix,
		a.ContactNumber, a.Email, a.Address, a.HouseholdNumber,
		a.ProfilePictureURL, a.IsActive)
	return err
}

func (r *accountRepoPG) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE accounts SET password_hash=$2, updated_at=NOW() WHERE id = $1`, id, passwordHash)
	return err
}

func (r *accountRepoPG) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE accounts SET last_login_at=NOW() WHERE id = $1`, id)
	return err
}

func (r *accountRepoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Account, int, error) {
	var where []string
	var args []interface{}

	if v := params["role"]; v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("role = $%d", len(args)))
	}
	if v := params["is_active"]; v != "" {
		args = append(args, v == "true")
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if v := params["q"]; v != "" {
		args = append(args, "%"+v+"%")
		where = append(where, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d OR username ILIKE $%d)",
			len(args), len(args), len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM accounts`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+accountCols+` FROM accounts`+clause+
			fmt.Sprintf(` ORDER BY last_name, first_name LIMIT $%d OFFSET $%d`, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Account
	for rows.Next() {
		a, err := r.scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, nil
}
