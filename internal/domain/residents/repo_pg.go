package residents

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

type residentRepoPG struct{ pool *pgxpool.Pool }

func NewResidentRepoPG(pool *pgxpool.Pool) ResidentRepository {
	return &residentRepoPG{pool: pool}
}

func (r *residentRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const residentCols = `id, first_name, middle_name, last_name, suffix,
	birth_date, birth_place, gender, contact_number, household_number,
	marginalized_groups, height_cm, weight_kg, blood_type, is_active,
	created_at, updated_at`

func (r *residentRepoPG) scanResident(row pgx.Row) (*Resident, error) {
	var res Resident
	err := row.Scan(&res.ID, &res.FirstName, &res.MiddleName, &res.LastName, &res.Suffix,
		&res.BirthDate, &res.BirthPlace, &res.Gender, &res.ContactNumber, &res.HouseholdNumber,
		&res.MarginalizedGroups, &res.HeightCM, &res.WeightKG, &res.BloodType, &res.IsActive,
		&res.CreatedAt, &res.UpdatedAt)
	return &res, err
}

func (r *residentRepoPG) Create(ctx context.Context, res *Resident) error {
	res.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO residents (id, first_name, middle_name, last_name, suffix,
			birth_date, birth_place, gender, contact_number, household_number,
			marginalized_groups, height_cm, weight_kg, blood_type, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		res.ID, res.FirstName, res.MiddleName, res.LastName, res.Suffix,
		res.BirthDate, res.BirthPlace, res.Gender, res.ContactNumber, res.HouseholdNumber,
		res.MarginalizedGroups, res.HeightCM, res.WeightKG, res.BloodType, res.IsActive)
	return err
}

func (r *residentRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Resident, error) {
	return r.scanResident(r.conn(ctx).QueryRow(ctx, `SELECT `+residentCols+` FROM residents WHERE id = $1`, id))
}

func (r *residentRepoPG) Update(ctx context.Context, res *Resident) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE residents SET first_name=$2, middle_name=$3, last_name=$4, suffix=$5,
			birth_date=$6, birth_place=$7, gender=$8, contact_number=$9, household_number=$10,
			marginalized_groups=$11, height_cm=$12, weight_kg=$13, blood_type=$14, is_active=$15,
			updated_at=NOW()
		WHERE id = $1`,
		res.ID, res.FirstName, res.MiddleName, res.LastName, res.Suffix,
		res.BirthDate, res.BirthPlace, res.Gender, res.ContactNumber, res.HouseholdNumber,
		res.MarginalizedGroups, res.HeightCM, res.WeightKG, res.BloodType, res.IsActive)
	return err
}

func (r *residentRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM residents WHERE id = $1`, id)
	return err
}

func (r *residentRepoPG) ListByHousehold(ctx context.Context, householdNumber string) ([]*Resident, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+residentCols+` FROM residents WHERE household_number = $1 ORDER BY birth_date`, householdNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Resident
	for rows.Next() {
		res, err := r.scanResident(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return items, nil
}

func (r *residentRepoPG) CountByHousehold(ctx context.Context, householdNumber string) (int, error) {
	var count int
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM residents WHERE household_number = $1`, householdNumber).Scan(&count)
	return count, err
}

func (r *residentRepoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Resident, int, error) {
	var where []string
	var args []interface{}

	if v := params["household_number"]; v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("household_number = $%d", len(args)))
	}
	if v := params["gender"]; v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("gender = $%d", len(args)))
	}
	if v := params["group"]; v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("$%d = ANY(marginalized_groups)", len(args)))
	}
	if v := params["is_active"]; v != "" {
		args = append(args, v == "true")
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if v := params["q"]; v != "" {
		args = append(args, "%"+v+"%")
		where = append(where, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", len(args), len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM residents`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+residentCols+` FROM residents`+clause+
			fmt.Sprintf(` ORDER BY last_name, first_name LIMIT $%d OFFSET $%d`, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Resident
	for rows.Next() {
		res, err := r.scanResident(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, res)
	}
	return items, total, nil
}
