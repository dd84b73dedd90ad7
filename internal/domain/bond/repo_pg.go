package bond

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const bondCols = `id, patient_id, rental_id, bond_type, bond_number, status, start_date, end_date, monthly_amount, created_at, updated_at`

func scanBond(row pgx.Row) (*Bond, error) {
	var b Bond
	err := row.Scan(&b.ID, &b.PatientID, &b.RentalID, &b.BondType, &b.BondNumber,
		&b.Status, &b.StartDate, &b.EndDate, &b.MonthlyAmount, &b.CreatedAt, &b.UpdatedAt)
	return &b, err
}

func (r *repoPG) Create(ctx context.Context, b *Bond) error {
	b.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cnam_bond (id, patient_id, rental_id, bond_type, bond_number, status, start_date, end_date, monthly_amount)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		b.ID, b.PatientID, b.RentalID, b.BondType, b.BondNumber, b.Status, b.StartDate, b.EndDate, b.MonthlyAmount)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Bond, error) {
	return scanBond(r.pool.QueryRow(ctx, `SELECT `+bondCols+` FROM cnam_bond WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, b *Bond) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE cnam_bond SET patient_id=$2, rental_id=$3, bond_type=$4, bond_number=$5,
			status=$6, start_date=$7, end_date=$8, monthly_amount=$9, updated_at=NOW()
		WHERE id = $1`,
		b.ID, b.PatientID, b.RentalID, b.BondType, b.BondNumber, b.Status, b.StartDate, b.EndDate, b.MonthlyAmount)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cnam_bond WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, status string, limit, offset int) ([]*Bond, int, error) {
	where := ``
	args := []interface{}{}
	if status != "" {
		where = ` WHERE status = $1`
		args = append(args, status)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cnam_bond`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + bondCols + ` FROM cnam_bond` + where
	if status != "" {
		query += ` ORDER BY end_date NULLS LAST LIMIT $2 OFFSET $3`
	} else {
		query += ` ORDER BY end_date NULLS LAST LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectBonds(rows)
	return items, total, err
}

func (r *repoPG) ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*Bond, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+bondCols+` FROM cnam_bond WHERE rental_id = $1 ORDER BY start_date NULLS LAST`, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBonds(rows)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Bond, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cnam_bond WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+bondCols+` FROM cnam_bond WHERE patient_id = $1 ORDER BY start_date NULLS LAST LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectBonds(rows)
	return items, total, err
}

func (r *repoPG) ListExpiringWithin(ctx context.Context, days int) ([]*Bond, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bondCols+` FROM cnam_bond
		WHERE status = $1
		  AND end_date IS NOT NULL
		  AND end_date BETWEEN CURRENT_DATE AND CURRENT_DATE + $2 * INTERVAL '1 day'
		ORDER BY end_date`,
		StatusActive, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBonds(rows)
}

func collectBonds(rows pgx.Rows) ([]*Bond, error) {
	var items []*Bond
	for rows.Next() {
		b, err := scanBond(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}
