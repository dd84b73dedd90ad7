package rental

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Rental Repository ===========

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const rentalCols = `id, patient_id, device_id, start_date, end_date, status, notes, created_at, updated_at`

func scanRental(row pgx.Row) (*Rental, error) {
	var r Rental
	err := row.Scan(&r.ID, &r.PatientID, &r.DeviceID, &r.StartDate, &r.EndDate,
		&r.Status, &r.Notes, &r.CreatedAt, &r.UpdatedAt)
	return &r, err
}

func (r *repoPG) Create(ctx context.Context, rn *Rental) error {
	rn.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO rental (id, patient_id, device_id, start_date, end_date, status, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		rn.ID, rn.PatientID, rn.DeviceID, rn.StartDate, rn.EndDate, rn.Status, rn.Notes)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Rental, error) {
	return scanRental(r.pool.QueryRow(ctx, `SELECT `+rentalCols+` FROM rental WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, rn *Rental) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE rental SET patient_id=$2, device_id=$3, start_date=$4, end_date=$5,
			status=$6, notes=$7, updated_at=NOW()
		WHERE id = $1`,
		rn.ID, rn.PatientID, rn.DeviceID, rn.StartDate, rn.EndDate, rn.Status, rn.Notes)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM rental WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, status string, limit, offset int) ([]*Rental, int, error) {
	where := ``
	args := []interface{}{}
	if status != "" {
		where = ` WHERE status = $1`
		args = append(args, status)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM rental`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + rentalCols + ` FROM rental` + where
	if status != "" {
		query += ` ORDER BY start_date DESC LIMIT $2 OFFSET $3`
	} else {
		query += ` ORDER BY start_date DESC LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectRentals(rows, total)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Rental, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM rental WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+rentalCols+` FROM rental WHERE patient_id = $1 ORDER BY start_date DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectRentals(rows, total)
}

func collectRentals(rows pgx.Rows, total int) ([]*Rental, int, error) {
	var items []*Rental
	for rows.Next() {
		rn, err := scanRental(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rn)
	}
	return items, total, rows.Err()
}

// =========== Period Repository ===========

type periodRepoPG struct{ pool *pgxpool.Pool }

func NewPeriodRepoPG(pool *pgxpool.Pool) PeriodRepository { return &periodRepoPG{pool: pool} }

const periodCols = `id, rental_id, start_date, end_date, amount, payment_method, is_gap, gap_reason, created_at`

func scanPeriod(row pgx.Row) (*Period, error) {
	var p Period
	err := row.Scan(&p.ID, &p.RentalID, &p.StartDate, &p.EndDate, &p.Amount,
		&p.PaymentMethod, &p.IsGap, &p.GapReason, &p.CreatedAt)
	return &p, err
}

func (r *periodRepoPG) Create(ctx context.Context, p *Period) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO rental_period (id, rental_id, start_date, end_date, amount, payment_method, is_gap, gap_reason)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.RentalID, p.StartDate, p.EndDate, p.Amount, p.PaymentMethod, p.IsGap, p.GapReason)
	return err
}

func (r *periodRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Period, error) {
	return scanPeriod(r.pool.QueryRow(ctx, `SELECT `+periodCols+` FROM rental_period WHERE id = $1`, id))
}

func (r *periodRepoPG) Update(ctx context.Context, p *Period) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE rental_period SET start_date=$2, end_date=$3, amount=$4,
			payment_method=$5, is_gap=$6, gap_reason=$7
		WHERE id = $1`,
		p.ID, p.StartDate, p.EndDate, p.Amount, p.PaymentMethod, p.IsGap, p.GapReason)
	return err
}

func (r *periodRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM rental_period WHERE id = $1`, id)
	return err
}

func (r *periodRepoPG) ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*Period, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+periodCols+` FROM rental_period WHERE rental_id = $1 ORDER BY created_at`, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Period
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
