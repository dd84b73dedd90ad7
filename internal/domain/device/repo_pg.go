package device

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const deviceCols = `id, reference, label, category, serial_number,
	purchase_price, monthly_rate, stock_status, created_at, updated_at`

func scanDevice(row pgx.Row) (*Device, error) {
	var d Device
	err := row.Scan(&d.ID, &d.Reference, &d.Label, &d.Category, &d.SerialNumber,
		&d.PurchasePrice, &d.MonthlyRate, &d.StockStatus, &d.CreatedAt, &d.UpdatedAt)
	return &d, err
}

func (r *repoPG) Create(ctx context.Context, d *Device) error {
	d.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO device (id, reference, label, category, serial_number,
			purchase_price, monthly_rate, stock_status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		d.ID, d.Reference, d.Label, d.Category, d.SerialNumber,
		d.PurchasePrice, d.MonthlyRate, d.StockStatus)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Device, error) {
	return scanDevice(r.pool.QueryRow(ctx, `SELECT `+deviceCols+` FROM device WHERE id = $1`, id))
}

func (r *repoPG) GetByReference(ctx context.Context, reference string) (*Device, error) {
	return scanDevice(r.pool.QueryRow(ctx, `SELECT `+deviceCols+` FROM device WHERE reference = $1`, reference))
}

func (r *repoPG) Update(ctx context.Context, d *Device) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE device SET reference=$2, label=$3, category=$4, serial_number=$5,
			purchase_price=$6, monthly_rate=$7, stock_status=$8, updated_at=NOW()
		WHERE id = $1`,
		d.ID, d.Reference, d.Label, d.Category, d.SerialNumber,
		d.PurchasePrice, d.MonthlyRate, d.StockStatus)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM device WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, status string, limit, offset int) ([]*Device, int, error) {
	where := ``
	args := []interface{}{}
	if status != "" {
		where = ` WHERE stock_status = $1`
		args = append(args, status)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM device`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + deviceCols + ` FROM device` + where
	if status != "" {
		query += ` ORDER BY reference LIMIT $2 OFFSET $3`
	} else {
		query += ` ORDER BY reference LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, rows.Err()
}

func (r *repoPG) StockSummary(ctx context.Context) (*StockSummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT stock_status, COUNT(*) FROM device GROUP BY stock_status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var s StockSummary
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		switch status {
		case StatusInStock:
			s.InStock = count
		case StatusRented:
			s.Rented = count
		case StatusMaintenance:
			s.Maintenance = count
		case StatusRetired:
			s.Retired = count
		}
		s.Total += count
	}
	return &s, rows.Err()
}
