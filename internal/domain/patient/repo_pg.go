package patient

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const patientCols = `id, full_name, is_company, insurance_number, birth_date,
	phone, email, address, notes, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FullName, &p.IsCompany, &p.InsuranceNumber, &p.BirthDate,
		&p.Phone, &p.Email, &p.Address, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient (id, full_name, is_company, insurance_number, birth_date,
			phone, email, address, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		p.ID, p.FullName, p.IsCompany, p.InsuranceNumber, p.BirthDate,
		p.Phone, p.Email, p.Address, p.Notes)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
}

func (r *repoPG) GetByInsuranceNumber(ctx context.Context, number string) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE insurance_number = $1`, number))
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE patient SET full_name=$2, is_company=$3, insurance_number=$4, birth_date=$5,
			phone=$6, email=$7, address=$8, notes=$9, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.FullName, p.IsCompany, p.InsuranceNumber, p.BirthDate,
		p.Phone, p.Email, p.Address, p.Notes)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patient ORDER BY full_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectPatients(rows, total)
}

func (r *repoPG) SearchByName(ctx context.Context, name string, limit, offset int) ([]*Patient, int, error) {
	pattern := "%" + name + "%"
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient WHERE full_name ILIKE $1`, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patient WHERE full_name ILIKE $1 ORDER BY full_name LIMIT $2 OFFSET $3`,
		pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectPatients(rows, total)
}

func collectPatients(rows pgx.Rows, total int) ([]*Patient, int, error) {
	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
