package rental

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r *Rental) error
	GetByID(ctx context.Context, id uuid.UUID) (*Rental, error)
	Update(ctx context.Context, r *Rental) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status string, limit, offset int) ([]*Rental, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Rental, int, error)
}

type PeriodRepository interface {
	Create(ctx context.Context, p *Period) error
	GetByID(ctx context.Context, id uuid.UUID) (*Period, error)
	Update(ctx context.Context, p *Period) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*Period, error)
}
