package bond

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, b *Bond) error
	GetByID(ctx context.Context, id uuid.UUID) (*Bond, error)
	Update(ctx context.Context, b *Bond) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status string, limit, offset int) ([]*Bond, int, error)
	ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*Bond, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Bond, int, error)
	ListExpiringWithin(ctx context.Context, days int) ([]*Bond, error)
}
