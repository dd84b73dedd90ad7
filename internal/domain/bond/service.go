package bond

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	StatusPending: true, StatusActive: true, StatusExpired: true, StatusCancelled: true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, b *Bond) error {
	if b.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if b.BondType == "" {
		return fmt.Errorf("bond_type is required")
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	if !validStatuses[b.Status] {
		return fmt.Errorf("invalid bond status: %s", b.Status)
	}
	if b.StartDate != nil && b.EndDate != nil && b.EndDate.Before(*b.StartDate) {
		return fmt.Errorf("end_date must not be before start_date")
	}
	if b.MonthlyAmount != nil && b.MonthlyAmount.IsNegative() {
		return fmt.Errorf("monthly_amount must not be negative")
	}
	return s.repo.Create(ctx, b)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Bond, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, b *Bond) error {
	if b.Status != "" && !validStatuses[b.Status] {
		return fmt.Errorf("invalid bond status: %s", b.Status)
	}
	if b.StartDate != nil && b.EndDate != nil && b.EndDate.Before(*b.StartDate) {
		return fmt.Errorf("end_date must not be before start_date")
	}
	if b.MonthlyAmount != nil && b.MonthlyAmount.IsNegative() {
		return fmt.Errorf("monthly_amount must not be negative")
	}
	return s.repo.Update(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]*Bond, int, error) {
	if status != "" && !validStatuses[status] {
		return nil, 0, fmt.Errorf("invalid bond status: %s", status)
	}
	return s.repo.List(ctx, status, limit, offset)
}

func (s *Service) ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*Bond, error) {
	return s.repo.ListByRental(ctx, rentalID)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Bond, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

// ListExpiring returns active bonds whose end date falls within the next
// `days` days, soonest first.
func (s *Service) ListExpiring(ctx context.Context, days int) ([]*Bond, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be positive")
	}
	return s.repo.ListExpiringWithin(ctx, days)
}
