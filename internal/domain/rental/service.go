package rental

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	StatusActive: true, StatusCompleted: true, StatusCancelled: true,
}

var validPaymentMethods = map[string]bool{
	PaymentOutOfPocket: true, PaymentCNAM: true, PaymentMixed: true,
}

type Service struct {
	rentals Repository
	periods PeriodRepository
}

func NewService(rentals Repository, periods PeriodRepository) *Service {
	return &Service{rentals: rentals, periods: periods}
}

// -- Rental --

func (s *Service) Create(ctx context.Context, r *Rental) error {
	if r.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if r.DeviceID == uuid.Nil {
		return fmt.Errorf("device_id is required")
	}
	if r.StartDate.IsZero() {
		return fmt.Errorf("start_date is required")
	}
	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("end_date must not be before start_date")
	}
	if r.Status == "" {
		r.Status = StatusActive
	}
	if !validStatuses[r.Status] {
		return fmt.Errorf("invalid rental status: %s", r.Status)
	}
	return s.rentals.Create(ctx, r)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Rental, error) {
	return s.rentals.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, r *Rental) error {
	if r.StartDate.IsZero() {
		return fmt.Errorf("start_date is required")
	}
	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("end_date must not be before start_date")
	}
	if r.Status != "" && !validStatuses[r.Status] {
		return fmt.Errorf("invalid rental status: %s", r.Status)
	}
	return s.rentals.Update(ctx, r)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.rentals.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]*Rental, int, error) {
	if status != "" && !validStatuses[status] {
		return nil, 0, fmt.Errorf("invalid rental status: %s", status)
	}
	return s.rentals.List(ctx, status, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Rental, int, error) {
	return s.rentals.ListByPatient(ctx, patientID, limit, offset)
}

// -- Period --

func (s *Service) AddPeriod(ctx context.Context, p *Period) error {
	if p.RentalID == uuid.Nil {
		return fmt.Errorf("rental_id is required")
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return fmt.Errorf("start_date and end_date are required")
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("end_date must not be before start_date")
	}
	if p.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}
	if p.PaymentMethod == "" {
		p.PaymentMethod = PaymentOutOfPocket
	}
	if !validPaymentMethods[p.PaymentMethod] {
		return fmt.Errorf("invalid payment method: %s", p.PaymentMethod)
	}
	if p.IsGap && (p.GapReason == nil || *p.GapReason == "") {
		return fmt.Errorf("gap_reason is required for gap periods")
	}
	if _, err := s.rentals.GetByID(ctx, p.RentalID); err != nil {
		return fmt.Errorf("rental %s: %w", p.RentalID, err)
	}
	return s.periods.Create(ctx, p)
}

func (s *Service) GetPeriod(ctx context.Context, id uuid.UUID) (*Period, error) {
	return s.periods.GetByID(ctx, id)
}

func (s *Service) UpdatePeriod(ctx context.Context, p *Period) error {
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("end_date must not be before start_date")
	}
	if p.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}
	if p.PaymentMethod != "" && !validPaymentMethods[p.PaymentMethod] {
		return fmt.Errorf("invalid payment method: %s", p.PaymentMethod)
	}
	return s.periods.Update(ctx, p)
}

func (s *Service) DeletePeriod(ctx context.Context, id uuid.UUID) error {
	return s.periods.Delete(ctx, id)
}

func (s *Service) ListPeriods(ctx context.Context, rentalID uuid.UUID) ([]*Period, error) {
	return s.periods.ListByRental(ctx, rentalID)
}
