package coverage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/medirent/medirent/internal/domain/bond"
	"github.com/medirent/medirent/internal/domain/rental"
)

type stubRentalRepo struct{ rentals map[uuid.UUID]*rental.Rental }

func (s *stubRentalRepo) Create(context.Context, *rental.Rental) error { return nil }
func (s *stubRentalRepo) Update(context.Context, *rental.Rental) error { return nil }
func (s *stubRentalRepo) Delete(context.Context, uuid.UUID) error      { return nil }
func (s *stubRentalRepo) List(context.Context, string, int, int) ([]*rental.Rental, int, error) {
	return nil, 0, nil
}
func (s *stubRentalRepo) ListByPatient(context.Context, uuid.UUID, int, int) ([]*rental.Rental, int, error) {
	return nil, 0, nil
}
func (s *stubRentalRepo) GetByID(_ context.Context, id uuid.UUID) (*rental.Rental, error) {
	r, ok := s.rentals[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return r, nil
}

type stubPeriodRepo struct {
	periods []*rental.Period
	err     error
}

func (s *stubPeriodRepo) Create(context.Context, *rental.Period) error { return nil }
func (s *stubPeriodRepo) Update(context.Context, *rental.Period) error { return nil }
func (s *stubPeriodRepo) Delete(context.Context, uuid.UUID) error      { return nil }
func (s *stubPeriodRepo) GetByID(context.Context, uuid.UUID) (*rental.Period, error) {
	return nil, fmt.Errorf("not found")
}
func (s *stubPeriodRepo) ListByRental(context.Context, uuid.UUID) ([]*rental.Period, error) {
	return s.periods, s.err
}

type stubBondRepo struct{ bonds []*bond.Bond }

func (s *stubBondRepo) Create(context.Context, *bond.Bond) error { return nil }
func (s *stubBondRepo) Update(context.Context, *bond.Bond) error { return nil }
func (s *stubBondRepo) Delete(context.Context, uuid.UUID) error  { return nil }
func (s *stubBondRepo) GetByID(context.Context, uuid.UUID) (*bond.Bond, error) {
	return nil, fmt.Errorf("not found")
}
func (s *stubBondRepo) List(context.Context, string, int, int) ([]*bond.Bond, int, error) {
	return nil, 0, nil
}
func (s *stubBondRepo) ListByPatient(context.Context, uuid.UUID, int, int) ([]*bond.Bond, int, error) {
	return nil, 0, nil
}
func (s *stubBondRepo) ListExpiringWithin(context.Context, int) ([]*bond.Bond, error) {
	return nil, nil
}
func (s *stubBondRepo) ListByRental(context.Context, uuid.UUID) ([]*bond.Bond, error) {
	return s.bonds, nil
}

func TestAnalyzeRental(t *testing.T) {
	r := closedRental(date(2024, 1, 1), date(2024, 3, 31))
	svc := NewService(
		&stubRentalRepo{rentals: map[uuid.UUID]*rental.Rental{r.ID: r}},
		&stubPeriodRepo{periods: []*rental.Period{
			period(date(2024, 1, 1), date(2024, 1, 31), 300),
		}},
		&stubBondRepo{bonds: []*bond.Bond{expiringBond(today.AddDate(0, 0, 10))}},
	)
	svc.now = func() time.Time { return today }

	report, err := svc.AnalyzeRental(context.Background(), r.ID)
	if err != nil {
		t.Fatalf("AnalyzeRental: %v", err)
	}
	if report.RentalID != r.ID {
		t.Errorf("RentalID = %s, want %s", report.RentalID, r.ID)
	}
	if len(report.Gaps) != 2 {
		t.Fatalf("got %d gaps, want trailing gap + bond expiry", len(report.Gaps))
	}
}

func TestAnalyzeRentalUnknownID(t *testing.T) {
	svc := NewService(&stubRentalRepo{rentals: map[uuid.UUID]*rental.Rental{}},
		&stubPeriodRepo{}, &stubBondRepo{})
	if _, err := svc.AnalyzeRental(context.Background(), uuid.New()); err == nil {
		t.Error("expected error for unknown rental")
	}
}
