package coverage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medirent/medirent/internal/domain/bond"
	"github.com/medirent/medirent/internal/domain/rental"
)

// Service loads a rental's data and runs the analyzer over it.
type Service struct {
	rentals rental.Repository
	periods rental.PeriodRepository
	bonds   bond.Repository
	now     func() time.Time
}

func NewService(rentals rental.Repository, periods rental.PeriodRepository, bonds bond.Repository) *Service {
	return &Service{rentals: rentals, periods: periods, bonds: bonds, now: time.Now}
}

// AnalyzeRental runs a full coverage analysis for one rental.
func (s *Service) AnalyzeRental(ctx context.Context, rentalID uuid.UUID) (*AnalysisReport, error) {
	r, err := s.rentals.GetByID(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("rental %s: %w", rentalID, err)
	}
	periods, err := s.periods.ListByRental(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("periods for rental %s: %w", rentalID, err)
	}
	bonds, err := s.bonds.ListByRental(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("bonds for rental %s: %w", rentalID, err)
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	return Analyze(r, periods, bonds, today)
}
