package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if strings.TrimSpace(p.FullName) == "" {
		return fmt.Errorf("full_name is required")
	}
	if p.InsuranceNumber != nil && strings.TrimSpace(*p.InsuranceNumber) == "" {
		p.InsuranceNumber = nil
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) GetByInsuranceNumber(ctx context.Context, number string) (*Patient, error) {
	return s.patients.GetByInsuranceNumber(ctx, number)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if strings.TrimSpace(p.FullName) == "" {
		return fmt.Errorf("full_name is required")
	}
	return s.patients.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}

func (s *Service) SearchByName(ctx context.Context, name string, limit, offset int) ([]*Patient, int, error) {
	return s.patients.SearchByName(ctx, name, limit, offset)
}
