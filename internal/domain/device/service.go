package device

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var validStockStatuses = map[string]bool{
	StatusInStock: true, StatusRented: true, StatusMaintenance: true, StatusRetired: true,
}

type Service struct {
	devices Repository
}

func NewService(devices Repository) *Service {
	return &Service{devices: devices}
}

func (s *Service) Create(ctx context.Context, d *Device) error {
	if strings.TrimSpace(d.Reference) == "" {
		return fmt.Errorf("reference is required")
	}
	if strings.TrimSpace(d.Label) == "" {
		return fmt.Errorf("label is required")
	}
	if d.MonthlyRate.IsNegative() {
		return fmt.Errorf("monthly_rate must not be negative")
	}
	if d.StockStatus == "" {
		d.StockStatus = StatusInStock
	}
	if !validStockStatuses[d.StockStatus] {
		return fmt.Errorf("invalid stock status: %s", d.StockStatus)
	}
	return s.devices.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Device, error) {
	return s.devices.GetByID(ctx, id)
}

func (s *Service) GetByReference(ctx context.Context, reference string) (*Device, error) {
	return s.devices.GetByReference(ctx, reference)
}

func (s *Service) Update(ctx context.Context, d *Device) error {
	if d.StockStatus != "" && !validStockStatuses[d.StockStatus] {
		return fmt.Errorf("invalid stock status: %s", d.StockStatus)
	}
	if d.MonthlyRate.IsNegative() {
		return fmt.Errorf("monthly_rate must not be negative")
	}
	return s.devices.Update(ctx, d)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.devices.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]*Device, int, error) {
	if status != "" && !validStockStatuses[status] {
		return nil, 0, fmt.Errorf("invalid stock status: %s", status)
	}
	return s.devices.List(ctx, status, limit, offset)
}

func (s *Service) StockSummary(ctx context.Context) (*StockSummary, error) {
	return s.devices.StockSummary(ctx)
}
