package device

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock statuses a device moves through during its life.
const (
	StatusInStock     = "in_stock"
	StatusRented      = "rented"
	StatusMaintenance = "maintenance"
	StatusRetired     = "retired"
)

// Device maps to the device table: one physical unit of rentable medical
// equipment (CPAP machine, oxygen concentrator, hospital bed, ...).
type Device struct {
	ID            uuid.UUID        `db:"id" json:"id"`
	Reference     string           `db:"reference" json:"reference"`
	Label         string           `db:"label" json:"label"`
	Category      string           `db:"category" json:"category"`
	SerialNumber  *string          `db:"serial_number" json:"serial_number,omitempty"`
	PurchasePrice *decimal.Decimal `db:"purchase_price" json:"purchase_price,omitempty"`
	MonthlyRate   decimal.Decimal  `db:"monthly_rate" json:"monthly_rate"`
	StockStatus   string           `db:"stock_status" json:"stock_status"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time        `db:"updated_at" json:"updated_at"`
}

// StockSummary aggregates device counts per stock status.
type StockSummary struct {
	InStock     int `json:"in_stock"`
	Rented      int `json:"rented"`
	Maintenance int `json:"maintenance"`
	Retired     int `json:"retired"`
	Total       int `json:"total"`
}
