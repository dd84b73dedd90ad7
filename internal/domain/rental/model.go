package rental

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rental statuses.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Payment methods a billing period can carry.
const (
	PaymentOutOfPocket = "out_of_pocket"
	PaymentCNAM        = "cnam"
	PaymentMixed       = "mixed"
)

// Rental maps to the rental table: one device leased to one patient or
// company. EndDate is nil while the rental is open-ended.
type Rental struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	PatientID uuid.UUID  `db:"patient_id" json:"patient_id"`
	DeviceID  uuid.UUID  `db:"device_id" json:"device_id"`
	StartDate time.Time  `db:"start_date" json:"start_date"`
	EndDate   *time.Time `db:"end_date" json:"end_date,omitempty"`
	Status    string     `db:"status" json:"status"`
	Notes     *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// Period maps to the rental_period table: a contiguous sub-range of the
// rental's lifetime with one billing treatment. Both dates are inclusive.
// Periods of one rental are not guaranteed sorted or disjoint in storage.
type Period struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	RentalID      uuid.UUID       `db:"rental_id" json:"rental_id"`
	StartDate     time.Time       `db:"start_date" json:"start_date"`
	EndDate       time.Time       `db:"end_date" json:"end_date"`
	Amount        decimal.Decimal `db:"amount" json:"amount"` // monthly-equivalent figure
	PaymentMethod string          `db:"payment_method" json:"payment_method"`
	IsGap         bool            `db:"is_gap" json:"is_gap"`
	GapReason     *string         `db:"gap_reason" json:"gap_reason,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}
