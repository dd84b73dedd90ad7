package bond

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bond statuses.
const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
)

// Bond maps to the cnam_bond table: a CNAM authorization (prise en charge)
// entitling a patient to reimbursement for part of a rental. A bond with a
// nil EndDate has no expiry.
type Bond struct {
	ID            uuid.UUID        `db:"id" json:"id"`
	PatientID     uuid.UUID        `db:"patient_id" json:"patient_id"`
	RentalID      *uuid.UUID       `db:"rental_id" json:"rental_id,omitempty"`
	BondType      string           `db:"bond_type" json:"bond_type"`
	BondNumber    *string          `db:"bond_number" json:"bond_number,omitempty"`
	Status        string           `db:"status" json:"status"`
	StartDate     *time.Time       `db:"start_date" json:"start_date,omitempty"`
	EndDate       *time.Time       `db:"end_date" json:"end_date,omitempty"`
	MonthlyAmount *decimal.Decimal `db:"monthly_amount" json:"monthly_amount,omitempty"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time        `db:"updated_at" json:"updated_at"`
}
