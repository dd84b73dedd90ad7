package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. Companies renting equipment for their
// staff are stored in the same table with IsCompany set.
type Patient struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	FullName        string     `db:"full_name" json:"full_name"`
	IsCompany       bool       `db:"is_company" json:"is_company"`
	InsuranceNumber *string    `db:"insurance_number" json:"insurance_number,omitempty"` // CNAM affiliation number
	BirthDate       *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	Phone           *string    `db:"phone" json:"phone,omitempty"`
	Email           *string    `db:"email" json:"email,omitempty"`
	Address         *string    `db:"address" json:"address,omitempty"`
	Notes           *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}
