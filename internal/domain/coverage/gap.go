package coverage

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gap types. TIMELINE_GAP is reserved for findings imported from external
// audits; the analyzer itself never emits it.
const (
	TypeCoverageGap = "COVERAGE_GAP"
	TypePaymentGap  = "PAYMENT_GAP"
	TypeTimelineGap = "TIMELINE_GAP"
	TypeCNAMExpiry  = "CNAM_EXPIRY"
)

// Severities, shared across all gap types so findings sort uniformly.
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
	SeverityLow      = "LOW"
)

// Reason codes attached to computed gaps.
const (
	ReasonNotStarted    = "RENTAL_NOT_STARTED"
	ReasonDiscontinuity = "RENTAL_DISCONTINUITY"
	ReasonEndedEarly    = "RENTAL_ENDED_EARLY"
	ReasonPaymentGap    = "PAYMENT_GAP"
	ReasonCNAMExpiring  = "CNAM_EXPIRING"
)

// Gap is a single computed finding. It is not persisted; IDs are stable
// within one analysis only.
type Gap struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Severity     string          `json:"severity"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	DurationDays int             `json:"duration_days"`
	Amount       decimal.Decimal `json:"amount"`
	ReasonCode   string          `json:"reason_code"`
	Description  string          `json:"description"`
	ImpactScore  float64         `json:"impact_score"`
	Suggestions  []string        `json:"suggestions"`
	PeriodID     *uuid.UUID      `json:"period_id,omitempty"`
	BondID       *uuid.UUID      `json:"bond_id,omitempty"`
}

// Stats summarizes one report.
type Stats struct {
	CountsBySeverity     map[string]int  `json:"counts_by_severity"`
	TotalFinancialImpact decimal.Decimal `json:"total_financial_impact"`
	TotalDaysAffected    int             `json:"total_days_affected"`
	AverageImpactScore   float64         `json:"average_impact_score"`
	RiskLevel            string          `json:"risk_level"`
}

// AnalysisReport is the engine output: gaps sorted by descending impact
// score plus aggregate statistics.
type AnalysisReport struct {
	RentalID uuid.UUID `json:"rental_id"`
	Gaps     []Gap     `json:"gaps"`
	Stats    Stats     `json:"stats"`
}

// FilterBySeverity returns the gaps matching the given severity, preserving
// order. An empty value or "all" returns every gap.
func (r *AnalysisReport) FilterBySeverity(severity string) []Gap {
	if severity == "" || severity == "all" {
		return r.Gaps
	}
	var out []Gap
	for _, g := range r.Gaps {
		if g.Severity == severity {
			out = append(out, g)
		}
	}
	return out
}
