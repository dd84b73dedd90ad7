package coverage

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/medirent/medirent/internal/domain/bond"
	"github.com/medirent/medirent/internal/domain/rental"
)

// Boundary dates one day apart can differ by less than a day once times are
// involved, so candidate ranges under an hour are treated as rounding noise.
const minGapSpan = time.Hour

// expiryWindowDays is how far ahead the bond scanner warns.
const expiryWindowDays = 30

var suggestionsByReason = map[string][]string{
	ReasonNotStarted: {
		"Adjust the rental start date to match the first billed period",
		"Create a billing period covering the start of the rental",
		"Confirm the delivery date with the patient",
	},
	ReasonDiscontinuity: {
		"Create a transition period covering the uncovered days",
		"Check whether the device was returned during the interruption",
		"Align the surrounding periods so they are contiguous",
	},
	ReasonEndedEarly: {
		"Extend the last billing period up to the rental end date",
		"Close the rental earlier if billing genuinely stopped",
		"Verify the return date recorded for the device",
	},
	ReasonPaymentGap: {
		"Contact the patient about the unpaid period",
		"Check whether a CNAM bond can cover the period",
		"Record a payment or write-off to resolve the gap",
	},
	ReasonCNAMExpiring: {
		"Prepare the bond renewal file",
		"Contact the CNAM office about the renewal",
		"Schedule a medical re-evaluation if required",
		"Inform the patient of the upcoming expiry",
	},
}

// Analyze computes every coverage finding for one rental: structural gaps in
// the billing timeline, periods explicitly marked unpaid, and bonds about to
// expire. It is pure; `today` is the reference date for expiry checks.
func Analyze(r *rental.Rental, periods []*rental.Period, bonds []*bond.Bond, today time.Time) (*AnalysisReport, error) {
	if r == nil {
		return nil, fmt.Errorf("rental is required")
	}
	if r.StartDate.IsZero() {
		return nil, fmt.Errorf("rental start date is required")
	}

	gaps := detectStructuralGaps(r, buildTimeline(periods))
	gaps = append(gaps, collectMarkedGaps(periods)...)
	gaps = append(gaps, scanBondExpiries(bonds, today)...)
	assignIDs(gaps)

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].ImpactScore > gaps[j].ImpactScore
	})

	return &AnalysisReport{RentalID: r.ID, Gaps: gaps, Stats: computeStats(gaps)}, nil
}

// buildTimeline keeps the periods that actually represent billed coverage:
// gap-flagged, undated, inverted, and negative-amount periods are dropped.
// Returns them sorted ascending by start date.
func buildTimeline(periods []*rental.Period) []*rental.Period {
	var timeline []*rental.Period
	for _, p := range periods {
		if p.IsGap || p.StartDate.IsZero() || p.EndDate.IsZero() || p.EndDate.Before(p.StartDate) || p.Amount.IsNegative() {
			continue
		}
		timeline = append(timeline, p)
	}
	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].StartDate.Before(timeline[j].StartDate)
	})
	return timeline
}

func detectStructuralGaps(r *rental.Rental, timeline []*rental.Period) []Gap {
	var gaps []Gap

	if len(timeline) == 0 {
		// Nothing billed at all. With a defined end the whole lifetime is
		// one uncovered range; open-ended rentals have no end to measure
		// against.
		if r.EndDate != nil && r.EndDate.Sub(r.StartDate) > minGapSpan {
			days := daysBetween(r.StartDate, *r.EndDate)
			gaps = append(gaps, Gap{
				Type:         TypeCoverageGap,
				Severity:     spanSeverity(days),
				StartDate:    r.StartDate,
				EndDate:      *r.EndDate,
				DurationDays: days,
				Amount:       decimal.Zero,
				ReasonCode:   ReasonNotStarted,
				Description:  fmt.Sprintf("No billing period recorded between %s and %s (%d days)", fdate(r.StartDate), fdate(*r.EndDate), days),
				ImpactScore:  float64(days) * 2,
				Suggestions:  suggestionsByReason[ReasonNotStarted],
			})
		}
		return gaps
	}

	// Leading gap: rental starts before the first billed period.
	first := timeline[0]
	if first.StartDate.Sub(r.StartDate) > minGapSpan {
		end := first.StartDate.AddDate(0, 0, -1)
		days := daysBetween(r.StartDate, end)
		gaps = append(gaps, Gap{
			Type:         TypeCoverageGap,
			Severity:     spanSeverity(days),
			StartDate:    r.StartDate,
			EndDate:      end,
			DurationDays: days,
			Amount:       proRate(first.Amount, days),
			ReasonCode:   ReasonNotStarted,
			Description:  fmt.Sprintf("Rental not billed between %s and %s (%d days)", fdate(r.StartDate), fdate(end), days),
			ImpactScore:  float64(days) * 2,
			Suggestions:  suggestionsByReason[ReasonNotStarted],
		})
	}

	// Interior gaps between consecutive periods.
	for i := 0; i < len(timeline)-1; i++ {
		cur, next := timeline[i], timeline[i+1]
		start := cur.EndDate.AddDate(0, 0, 1)
		if next.StartDate.Sub(start) <= minGapSpan {
			continue
		}
		end := next.StartDate.AddDate(0, 0, -1)
		days := daysBetween(start, end) + 1
		severity := SeverityMedium
		if days > 7 {
			severity = SeverityHigh
		}
		gaps = append(gaps, Gap{
			Type:         TypeCoverageGap,
			Severity:     severity,
			StartDate:    start,
			EndDate:      end,
			DurationDays: days,
			Amount:       proRate(next.Amount, days),
			ReasonCode:   ReasonDiscontinuity,
			Description:  fmt.Sprintf("Billing interrupted between %s and %s (%d days)", fdate(start), fdate(end), days),
			ImpactScore:  float64(days) * 1.5,
			Suggestions:  suggestionsByReason[ReasonDiscontinuity],
		})
	}

	// Trailing gap: billing stops before a defined rental end.
	last := timeline[len(timeline)-1]
	if r.EndDate != nil && r.EndDate.Sub(last.EndDate) > minGapSpan {
		start := last.EndDate.AddDate(0, 0, 1)
		days := daysBetween(start, *r.EndDate)
		gaps = append(gaps, Gap{
			Type:         TypeCoverageGap,
			Severity:     spanSeverity(days),
			StartDate:    start,
			EndDate:      *r.EndDate,
			DurationDays: days,
			Amount:       proRate(last.Amount, days),
			ReasonCode:   ReasonEndedEarly,
			Description:  fmt.Sprintf("Billing stopped at %s but the rental runs until %s (%d days)", fdate(last.EndDate), fdate(*r.EndDate), days),
			ImpactScore:  float64(days) * 2,
			Suggestions:  suggestionsByReason[ReasonEndedEarly],
		})
	}

	return gaps
}

func collectMarkedGaps(periods []*rental.Period) []Gap {
	var gaps []Gap
	for _, p := range periods {
		if !p.IsGap {
			continue
		}
		if p.StartDate.IsZero() || p.EndDate.IsZero() || p.EndDate.Before(p.StartDate) || p.Amount.IsNegative() {
			continue
		}
		days := daysBetween(p.StartDate, p.EndDate) + 1
		severity := SeverityMedium
		if days > 7 {
			severity = SeverityHigh
		}
		reason := ReasonPaymentGap
		if p.GapReason != nil && *p.GapReason != "" {
			reason = *p.GapReason
		}
		suggestions := suggestionsByReason[reason]
		if suggestions == nil {
			suggestions = suggestionsByReason[ReasonPaymentGap]
		}
		id := p.ID
		gaps = append(gaps, Gap{
			Type:         TypePaymentGap,
			Severity:     severity,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			DurationDays: days,
			Amount:       p.Amount,
			ReasonCode:   reason,
			Description:  fmt.Sprintf("Period %s to %s marked unpaid (%d days)", fdate(p.StartDate), fdate(p.EndDate), days),
			ImpactScore:  float64(days) * 1.2,
			Suggestions:  suggestions,
			PeriodID:     &id,
		})
	}
	return gaps
}

func scanBondExpiries(bonds []*bond.Bond, today time.Time) []Gap {
	var gaps []Gap
	for _, b := range bonds {
		if b.EndDate == nil {
			continue
		}
		days := daysBetween(today, *b.EndDate)
		if days < 0 || days > expiryWindowDays {
			continue
		}
		severity := SeverityMedium
		switch {
		case days <= 7:
			severity = SeverityCritical
		case days <= 15:
			severity = SeverityHigh
		}
		id := b.ID
		gaps = append(gaps, Gap{
			Type:         TypeCNAMExpiry,
			Severity:     severity,
			StartDate:    today,
			EndDate:      *b.EndDate,
			DurationDays: 0,
			Amount:       decimal.Zero,
			ReasonCode:   ReasonCNAMExpiring,
			Description:  fmt.Sprintf("CNAM bond expires on %s (in %d days)", fdate(*b.EndDate), days),
			ImpactScore:  float64(expiryWindowDays+1-days) * 2,
			Suggestions:  suggestionsByReason[ReasonCNAMExpiring],
			BondID:       &id,
		})
	}
	return gaps
}

func computeStats(gaps []Gap) Stats {
	counts := map[string]int{
		SeverityCritical: 0, SeverityHigh: 0, SeverityMedium: 0, SeverityLow: 0,
	}
	total := decimal.Zero
	days := 0
	impact := 0.0
	for _, g := range gaps {
		counts[g.Severity]++
		total = total.Add(g.Amount)
		days += g.DurationDays
		impact += g.ImpactScore
	}

	avg := 0.0
	if len(gaps) > 0 {
		avg = impact / float64(len(gaps))
	}

	risk := SeverityLow
	switch {
	case counts[SeverityCritical] > 0:
		risk = SeverityCritical
	case counts[SeverityHigh] > 2:
		risk = SeverityHigh
	case counts[SeverityMedium] > 0:
		risk = SeverityMedium
	}

	return Stats{
		CountsBySeverity:     counts,
		TotalFinancialImpact: total,
		TotalDaysAffected:    days,
		AverageImpactScore:   avg,
		RiskLevel:            risk,
	}
}

// assignIDs numbers gaps per type in detection order, before sorting.
func assignIDs(gaps []Gap) {
	counters := map[string]int{}
	for i := range gaps {
		counters[gaps[i].Type]++
		slug := strings.ToLower(strings.ReplaceAll(gaps[i].Type, "_", "-"))
		gaps[i].ID = fmt.Sprintf("%s-%d", slug, counters[gaps[i].Type])
	}
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// spanSeverity grades leading and trailing gaps by duration.
func spanSeverity(days int) string {
	switch {
	case days > 7:
		return SeverityHigh
	case days > 1:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// proRate treats amount as a monthly figure and charges it per day.
func proRate(amount decimal.Decimal, days int) decimal.Decimal {
	return amount.Div(decimal.NewFromInt(30)).Mul(decimal.NewFromInt(int64(days)))
}

func fdate(t time.Time) string {
	return t.Format("2006-01-02")
}
