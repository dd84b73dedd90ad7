package coverage

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medirent/medirent/internal/domain/bond"
	"github.com/medirent/medirent/internal/domain/rental"
)

func doAnalyze(t *testing.T, h *Handler, id, query string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rentals/"+id+"/coverage-analysis"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return rec, h.Analyze(c)
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	return httpErr.Code
}

func TestAnalyzeHandlerUnknownRentalIs404(t *testing.T) {
	svc := NewService(&stubRentalRepo{rentals: map[uuid.UUID]*rental.Rental{}},
		&stubPeriodRepo{}, &stubBondRepo{})
	h := NewHandler(svc)

	_, err := doAnalyze(t, h, uuid.New().String(), "")
	if got := httpStatus(t, err); got != http.StatusNotFound {
		t.Errorf("status = %d, want 404", got)
	}
}

func TestAnalyzeHandlerRepoFailureIs500(t *testing.T) {
	r := closedRental(date(2024, 1, 1), date(2024, 3, 31))
	svc := NewService(
		&stubRentalRepo{rentals: map[uuid.UUID]*rental.Rental{r.ID: r}},
		&stubPeriodRepo{err: errors.New("connection reset")},
		&stubBondRepo{},
	)
	h := NewHandler(svc)

	_, err := doAnalyze(t, h, r.ID.String(), "")
	if got := httpStatus(t, err); got != http.StatusInternalServerError {
		t.Errorf("query failure should not masquerade as 404, got %d", got)
	}
}

func TestAnalyzeHandlerBadInput(t *testing.T) {
	svc := NewService(&stubRentalRepo{rentals: map[uuid.UUID]*rental.Rental{}},
		&stubPeriodRepo{}, &stubBondRepo{})
	h := NewHandler(svc)

	_, err := doAnalyze(t, h, "not-a-uuid", "")
	if got := httpStatus(t, err); got != http.StatusBadRequest {
		t.Errorf("invalid id: status = %d, want 400", got)
	}

	_, err = doAnalyze(t, h, uuid.New().String(), "?severity=URGENT")
	if got := httpStatus(t, err); got != http.StatusBadRequest {
		t.Errorf("invalid severity: status = %d, want 400", got)
	}
}

func TestAnalyzeHandlerFiltersBySeverity(t *testing.T) {
	r := closedRental(date(2024, 1, 1), date(2024, 3, 31))
	svc := NewService(
		&stubRentalRepo{rentals: map[uuid.UUID]*rental.Rental{r.ID: r}},
		&stubPeriodRepo{periods: []*rental.Period{
			period(date(2024, 1, 1), date(2024, 1, 31), 300),
		}},
		&stubBondRepo{bonds: []*bond.Bond{expiringBond(today.AddDate(0, 0, 3))}},
	)
	svc.now = func() time.Time { return today }
	h := NewHandler(svc)

	rec, err := doAnalyze(t, h, r.ID.String(), "?severity=CRITICAL")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var report AnalysisReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(report.Gaps) != 1 || report.Gaps[0].Severity != SeverityCritical {
		t.Errorf("filtered gaps = %+v, want one CRITICAL", report.Gaps)
	}
	// Stats still describe the full analysis, not the filtered view.
	if report.Stats.CountsBySeverity[SeverityHigh] != 1 {
		t.Errorf("HIGH count = %d, want 1 (trailing gap)", report.Stats.CountsBySeverity[SeverityHigh])
	}
}
