package coverage

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/medirent/medirent/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole("admin", "billing", "medical"))
	read.GET("/rentals/:id/coverage-analysis", h.Analyze)
}

var validSeverities = map[string]bool{
	SeverityCritical: true, SeverityHigh: true, SeverityMedium: true, SeverityLow: true,
}

// Analyze returns the coverage report for a rental. An optional ?severity=
// query filters the gap list; stats always reflect the full analysis.
func (h *Handler) Analyze(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	severity := c.QueryParam("severity")
	if severity != "" && severity != "all" && !validSeverities[severity] {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid severity")
	}

	report, err := h.svc.AnalyzeRental(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "rental not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	report.Gaps = report.FilterBySeverity(severity)
	return c.JSON(http.StatusOK, report)
}
