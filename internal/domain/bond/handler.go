package bond

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medirent/medirent/internal/platform/auth"
	"github.com/medirent/medirent/pkg/pagination"
)

type Handler struct {
	svc *Service
	// default window for /bonds/expiring when no ?days= is given
	expiryDays int
}

func NewHandler(svc *Service, expiryDays int) *Handler {
	if expiryDays <= 0 {
		expiryDays = 30
	}
	return &Handler{svc: svc, expiryDays: expiryDays}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole("admin", "billing", "medical"))
	read.GET("/bonds", h.List)
	read.GET("/bonds/expiring", h.ListExpiring)
	read.GET("/bonds/:id", h.Get)

	write := api.Group("", auth.RequireRole("admin", "billing"))
	write.POST("/bonds", h.Create)
	write.PUT("/bonds/:id", h.Update)
	write.DELETE("/bonds/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var b Bond
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	b, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "bond not found")
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	if patientID := c.QueryParam("patient_id"); patientID != "" {
		pid, err := uuid.Parse(patientID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
		items, total, err := h.svc.ListByPatient(c.Request().Context(), pid, pg.Limit, pg.Offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
	}
	items, total, err := h.svc.List(c.Request().Context(), c.QueryParam("status"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListExpiring(c echo.Context) error {
	days := h.expiryDays
	if raw := c.QueryParam("days"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid days")
		}
		days = d
	}
	items, err := h.svc.ListExpiring(c.Request().Context(), days)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var b Bond
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b.ID = id
	if err := h.svc.Update(c.Request().Context(), &b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
