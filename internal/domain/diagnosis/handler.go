package diagnosis

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Srikanth-gunja/medical-diagonsis/internal/domain/patient"
	"github.com/Srikanth-gunja/medical-diagonsis/internal/platform/apperr"
	"github.com/Srikanth-gunja/medical-diagonsis/pkg/pagination"
)

// DefaultHistoryLimit caps the diagnosis history response.
const DefaultHistoryLimit = 50

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/diagnosis", h.Diagnose)
	api.GET("/patients/:id/diagnoses", h.ListByPatient)
}

func (h *Handler) Diagnose(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	res, err := h.svc.Diagnose(c.Request().Context(), &req)
	if err != nil {
		switch {
		case apperr.IsValidation(err):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, patient.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Patient not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Diagnosis failed")
		}
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	pg := pagination.FromContextWithDefault(c, DefaultHistoryLimit)
	items, total, err := h.svc.ListByPatient(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch diagnoses")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
