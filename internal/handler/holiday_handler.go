package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uniplan/timetable-api/internal/dto"
	"github.com/uniplan/timetable-api/internal/models"
	appErrors "github.com/uniplan/timetable-api/pkg/errors"
	"github.com/uniplan/timetable-api/pkg/response"
)

type holidayService interface {
	CreateOneTime(ctx context.Context, req dto.OneTimeHolidayRequest) ([]models.ScheduledPair, error)
	CreateRecurring(ctx context.Context, req dto.RecurringHolidayRequest) ([]models.ScheduledPair, error)
	List(ctx context.Context) ([]models.ScheduledPairDetail, error)
}

// HolidayHandler exposes holiday injection endpoints.
type HolidayHandler struct {
	service holidayService
}

// NewHolidayHandler builds a new handler.
func NewHolidayHandler(service holidayService) *HolidayHandler {
	return &HolidayHandler{service: service}
}

// CreateOneTime godoc
// @Summary Block out slots on a single date
// @Tags Holiday
// @Accept json
// @Produce json
// @Param payload body dto.OneTimeHolidayRequest true "Holiday payload"
// @Success 201 {object} response.Envelope
// @Router /holiday/one-time [post]
func (h *HolidayHandler) CreateOneTime(c *gin.Context) {
	var req dto.OneTimeHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid holiday payload"))
		return
	}
	pairs, err := h.service.CreateOneTime(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, pairs)
}

// CreateRecurring godoc
// @Summary Block out slots weekly across a date range
// @Tags Holiday
// @Accept json
// @Produce json
// @Param payload body dto.RecurringHolidayRequest true "Holiday payload"
// @Success 201 {object} response.Envelope
// @Router /holiday/recurring [post]
func (h *HolidayHandler) CreateRecurring(c *gin.Context) {
	var req dto.RecurringHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid holiday payload"))
		return
	}
	pairs, err := h.service.CreateRecurring(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, pairs)
}

// List godoc
// @Summary List all holiday pairs in calendar order
// @Tags Holiday
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /holiday [get]
func (h *HolidayHandler) List(c *gin.Context) {
	details, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, details, nil)
}
