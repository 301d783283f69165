package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uniplan/timetable-api/internal/dto"
	"github.com/uniplan/timetable-api/internal/models"
	appErrors "github.com/uniplan/timetable-api/pkg/errors"
	"github.com/uniplan/timetable-api/pkg/response"
)

type calendarService interface {
	GenerateWeeks(ctx context.Context, req dto.GenerateWeeksRequest) (int, error)
	ResolveWeekForDate(ctx context.Context, date time.Time) (*models.AcademicWeek, error)
	ListWeeks(ctx context.Context, academicYear string) ([]models.AcademicWeek, error)
	HalfYearForSemester(admissionYear, semester int) models.HalfYear
}

// CalendarHandler exposes academic calendar endpoints.
type CalendarHandler struct {
	service calendarService
}

// NewCalendarHandler builds a new handler.
func NewCalendarHandler(service calendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// ListWeeks godoc
// @Summary List the weeks of one academic year
// @Tags Calendar
// @Produce json
// @Param academicYear query string true "Academic year label, e.g. 2024/2025"
// @Success 200 {object} response.Envelope
// @Router /calendar/weeks [get]
func (h *CalendarHandler) ListWeeks(c *gin.Context) {
	var query dto.WeeksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid weeks query"))
		return
	}
	weeks, err := h.service.ListWeeks(c.Request.Context(), query.AcademicYear)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, weeks, nil)
}

// GenerateWeeks godoc
// @Summary Reseed the academic calendar
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body dto.GenerateWeeksRequest true "Year range, defaults when zero"
// @Success 201 {object} response.Envelope
// @Router /calendar/weeks/generate [post]
func (h *CalendarHandler) GenerateWeeks(c *gin.Context) {
	var req dto.GenerateWeeksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generate payload"))
		return
	}
	count, err := h.service.GenerateWeeks(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"weeks": count})
}

// ResolveWeek godoc
// @Summary Find the academic week containing a date
// @Tags Calendar
// @Produce json
// @Param date query string true "Date in YYYY-MM-DD"
// @Success 200 {object} response.Envelope
// @Router /calendar/weeks/resolve [get]
func (h *CalendarHandler) ResolveWeek(c *gin.Context) {
	var query dto.ResolveWeekQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid resolve query"))
		return
	}
	date, err := time.Parse("2006-01-02", query.Date)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date must be formatted YYYY-MM-DD"))
		return
	}
	week, err := h.service.ResolveWeekForDate(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, week, nil)
}

// HalfYear godoc
// @Summary Compute the half-year code for an admission year and semester
// @Tags Calendar
// @Produce json
// @Param admissionYear query int true "Admission year"
// @Param semester query int true "One-based semester index"
// @Success 200 {object} response.Envelope
// @Router /calendar/half-year [get]
func (h *CalendarHandler) HalfYear(c *gin.Context) {
	var query dto.HalfYearQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid half-year query"))
		return
	}
	halfYear := h.service.HalfYearForSemester(query.AdmissionYear, query.Semester)
	response.JSON(c, http.StatusOK, gin.H{"halfYear": halfYear.Code()}, nil)
}
