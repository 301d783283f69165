package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uniplan/timetable-api/internal/dto"
	"github.com/uniplan/timetable-api/internal/models"
	"github.com/uniplan/timetable-api/internal/service"
	appErrors "github.com/uniplan/timetable-api/pkg/errors"
	"github.com/uniplan/timetable-api/pkg/response"
)

type scheduleService interface {
	BulkReplace(ctx context.Context, req dto.BulkScheduleRequest) (int, error)
	BulkReplaceDistance(ctx context.Context, req dto.BulkDistanceRequest) (int, error)
	CreatePair(ctx context.Context, req dto.CreatePairRequest) (*models.ScheduledPairDetail, error)
	UpdatePair(ctx context.Context, id string, req dto.UpdatePairRequest) (*models.ScheduledPairDetail, error)
	DeletePair(ctx context.Context, id string) error
	GetPair(ctx context.Context, id string) (*models.ScheduledPairDetail, error)
	GroupSchedule(ctx context.Context, groupID string, query dto.ScheduleQuery) ([]models.ScheduledPairDetail, error)
	DistanceSchedule(ctx context.Context, query dto.DistanceQuery) (*dto.DistanceScheduleResponse, error)
}

type busyService interface {
	RoomBusy(ctx context.Context, roomID string, query dto.BusyQuery) (models.BusyMap, error)
	TeacherBusy(ctx context.Context, teacherID string, query dto.BusyQuery) (models.BusyMap, error)
	GroupBusy(ctx context.Context, groupID string, query dto.BusyQuery) (models.BusyMap, error)
}

type exportService interface {
	GroupTimetable(ctx context.Context, groupID string, query dto.ExportQuery) (*service.ExportPayload, error)
}

// ScheduleHandler exposes the timetable endpoints.
type ScheduleHandler struct {
	schedule scheduleService
	busy     busyService
	export   exportService
}

// NewScheduleHandler builds a new handler.
func NewScheduleHandler(schedule scheduleService, busy busyService, export exportService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule, busy: busy, export: export}
}

// BulkReplace godoc
// @Summary Replace a study plan's in-person timetable for one half-year
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body dto.BulkScheduleRequest true "Even/odd week grids"
// @Success 201 {object} response.Envelope
// @Router /schedule [post]
func (h *ScheduleHandler) BulkReplace(c *gin.Context) {
	var req dto.BulkScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}
	created, err := h.schedule.BulkReplace(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"created": created})
}

// BulkReplaceDistance godoc
// @Summary Replace a study plan's distance timetable for one half-year
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body dto.BulkDistanceRequest true "Numbered-week grids"
// @Success 201 {object} response.Envelope
// @Router /schedule/distance [post]
func (h *ScheduleHandler) BulkReplaceDistance(c *gin.Context) {
	var req dto.BulkDistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}
	created, err := h.schedule.BulkReplaceDistance(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"created": created})
}

// DistanceSchedule godoc
// @Summary Read a distance timetable in its submitted shape
// @Tags Schedule
// @Produce json
// @Param groupId query string true "Group id"
// @Param studyPlanId query string true "Study plan id"
// @Param halfYear query string true "Half-year code"
// @Success 200 {object} response.Envelope
// @Router /schedule/distance [get]
func (h *ScheduleHandler) DistanceSchedule(c *gin.Context) {
	var query dto.DistanceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid distance query"))
		return
	}
	grids, err := h.schedule.DistanceSchedule(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grids, nil)
}

// GroupSchedule godoc
// @Summary List a group's timetable
// @Tags Schedule
// @Produce json
// @Param groupId path string true "Group id"
// @Param halfYear query string true "Half-year code, e.g. 2024H2"
// @Param weekType query string false "EVEN or ODD"
// @Success 200 {object} response.Envelope
// @Router /schedule/group/{groupId} [get]
func (h *ScheduleHandler) GroupSchedule(c *gin.Context) {
	var query dto.ScheduleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule query"))
		return
	}
	details, err := h.schedule.GroupSchedule(c.Request.Context(), c.Param("groupId"), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, details, nil)
}

// CreatePair godoc
// @Summary Create a single scheduled pair
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body dto.CreatePairRequest true "Pair payload"
// @Success 201 {object} response.Envelope
// @Router /schedule/pair [post]
func (h *ScheduleHandler) CreatePair(c *gin.Context) {
	var req dto.CreatePairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid pair payload"))
		return
	}
	detail, err := h.schedule.CreatePair(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, detail)
}

// GetPair godoc
// @Summary Get one scheduled pair
// @Tags Schedule
// @Produce json
// @Param id path string true "Pair id"
// @Success 200 {object} response.Envelope
// @Router /schedule/pair/{id} [get]
func (h *ScheduleHandler) GetPair(c *gin.Context) {
	detail, err := h.schedule.GetPair(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// UpdatePair godoc
// @Summary Patch one scheduled pair
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Pair id"
// @Param payload body dto.UpdatePairRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /schedule/pair/{id} [patch]
func (h *ScheduleHandler) UpdatePair(c *gin.Context) {
	var req dto.UpdatePairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid pair payload"))
		return
	}
	detail, err := h.schedule.UpdatePair(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// DeletePair godoc
// @Summary Delete one scheduled pair
// @Tags Schedule
// @Param id path string true "Pair id"
// @Success 204
// @Router /schedule/pair/{id} [delete]
func (h *ScheduleHandler) DeletePair(c *gin.Context) {
	if err := h.schedule.DeletePair(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// GroupBusy godoc
// @Summary Busy map of one group
// @Tags Busy
// @Produce json
// @Param groupId path string true "Group id"
// @Param halfYear query string true "Half-year code"
// @Param weekType query string false "EVEN or ODD"
// @Success 200 {object} response.Envelope
// @Router /schedule/group/{groupId}/busy [get]
func (h *ScheduleHandler) GroupBusy(c *gin.Context) {
	query, ok := h.bindBusyQuery(c)
	if !ok {
		return
	}
	busy, err := h.busy.GroupBusy(c.Request.Context(), c.Param("groupId"), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, busy, nil)
}

// RoomBusy godoc
// @Summary Busy map of one room
// @Tags Busy
// @Produce json
// @Param audienceId path string true "Room id"
// @Param halfYear query string true "Half-year code"
// @Param weekType query string false "EVEN or ODD"
// @Success 200 {object} response.Envelope
// @Router /schedule/room/{audienceId}/busy [get]
func (h *ScheduleHandler) RoomBusy(c *gin.Context) {
	query, ok := h.bindBusyQuery(c)
	if !ok {
		return
	}
	busy, err := h.busy.RoomBusy(c.Request.Context(), c.Param("audienceId"), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, busy, nil)
}

// TeacherBusy godoc
// @Summary Busy map of one teacher
// @Tags Busy
// @Produce json
// @Param teacherId path string true "Teacher id"
// @Param halfYear query string true "Half-year code"
// @Param weekType query string false "EVEN or ODD"
// @Success 200 {object} response.Envelope
// @Router /schedule/teacher/{teacherId}/busy [get]
func (h *ScheduleHandler) TeacherBusy(c *gin.Context) {
	query, ok := h.bindBusyQuery(c)
	if !ok {
		return
	}
	busy, err := h.busy.TeacherBusy(c.Request.Context(), c.Param("teacherId"), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, busy, nil)
}

// ExportGroupTimetable godoc
// @Summary Download a group's timetable as CSV or PDF
// @Tags Schedule
// @Produce text/csv
// @Produce application/pdf
// @Param groupId path string true "Group id"
// @Param halfYear query string true "Half-year code"
// @Param weekType query string false "EVEN or ODD"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /schedule/group/{groupId}/export [get]
func (h *ScheduleHandler) ExportGroupTimetable(c *gin.Context) {
	var query dto.ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export query"))
		return
	}
	payload, err := h.export.GroupTimetable(c.Request.Context(), c.Param("groupId"), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+payload.Filename+`"`)
	c.Data(http.StatusOK, payload.ContentType, payload.Data)
}

func (h *ScheduleHandler) bindBusyQuery(c *gin.Context) (dto.BusyQuery, bool) {
	var query dto.BusyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid busy query"))
		return query, false
	}
	return query, true
}
