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

type assignmentService interface {
	UpsertBatch(ctx context.Context, req dto.UpsertAssignmentsRequest) ([]models.DisciplineAssignment, error)
	List(ctx context.Context) ([]models.DisciplineAssignmentDetail, error)
	SetAudienceType(ctx context.Context, id string, req dto.SetAudienceTypeRequest) error
}

// AssignmentHandler exposes the discipline assignment registry.
type AssignmentHandler struct {
	service assignmentService
}

// NewAssignmentHandler builds a new handler.
func NewAssignmentHandler(service assignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// Upsert godoc
// @Summary Register or refresh discipline assignments
// @Tags Assignments
// @Accept json
// @Produce json
// @Param payload body dto.UpsertAssignmentsRequest true "Assignment batch"
// @Success 201 {object} response.Envelope
// @Router /assignments [post]
func (h *AssignmentHandler) Upsert(c *gin.Context) {
	var req dto.UpsertAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}
	assignments, err := h.service.UpsertBatch(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, assignments)
}

// List godoc
// @Summary List registered assignments with their teacher sets
// @Tags Assignments
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	details, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, details, nil)
}

// SetAudienceType godoc
// @Summary Tag an assignment with a required room category
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment id"
// @Param payload body dto.SetAudienceTypeRequest true "Audience type payload"
// @Success 200 {object} response.Envelope
// @Router /assignments/{id}/audience-type [patch]
func (h *AssignmentHandler) SetAudienceType(c *gin.Context) {
	var req dto.SetAudienceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid audience type payload"))
		return
	}
	if err := h.service.SetAudienceType(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"updated": true}, nil)
}
