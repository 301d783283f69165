package handler

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniplan/timetable-api/internal/dto"
	"github.com/uniplan/timetable-api/internal/models"
	appErrors "github.com/uniplan/timetable-api/pkg/errors"
)

type assignmentServiceMock struct {
	assignments []models.DisciplineAssignment
	details     []models.DisciplineAssignmentDetail
	err         error
	lastID      string
}

func (m *assignmentServiceMock) UpsertBatch(ctx context.Context, req dto.UpsertAssignmentsRequest) ([]models.DisciplineAssignment, error) {
	return m.assignments, m.err
}

func (m *assignmentServiceMock) List(ctx context.Context) ([]models.DisciplineAssignmentDetail, error) {
	return m.details, m.err
}

func (m *assignmentServiceMock) SetAudienceType(ctx context.Context, id string, req dto.SetAudienceTypeRequest) error {
	m.lastID = id
	return m.err
}

func buildAssignmentRouter(svc assignmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAssignmentHandler(svc)
	group := router.Group("/assignments")
	{
		group.POST("", h.Upsert)
		group.GET("", h.List)
		group.PATCH("/:id/audience-type", h.SetAudienceType)
	}
	return router
}

func TestAssignmentHandlerUpsert(t *testing.T) {
	svc := &assignmentServiceMock{assignments: []models.DisciplineAssignment{
		{ID: "assign-1", Discipline: "Calculus", Type: models.SessionLecture},
	}}
	router := buildAssignmentRouter(svc)

	body := `{"assignments":[{"discipline":"Calculus","type":"lecture"}]}`
	req, _ := http.NewRequest(http.MethodPost, "/assignments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"Calculus"`)
}

func TestAssignmentHandlerList(t *testing.T) {
	svc := &assignmentServiceMock{details: []models.DisciplineAssignmentDetail{
		{
			DisciplineAssignment: models.DisciplineAssignment{ID: "assign-1", Discipline: "Physics", Type: models.SessionPractice},
			TeacherIDs:           []string{"teacher-1"},
		},
	}}
	router := buildAssignmentRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/assignments", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"teacher_ids":["teacher-1"]`)
}

func TestAssignmentHandlerSetAudienceType(t *testing.T) {
	svc := &assignmentServiceMock{}
	router := buildAssignmentRouter(svc)

	body := `{"audienceTypeId":"b2a2c6ae-51a5-4f3e-9be0-3f1a9f3f2c77"}`
	req, _ := http.NewRequest(http.MethodPatch, "/assignments/assign-1/audience-type", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "assign-1", svc.lastID)
	assert.Contains(t, resp.Body.String(), `"updated":true`)
}

func TestAssignmentHandlerSetAudienceTypeMissing(t *testing.T) {
	svc := &assignmentServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "assignment not found")}
	router := buildAssignmentRouter(svc)

	req, _ := http.NewRequest(http.MethodPatch, "/assignments/assign-x/audience-type", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusNotFound, resp.Code)
}
