package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uniplan/timetable-api/internal/dto"
	"github.com/uniplan/timetable-api/internal/models"
	appErrors "github.com/uniplan/timetable-api/pkg/errors"
)

type assignmentStore interface {
	FindByDisciplineType(ctx context.Context, discipline string, sessionType models.SessionType) (*models.DisciplineAssignment, error)
	FindByID(ctx context.Context, id string) (*models.DisciplineAssignment, error)
	Upsert(ctx context.Context, assignment *models.DisciplineAssignment, teacherIDs []string) error
	SetAudienceType(ctx context.Context, id string, audienceTypeID *string) error
	TeacherIDs(ctx context.Context, assignmentID string) ([]string, error)
	List(ctx context.Context) ([]models.DisciplineAssignmentDetail, error)
}

type sentinelPlanStore interface {
	EnsureByTitle(ctx context.Context, title string) (*models.StudyPlan, error)
}

// AssignmentService manages the discipline/type registry that scheduled
// pairs reference.
type AssignmentService struct {
	assignments assignmentStore
	plans       sentinelPlanStore
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewAssignmentService constructs the assignment service.
func NewAssignmentService(assignments assignmentStore, plans sentinelPlanStore, validate *validator.Validate, logger *zap.Logger) *AssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{assignments: assignments, plans: plans, validator: validate, logger: logger}
}

// UpsertBatch registers or refreshes a batch of assignments. Each teacher
// set fully replaces what was linked before.
func (s *AssignmentService) UpsertBatch(ctx context.Context, req dto.UpsertAssignmentsRequest) ([]models.DisciplineAssignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	results := make([]models.DisciplineAssignment, 0, len(req.Assignments))
	for _, input := range req.Assignments {
		assignment := models.DisciplineAssignment{
			Discipline: input.Discipline,
			Type:       models.SessionType(input.Type),
		}
		if err := s.assignments.Upsert(ctx, &assignment, input.TeacherIDs); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to upsert assignment")
		}
		results = append(results, assignment)
	}
	return results, nil
}

// List returns all registered assignments with their teacher sets.
func (s *AssignmentService) List(ctx context.Context) ([]models.DisciplineAssignmentDetail, error) {
	details, err := s.assignments.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}
	return details, nil
}

// SetAudienceType tags an assignment with the room category it requires.
func (s *AssignmentService) SetAudienceType(ctx context.Context, id string, req dto.SetAudienceTypeRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid audience type payload")
	}
	if err := s.assignments.SetAudienceType(ctx, id, req.AudienceTypeID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to set audience type")
	}
	return nil
}

// HolidaySentinels holds the ids of the bootstrap rows holiday pairs point at.
type HolidaySentinels struct {
	AssignmentID string
	StudyPlanID  string
}

// EnsureHolidaySentinels creates the sentinel assignment and study plan on
// startup so holiday pairs always have rows to reference.
func (s *AssignmentService) EnsureHolidaySentinels(ctx context.Context) (*HolidaySentinels, error) {
	assignment, err := s.assignments.FindByDisciplineType(ctx, models.HolidayDiscipline, models.SessionHoliday)
	if err != nil {
		if err != sql.ErrNoRows {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up holiday assignment")
		}
		assignment = &models.DisciplineAssignment{
			Discipline: models.HolidayDiscipline,
			Type:       models.SessionHoliday,
		}
		if err := s.assignments.Upsert(ctx, assignment, nil); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create holiday assignment")
		}
		s.logger.Info("holiday sentinel assignment created", zap.String("id", assignment.ID))
	}

	plan, err := s.plans.EnsureByTitle(ctx, models.HolidayStudyPlanName)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to ensure holiday study plan")
	}

	return &HolidaySentinels{AssignmentID: assignment.ID, StudyPlanID: plan.ID}, nil
}
