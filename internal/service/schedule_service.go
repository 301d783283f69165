package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/uniplan/timetable-api/internal/dto"
	"github.com/uniplan/timetable-api/internal/models"
	appErrors "github.com/uniplan/timetable-api/pkg/errors"
)

type pairStore interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	ListIDsByScope(ctx context.Context, exec sqlx.ExtContext, studyPlanID, halfYear string) ([]string, error)
	DeleteByIDs(ctx context.Context, exec sqlx.ExtContext, ids []string) error
	Insert(ctx context.Context, exec sqlx.ExtContext, pair *models.ScheduledPair, groupIDs, roomIDs, teacherIDs []string) error
	FindByID(ctx context.Context, id string) (*models.ScheduledPair, error)
	Update(ctx context.Context, exec sqlx.ExtContext, pair *models.ScheduledPair) error
	ReplaceGroups(ctx context.Context, exec sqlx.ExtContext, pairID string, groupIDs []string) error
	ReplaceRooms(ctx context.Context, exec sqlx.ExtContext, pairID string, roomIDs []string) error
	ReplaceTeachers(ctx context.Context, exec sqlx.ExtContext, pairID string, teacherIDs []string) error
	Delete(ctx context.Context, id string) error
	ListDetailed(ctx context.Context, q models.PairFilter) ([]models.ScheduledPairDetail, error)
	FindDetailedByID(ctx context.Context, id string) (*models.ScheduledPairDetail, error)
}

type slotInterner interface {
	Ensure(ctx context.Context, exec sqlx.ExtContext, slot models.TimeSlot) error
}

type assignmentResolver interface {
	FindByDisciplineType(ctx context.Context, discipline string, sessionType models.SessionType) (*models.DisciplineAssignment, error)
	FindByID(ctx context.Context, id string) (*models.DisciplineAssignment, error)
	TeacherIDs(ctx context.Context, assignmentID string) ([]string, error)
}

type studyPlanReader interface {
	FindByID(ctx context.Context, id string) (*models.StudyPlan, error)
}

type busyInvalidator interface {
	InvalidateHalfYear(ctx context.Context, halfYear string)
}

// ScheduleService owns all pair writes: full grid replacement and single
// pair CRUD. Reads of the populated schedule also live here; busy maps are
// derived by BusyService on top of the same listings.
type ScheduleService struct {
	pairs       pairStore
	slots       slotInterner
	assignments assignmentResolver
	plans       studyPlanReader
	busy        busyInvalidator
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewScheduleService constructs the schedule service. The busy invalidator
// may be nil when caching is disabled.
func NewScheduleService(pairs pairStore, slots slotInterner, assignments assignmentResolver, plans studyPlanReader, busy busyInvalidator, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		pairs:       pairs,
		slots:       slots,
		assignments: assignments,
		plans:       plans,
		busy:        busy,
		validator:   validate,
		logger:      logger,
	}
}

// BulkReplace atomically swaps the in-person timetable of one study plan in
// one half-year for the submitted even/odd grids. Any failure, including an
// unknown discipline in any cell, rolls the whole replacement back.
func (s *ScheduleService) BulkReplace(ctx context.Context, req dto.BulkScheduleRequest) (int, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}
	buckets := []gridBucket{
		{grid: req.Schedule.Even, address: models.ParityAddress(models.WeekTypeEven)},
		{grid: req.Schedule.Odd, address: models.ParityAddress(models.WeekTypeOdd)},
	}
	return s.replace(ctx, req.StudyPlanID, req.GroupID, req.HalfYear, buckets)
}

// BulkReplaceDistance is BulkReplace for the four numbered weeks of a
// distance-format half-year.
func (s *ScheduleService) BulkReplaceDistance(ctx context.Context, req dto.BulkDistanceRequest) (int, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}
	buckets := []gridBucket{
		{grid: req.Schedule.Week1, address: models.NumberedAddress(1)},
		{grid: req.Schedule.Week2, address: models.NumberedAddress(2)},
		{grid: req.Schedule.Week3, address: models.NumberedAddress(3)},
		{grid: req.Schedule.Week4, address: models.NumberedAddress(4)},
	}
	return s.replace(ctx, req.StudyPlanID, req.GroupID, req.HalfYear, buckets)
}

type gridBucket struct {
	grid    dto.WeeklyGrid
	address models.WeekAddress
}

func (s *ScheduleService) replace(ctx context.Context, studyPlanID, groupID, halfYear string, buckets []gridBucket) (created int, err error) {
	if _, err = models.ParseHalfYear(halfYear); err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	if _, err = s.plans.FindByID(ctx, studyPlanID); err != nil {
		if err == sql.ErrNoRows {
			return 0, appErrors.Clone(appErrors.ErrNotFound, "study plan not found")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load study plan")
	}

	tx, err := s.pairs.BeginTx(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin schedule replacement")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	existing, err := s.pairs.ListIDsByScope(ctx, tx, studyPlanID, halfYear)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to collect pairs for replacement")
	}
	if err = s.pairs.DeleteByIDs(ctx, tx, existing); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear previous schedule")
	}

	for _, bucket := range buckets {
		for key, cell := range bucket.grid {
			if err = s.insertCell(ctx, tx, studyPlanID, groupID, halfYear, bucket.address, key, cell); err != nil {
				return 0, err
			}
			created++
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit schedule replacement")
	}
	s.invalidate(ctx, halfYear)
	s.logger.Info("schedule replaced",
		zap.String("study_plan_id", studyPlanID),
		zap.String("half_year", halfYear),
		zap.Int("removed", len(existing)),
		zap.Int("created", created))
	return created, nil
}

func (s *ScheduleService) insertCell(ctx context.Context, tx *sqlx.Tx, studyPlanID, groupID, halfYear string, address models.WeekAddress, key string, cell dto.ScheduleCell) error {
	dayLabel, timeLabel, err := models.SplitDaySlotKey(key)
	if err != nil {
		return appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	day, ok := models.ParseDayOfWeek(dayLabel)
	if !ok {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day of week %q", dayLabel))
	}

	slot := models.NewTimeSlot(timeLabel)
	if err := s.slots.Ensure(ctx, tx, slot); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to intern time slot")
	}

	assignment, err := s.assignments.FindByDisciplineType(ctx, cell.DisciplineName, models.SessionType(cell.Type))
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound,
				fmt.Sprintf("no assignment registered for %s (%s)", cell.DisciplineName, cell.Type))
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve assignment")
	}

	teacherIDs := cell.TeacherIDs
	if len(teacherIDs) == 0 {
		if teacherIDs, err = s.assignments.TeacherIDs(ctx, assignment.ID); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment teachers")
		}
	}
	var roomIDs []string
	if cell.RoomID != nil {
		roomIDs = []string{*cell.RoomID}
	}

	pair := models.ScheduledPair{
		HalfYear:     halfYear,
		WeekType:     address.WeekType,
		NumberWeek:   address.NumberWeek,
		DayOfWeek:    day,
		TimeSlotID:   slot.ID,
		StudyPlanID:  studyPlanID,
		AssignmentID: assignment.ID,
		IsOnline:     cell.IsOnline,
	}
	if err := s.pairs.Insert(ctx, tx, &pair, []string{groupID}, roomIDs, teacherIDs); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to insert pair")
	}
	return nil
}

// CreatePair adds one pair outside the bulk flow and returns it populated.
func (s *ScheduleService) CreatePair(ctx context.Context, req dto.CreatePairRequest) (detail *models.ScheduledPairDetail, err error) {
	if err = s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid pair payload")
	}
	address, err := addressFromFields(req.WeekType, req.NumberWeek)
	if err != nil {
		return nil, err
	}
	if _, err = models.ParseHalfYear(req.HalfYear); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	day, ok := models.ParseDayOfWeek(req.DayOfWeek)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day of week %q", req.DayOfWeek))
	}
	if _, err = s.plans.FindByID(ctx, req.StudyPlanID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "study plan not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load study plan")
	}
	assignment, err := s.assignments.FindByDisciplineType(ctx, req.DisciplineName, models.SessionType(req.Type))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound,
				fmt.Sprintf("no assignment registered for %s (%s)", req.DisciplineName, req.Type))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve assignment")
	}

	tx, err := s.pairs.BeginTx(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin pair creation")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	slot := models.NewTimeSlot(req.TimeSlot)
	if err = s.slots.Ensure(ctx, tx, slot); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to intern time slot")
	}

	teacherIDs := req.TeacherIDs
	if len(teacherIDs) == 0 {
		if teacherIDs, err = s.assignments.TeacherIDs(ctx, assignment.ID); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment teachers")
		}
	}

	pair := models.ScheduledPair{
		HalfYear:     req.HalfYear,
		WeekType:     address.WeekType,
		NumberWeek:   address.NumberWeek,
		DayOfWeek:    day,
		TimeSlotID:   slot.ID,
		StudyPlanID:  req.StudyPlanID,
		AssignmentID: assignment.ID,
		IsOnline:     req.IsOnline,
	}
	if err = s.pairs.Insert(ctx, tx, &pair, req.GroupIDs, req.RoomIDs, teacherIDs); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to insert pair")
	}
	if err = tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit pair creation")
	}

	s.invalidate(ctx, req.HalfYear)
	detail, err = s.pairs.FindDetailedByID(ctx, pair.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load created pair")
	}
	return detail, nil
}

// UpdatePair patches one pair; nil request fields keep the stored values,
// present link slices fully replace the stored sets.
func (s *ScheduleService) UpdatePair(ctx context.Context, id string, req dto.UpdatePairRequest) (detail *models.ScheduledPairDetail, err error) {
	if err = s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid pair payload")
	}

	pair, err := s.pairs.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "pair not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load pair")
	}
	originalHalfYear := pair.HalfYear

	if req.HalfYear != nil {
		if _, err = models.ParseHalfYear(*req.HalfYear); err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
		}
		pair.HalfYear = *req.HalfYear
	}
	if req.WeekType != nil || req.NumberWeek != nil {
		address, addrErr := addressFromFields(req.WeekType, req.NumberWeek)
		if addrErr != nil {
			return nil, addrErr
		}
		pair.WeekType = address.WeekType
		pair.NumberWeek = address.NumberWeek
	}
	if req.DayOfWeek != nil {
		day, ok := models.ParseDayOfWeek(*req.DayOfWeek)
		if !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day of week %q", *req.DayOfWeek))
		}
		pair.DayOfWeek = day
	}
	if req.IsOnline != nil {
		pair.IsOnline = *req.IsOnline
	}

	if req.DisciplineName != nil || req.Type != nil {
		discipline, sessionType, resolveErr := s.mergeAssignmentKey(ctx, pair.AssignmentID, req.DisciplineName, req.Type)
		if resolveErr != nil {
			return nil, resolveErr
		}
		assignment, findErr := s.assignments.FindByDisciplineType(ctx, discipline, sessionType)
		if findErr != nil {
			if findErr == sql.ErrNoRows {
				return nil, appErrors.Clone(appErrors.ErrNotFound,
					fmt.Sprintf("no assignment registered for %s (%s)", discipline, sessionType))
			}
			return nil, appErrors.Wrap(findErr, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve assignment")
		}
		pair.AssignmentID = assignment.ID
	}

	tx, err := s.pairs.BeginTx(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin pair update")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if req.TimeSlot != nil {
		slot := models.NewTimeSlot(*req.TimeSlot)
		if err = s.slots.Ensure(ctx, tx, slot); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to intern time slot")
		}
		pair.TimeSlotID = slot.ID
	}

	if err = s.pairs.Update(ctx, tx, pair); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "pair not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update pair")
	}
	if req.GroupIDs != nil {
		if err = s.pairs.ReplaceGroups(ctx, tx, id, *req.GroupIDs); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to replace pair groups")
		}
	}
	if req.RoomIDs != nil {
		if err = s.pairs.ReplaceRooms(ctx, tx, id, *req.RoomIDs); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to replace pair rooms")
		}
	}
	if req.TeacherIDs != nil {
		if err = s.pairs.ReplaceTeachers(ctx, tx, id, *req.TeacherIDs); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to replace pair teachers")
		}
	}
	if err = tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit pair update")
	}

	s.invalidate(ctx, pair.HalfYear)
	if originalHalfYear != pair.HalfYear {
		// A moved pair leaves stale busy entries behind in its old half-year.
		s.invalidate(ctx, originalHalfYear)
	}
	detail, err = s.pairs.FindDetailedByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load updated pair")
	}
	return detail, nil
}

// DeletePair removes one pair. Deleting a missing pair is an error, not a
// no-op, so clients learn when their view has gone stale.
func (s *ScheduleService) DeletePair(ctx context.Context, id string) error {
	pair, err := s.pairs.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "pair not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load pair")
	}
	if err := s.pairs.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "pair not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete pair")
	}
	s.invalidate(ctx, pair.HalfYear)
	return nil
}

// GetPair returns one populated pair.
func (s *ScheduleService) GetPair(ctx context.Context, id string) (*models.ScheduledPairDetail, error) {
	detail, err := s.pairs.FindDetailedByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "pair not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load pair")
	}
	return detail, nil
}

// GroupSchedule lists the populated pairs of one group, optionally narrowed
// to one week variant.
func (s *ScheduleService) GroupSchedule(ctx context.Context, groupID string, query dto.ScheduleQuery) ([]models.ScheduledPairDetail, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule query")
	}
	q := models.PairFilter{HalfYear: query.HalfYear, GroupID: groupID, NumberWeek: query.NumberWeek}
	if query.WeekType != "" {
		weekType := models.WeekType(query.WeekType)
		q.WeekType = &weekType
	}
	details, err := s.pairs.ListDetailed(ctx, q)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedule")
	}
	return details, nil
}

// DistanceSchedule reads the distance timetable back in the shape it was
// submitted: four numbered-week grids keyed by day-slot. Pairs without a
// numbered week (parity pairs, holidays) are skipped.
func (s *ScheduleService) DistanceSchedule(ctx context.Context, query dto.DistanceQuery) (*dto.DistanceScheduleResponse, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid distance query")
	}
	details, err := s.pairs.ListDetailed(ctx, models.PairFilter{
		HalfYear:    query.HalfYear,
		GroupID:     query.GroupID,
		StudyPlanID: query.StudyPlanID,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedule")
	}

	resp := dto.DistanceScheduleResponse{
		Week1: dto.WeeklyGrid{},
		Week2: dto.WeeklyGrid{},
		Week3: dto.WeeklyGrid{},
		Week4: dto.WeeklyGrid{},
	}
	grids := map[int]dto.WeeklyGrid{1: resp.Week1, 2: resp.Week2, 3: resp.Week3, 4: resp.Week4}
	for i := range details {
		detail := &details[i]
		if detail.NumberWeek == nil {
			continue
		}
		grid, ok := grids[*detail.NumberWeek]
		if !ok {
			continue
		}
		grid[detail.DaySlotKey()] = distanceCell(detail)
	}
	return &resp, nil
}

func distanceCell(detail *models.ScheduledPairDetail) dto.ScheduleCell {
	cell := dto.ScheduleCell{
		DisciplineName: detail.Discipline,
		Type:           string(detail.SessionType),
		IsOnline:       detail.IsOnline,
	}
	if len(detail.Rooms) > 0 {
		roomID := detail.Rooms[0].ID
		cell.RoomID = &roomID
	}
	for _, teacher := range detail.Teachers {
		cell.TeacherIDs = append(cell.TeacherIDs, teacher.ID)
	}
	return cell
}

// PlanSchedule lists the populated pairs of one study plan and half-year.
func (s *ScheduleService) PlanSchedule(ctx context.Context, studyPlanID, halfYear string) ([]models.ScheduledPairDetail, error) {
	details, err := s.pairs.ListDetailed(ctx, models.PairFilter{HalfYear: halfYear, StudyPlanID: studyPlanID})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedule")
	}
	return details, nil
}

func (s *ScheduleService) mergeAssignmentKey(ctx context.Context, assignmentID string, discipline, sessionType *string) (string, models.SessionType, error) {
	current, err := s.assignments.FindByID(ctx, assignmentID)
	if err != nil {
		return "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load current assignment")
	}
	mergedDiscipline := current.Discipline
	if discipline != nil {
		mergedDiscipline = *discipline
	}
	mergedType := current.Type
	if sessionType != nil {
		mergedType = models.SessionType(*sessionType)
	}
	return mergedDiscipline, mergedType, nil
}

func (s *ScheduleService) invalidate(ctx context.Context, halfYear string) {
	if s.busy == nil {
		return
	}
	s.busy.InvalidateHalfYear(ctx, halfYear)
}

func addressFromFields(weekType *string, numberWeek *int) (models.WeekAddress, error) {
	var address models.WeekAddress
	if weekType != nil {
		parity := models.WeekType(*weekType)
		address.WeekType = &parity
	}
	address.NumberWeek = numberWeek
	if !address.Valid() {
		return models.WeekAddress{}, appErrors.Clone(appErrors.ErrValidation, "exactly one of weekType and numberWeek must be set")
	}
	return address, nil
}
