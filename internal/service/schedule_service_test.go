package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniplan/timetable-api/internal/dto"
	"github.com/uniplan/timetable-api/internal/models"
	appErrors "github.com/uniplan/timetable-api/pkg/errors"
)

type insertedPair struct {
	pair       models.ScheduledPair
	groupIDs   []string
	roomIDs    []string
	teacherIDs []string
}

// pairStoreStub records write calls and hands out real transactions from a
// sqlmock-backed database so the commit/rollback flow stays observable.
type pairStoreStub struct {
	db       *sqlx.DB
	existing []string
	deleted  []string
	inserted []insertedPair
	pair     *models.ScheduledPair
	findErr  error
	detail   *models.ScheduledPairDetail
	listed   []models.ScheduledPairDetail
	filter   models.PairFilter
}

func (s *pairStoreStub) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return s.db.BeginTxx(ctx, nil)
}

func (s *pairStoreStub) ListIDsByScope(ctx context.Context, exec sqlx.ExtContext, studyPlanID, halfYear string) ([]string, error) {
	return s.existing, nil
}

func (s *pairStoreStub) DeleteByIDs(ctx context.Context, exec sqlx.ExtContext, ids []string) error {
	s.deleted = append(s.deleted, ids...)
	return nil
}

func (s *pairStoreStub) Insert(ctx context.Context, exec sqlx.ExtContext, pair *models.ScheduledPair, groupIDs, roomIDs, teacherIDs []string) error {
	if pair.ID == "" {
		pair.ID = uuid.NewString()
	}
	s.inserted = append(s.inserted, insertedPair{pair: *pair, groupIDs: groupIDs, roomIDs: roomIDs, teacherIDs: teacherIDs})
	return nil
}

func (s *pairStoreStub) FindByID(ctx context.Context, id string) (*models.ScheduledPair, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.pair, nil
}

func (s *pairStoreStub) Update(ctx context.Context, exec sqlx.ExtContext, pair *models.ScheduledPair) error {
	s.pair = pair
	return nil
}

func (s *pairStoreStub) ReplaceGroups(ctx context.Context, exec sqlx.ExtContext, pairID string, groupIDs []string) error {
	return nil
}

func (s *pairStoreStub) ReplaceRooms(ctx context.Context, exec sqlx.ExtContext, pairID string, roomIDs []string) error {
	return nil
}

func (s *pairStoreStub) ReplaceTeachers(ctx context.Context, exec sqlx.ExtContext, pairID string, teacherIDs []string) error {
	return nil
}

func (s *pairStoreStub) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *pairStoreStub) ListDetailed(ctx context.Context, q models.PairFilter) ([]models.ScheduledPairDetail, error) {
	s.filter = q
	return s.listed, nil
}

func (s *pairStoreStub) FindDetailedByID(ctx context.Context, id string) (*models.ScheduledPairDetail, error) {
	if s.detail != nil {
		return s.detail, nil
	}
	return &models.ScheduledPairDetail{ScheduledPair: models.ScheduledPair{ID: id}}, nil
}

type slotInternerStub struct {
	interned []models.TimeSlot
}

func (s *slotInternerStub) Ensure(ctx context.Context, exec sqlx.ExtContext, slot models.TimeSlot) error {
	s.interned = append(s.interned, slot)
	return nil
}

type assignmentResolverStub struct {
	assignments map[string]*models.DisciplineAssignment
	teachers    map[string][]string
}

func (s *assignmentResolverStub) FindByDisciplineType(ctx context.Context, discipline string, sessionType models.SessionType) (*models.DisciplineAssignment, error) {
	assignment, ok := s.assignments[discipline+"|"+string(sessionType)]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return assignment, nil
}

func (s *assignmentResolverStub) FindByID(ctx context.Context, id string) (*models.DisciplineAssignment, error) {
	for _, assignment := range s.assignments {
		if assignment.ID == id {
			return assignment, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *assignmentResolverStub) TeacherIDs(ctx context.Context, assignmentID string) ([]string, error) {
	return s.teachers[assignmentID], nil
}

type studyPlanReaderStub struct {
	err error
}

func (s studyPlanReaderStub) FindByID(ctx context.Context, id string) (*models.StudyPlan, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.StudyPlan{ID: id, Title: "09.03.01 Informatics 2024"}, nil
}

type busyInvalidatorStub struct {
	halfYears []string
}

func (s *busyInvalidatorStub) InvalidateHalfYear(ctx context.Context, halfYear string) {
	s.halfYears = append(s.halfYears, halfYear)
}

func newTxDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestScheduleServiceBulkReplaceSwapsGrid(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	defaultTeacher := uuid.NewString()
	pairs := &pairStoreStub{db: db, existing: []string{"old-1", "old-2"}}
	slots := &slotInternerStub{}
	assignments := &assignmentResolverStub{
		assignments: map[string]*models.DisciplineAssignment{
			"Calculus|lecture": {ID: "assign-calc", Discipline: "Calculus", Type: models.SessionLecture},
			"Physics|practice": {ID: "assign-phys", Discipline: "Physics", Type: models.SessionPractice},
		},
		teachers: map[string][]string{"assign-calc": {defaultTeacher}},
	}
	busy := &busyInvalidatorStub{}
	svc := NewScheduleService(pairs, slots, assignments, studyPlanReaderStub{}, busy, nil, nil)

	groupID := uuid.NewString()
	explicitTeacher := uuid.NewString()
	req := dto.BulkScheduleRequest{
		StudyPlanID: uuid.NewString(),
		GroupID:     groupID,
		HalfYear:    "2024H2",
		Schedule: dto.ParityScheduleBody{
			Even: dto.WeeklyGrid{
				"MON-08:30 — 10:00": {DisciplineName: "Calculus", Type: "lecture"},
			},
			Odd: dto.WeeklyGrid{
				"TUE-10:10 — 11:40": {DisciplineName: "Physics", Type: "practice", TeacherIDs: []string{explicitTeacher}},
			},
		},
	}

	created, err := svc.BulkReplace(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, []string{"old-1", "old-2"}, pairs.deleted)
	assert.Equal(t, []string{"2024H2"}, busy.halfYears)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, pairs.inserted, 2)
	byAssignment := map[string]insertedPair{}
	for _, ins := range pairs.inserted {
		byAssignment[ins.pair.AssignmentID] = ins
	}

	calc := byAssignment["assign-calc"]
	require.NotNil(t, calc.pair.WeekType)
	assert.Equal(t, models.WeekTypeEven, *calc.pair.WeekType)
	assert.Nil(t, calc.pair.NumberWeek)
	assert.Equal(t, models.DayMonday, calc.pair.DayOfWeek)
	assert.Equal(t, "08:30-10:00", calc.pair.TimeSlotID)
	assert.Equal(t, []string{groupID}, calc.groupIDs)
	// No teachers in the cell: the assignment's default set is used.
	assert.Equal(t, []string{defaultTeacher}, calc.teacherIDs)

	phys := byAssignment["assign-phys"]
	require.NotNil(t, phys.pair.WeekType)
	assert.Equal(t, models.WeekTypeOdd, *phys.pair.WeekType)
	assert.Equal(t, []string{explicitTeacher}, phys.teacherIDs)
}

func TestScheduleServiceBulkReplaceUnknownDisciplineRollsBack(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	pairs := &pairStoreStub{db: db, existing: []string{"old-1"}}
	busy := &busyInvalidatorStub{}
	svc := NewScheduleService(pairs, &slotInternerStub{}, &assignmentResolverStub{}, studyPlanReaderStub{}, busy, nil, nil)

	req := dto.BulkScheduleRequest{
		StudyPlanID: uuid.NewString(),
		GroupID:     uuid.NewString(),
		HalfYear:    "2024H2",
		Schedule: dto.ParityScheduleBody{
			Odd: dto.WeeklyGrid{
				"MON-08:30 — 10:00": {DisciplineName: "Alchemy", Type: "lecture"},
			},
		},
	}

	_, err := svc.BulkReplace(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Empty(t, busy.halfYears)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleServiceBulkReplaceDistanceNumbersWeeks(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	pairs := &pairStoreStub{db: db}
	assignments := &assignmentResolverStub{
		assignments: map[string]*models.DisciplineAssignment{
			"Databases|lab": {ID: "assign-db", Discipline: "Databases", Type: models.SessionLab},
		},
	}
	svc := NewScheduleService(pairs, &slotInternerStub{}, assignments, studyPlanReaderStub{}, nil, nil, nil)

	req := dto.BulkDistanceRequest{
		StudyPlanID: uuid.NewString(),
		GroupID:     uuid.NewString(),
		HalfYear:    "2024H2",
		Schedule: dto.DistanceScheduleBody{
			Week3: dto.WeeklyGrid{
				"WED-12:00 — 13:30": {DisciplineName: "Databases", Type: "lab", IsOnline: true},
			},
		},
	}

	created, err := svc.BulkReplaceDistance(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	require.Len(t, pairs.inserted, 1)
	ins := pairs.inserted[0]
	assert.Nil(t, ins.pair.WeekType)
	require.NotNil(t, ins.pair.NumberWeek)
	assert.Equal(t, 3, *ins.pair.NumberWeek)
	assert.True(t, ins.pair.IsOnline)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleServiceBulkReplaceResubmissionRecreatesSamePairs(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	pairs := &pairStoreStub{db: db}
	assignments := &assignmentResolverStub{
		assignments: map[string]*models.DisciplineAssignment{
			"Calculus|lecture": {ID: "assign-calc", Discipline: "Calculus", Type: models.SessionLecture},
			"Physics|practice": {ID: "assign-phys", Discipline: "Physics", Type: models.SessionPractice},
		},
	}
	svc := NewScheduleService(pairs, &slotInternerStub{}, assignments, studyPlanReaderStub{}, nil, nil, nil)

	req := dto.BulkScheduleRequest{
		StudyPlanID: uuid.NewString(),
		GroupID:     uuid.NewString(),
		HalfYear:    "2024H2",
		Schedule: dto.ParityScheduleBody{
			Even: dto.WeeklyGrid{
				"MON-08:30 — 10:00": {DisciplineName: "Calculus", Type: "lecture"},
			},
			Odd: dto.WeeklyGrid{
				"TUE-10:10 — 11:40": {DisciplineName: "Physics", Type: "practice"},
			},
		},
	}

	created, err := svc.BulkReplace(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 2, created)
	firstPass := pairs.inserted

	// The second submission must clear exactly what the first one wrote.
	firstIDs := make([]string, 0, len(firstPass))
	for _, ins := range firstPass {
		firstIDs = append(firstIDs, ins.pair.ID)
	}
	pairs.existing = firstIDs
	pairs.deleted = nil
	pairs.inserted = nil

	created, err = svc.BulkReplace(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 2, created)
	assert.ElementsMatch(t, firstIDs, pairs.deleted)
	require.NoError(t, mock.ExpectationsWereMet())

	// The recreated pairs carry the same content under fresh ids.
	stripID := func(set []insertedPair) []insertedPair {
		out := make([]insertedPair, len(set))
		for i, ins := range set {
			ins.pair.ID = ""
			out[i] = ins
		}
		return out
	}
	assert.ElementsMatch(t, stripID(firstPass), stripID(pairs.inserted))
}

func TestScheduleServiceUpdatePairMoveInvalidatesBothHalfYears(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	weekType := models.WeekTypeOdd
	pairs := &pairStoreStub{db: db, pair: &models.ScheduledPair{
		ID:           "pair-1",
		HalfYear:     "2024H1",
		WeekType:     &weekType,
		DayOfWeek:    models.DayMonday,
		TimeSlotID:   "08:30-10:00",
		StudyPlanID:  uuid.NewString(),
		AssignmentID: "assign-calc",
	}}
	busy := &busyInvalidatorStub{}
	svc := NewScheduleService(pairs, &slotInternerStub{}, &assignmentResolverStub{}, studyPlanReaderStub{}, busy, nil, nil)

	halfYear := "2024H2"
	_, err := svc.UpdatePair(context.Background(), "pair-1", dto.UpdatePairRequest{HalfYear: &halfYear})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	// Both the old and the new half-year caches held this pair's occupancy.
	assert.ElementsMatch(t, []string{"2024H1", "2024H2"}, busy.halfYears)
}

func TestScheduleServiceUpdatePairSameHalfYearInvalidatesOnce(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	weekType := models.WeekTypeOdd
	pairs := &pairStoreStub{db: db, pair: &models.ScheduledPair{
		ID:       "pair-1",
		HalfYear: "2024H2",
		WeekType: &weekType,
	}}
	busy := &busyInvalidatorStub{}
	svc := NewScheduleService(pairs, &slotInternerStub{}, &assignmentResolverStub{}, studyPlanReaderStub{}, busy, nil, nil)

	online := true
	_, err := svc.UpdatePair(context.Background(), "pair-1", dto.UpdatePairRequest{IsOnline: &online})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024H2"}, busy.halfYears)
}

func TestScheduleServiceCreatePairRejectsAmbiguousAddress(t *testing.T) {
	svc := NewScheduleService(&pairStoreStub{}, &slotInternerStub{}, &assignmentResolverStub{}, studyPlanReaderStub{}, nil, nil, nil)

	weekType := "ODD"
	numberWeek := 2
	_, err := svc.CreatePair(context.Background(), dto.CreatePairRequest{
		StudyPlanID:    uuid.NewString(),
		HalfYear:       "2024H2",
		WeekType:       &weekType,
		NumberWeek:     &numberWeek,
		DayOfWeek:      "MON",
		TimeSlot:       "08:30 — 10:00",
		DisciplineName: "Calculus",
		Type:           "lecture",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestScheduleServiceDeleteMissingPair(t *testing.T) {
	svc := NewScheduleService(&pairStoreStub{findErr: sql.ErrNoRows}, &slotInternerStub{}, &assignmentResolverStub{}, studyPlanReaderStub{}, nil, nil, nil)

	err := svc.DeletePair(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestScheduleServiceDistanceScheduleBucketsByWeek(t *testing.T) {
	week1 := 1
	week3 := 3
	pairs := &pairStoreStub{listed: []models.ScheduledPairDetail{
		{
			ScheduledPair: models.ScheduledPair{ID: "pair-1", NumberWeek: &week1, DayOfWeek: models.DayMonday},
			Discipline:    "Databases",
			SessionType:   models.SessionLab,
			TimeSlotTitle: "08:30 — 10:00",
		},
		{
			ScheduledPair: models.ScheduledPair{ID: "pair-2", NumberWeek: &week3, DayOfWeek: models.DayMonday},
			Discipline:    "Databases",
			SessionType:   models.SessionLab,
			TimeSlotTitle: "08:30 — 10:00",
		},
		// Parity pair in the same scope: not part of the distance shape.
		{
			ScheduledPair: models.ScheduledPair{ID: "pair-3", DayOfWeek: models.DayMonday},
			Discipline:    "Calculus",
			SessionType:   models.SessionLecture,
			TimeSlotTitle: "10:10 — 11:40",
		},
	}}
	svc := NewScheduleService(pairs, &slotInternerStub{}, &assignmentResolverStub{}, studyPlanReaderStub{}, nil, nil, nil)

	resp, err := svc.DistanceSchedule(context.Background(), dto.DistanceQuery{
		GroupID:     uuid.NewString(),
		StudyPlanID: uuid.NewString(),
		HalfYear:    "2024H2",
	})
	require.NoError(t, err)
	require.Len(t, resp.Week1, 1)
	assert.Equal(t, "Databases", resp.Week1["MON-08:30 — 10:00"].DisciplineName)
	require.Len(t, resp.Week3, 1)
	assert.Empty(t, resp.Week2)
	assert.Empty(t, resp.Week4)
}

func TestScheduleServiceGroupScheduleFilter(t *testing.T) {
	pairs := &pairStoreStub{}
	svc := NewScheduleService(pairs, &slotInternerStub{}, &assignmentResolverStub{}, studyPlanReaderStub{}, nil, nil, nil)

	groupID := uuid.NewString()
	_, err := svc.GroupSchedule(context.Background(), groupID, dto.ScheduleQuery{HalfYear: "2024H1", WeekType: "EVEN"})
	require.NoError(t, err)
	assert.Equal(t, "2024H1", pairs.filter.HalfYear)
	assert.Equal(t, groupID, pairs.filter.GroupID)
	require.NotNil(t, pairs.filter.WeekType)
	assert.Equal(t, models.WeekTypeEven, *pairs.filter.WeekType)
}
