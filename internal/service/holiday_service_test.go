package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniplan/timetable-api/internal/dto"
	"github.com/uniplan/timetable-api/internal/models"
	appErrors "github.com/uniplan/timetable-api/pkg/errors"
)

func holidayTestSentinels() *HolidaySentinels {
	return &HolidaySentinels{AssignmentID: "assign-holiday", StudyPlanID: "plan-holiday"}
}

func TestHolidayServiceCreateOneTime(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	weeks := &academicWeekStoreStub{week: &models.AcademicWeek{ID: "week-5"}}
	pairs := &pairStoreStub{db: db}
	slots := &slotInternerStub{}
	busy := &busyInvalidatorStub{}
	svc := NewHolidayService(weeks, pairs, slots, holidayTestSentinels(), busy, nil, nil)

	created, err := svc.CreateOneTime(context.Background(), dto.OneTimeHolidayRequest{
		Name:      "Open Day",
		Date:      "2024-10-07",
		TimeSlots: []string{"08:30 — 10:00", "10:10 — 11:40"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	require.NoError(t, mock.ExpectationsWereMet())

	for _, pair := range created {
		assert.True(t, pair.IsHoliday)
		require.NotNil(t, pair.HolidayName)
		assert.Equal(t, "Open Day", *pair.HolidayName)
		require.NotNil(t, pair.AcademicWeekID)
		assert.Equal(t, "week-5", *pair.AcademicWeekID)
		assert.Nil(t, pair.WeekType)
		assert.Nil(t, pair.NumberWeek)
		assert.Equal(t, models.DayMonday, pair.DayOfWeek)
		assert.Equal(t, "2024H2", pair.HalfYear)
		assert.Equal(t, "plan-holiday", pair.StudyPlanID)
		assert.Equal(t, "assign-holiday", pair.AssignmentID)
	}
	assert.Equal(t, "08:30-10:00", created[0].TimeSlotID)
	assert.Equal(t, []string{"2024H2"}, busy.halfYears)
}

func TestHolidayServiceCreateRecurringStepsWeekly(t *testing.T) {
	db, mock := newTxDB(t)
	for i := 0; i < 4; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
	}

	weeks := &academicWeekStoreStub{week: &models.AcademicWeek{ID: "week-x"}}
	pairs := &pairStoreStub{db: db}
	svc := NewHolidayService(weeks, pairs, &slotInternerStub{}, holidayTestSentinels(), nil, nil, nil)

	created, err := svc.CreateRecurring(context.Background(), dto.RecurringHolidayRequest{
		Name:      "Military Training",
		StartDate: "2024-10-07",
		EndDate:   "2024-10-28",
		TimeSlots: []string{"08:30 — 10:00"},
	})
	require.NoError(t, err)
	require.Len(t, created, 4)
	require.NoError(t, mock.ExpectationsWereMet())

	// Every occurrence lands on the same weekday.
	for _, pair := range created {
		assert.Equal(t, models.DayMonday, pair.DayOfWeek)
	}
}

func TestHolidayServiceCreateRecurringRejectsInvertedRange(t *testing.T) {
	svc := NewHolidayService(&academicWeekStoreStub{}, &pairStoreStub{}, &slotInternerStub{}, holidayTestSentinels(), nil, nil, nil)

	_, err := svc.CreateRecurring(context.Background(), dto.RecurringHolidayRequest{
		Name:      "Backwards",
		StartDate: "2024-10-28",
		EndDate:   "2024-10-07",
		TimeSlots: []string{"08:30 — 10:00"},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestHolidayServiceOutsideCalendar(t *testing.T) {
	weeks := &academicWeekStoreStub{findErr: sql.ErrNoRows}
	svc := NewHolidayService(weeks, &pairStoreStub{}, &slotInternerStub{}, holidayTestSentinels(), nil, nil, nil)

	_, err := svc.CreateOneTime(context.Background(), dto.OneTimeHolidayRequest{
		Name:      "Lost Day",
		Date:      "2030-07-15",
		TimeSlots: []string{"08:30 — 10:00"},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestHolidayServiceListFiltersHolidays(t *testing.T) {
	pairs := &pairStoreStub{listed: []models.ScheduledPairDetail{
		{ScheduledPair: models.ScheduledPair{ID: "pair-1", IsHoliday: true}},
	}}
	svc := NewHolidayService(&academicWeekStoreStub{}, pairs, &slotInternerStub{}, holidayTestSentinels(), nil, nil, nil)

	details, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.True(t, pairs.filter.HolidaysOnly)
}
