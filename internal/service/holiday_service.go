package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/uniplan/timetable-api/internal/dto"
	"github.com/uniplan/timetable-api/internal/models"
	appErrors "github.com/uniplan/timetable-api/pkg/errors"
)

type weekResolver interface {
	FindByDate(ctx context.Context, date time.Time) (*models.AcademicWeek, error)
}

type holidayPairStore interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	Insert(ctx context.Context, exec sqlx.ExtContext, pair *models.ScheduledPair, groupIDs, roomIDs, teacherIDs []string) error
	ListDetailed(ctx context.Context, q models.PairFilter) ([]models.ScheduledPairDetail, error)
}

// HolidayService injects holiday pairs into the schedule: ordinary rows
// pointing at the sentinel assignment and study plan, so every read path
// sees them without special casing.
type HolidayService struct {
	weeks     weekResolver
	pairs     holidayPairStore
	slots     slotInterner
	sentinels *HolidaySentinels
	busy      busyInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewHolidayService constructs the holiday service. The sentinels come from
// the bootstrap step at process start.
func NewHolidayService(weeks weekResolver, pairs holidayPairStore, slots slotInterner, sentinels *HolidaySentinels, busy busyInvalidator, validate *validator.Validate, logger *zap.Logger) *HolidayService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HolidayService{
		weeks:     weeks,
		pairs:     pairs,
		slots:     slots,
		sentinels: sentinels,
		busy:      busy,
		validator: validate,
		logger:    logger,
	}
}

// CreateOneTime blocks out the requested slots on the day of the given
// date. The date must fall inside a seeded calendar week.
func (s *HolidayService) CreateOneTime(ctx context.Context, req dto.OneTimeHolidayRequest) ([]models.ScheduledPair, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid holiday payload")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date must be formatted YYYY-MM-DD")
	}
	return s.injectDay(ctx, req.Name, date, req.RoomID, req.TimeSlots)
}

// CreateRecurring blocks out the same weekday slots for every week in the
// inclusive date range, stepping seven days from the start date. The first
// date that falls outside the seeded calendar aborts the whole operation.
func (s *HolidayService) CreateRecurring(ctx context.Context, req dto.RecurringHolidayRequest) ([]models.ScheduledPair, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid holiday payload")
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "startDate must be formatted YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "endDate must be formatted YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "endDate must not precede startDate")
	}

	var created []models.ScheduledPair
	for date := start; !date.After(end); date = date.AddDate(0, 0, 7) {
		pairs, err := s.injectDay(ctx, req.Name, date, req.RoomID, req.TimeSlots)
		if err != nil {
			return nil, err
		}
		created = append(created, pairs...)
	}
	return created, nil
}

// List returns every holiday pair, ordered by calendar week start, then
// day, then slot start time.
func (s *HolidayService) List(ctx context.Context) ([]models.ScheduledPairDetail, error) {
	details, err := s.pairs.ListDetailed(ctx, models.PairFilter{HolidaysOnly: true})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list holidays")
	}
	return details, nil
}

func (s *HolidayService) injectDay(ctx context.Context, name string, date time.Time, roomID *string, timeSlots []string) (created []models.ScheduledPair, err error) {
	week, err := s.weeks.FindByDate(ctx, date)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound,
				fmt.Sprintf("no academic week covers %s", date.Format("2006-01-02")))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve academic week")
	}

	day := models.DayOfWeekForDate(date)
	halfYear := models.HalfYearForDate(date.Year(), int(date.Month())).Code()
	var roomIDs []string
	if roomID != nil {
		roomIDs = []string{*roomID}
	}

	tx, err := s.pairs.BeginTx(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin holiday injection")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	holidayName := name
	for _, label := range timeSlots {
		slot := models.NewTimeSlot(label)
		if err = s.slots.Ensure(ctx, tx, slot); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to intern time slot")
		}
		pair := models.ScheduledPair{
			HalfYear:       halfYear,
			AcademicWeekID: &week.ID,
			DayOfWeek:      day,
			TimeSlotID:     slot.ID,
			StudyPlanID:    s.sentinels.StudyPlanID,
			AssignmentID:   s.sentinels.AssignmentID,
			IsHoliday:      true,
			HolidayName:    &holidayName,
		}
		if err = s.pairs.Insert(ctx, tx, &pair, nil, roomIDs, nil); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to insert holiday pair")
		}
		created = append(created, pair)
	}
	if err = tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit holiday injection")
	}

	if s.busy != nil {
		s.busy.InvalidateHalfYear(ctx, halfYear)
	}
	s.logger.Info("holiday injected",
		zap.String("name", name),
		zap.String("date", date.Format("2006-01-02")),
		zap.Int("pairs", len(created)))
	return created, nil
}
