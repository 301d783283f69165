package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uniplan/timetable-api/internal/dto"
	"github.com/uniplan/timetable-api/internal/models"
	appErrors "github.com/uniplan/timetable-api/pkg/errors"
)

type academicWeekStore interface {
	ReplaceAll(ctx context.Context, weeks []models.AcademicWeek) error
	FindByDate(ctx context.Context, date time.Time) (*models.AcademicWeek, error)
	ListByYear(ctx context.Context, academicYear string) ([]models.AcademicWeek, error)
}

// CalendarService seeds and queries the academic-week lattice every other
// module resolves dates against.
type CalendarService struct {
	weeks     academicWeekStore
	startYear int
	endYear   int
	logger    *zap.Logger
}

// NewCalendarService constructs the calendar service. The year bounds are
// the defaults used when a reseed request leaves them blank.
func NewCalendarService(weeks academicWeekStore, startYear, endYear int, logger *zap.Logger) *CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{weeks: weeks, startYear: startYear, endYear: endYear, logger: logger}
}

// GenerateWeeks reseeds the whole calendar. Existing weeks are dropped and
// rebuilt, so stored academic_week_id references survive only by accident;
// reseeding is an install-time operation, not a routine one.
func (s *CalendarService) GenerateWeeks(ctx context.Context, req dto.GenerateWeeksRequest) (int, error) {
	startYear := req.StartYear
	if startYear == 0 {
		startYear = s.startYear
	}
	endYear := req.EndYear
	if endYear == 0 {
		endYear = s.endYear
	}
	if endYear < startYear {
		return 0, appErrors.Clone(appErrors.ErrValidation, "endYear must not precede startYear")
	}

	var weeks []models.AcademicWeek
	for year := startYear; year <= endYear; year++ {
		weeks = append(weeks, WeeksForAcademicYear(year)...)
	}
	if err := s.weeks.ReplaceAll(ctx, weeks); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reseed academic weeks")
	}

	s.logger.Info("academic calendar reseeded",
		zap.Int("start_year", startYear),
		zap.Int("end_year", endYear),
		zap.Int("weeks", len(weeks)))
	return len(weeks), nil
}

// ResolveWeekForDate finds the calendar week containing the date.
func (s *CalendarService) ResolveWeekForDate(ctx context.Context, date time.Time) (*models.AcademicWeek, error) {
	week, err := s.weeks.FindByDate(ctx, date)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no academic week covers the given date")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve academic week")
	}
	return week, nil
}

// ListWeeks returns the 52 weeks of one academic year in order.
func (s *CalendarService) ListWeeks(ctx context.Context, academicYear string) ([]models.AcademicWeek, error) {
	weeks, err := s.weeks.ListByYear(ctx, academicYear)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list academic weeks")
	}
	return weeks, nil
}

// HalfYearForSemester exposes the admission-year/semester arithmetic.
func (s *CalendarService) HalfYearForSemester(admissionYear, semester int) models.HalfYear {
	return models.HalfYearForSemester(admissionYear, semester)
}

// AcademicYearLabel renders the "YYYY/YYYY+1" label used as the lattice key.
func AcademicYearLabel(startYear int) string {
	return fmt.Sprintf("%d/%d", startYear, startYear+1)
}

// WeeksForAcademicYear builds the 52-week lattice for the academic year
// beginning in the given calendar year. Week 1 starts on the first Monday
// on or after September 1 and is ODD; parity alternates from there.
func WeeksForAcademicYear(startYear int) []models.AcademicWeek {
	start := firstMondayOnOrAfter(time.Date(startYear, time.September, 1, 0, 0, 0, 0, time.UTC))
	label := AcademicYearLabel(startYear)
	now := time.Now().UTC()

	weeks := make([]models.AcademicWeek, 0, models.WeeksPerYear)
	for number := 1; number <= models.WeeksPerYear; number++ {
		weekStart := start.AddDate(0, 0, (number-1)*7)
		weeks = append(weeks, models.AcademicWeek{
			ID:           uuid.NewString(),
			AcademicYear: label,
			WeekNumber:   number,
			StartDate:    weekStart,
			EndDate:      weekStart.AddDate(0, 0, 6),
			WeekType:     models.WeekTypeForNumber(number),
			CreatedAt:    now,
		})
	}
	return weeks
}

func firstMondayOnOrAfter(date time.Time) time.Time {
	offset := (int(time.Monday) - int(date.Weekday()) + 7) % 7
	return date.AddDate(0, 0, offset)
}
