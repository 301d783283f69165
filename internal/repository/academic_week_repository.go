package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/uniplan/timetable-api/internal/models"
)

// AcademicWeekRepository persists the seeded week lattice.
type AcademicWeekRepository struct {
	db *sqlx.DB
}

// NewAcademicWeekRepository constructs the repository.
func NewAcademicWeekRepository(db *sqlx.DB) *AcademicWeekRepository {
	return &AcademicWeekRepository{db: db}
}

// ReplaceAll wipes the whole table and inserts the provided weeks in one
// transaction. Regeneration is destructive and administrative; there is no
// incremental path.
func (r *AcademicWeekRepository) ReplaceAll(ctx context.Context, weeks []models.AcademicWeek) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace academic weeks: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM academic_weeks`); err != nil {
		return fmt.Errorf("clear academic weeks: %w", err)
	}

	now := time.Now().UTC()
	const query = `INSERT INTO academic_weeks (id, academic_year, week_number, start_date, end_date, week_type, created_at)
VALUES (:id, :academic_year, :week_number, :start_date, :end_date, :week_type, :created_at)`
	for i := range weeks {
		week := weeks[i]
		if week.ID == "" {
			week.ID = uuid.NewString()
		}
		if week.CreatedAt.IsZero() {
			week.CreatedAt = now
		}
		if _, err = sqlx.NamedExecContext(ctx, tx, query, &week); err != nil {
			return fmt.Errorf("insert academic week %s/%d: %w", week.AcademicYear, week.WeekNumber, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace academic weeks: %w", err)
	}
	return nil
}

// FindByDate returns the week whose [start_date, end_date] interval contains
// the date. sql.ErrNoRows passes through for dates outside the seeded range.
func (r *AcademicWeekRepository) FindByDate(ctx context.Context, date time.Time) (*models.AcademicWeek, error) {
	const query = `SELECT id, academic_year, week_number, start_date, end_date, week_type, created_at
FROM academic_weeks WHERE start_date <= $1 AND end_date >= $1 ORDER BY start_date LIMIT 1`
	var week models.AcademicWeek
	if err := r.db.GetContext(ctx, &week, query, date); err != nil {
		return nil, err
	}
	return &week, nil
}

// ListByYear returns all weeks of one academic year ordered by number.
func (r *AcademicWeekRepository) ListByYear(ctx context.Context, academicYear string) ([]models.AcademicWeek, error) {
	const query = `SELECT id, academic_year, week_number, start_date, end_date, week_type, created_at
FROM academic_weeks WHERE academic_year = $1 ORDER BY week_number ASC`
	var weeks []models.AcademicWeek
	if err := r.db.SelectContext(ctx, &weeks, query, academicYear); err != nil {
		return nil, fmt.Errorf("list academic weeks: %w", err)
	}
	return weeks, nil
}

// FindByID loads a single week.
func (r *AcademicWeekRepository) FindByID(ctx context.Context, id string) (*models.AcademicWeek, error) {
	const query = `SELECT id, academic_year, week_number, start_date, end_date, week_type, created_at
FROM academic_weeks WHERE id = $1`
	var week models.AcademicWeek
	if err := r.db.GetContext(ctx, &week, query, id); err != nil {
		return nil, err
	}
	return &week, nil
}
