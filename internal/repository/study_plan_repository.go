package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/uniplan/timetable-api/internal/models"
)

// StudyPlanRepository reads study-plan identities. Plan ingestion happens in
// the spreadsheet pipeline outside this service; only the sentinel plan for
// holidays is ever created here.
type StudyPlanRepository struct {
	db *sqlx.DB
}

// NewStudyPlanRepository constructs the repository.
func NewStudyPlanRepository(db *sqlx.DB) *StudyPlanRepository {
	return &StudyPlanRepository{db: db}
}

// FindByID loads a plan by id.
func (r *StudyPlanRepository) FindByID(ctx context.Context, id string) (*models.StudyPlan, error) {
	const query = `SELECT id, title, created_at FROM study_plans WHERE id = $1`
	var plan models.StudyPlan
	if err := r.db.GetContext(ctx, &plan, query, id); err != nil {
		return nil, err
	}
	return &plan, nil
}

// EnsureByTitle creates the plan with the given natural-key title if absent
// and returns the stored row either way.
func (r *StudyPlanRepository) EnsureByTitle(ctx context.Context, title string) (*models.StudyPlan, error) {
	const insertQuery = `INSERT INTO study_plans (id, title, created_at) VALUES ($1, $2, $3)
ON CONFLICT (title) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, insertQuery, uuid.NewString(), title, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("ensure study plan %q: %w", title, err)
	}

	const selectQuery = `SELECT id, title, created_at FROM study_plans WHERE title = $1`
	var plan models.StudyPlan
	if err := r.db.GetContext(ctx, &plan, selectQuery, title); err != nil {
		return nil, fmt.Errorf("load study plan %q: %w", title, err)
	}
	return &plan, nil
}
