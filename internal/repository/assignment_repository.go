package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/uniplan/timetable-api/internal/models"
)

// AssignmentRepository persists discipline-assignment templates and their
// teacher link rows.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository constructs the repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// FindByDisciplineType resolves the natural key. sql.ErrNoRows passes
// through so callers can surface a precise NotFound.
func (r *AssignmentRepository) FindByDisciplineType(ctx context.Context, discipline string, sessionType models.SessionType) (*models.DisciplineAssignment, error) {
	const query = `SELECT id, discipline, type, audience_type_id, created_at, updated_at
FROM discipline_assignments WHERE discipline = $1 AND type = $2`
	var assignment models.DisciplineAssignment
	if err := r.db.GetContext(ctx, &assignment, query, discipline, sessionType); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// FindByID loads an assignment by id.
func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (*models.DisciplineAssignment, error) {
	const query = `SELECT id, discipline, type, audience_type_id, created_at, updated_at
FROM discipline_assignments WHERE id = $1`
	var assignment models.DisciplineAssignment
	if err := r.db.GetContext(ctx, &assignment, query, id); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Upsert creates or updates the assignment for its (discipline, type) key and
// fully replaces the teacher link set in the same transaction. Calling twice
// with different teacher lists leaves the second list, never a union.
func (r *AssignmentRepository) Upsert(ctx context.Context, assignment *models.DisciplineAssignment, teacherIDs []string) error {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = now
	}
	assignment.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin assignment upsert: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const upsertQuery = `INSERT INTO discipline_assignments (id, discipline, type, audience_type_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (discipline, type) DO UPDATE SET updated_at = EXCLUDED.updated_at
RETURNING id`
	if err = tx.GetContext(ctx, &assignment.ID, upsertQuery,
		assignment.ID, assignment.Discipline, assignment.Type, assignment.AudienceTypeID,
		assignment.CreatedAt, assignment.UpdatedAt); err != nil {
		return fmt.Errorf("upsert assignment %s (%s): %w", assignment.Discipline, assignment.Type, err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM assignment_teachers WHERE assignment_id = $1`, assignment.ID); err != nil {
		return fmt.Errorf("clear assignment teachers: %w", err)
	}
	for _, teacherID := range teacherIDs {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO assignment_teachers (assignment_id, teacher_id) VALUES ($1, $2)`,
			assignment.ID, teacherID); err != nil {
			return fmt.Errorf("link assignment teacher %s: %w", teacherID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit assignment upsert: %w", err)
	}
	return nil
}

// SetAudienceType stores the preferred room type for an assignment.
func (r *AssignmentRepository) SetAudienceType(ctx context.Context, id string, audienceTypeID *string) error {
	const query = `UPDATE discipline_assignments SET audience_type_id = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, audienceTypeID, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set assignment audience type: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check assignment rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// TeacherIDs returns the linked teacher set for one assignment.
func (r *AssignmentRepository) TeacherIDs(ctx context.Context, assignmentID string) ([]string, error) {
	const query = `SELECT teacher_id FROM assignment_teachers WHERE assignment_id = $1 ORDER BY teacher_id`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, assignmentID); err != nil {
		return nil, fmt.Errorf("list assignment teachers: %w", err)
	}
	return ids, nil
}

// List returns all assignments with their teacher sets and display names.
func (r *AssignmentRepository) List(ctx context.Context) ([]models.DisciplineAssignmentDetail, error) {
	const query = `SELECT id, discipline, type, audience_type_id, created_at, updated_at
FROM discipline_assignments ORDER BY discipline ASC, type ASC`
	var assignments []models.DisciplineAssignment
	if err := r.db.SelectContext(ctx, &assignments, query); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	if len(assignments) == 0 {
		return []models.DisciplineAssignmentDetail{}, nil
	}

	ids := make([]string, len(assignments))
	for i, a := range assignments {
		ids[i] = a.ID
	}

	type teacherRow struct {
		AssignmentID string `db:"assignment_id"`
		TeacherID    string `db:"teacher_id"`
		FullName     string `db:"full_name"`
	}
	const teacherQuery = `SELECT at.assignment_id, at.teacher_id, t.full_name
FROM assignment_teachers at
JOIN teachers t ON t.id = at.teacher_id
WHERE at.assignment_id = ANY($1)
ORDER BY t.full_name ASC`
	var rows []teacherRow
	if err := r.db.SelectContext(ctx, &rows, teacherQuery, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("list assignment teachers: %w", err)
	}

	byAssignment := make(map[string][]teacherRow, len(assignments))
	for _, row := range rows {
		byAssignment[row.AssignmentID] = append(byAssignment[row.AssignmentID], row)
	}

	details := make([]models.DisciplineAssignmentDetail, 0, len(assignments))
	for _, a := range assignments {
		detail := models.DisciplineAssignmentDetail{DisciplineAssignment: a, TeacherIDs: []string{}}
		for _, row := range byAssignment[a.ID] {
			detail.TeacherIDs = append(detail.TeacherIDs, row.TeacherID)
			detail.TeacherNames = append(detail.TeacherNames, row.FullName)
		}
		details = append(details, detail)
	}
	return details, nil
}
