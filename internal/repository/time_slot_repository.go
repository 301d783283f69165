package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/uniplan/timetable-api/internal/models"
)

// TimeSlotRepository interns canonical time ranges. Slots are never updated
// or deleted: the first writer of an id wins and later labels reuse it.
type TimeSlotRepository struct {
	db *sqlx.DB
}

// NewTimeSlotRepository constructs the repository.
func NewTimeSlotRepository(db *sqlx.DB) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

func (r *TimeSlotRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return r.db
}

// Ensure inserts the slot if its id is not interned yet (connect-or-create).
func (r *TimeSlotRepository) Ensure(ctx context.Context, exec sqlx.ExtContext, slot models.TimeSlot) error {
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO time_slots (id, start_time, end_time, title, created_at)
VALUES (:id, :start_time, :end_time, :title, :created_at)
ON CONFLICT (id) DO NOTHING`
	if _, err := sqlx.NamedExecContext(ctx, r.exec(exec), query, &slot); err != nil {
		return fmt.Errorf("ensure time slot %s: %w", slot.ID, err)
	}
	return nil
}

// FindByID loads an interned slot.
func (r *TimeSlotRepository) FindByID(ctx context.Context, id string) (*models.TimeSlot, error) {
	const query = `SELECT id, start_time, end_time, title, created_at FROM time_slots WHERE id = $1`
	var slot models.TimeSlot
	if err := r.db.GetContext(ctx, &slot, query, id); err != nil {
		return nil, err
	}
	return &slot, nil
}
