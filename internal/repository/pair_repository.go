package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/uniplan/timetable-api/internal/models"
)

// PairRepository persists scheduled pairs together with their group, room
// and teacher link rows. Pairs own their links: both are written and removed
// inside the caller's transaction.
type PairRepository struct {
	db *sqlx.DB
}

// NewPairRepository constructs the repository.
func NewPairRepository(db *sqlx.DB) *PairRepository {
	return &PairRepository{db: db}
}

func (r *PairRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return r.db
}

// BeginTx opens a transaction for multi-step pair mutations.
func (r *PairRepository) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}

// ListIDsByScope returns the ids of every pair in one replacement scope:
// a study plan within a half-year.
func (r *PairRepository) ListIDsByScope(ctx context.Context, exec sqlx.ExtContext, studyPlanID, halfYear string) ([]string, error) {
	const query = `SELECT id FROM scheduled_pairs WHERE study_plan_id = $1 AND half_year = $2`
	var ids []string
	if err := sqlx.SelectContext(ctx, r.exec(exec), &ids, query, studyPlanID, halfYear); err != nil {
		return nil, fmt.Errorf("list pair ids: %w", err)
	}
	return ids, nil
}

// DeleteByIDs removes the given pairs and their link rows. Links go first so
// the pair rows never dangle references mid-transaction.
func (r *PairRepository) DeleteByIDs(ctx context.Context, exec sqlx.ExtContext, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	ex := r.exec(exec)
	for _, table := range []string{"pair_groups", "pair_rooms", "pair_teachers"} {
		query := fmt.Sprintf(`DELETE FROM %s WHERE pair_id = ANY($1)`, table)
		if _, err := ex.ExecContext(ctx, query, pq.Array(ids)); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}
	if _, err := ex.ExecContext(ctx, `DELETE FROM scheduled_pairs WHERE id = ANY($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("delete pairs: %w", err)
	}
	return nil
}

// Insert stores a pair and its link rows. A blank id is generated.
func (r *PairRepository) Insert(ctx context.Context, exec sqlx.ExtContext, pair *models.ScheduledPair, groupIDs, roomIDs, teacherIDs []string) error {
	if pair.ID == "" {
		pair.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if pair.CreatedAt.IsZero() {
		pair.CreatedAt = now
	}
	pair.UpdatedAt = now

	const query = `INSERT INTO scheduled_pairs (
		id, half_year, week_type, number_week, academic_week_id,
		day_of_week, time_slot_id, study_plan_id, assignment_id,
		is_online, is_holiday, holiday_name, created_at, updated_at
	) VALUES (
		:id, :half_year, :week_type, :number_week, :academic_week_id,
		:day_of_week, :time_slot_id, :study_plan_id, :assignment_id,
		:is_online, :is_holiday, :holiday_name, :created_at, :updated_at
	)`
	if _, err := sqlx.NamedExecContext(ctx, r.exec(exec), query, pair); err != nil {
		return fmt.Errorf("insert pair: %w", err)
	}

	if err := r.insertLinks(ctx, exec, pair.ID, groupIDs, roomIDs, teacherIDs); err != nil {
		return err
	}
	return nil
}

func (r *PairRepository) insertLinks(ctx context.Context, exec sqlx.ExtContext, pairID string, groupIDs, roomIDs, teacherIDs []string) error {
	ex := r.exec(exec)
	links := []struct {
		table  string
		column string
		ids    []string
	}{
		{"pair_groups", "group_id", groupIDs},
		{"pair_rooms", "room_id", roomIDs},
		{"pair_teachers", "teacher_id", teacherIDs},
	}
	for _, link := range links {
		for _, id := range link.ids {
			query := fmt.Sprintf(`INSERT INTO %s (pair_id, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`, link.table, link.column)
			if _, err := ex.ExecContext(ctx, query, pairID, id); err != nil {
				return fmt.Errorf("link %s: %w", link.table, err)
			}
		}
	}
	return nil
}

// FindByID loads a bare pair row.
func (r *PairRepository) FindByID(ctx context.Context, id string) (*models.ScheduledPair, error) {
	const query = `SELECT id, half_year, week_type, number_week, academic_week_id,
		day_of_week, time_slot_id, study_plan_id, assignment_id,
		is_online, is_holiday, holiday_name, created_at, updated_at
	FROM scheduled_pairs WHERE id = $1`
	var pair models.ScheduledPair
	if err := r.db.GetContext(ctx, &pair, query, id); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Update rewrites the mutable columns of one pair.
func (r *PairRepository) Update(ctx context.Context, exec sqlx.ExtContext, pair *models.ScheduledPair) error {
	pair.UpdatedAt = time.Now().UTC()
	const query = `UPDATE scheduled_pairs SET
		half_year = :half_year,
		week_type = :week_type,
		number_week = :number_week,
		academic_week_id = :academic_week_id,
		day_of_week = :day_of_week,
		time_slot_id = :time_slot_id,
		study_plan_id = :study_plan_id,
		assignment_id = :assignment_id,
		is_online = :is_online,
		is_holiday = :is_holiday,
		holiday_name = :holiday_name,
		updated_at = :updated_at
	WHERE id = :id`
	result, err := sqlx.NamedExecContext(ctx, r.exec(exec), query, pair)
	if err != nil {
		return fmt.Errorf("update pair: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update pair rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ReplaceGroups swaps the pair's group links for the given set.
func (r *PairRepository) ReplaceGroups(ctx context.Context, exec sqlx.ExtContext, pairID string, groupIDs []string) error {
	return r.replaceLinks(ctx, exec, "pair_groups", "group_id", pairID, groupIDs)
}

// ReplaceRooms swaps the pair's room links for the given set.
func (r *PairRepository) ReplaceRooms(ctx context.Context, exec sqlx.ExtContext, pairID string, roomIDs []string) error {
	return r.replaceLinks(ctx, exec, "pair_rooms", "room_id", pairID, roomIDs)
}

// ReplaceTeachers swaps the pair's teacher links for the given set.
func (r *PairRepository) ReplaceTeachers(ctx context.Context, exec sqlx.ExtContext, pairID string, teacherIDs []string) error {
	return r.replaceLinks(ctx, exec, "pair_teachers", "teacher_id", pairID, teacherIDs)
}

func (r *PairRepository) replaceLinks(ctx context.Context, exec sqlx.ExtContext, table, column, pairID string, ids []string) error {
	ex := r.exec(exec)
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE pair_id = $1`, table)
	if _, err := ex.ExecContext(ctx, deleteQuery, pairID); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	for _, id := range ids {
		insertQuery := fmt.Sprintf(`INSERT INTO %s (pair_id, %s) VALUES ($1, $2)`, table, column)
		if _, err := ex.ExecContext(ctx, insertQuery, pairID, id); err != nil {
			return fmt.Errorf("link %s: %w", table, err)
		}
	}
	return nil
}

// Delete removes one pair and its links inside a single transaction.
// A missing id is reported as sql.ErrNoRows; deletion is not idempotent.
func (r *PairRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete pair: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, table := range []string{"pair_groups", "pair_rooms", "pair_teachers"} {
		query := fmt.Sprintf(`DELETE FROM %s WHERE pair_id = $1`, table)
		if _, err = tx.ExecContext(ctx, query, id); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}

	var result sql.Result
	result, err = tx.ExecContext(ctx, `DELETE FROM scheduled_pairs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pair: %w", err)
	}
	var rows int64
	rows, err = result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete pair rows affected: %w", err)
	}
	if rows == 0 {
		err = sql.ErrNoRows
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit delete pair: %w", err)
	}
	return nil
}

// pairDetailRow is the flat join shape ListDetailed scans before link rows
// are attached.
type pairDetailRow struct {
	models.ScheduledPair
	Discipline    string     `db:"discipline"`
	SessionType   string     `db:"session_type"`
	TimeSlotTitle string     `db:"time_slot_title"`
	SlotStart     string     `db:"slot_start"`
	WeekStartDate *time.Time `db:"week_start_date"`
}

// ListDetailed returns populated pairs matching the query, ordered by week
// start date (holiday listings), then Monday-first day order, then slot
// start time.
func (r *PairRepository) ListDetailed(ctx context.Context, q models.PairFilter) ([]models.ScheduledPairDetail, error) {
	var (
		conditions []string
		args       []interface{}
	)
	add := func(condition string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if q.HalfYear != "" {
		add("p.half_year = $%d", q.HalfYear)
	}
	if q.WeekType != nil {
		add("p.week_type = $%d", *q.WeekType)
	}
	if q.NumberWeek != nil {
		add("p.number_week = $%d", *q.NumberWeek)
	}
	if q.StudyPlanID != "" {
		add("p.study_plan_id = $%d", q.StudyPlanID)
	}
	if q.GroupID != "" {
		add("EXISTS (SELECT 1 FROM pair_groups pg WHERE pg.pair_id = p.id AND pg.group_id = $%d)", q.GroupID)
	}
	if q.RoomID != "" {
		add("EXISTS (SELECT 1 FROM pair_rooms pr WHERE pr.pair_id = p.id AND pr.room_id = $%d)", q.RoomID)
	}
	if q.TeacherID != "" {
		add("EXISTS (SELECT 1 FROM pair_teachers pt WHERE pt.pair_id = p.id AND pt.teacher_id = $%d)", q.TeacherID)
	}
	if q.HolidaysOnly {
		conditions = append(conditions, "p.is_holiday = TRUE")
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT
		p.id, p.half_year, p.week_type, p.number_week, p.academic_week_id,
		p.day_of_week, p.time_slot_id, p.study_plan_id, p.assignment_id,
		p.is_online, p.is_holiday, p.holiday_name, p.created_at, p.updated_at,
		da.discipline AS discipline,
		da.type AS session_type,
		ts.title AS time_slot_title,
		ts.start_time AS slot_start,
		aw.start_date AS week_start_date
	FROM scheduled_pairs p
	JOIN discipline_assignments da ON da.id = p.assignment_id
	JOIN time_slots ts ON ts.id = p.time_slot_id
	LEFT JOIN academic_weeks aw ON aw.id = p.academic_week_id
	%s
	ORDER BY aw.start_date NULLS LAST,
		CASE p.day_of_week
			WHEN 'MON' THEN 1 WHEN 'TUE' THEN 2 WHEN 'WED' THEN 3
			WHEN 'THU' THEN 4 WHEN 'FRI' THEN 5 WHEN 'SAT' THEN 6
			ELSE 7
		END,
		ts.start_time`, where)

	var rows []pairDetailRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pairs: %w", err)
	}
	if len(rows) == 0 {
		return []models.ScheduledPairDetail{}, nil
	}

	details := make([]models.ScheduledPairDetail, 0, len(rows))
	ids := make([]string, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		detail := models.ScheduledPairDetail{
			ScheduledPair: row.ScheduledPair,
			Discipline:    row.Discipline,
			SessionType:   models.SessionType(row.SessionType),
			TimeSlotTitle: row.TimeSlotTitle,
			SlotStart:     row.SlotStart,
			WeekStartDate: row.WeekStartDate,
			Groups:        []models.GroupRef{},
			Rooms:         []models.RoomRef{},
			Teachers:      []models.TeacherRef{},
		}
		index[row.ID] = len(details)
		ids = append(ids, row.ID)
		details = append(details, detail)
	}

	if err := r.attachLinks(ctx, ids, index, details); err != nil {
		return nil, err
	}
	return details, nil
}

// FindDetailedByID loads one populated pair.
func (r *PairRepository) FindDetailedByID(ctx context.Context, id string) (*models.ScheduledPairDetail, error) {
	const query = `SELECT
		p.id, p.half_year, p.week_type, p.number_week, p.academic_week_id,
		p.day_of_week, p.time_slot_id, p.study_plan_id, p.assignment_id,
		p.is_online, p.is_holiday, p.holiday_name, p.created_at, p.updated_at,
		da.discipline AS discipline,
		da.type AS session_type,
		ts.title AS time_slot_title,
		ts.start_time AS slot_start,
		aw.start_date AS week_start_date
	FROM scheduled_pairs p
	JOIN discipline_assignments da ON da.id = p.assignment_id
	JOIN time_slots ts ON ts.id = p.time_slot_id
	LEFT JOIN academic_weeks aw ON aw.id = p.academic_week_id
	WHERE p.id = $1`

	var row pairDetailRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	details := []models.ScheduledPairDetail{{
		ScheduledPair: row.ScheduledPair,
		Discipline:    row.Discipline,
		SessionType:   models.SessionType(row.SessionType),
		TimeSlotTitle: row.TimeSlotTitle,
		SlotStart:     row.SlotStart,
		WeekStartDate: row.WeekStartDate,
		Groups:        []models.GroupRef{},
		Rooms:         []models.RoomRef{},
		Teachers:      []models.TeacherRef{},
	}}
	if err := r.attachLinks(ctx, []string{row.ID}, map[string]int{row.ID: 0}, details); err != nil {
		return nil, err
	}
	return &details[0], nil
}

// attachLinks loads group, room and teacher references for the id set and
// distributes them onto the details slice.
func (r *PairRepository) attachLinks(ctx context.Context, ids []string, index map[string]int, details []models.ScheduledPairDetail) error {
	type groupRow struct {
		PairID string `db:"pair_id"`
		ID     string `db:"id"`
		Title  string `db:"title"`
	}
	type teacherRow struct {
		PairID   string `db:"pair_id"`
		ID       string `db:"id"`
		FullName string `db:"full_name"`
	}

	const groupQuery = `SELECT pg.pair_id, g.id, g.title
		FROM pair_groups pg JOIN groups g ON g.id = pg.group_id
		WHERE pg.pair_id = ANY($1)`
	var groupRows []groupRow
	if err := r.db.SelectContext(ctx, &groupRows, groupQuery, pq.Array(ids)); err != nil {
		return fmt.Errorf("load pair groups: %w", err)
	}
	for _, row := range groupRows {
		i := index[row.PairID]
		details[i].Groups = append(details[i].Groups, models.GroupRef{ID: row.ID, Title: row.Title})
	}

	const roomQuery = `SELECT pr.pair_id, a.id, a.title
		FROM pair_rooms pr JOIN audiences a ON a.id = pr.room_id
		WHERE pr.pair_id = ANY($1)`
	var roomRows []groupRow
	if err := r.db.SelectContext(ctx, &roomRows, roomQuery, pq.Array(ids)); err != nil {
		return fmt.Errorf("load pair rooms: %w", err)
	}
	for _, row := range roomRows {
		i := index[row.PairID]
		details[i].Rooms = append(details[i].Rooms, models.RoomRef{ID: row.ID, Title: row.Title})
	}

	const teacherQuery = `SELECT pt.pair_id, t.id, t.full_name
		FROM pair_teachers pt JOIN teachers t ON t.id = pt.teacher_id
		WHERE pt.pair_id = ANY($1)`
	var teacherRows []teacherRow
	if err := r.db.SelectContext(ctx, &teacherRows, teacherQuery, pq.Array(ids)); err != nil {
		return fmt.Errorf("load pair teachers: %w", err)
	}
	for _, row := range teacherRows {
		i := index[row.PairID]
		details[i].Teachers = append(details[i].Teachers, models.TeacherRef{ID: row.ID, FullName: row.FullName})
	}
	return nil
}
