package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniplan/timetable-api/internal/models"
)

func newPairRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestPairRepositoryListIDsByScope(t *testing.T) {
	db, mock, cleanup := newPairRepoMock(t)
	defer cleanup()
	repo := NewPairRepository(db)

	rows := sqlmock.NewRows([]string{"id"}).AddRow("pair-1").AddRow("pair-2")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM scheduled_pairs WHERE study_plan_id = $1 AND half_year = $2")).
		WithArgs("plan-1", "2024H2").
		WillReturnRows(rows)

	ids, err := repo.ListIDsByScope(context.Background(), nil, "plan-1", "2024H2")
	require.NoError(t, err)
	assert.Equal(t, []string{"pair-1", "pair-2"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPairRepositoryDeleteByIDsRemovesLinksFirst(t *testing.T) {
	db, mock, cleanup := newPairRepoMock(t)
	defer cleanup()
	repo := NewPairRepository(db)

	ids := []string{"pair-1", "pair-2"}
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pair_groups WHERE pair_id = ANY($1)")).
		WithArgs(pq.Array(ids)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pair_rooms WHERE pair_id = ANY($1)")).
		WithArgs(pq.Array(ids)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pair_teachers WHERE pair_id = ANY($1)")).
		WithArgs(pq.Array(ids)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM scheduled_pairs WHERE id = ANY($1)")).
		WithArgs(pq.Array(ids)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.DeleteByIDs(context.Background(), nil, ids))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPairRepositoryDeleteByIDsEmptySetIsNoop(t *testing.T) {
	db, mock, cleanup := newPairRepoMock(t)
	defer cleanup()
	repo := NewPairRepository(db)

	require.NoError(t, repo.DeleteByIDs(context.Background(), nil, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPairRepositoryInsertWritesLinks(t *testing.T) {
	db, mock, cleanup := newPairRepoMock(t)
	defer cleanup()
	repo := NewPairRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scheduled_pairs")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pair_groups (pair_id, group_id)")).
		WithArgs(sqlmock.AnyArg(), "group-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pair_rooms (pair_id, room_id)")).
		WithArgs(sqlmock.AnyArg(), "room-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pair_teachers (pair_id, teacher_id)")).
		WithArgs(sqlmock.AnyArg(), "teacher-1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	weekType := models.WeekTypeEven
	pair := models.ScheduledPair{
		HalfYear:     "2024H2",
		WeekType:     &weekType,
		DayOfWeek:    models.DayMonday,
		TimeSlotID:   "08:30-10:00",
		StudyPlanID:  "plan-1",
		AssignmentID: "assign-1",
	}
	require.NoError(t, repo.Insert(context.Background(), nil, &pair, []string{"group-1"}, []string{"room-1"}, []string{"teacher-1"}))
	assert.NotEmpty(t, pair.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPairRepositoryDeleteMissingPair(t *testing.T) {
	db, mock, cleanup := newPairRepoMock(t)
	defer cleanup()
	repo := NewPairRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pair_groups WHERE pair_id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pair_rooms WHERE pair_id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pair_teachers WHERE pair_id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM scheduled_pairs WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPairRepositoryListDetailedAttachesLinks(t *testing.T) {
	db, mock, cleanup := newPairRepoMock(t)
	defer cleanup()
	repo := NewPairRepository(db)

	now := time.Now()
	pairRows := sqlmock.NewRows([]string{
		"id", "half_year", "week_type", "number_week", "academic_week_id",
		"day_of_week", "time_slot_id", "study_plan_id", "assignment_id",
		"is_online", "is_holiday", "holiday_name", "created_at", "updated_at",
		"discipline", "session_type", "time_slot_title", "slot_start", "week_start_date",
	}).AddRow(
		"pair-1", "2024H2", "EVEN", nil, nil,
		"MON", "08:30-10:00", "plan-1", "assign-1",
		false, false, nil, now, now,
		"Linear Algebra", "lecture", "08:30 — 10:00", "08:30", nil,
	)
	mock.ExpectQuery(regexp.QuoteMeta("FROM scheduled_pairs p")).
		WithArgs("2024H2").
		WillReturnRows(pairRows)

	mock.ExpectQuery(regexp.QuoteMeta("FROM pair_groups pg JOIN groups g")).
		WithArgs(pq.Array([]string{"pair-1"})).
		WillReturnRows(sqlmock.NewRows([]string{"pair_id", "id", "title"}).AddRow("pair-1", "group-1", "SE-2101"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM pair_rooms pr JOIN audiences a")).
		WithArgs(pq.Array([]string{"pair-1"})).
		WillReturnRows(sqlmock.NewRows([]string{"pair_id", "id", "title"}))
	mock.ExpectQuery(regexp.QuoteMeta("FROM pair_teachers pt JOIN teachers t")).
		WithArgs(pq.Array([]string{"pair-1"})).
		WillReturnRows(sqlmock.NewRows([]string{"pair_id", "id", "full_name"}).AddRow("pair-1", "teacher-1", "Ivanov I.I."))

	details, err := repo.ListDetailed(context.Background(), models.PairFilter{HalfYear: "2024H2"})
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Linear Algebra", details[0].Discipline)
	assert.Equal(t, "MON-08:30 — 10:00", details[0].DaySlotKey())
	require.Len(t, details[0].Groups, 1)
	assert.Equal(t, "SE-2101", details[0].Groups[0].Title)
	assert.Empty(t, details[0].Rooms)
	require.Len(t, details[0].Teachers, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
