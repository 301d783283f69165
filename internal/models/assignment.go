package models

import "time"

// SessionType distinguishes how a discipline is taught in a given slot.
type SessionType string

const (
	SessionLecture  SessionType = "lecture"
	SessionPractice SessionType = "practice"
	SessionLab      SessionType = "lab"
	// SessionHoliday is reserved for the holiday sentinel assignment.
	SessionHoliday SessionType = "holiday"
)

// Valid reports whether the value is a schedulable session type.
func (t SessionType) Valid() bool {
	switch t {
	case SessionLecture, SessionPractice, SessionLab, SessionHoliday:
		return true
	}
	return false
}

// Sentinel natural keys for holiday rows. They exist as ordinary rows so the
// pair store needs no special casing; the bootstrap step creates them once.
const (
	HolidayDiscipline    = "__HOLIDAY__"
	HolidayStudyPlanName = "__HOLIDAY__"
)

// DisciplineAssignment is the session template: the stable identity for
// "this discipline taught as this session type". Scheduled pairs reference
// it instead of duplicating teacher lists per slot.
type DisciplineAssignment struct {
	ID             string      `db:"id" json:"id"`
	Discipline     string      `db:"discipline" json:"discipline"`
	Type           SessionType `db:"type" json:"type"`
	AudienceTypeID *string     `db:"audience_type_id" json:"audience_type_id,omitempty"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updated_at"`
}

// DisciplineAssignmentDetail adds the linked teacher set for list views.
type DisciplineAssignmentDetail struct {
	DisciplineAssignment
	TeacherIDs   []string `json:"teacher_ids"`
	TeacherNames []string `json:"teacher_names,omitempty"`
}

// StudyPlan is the curriculum reference scheduled pairs are scoped by.
// Full study-plan ingestion lives outside this service; only the identity
// is needed here.
type StudyPlan struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
