package models

import "time"

// WeekAddress selects which weekly timetable a pair belongs to. Exactly one
// of the two fields is set: parity for standard in-person half-years,
// a numbered week (1..4) for distance-format half-years.
type WeekAddress struct {
	WeekType   *WeekType `json:"week_type,omitempty"`
	NumberWeek *int      `json:"number_week,omitempty"`
}

// ParityAddress builds a parity-mode address.
func ParityAddress(w WeekType) WeekAddress {
	return WeekAddress{WeekType: &w}
}

// NumberedAddress builds a numbered-week address.
func NumberedAddress(n int) WeekAddress {
	return WeekAddress{NumberWeek: &n}
}

// Valid enforces the mutual exclusivity of the two addressing modes and the
// 1..4 range for numbered weeks.
func (a WeekAddress) Valid() bool {
	if (a.WeekType == nil) == (a.NumberWeek == nil) {
		return false
	}
	if a.WeekType != nil {
		return a.WeekType.Valid()
	}
	return *a.NumberWeek >= 1 && *a.NumberWeek <= 4
}

// ScheduledPair is one occupied timetable cell. It is the sole owner of its
// group/room/teacher link rows, which are deleted and recreated with it.
type ScheduledPair struct {
	ID             string    `db:"id" json:"id"`
	HalfYear       string    `db:"half_year" json:"half_year"`
	WeekType       *WeekType `db:"week_type" json:"week_type,omitempty"`
	NumberWeek     *int      `db:"number_week" json:"number_week,omitempty"`
	AcademicWeekID *string   `db:"academic_week_id" json:"academic_week_id,omitempty"`
	DayOfWeek      DayOfWeek `db:"day_of_week" json:"day_of_week"`
	TimeSlotID     string    `db:"time_slot_id" json:"time_slot_id"`
	StudyPlanID    string    `db:"study_plan_id" json:"study_plan_id"`
	AssignmentID   string    `db:"assignment_id" json:"assignment_id"`
	IsOnline       bool      `db:"is_online" json:"is_online"`
	IsHoliday      bool      `db:"is_holiday" json:"is_holiday"`
	HolidayName    *string   `db:"holiday_name" json:"holiday_name,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Address returns the pair's week address.
func (p *ScheduledPair) Address() WeekAddress {
	return WeekAddress{WeekType: p.WeekType, NumberWeek: p.NumberWeek}
}

// GroupRef carries group display data for populated pair responses.
type GroupRef struct {
	ID    string `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
}

// RoomRef carries room display data.
type RoomRef struct {
	ID    string `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
}

// TeacherRef carries teacher display data.
type TeacherRef struct {
	ID       string `db:"id" json:"id"`
	FullName string `db:"full_name" json:"full_name"`
}

// ScheduledPairDetail is the populated shape returned by every read path:
// the pair plus its resolved assignment, time slot and link rows, ready for
// the constructor UI to render without further lookups.
type ScheduledPairDetail struct {
	ScheduledPair
	Discipline    string       `json:"discipline"`
	SessionType   SessionType  `json:"type"`
	TimeSlotTitle string       `json:"time_slot_title"`
	SlotStart     string       `json:"slot_start"`
	WeekStartDate *time.Time   `json:"week_start_date,omitempty"`
	Groups        []GroupRef   `json:"groups"`
	Rooms         []RoomRef    `json:"rooms"`
	Teachers      []TeacherRef `json:"teachers"`
}

// DaySlotKey renders the presentation grouping key for this pair.
func (d *ScheduledPairDetail) DaySlotKey() string {
	return DaySlotKey(d.DayOfWeek, d.TimeSlotTitle)
}

// PairFilter narrows detailed pair listings. Zero-value fields are ignored.
type PairFilter struct {
	HalfYear     string
	WeekType     *WeekType
	NumberWeek   *int
	GroupID      string
	RoomID       string
	TeacherID    string
	StudyPlanID  string
	HolidaysOnly bool
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
