package models

import "time"

// WeekType is the even/odd parity used to address the two alternating
// weekly timetables of an in-person half-year.
type WeekType string

const (
	WeekTypeEven WeekType = "EVEN"
	WeekTypeOdd  WeekType = "ODD"
)

// Valid reports whether the value is a known parity.
func (w WeekType) Valid() bool {
	return w == WeekTypeEven || w == WeekTypeOdd
}

// WeekTypeForNumber derives parity from a week number (week 1 is ODD).
func WeekTypeForNumber(weekNumber int) WeekType {
	if weekNumber%2 == 0 {
		return WeekTypeEven
	}
	return WeekTypeOdd
}

// AcademicWeek is one row of the seeded week lattice: 52 Monday-start
// weeks per academic year with alternating parity.
type AcademicWeek struct {
	ID           string    `db:"id" json:"id"`
	AcademicYear string    `db:"academic_year" json:"academic_year"`
	WeekNumber   int       `db:"week_number" json:"week_number"`
	StartDate    time.Time `db:"start_date" json:"start_date"`
	EndDate      time.Time `db:"end_date" json:"end_date"`
	WeekType     WeekType  `db:"week_type" json:"week_type"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// WeeksPerYear is fixed: the seeder always emits weeks 1..52.
const WeeksPerYear = 52
