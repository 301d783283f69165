package models

import "time"

// DayOfWeek enumerates weekday codes used by schedule addressing.
type DayOfWeek string

const (
	DayMonday    DayOfWeek = "MON"
	DayTuesday   DayOfWeek = "TUE"
	DayWednesday DayOfWeek = "WED"
	DayThursday  DayOfWeek = "THU"
	DayFriday    DayOfWeek = "FRI"
	DaySaturday  DayOfWeek = "SAT"
	DaySunday    DayOfWeek = "SUN"
)

// dayNames maps Russian and English weekday labels to their codes. The
// constructor UI submits either language; anything else is rejected.
var dayNames = map[string]DayOfWeek{
	"Понедельник": DayMonday,
	"Monday":      DayMonday,
	"MON":         DayMonday,
	"Вторник":     DayTuesday,
	"Tuesday":     DayTuesday,
	"TUE":         DayTuesday,
	"Среда":       DayWednesday,
	"Wednesday":   DayWednesday,
	"WED":         DayWednesday,
	"Четверг":     DayThursday,
	"Thursday":    DayThursday,
	"THU":         DayThursday,
	"Пятница":     DayFriday,
	"Friday":      DayFriday,
	"FRI":         DayFriday,
	"Суббота":     DaySaturday,
	"Saturday":    DaySaturday,
	"SAT":         DaySaturday,
	"Воскресенье": DaySunday,
	"Sunday":      DaySunday,
	"SUN":         DaySunday,
}

// ParseDayOfWeek resolves a weekday label to its code. No fuzzy matching:
// unknown input reports ok=false and callers must reject the request.
func ParseDayOfWeek(label string) (DayOfWeek, bool) {
	day, ok := dayNames[label]
	return day, ok
}

// DayOfWeekForDate maps a calendar date to its weekday code.
func DayOfWeekForDate(date time.Time) DayOfWeek {
	switch date.Weekday() {
	case time.Monday:
		return DayMonday
	case time.Tuesday:
		return DayTuesday
	case time.Wednesday:
		return DayWednesday
	case time.Thursday:
		return DayThursday
	case time.Friday:
		return DayFriday
	case time.Saturday:
		return DaySaturday
	default:
		return DaySunday
	}
}

// Valid reports whether the value is one of the seven codes.
func (d DayOfWeek) Valid() bool {
	switch d {
	case DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday:
		return true
	}
	return false
}

// dayOrder gives Monday-first sort positions for display ordering.
var dayOrder = map[DayOfWeek]int{
	DayMonday:    1,
	DayTuesday:   2,
	DayWednesday: 3,
	DayThursday:  4,
	DayFriday:    5,
	DaySaturday:  6,
	DaySunday:    7,
}

// Order returns the Monday-first position of the day, 1..7.
func (d DayOfWeek) Order() int {
	return dayOrder[d]
}
