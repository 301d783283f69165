package models

import (
	"fmt"
	"strconv"
	"strings"
)

// HalfYear identifies one of the two teaching periods of a calendar year.
type HalfYear struct {
	Year int
	Half int // 1 or 2
}

// Code renders the textual form every schedule query relies on, e.g. "2021H1".
// The format is parsed by prefix/suffix splitting elsewhere, so it must stay
// exactly "<4-digit year>H<1|2>".
func (h HalfYear) Code() string {
	return fmt.Sprintf("%04dH%d", h.Year, h.Half)
}

// ParseHalfYear validates and splits a half-year code.
func ParseHalfYear(code string) (HalfYear, error) {
	parts := strings.SplitN(code, "H", 2)
	if len(parts) != 2 || len(parts[0]) != 4 {
		return HalfYear{}, fmt.Errorf("malformed half-year code %q", code)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return HalfYear{}, fmt.Errorf("malformed half-year code %q", code)
	}
	half, err := strconv.Atoi(parts[1])
	if err != nil || (half != 1 && half != 2) {
		return HalfYear{}, fmt.Errorf("malformed half-year code %q", code)
	}
	return HalfYear{Year: year, Half: half}, nil
}

// HalfYearForSemester derives the half-year for a 1-based semester index
// counted from a group's admission year: semester 1 is the autumn half (H2)
// of the admission year, semester 2 the spring half (H1) of the following
// year, and so on. Both the read and write paths go through this single
// helper so the code never drifts.
func HalfYearForSemester(admissionYear, semester int) HalfYear {
	half := 1
	if (semester+1)%2 == 0 {
		half = 2
	}
	return HalfYear{
		Year: admissionYear + semester/2,
		Half: half,
	}
}

// HalfYearForDate locates the teaching period containing a calendar date.
// September through December and January belong to the autumn half (H2 of
// the autumn's year); February through August to the spring half (H1).
func HalfYearForDate(year, month int) HalfYear {
	switch {
	case month >= 9:
		return HalfYear{Year: year, Half: 2}
	case month == 1:
		return HalfYear{Year: year - 1, Half: 2}
	default:
		return HalfYear{Year: year, Half: 1}
	}
}
