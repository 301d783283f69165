package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeekTypeForNumber(t *testing.T) {
	assert.Equal(t, WeekTypeOdd, WeekTypeForNumber(1))
	assert.Equal(t, WeekTypeEven, WeekTypeForNumber(2))
	assert.Equal(t, WeekTypeOdd, WeekTypeForNumber(51))
	assert.Equal(t, WeekTypeEven, WeekTypeForNumber(52))
}

func TestWeekAddressValid(t *testing.T) {
	assert.True(t, ParityAddress(WeekTypeEven).Valid())
	assert.True(t, NumberedAddress(1).Valid())
	assert.True(t, NumberedAddress(4).Valid())

	// Both or neither modes set is invalid.
	assert.False(t, WeekAddress{}.Valid())
	parity := WeekTypeOdd
	n := 2
	assert.False(t, WeekAddress{WeekType: &parity, NumberWeek: &n}.Valid())

	assert.False(t, NumberedAddress(0).Valid())
	assert.False(t, NumberedAddress(5).Valid())
	bogus := WeekType("THIRD")
	assert.False(t, WeekAddress{WeekType: &bogus}.Valid())
}

func TestParseDayOfWeekBilingual(t *testing.T) {
	for _, label := range []string{"Понедельник", "Monday", "MON"} {
		day, ok := ParseDayOfWeek(label)
		assert.True(t, ok, "label %q", label)
		assert.Equal(t, DayMonday, day)
	}
	_, ok := ParseDayOfWeek("Lundi")
	assert.False(t, ok)
	_, ok = ParseDayOfWeek("понедельник")
	assert.False(t, ok)
}

func TestDayOrderMondayFirst(t *testing.T) {
	assert.Equal(t, 1, DayMonday.Order())
	assert.Equal(t, 7, DaySunday.Order())
}

func TestBuildBusyMapGroupsByDaySlot(t *testing.T) {
	parity := WeekTypeEven
	details := []ScheduledPairDetail{
		{
			ScheduledPair: ScheduledPair{ID: "pair-1", DayOfWeek: DayMonday, WeekType: &parity},
			Discipline:    "Linear Algebra",
			TimeSlotTitle: "08:30 — 10:00",
		},
		{
			ScheduledPair: ScheduledPair{ID: "pair-2", DayOfWeek: DayMonday, WeekType: &parity},
			Discipline:    "Physics",
			TimeSlotTitle: "08:30 — 10:00",
		},
		{
			ScheduledPair: ScheduledPair{ID: "pair-3", DayOfWeek: DayTuesday},
			Discipline:    "Physics",
			TimeSlotTitle: "10:10 — 11:40",
		},
	}

	busy := BuildBusyMap(details)
	assert.Len(t, busy, 2)
	assert.Len(t, busy["MON-08:30 — 10:00"], 2)
	assert.Len(t, busy["TUE-10:10 — 11:40"], 1)
	assert.Equal(t, "pair-1", busy["MON-08:30 — 10:00"][0].PairID)
}
