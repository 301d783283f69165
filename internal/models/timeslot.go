package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TimeSlot interns one time range. The id is the canonical "HH:MM-HH:MM"
// form; Title keeps the label exactly as first submitted for display.
type TimeSlot struct {
	ID        string    `db:"id" json:"id"`
	Start     string    `db:"start_time" json:"start"`
	End       string    `db:"end_time" json:"end"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// dashRe collapses every dash variant (hyphen, en dash, em dash) together
// with surrounding whitespace into a single plain hyphen.
var dashRe = regexp.MustCompile(`\s*[-–—]\s*`)

// NormalizeSlotID turns a time label like "10:10 — 11:40" into the canonical
// id "10:10-11:40". Normalizing an already-canonical id returns it unchanged.
func NormalizeSlotID(label string) string {
	return dashRe.ReplaceAllString(strings.TrimSpace(label), "-")
}

// NewTimeSlot builds the interned row for a raw label.
func NewTimeSlot(label string) TimeSlot {
	id := NormalizeSlotID(label)
	start, end := splitSlotID(id)
	return TimeSlot{
		ID:    id,
		Start: start,
		End:   end,
		Title: strings.TrimSpace(label),
	}
}

func splitSlotID(id string) (string, string) {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		return id, ""
	}
	return parts[0], parts[1]
}

// SplitDaySlotKey breaks a composite grid key "Понедельник-08:30 — 10:00"
// into its weekday label and raw time label. The day part never contains a
// hyphen, so only the first one separates the two.
func SplitDaySlotKey(key string) (dayLabel, timeLabel string, err error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 || parts[0] == "" || strings.TrimSpace(parts[1]) == "" {
		return "", "", fmt.Errorf("malformed day-slot key %q", key)
	}
	return parts[0], strings.TrimSpace(parts[1]), nil
}

// DaySlotKey renders the presentation grouping key used by schedule grids.
func DaySlotKey(day DayOfWeek, slotTitle string) string {
	return string(day) + "-" + slotTitle
}
