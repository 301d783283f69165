package models

// BusyEntry is one occupation of a day-slot cell, as seen from a room,
// teacher or group. Entries are advisory: overlapping bookings are allowed
// and surface here for the constructor UI to flag.
type BusyEntry struct {
	PairID      string       `json:"pair_id"`
	Discipline  string       `json:"discipline"`
	SessionType SessionType  `json:"type"`
	WeekType    *WeekType    `json:"week_type,omitempty"`
	NumberWeek  *int         `json:"number_week,omitempty"`
	IsOnline    bool         `json:"is_online"`
	Groups      []GroupRef   `json:"groups"`
	Rooms       []RoomRef    `json:"rooms"`
	Teachers    []TeacherRef `json:"teachers"`
}

// BusyMap groups busy entries under their "<day>-<slot title>" keys.
type BusyMap map[string][]BusyEntry

// BuildBusyMap buckets populated pairs by day-slot key. The input order is
// preserved inside each bucket.
func BuildBusyMap(details []ScheduledPairDetail) BusyMap {
	busy := make(BusyMap, len(details))
	for i := range details {
		detail := &details[i]
		key := detail.DaySlotKey()
		busy[key] = append(busy[key], BusyEntry{
			PairID:      detail.ID,
			Discipline:  detail.Discipline,
			SessionType: detail.SessionType,
			WeekType:    detail.WeekType,
			NumberWeek:  detail.NumberWeek,
			IsOnline:    detail.IsOnline,
			Groups:      detail.Groups,
			Rooms:       detail.Rooms,
			Teachers:    detail.Teachers,
		})
	}
	return busy
}
