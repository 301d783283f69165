package dto

// ScheduleCell is one occupied cell of a submitted timetable grid. The
// discipline name and session type together address a discipline
// assignment, which must already exist.
type ScheduleCell struct {
	DisciplineName string   `json:"disciplineName" validate:"required"`
	Type           string   `json:"type" validate:"required,oneof=lecture practice lab"`
	IsOnline       bool     `json:"isOnline"`
	RoomID         *string  `json:"roomId" validate:"omitempty,uuid4"`
	TeacherIDs     []string `json:"teacherIds" validate:"omitempty,dive,uuid4"`
}

// WeeklyGrid maps "<day>-<slot>" keys to cells for one week variant.
type WeeklyGrid map[string]ScheduleCell

// ParityScheduleBody carries the even/odd week grids of a standard
// half-year timetable.
type ParityScheduleBody struct {
	Even WeeklyGrid `json:"even"`
	Odd  WeeklyGrid `json:"odd"`
}

// BulkScheduleRequest replaces the full in-person timetable of a study plan
// in one half-year.
type BulkScheduleRequest struct {
	StudyPlanID string             `json:"studyPlanId" validate:"required,uuid4"`
	GroupID     string             `json:"groupId" validate:"required,uuid4"`
	HalfYear    string             `json:"halfYear" validate:"required"`
	Schedule    ParityScheduleBody `json:"schedule" validate:"required"`
}

// DistanceScheduleBody carries the four numbered-week grids of a distance
// half-year timetable.
type DistanceScheduleBody struct {
	Week1 WeeklyGrid `json:"week1"`
	Week2 WeeklyGrid `json:"week2"`
	Week3 WeeklyGrid `json:"week3"`
	Week4 WeeklyGrid `json:"week4"`
}

// BulkDistanceRequest replaces the full distance-format timetable of a
// study plan in one half-year.
type BulkDistanceRequest struct {
	StudyPlanID string               `json:"studyPlanId" validate:"required,uuid4"`
	GroupID     string               `json:"groupId" validate:"required,uuid4"`
	HalfYear    string               `json:"halfYear" validate:"required"`
	Schedule    DistanceScheduleBody `json:"schedule" validate:"required"`
}

// CreatePairRequest adds a single pair outside the bulk-replace flow.
// Exactly one of weekType and numberWeek must be set.
type CreatePairRequest struct {
	StudyPlanID    string   `json:"studyPlanId" validate:"required,uuid4"`
	HalfYear       string   `json:"halfYear" validate:"required"`
	WeekType       *string  `json:"weekType" validate:"omitempty,oneof=EVEN ODD"`
	NumberWeek     *int     `json:"numberWeek" validate:"omitempty,min=1,max=4"`
	DayOfWeek      string   `json:"dayOfWeek" validate:"required"`
	TimeSlot       string   `json:"timeSlot" validate:"required"`
	DisciplineName string   `json:"disciplineName" validate:"required"`
	Type           string   `json:"type" validate:"required,oneof=lecture practice lab"`
	IsOnline       bool     `json:"isOnline"`
	GroupIDs       []string `json:"groupIds" validate:"omitempty,dive,uuid4"`
	RoomIDs        []string `json:"roomIds" validate:"omitempty,dive,uuid4"`
	TeacherIDs     []string `json:"teacherIds" validate:"omitempty,dive,uuid4"`
}

// UpdatePairRequest patches a pair. Nil fields are left untouched; link
// slices, when present, fully replace the stored set.
type UpdatePairRequest struct {
	HalfYear       *string   `json:"halfYear"`
	WeekType       *string   `json:"weekType" validate:"omitempty,oneof=EVEN ODD"`
	NumberWeek     *int      `json:"numberWeek" validate:"omitempty,min=1,max=4"`
	DayOfWeek      *string   `json:"dayOfWeek"`
	TimeSlot       *string   `json:"timeSlot"`
	DisciplineName *string   `json:"disciplineName"`
	Type           *string   `json:"type" validate:"omitempty,oneof=lecture practice lab"`
	IsOnline       *bool     `json:"isOnline"`
	GroupIDs       *[]string `json:"groupIds" validate:"omitempty,dive,uuid4"`
	RoomIDs        *[]string `json:"roomIds" validate:"omitempty,dive,uuid4"`
	TeacherIDs     *[]string `json:"teacherIds" validate:"omitempty,dive,uuid4"`
}

// DistanceQuery scopes the distance-grid read.
type DistanceQuery struct {
	GroupID     string `form:"groupId" json:"groupId" validate:"required,uuid4"`
	StudyPlanID string `form:"studyPlanId" json:"studyPlanId" validate:"required,uuid4"`
	HalfYear    string `form:"halfYear" json:"halfYear" validate:"required"`
}

// DistanceScheduleResponse mirrors the submitted distance shape: four
// numbered-week grids keyed the same way they were posted.
type DistanceScheduleResponse struct {
	Week1 WeeklyGrid `json:"week1"`
	Week2 WeeklyGrid `json:"week2"`
	Week3 WeeklyGrid `json:"week3"`
	Week4 WeeklyGrid `json:"week4"`
}

// ScheduleQuery filters pair listings.
type ScheduleQuery struct {
	HalfYear   string `form:"halfYear" json:"halfYear" validate:"required"`
	WeekType   string `form:"weekType" json:"weekType" validate:"omitempty,oneof=EVEN ODD"`
	NumberWeek *int   `form:"numberWeek" json:"numberWeek" validate:"omitempty,min=1,max=4"`
}

// BusyQuery scopes busy-map lookups for a room, teacher or group.
type BusyQuery struct {
	HalfYear string `form:"halfYear" json:"halfYear" validate:"required"`
	WeekType string `form:"weekType" json:"weekType" validate:"omitempty,oneof=EVEN ODD"`
}

// ExportQuery selects the export format for a group timetable.
type ExportQuery struct {
	HalfYear string `form:"halfYear" json:"halfYear" validate:"required"`
	WeekType string `form:"weekType" json:"weekType" validate:"omitempty,oneof=EVEN ODD"`
	Format   string `form:"format" json:"format" validate:"omitempty,oneof=csv pdf"`
}
