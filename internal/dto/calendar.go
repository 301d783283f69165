package dto

// GenerateWeeksRequest reseeds the academic calendar. Zero years fall back
// to the configured defaults.
type GenerateWeeksRequest struct {
	StartYear int `json:"startYear" validate:"omitempty,min=2000,max=2100"`
	EndYear   int `json:"endYear" validate:"omitempty,min=2000,max=2100"`
}

// WeeksQuery filters calendar week listings by academic year label,
// e.g. "2024/2025".
type WeeksQuery struct {
	AcademicYear string `form:"academicYear" json:"academicYear" validate:"required"`
}

// ResolveWeekQuery locates the calendar week containing a date.
type ResolveWeekQuery struct {
	Date string `form:"date" json:"date" validate:"required,datetime=2006-01-02"`
}

// HalfYearQuery computes the half-year code for an admission year and
// one-based semester number.
type HalfYearQuery struct {
	AdmissionYear int `form:"admissionYear" json:"admissionYear" validate:"required,min=2000,max=2100"`
	Semester      int `form:"semester" json:"semester" validate:"required,min=1,max=12"`
}
