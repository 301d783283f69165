package dto

// OneTimeHolidayRequest blocks out slots of the calendar week containing a
// single date under the holiday's name.
type OneTimeHolidayRequest struct {
	Name      string   `json:"name" validate:"required"`
	Date      string   `json:"date" validate:"required,datetime=2006-01-02"`
	RoomID    *string  `json:"roomId" validate:"omitempty,uuid4"`
	TimeSlots []string `json:"timeSlots" validate:"required,min=1"`
}

// RecurringHolidayRequest blocks out every week touched by the inclusive
// date range, stepping seven days at a time from the start date.
type RecurringHolidayRequest struct {
	Name      string   `json:"name" validate:"required"`
	StartDate string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	RoomID    *string  `json:"roomId" validate:"omitempty,uuid4"`
	TimeSlots []string `json:"timeSlots" validate:"required,min=1"`
}
