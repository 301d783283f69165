package dto

// AssignmentInput is one discipline/type row of a batch upsert. The teacher
// set fully replaces whatever is linked to the assignment.
type AssignmentInput struct {
	Discipline string   `json:"discipline" validate:"required"`
	Type       string   `json:"type" validate:"required,oneof=lecture practice lab"`
	TeacherIDs []string `json:"teacherIds" validate:"omitempty,dive,uuid4"`
}

// UpsertAssignmentsRequest registers or refreshes a batch of discipline
// assignments.
type UpsertAssignmentsRequest struct {
	Assignments []AssignmentInput `json:"assignments" validate:"required,min=1,dive"`
}

// SetAudienceTypeRequest tags an assignment with a required room category.
// A null id clears the tag.
type SetAudienceTypeRequest struct {
	AudienceTypeID *string `json:"audienceTypeId" validate:"omitempty,uuid4"`
}

// AssignmentQuery filters assignment listings.
type AssignmentQuery struct {
	Discipline string `form:"discipline" json:"discipline"`
	Type       string `form:"type" json:"type" validate:"omitempty,oneof=lecture practice lab"`
}
