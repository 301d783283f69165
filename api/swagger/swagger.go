package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Timetable API",
        "description": "Course timetabling: schedule construction, occupancy maps and the academic calendar",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Schedule", "description": "Timetable grids and single pairs"},
        {"name": "Busy", "description": "Occupancy maps for rooms, teachers and groups"},
        {"name": "Holiday", "description": "Holiday injection"},
        {"name": "Calendar", "description": "Academic week lattice"},
        {"name": "Assignments", "description": "Discipline assignment registry"}
    ],
    "paths": {
        "/schedule": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Replace a study plan's in-person timetable for one half-year",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BulkScheduleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown discipline assignment or study plan"}
                }
            }
        },
        "/schedule/distance": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Replace a study plan's distance timetable for one half-year",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BulkDistanceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "get": {
                "tags": ["Schedule"],
                "summary": "Read a distance timetable in its submitted shape",
                "parameters": [
                    {"name": "groupId", "in": "query", "required": true, "type": "string"},
                    {"name": "studyPlanId", "in": "query", "required": true, "type": "string"},
                    {"name": "halfYear", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/group/{groupId}": {
            "get": {
                "tags": ["Schedule"],
                "summary": "List a group's timetable",
                "parameters": [
                    {"name": "groupId", "in": "path", "required": true, "type": "string"},
                    {"name": "halfYear", "in": "query", "required": true, "type": "string"},
                    {"name": "weekType", "in": "query", "type": "string", "enum": ["EVEN", "ODD"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/group/{groupId}/busy": {
            "get": {
                "tags": ["Busy"],
                "summary": "Busy map of one group",
                "parameters": [
                    {"name": "groupId", "in": "path", "required": true, "type": "string"},
                    {"name": "halfYear", "in": "query", "required": true, "type": "string"},
                    {"name": "weekType", "in": "query", "type": "string", "enum": ["EVEN", "ODD"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/group/{groupId}/export": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Download a group's timetable as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "groupId", "in": "path", "required": true, "type": "string"},
                    {"name": "halfYear", "in": "query", "required": true, "type": "string"},
                    {"name": "weekType", "in": "query", "type": "string", "enum": ["EVEN", "ODD"]},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Rendered file"}
                }
            }
        },
        "/schedule/room/{audienceId}/busy": {
            "get": {
                "tags": ["Busy"],
                "summary": "Busy map of one room",
                "parameters": [
                    {"name": "audienceId", "in": "path", "required": true, "type": "string"},
                    {"name": "halfYear", "in": "query", "required": true, "type": "string"},
                    {"name": "weekType", "in": "query", "type": "string", "enum": ["EVEN", "ODD"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/teacher/{teacherId}/busy": {
            "get": {
                "tags": ["Busy"],
                "summary": "Busy map of one teacher",
                "parameters": [
                    {"name": "teacherId", "in": "path", "required": true, "type": "string"},
                    {"name": "halfYear", "in": "query", "required": true, "type": "string"},
                    {"name": "weekType", "in": "query", "type": "string", "enum": ["EVEN", "ODD"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/pair": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Create a single scheduled pair",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePairRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/pair/{id}": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Get one scheduled pair",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Pair not found"}
                }
            },
            "patch": {
                "tags": ["Schedule"],
                "summary": "Patch one scheduled pair",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdatePairRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Pair not found"}
                }
            },
            "delete": {
                "tags": ["Schedule"],
                "summary": "Delete one scheduled pair",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Pair not found"}
                }
            }
        },
        "/holiday/one-time": {
            "post": {
                "tags": ["Holiday"],
                "summary": "Block out slots on a single date",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OneTimeHolidayRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Date outside the seeded calendar"}
                }
            }
        },
        "/holiday/recurring": {
            "post": {
                "tags": ["Holiday"],
                "summary": "Block out slots weekly across a date range",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RecurringHolidayRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/holiday": {
            "get": {
                "tags": ["Holiday"],
                "summary": "List all holiday pairs in calendar order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/calendar/weeks": {
            "get": {
                "tags": ["Calendar"],
                "summary": "List the weeks of one academic year",
                "parameters": [
                    {"name": "academicYear", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/calendar/weeks/generate": {
            "post": {
                "tags": ["Calendar"],
                "summary": "Reseed the academic calendar",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateWeeksRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/calendar/weeks/resolve": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Find the academic week containing a date",
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No week covers the date"}
                }
            }
        },
        "/calendar/half-year": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Compute the half-year code for an admission year and semester",
                "parameters": [
                    {"name": "admissionYear", "in": "query", "required": true, "type": "integer"},
                    {"name": "semester", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/assignments": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List registered assignments with their teacher sets",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Assignments"],
                "summary": "Register or refresh discipline assignments",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertAssignmentsRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/assignments/{id}/audience-type": {
            "patch": {
                "tags": ["Assignments"],
                "summary": "Tag an assignment with a required room category",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetAudienceTypeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Assignment not found"}
                }
            }
        }
    },
    "definitions": {
        "ScheduleCell": {
            "type": "object",
            "required": ["disciplineName", "type"],
            "properties": {
                "disciplineName": {"type": "string"},
                "type": {"type": "string", "enum": ["lecture", "practice", "lab"]},
                "isOnline": {"type": "boolean"},
                "roomId": {"type": "string"},
                "teacherIds": {"type": "array", "items": {"type": "string"}}
            }
        },
        "WeeklyGrid": {
            "type": "object",
            "additionalProperties": {"$ref": "#/definitions/ScheduleCell"}
        },
        "BulkScheduleRequest": {
            "type": "object",
            "required": ["studyPlanId", "groupId", "halfYear", "schedule"],
            "properties": {
                "studyPlanId": {"type": "string"},
                "groupId": {"type": "string"},
                "halfYear": {"type": "string"},
                "schedule": {
                    "type": "object",
                    "properties": {
                        "even": {"$ref": "#/definitions/WeeklyGrid"},
                        "odd": {"$ref": "#/definitions/WeeklyGrid"}
                    }
                }
            }
        },
        "BulkDistanceRequest": {
            "type": "object",
            "required": ["studyPlanId", "groupId", "halfYear", "schedule"],
            "properties": {
                "studyPlanId": {"type": "string"},
                "groupId": {"type": "string"},
                "halfYear": {"type": "string"},
                "schedule": {
                    "type": "object",
                    "properties": {
                        "week1": {"$ref": "#/definitions/WeeklyGrid"},
                        "week2": {"$ref": "#/definitions/WeeklyGrid"},
                        "week3": {"$ref": "#/definitions/WeeklyGrid"},
                        "week4": {"$ref": "#/definitions/WeeklyGrid"}
                    }
                }
            }
        },
        "CreatePairRequest": {
            "type": "object",
            "required": ["studyPlanId", "halfYear", "dayOfWeek", "timeSlot", "disciplineName", "type"],
            "properties": {
                "studyPlanId": {"type": "string"},
                "halfYear": {"type": "string"},
                "weekType": {"type": "string", "enum": ["EVEN", "ODD"]},
                "numberWeek": {"type": "integer", "minimum": 1, "maximum": 4},
                "dayOfWeek": {"type": "string"},
                "timeSlot": {"type": "string"},
                "disciplineName": {"type": "string"},
                "type": {"type": "string", "enum": ["lecture", "practice", "lab"]},
                "isOnline": {"type": "boolean"},
                "groupIds": {"type": "array", "items": {"type": "string"}},
                "roomIds": {"type": "array", "items": {"type": "string"}},
                "teacherIds": {"type": "array", "items": {"type": "string"}}
            }
        },
        "UpdatePairRequest": {
            "type": "object",
            "properties": {
                "halfYear": {"type": "string"},
                "weekType": {"type": "string", "enum": ["EVEN", "ODD"]},
                "numberWeek": {"type": "integer", "minimum": 1, "maximum": 4},
                "dayOfWeek": {"type": "string"},
                "timeSlot": {"type": "string"},
                "disciplineName": {"type": "string"},
                "type": {"type": "string", "enum": ["lecture", "practice", "lab"]},
                "isOnline": {"type": "boolean"},
                "groupIds": {"type": "array", "items": {"type": "string"}},
                "roomIds": {"type": "array", "items": {"type": "string"}},
                "teacherIds": {"type": "array", "items": {"type": "string"}}
            }
        },
        "OneTimeHolidayRequest": {
            "type": "object",
            "required": ["name", "date", "timeSlots"],
            "properties": {
                "name": {"type": "string"},
                "date": {"type": "string", "format": "date"},
                "roomId": {"type": "string"},
                "timeSlots": {"type": "array", "items": {"type": "string"}}
            }
        },
        "RecurringHolidayRequest": {
            "type": "object",
            "required": ["name", "startDate", "endDate", "timeSlots"],
            "properties": {
                "name": {"type": "string"},
                "startDate": {"type": "string", "format": "date"},
                "endDate": {"type": "string", "format": "date"},
                "roomId": {"type": "string"},
                "timeSlots": {"type": "array", "items": {"type": "string"}}
            }
        },
        "GenerateWeeksRequest": {
            "type": "object",
            "properties": {
                "startYear": {"type": "integer"},
                "endYear": {"type": "integer"}
            }
        },
        "UpsertAssignmentsRequest": {
            "type": "object",
            "required": ["assignments"],
            "properties": {
                "assignments": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "required": ["discipline", "type"],
                        "properties": {
                            "discipline": {"type": "string"},
                            "type": {"type": "string", "enum": ["lecture", "practice", "lab"]},
                            "teacherIds": {"type": "array", "items": {"type": "string"}}
                        }
                    }
                }
            }
        },
        "SetAudienceTypeRequest": {
            "type": "object",
            "properties": {
                "audienceTypeId": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
