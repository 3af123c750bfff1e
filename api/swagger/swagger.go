package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Timetable Manager API",
        "description": "Slot allocation and conflict detection for university timetables",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Catalog", "description": "Hierarchy options and slot universes"},
        {"name": "Entries", "description": "Timetable entry lifecycle"},
        {"name": "Conflicts", "description": "Per-axis and full candidate pre-checks"},
        {"name": "Availability", "description": "Conflict-free option filtering"}
    ],
    "paths": {
        "/faculties": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List faculties",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/departments": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List departments of a faculty",
                "parameters": [
                    {"name": "facultyId", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/programs": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List programs of a department",
                "parameters": [
                    {"name": "departmentId", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/classes": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List academic classes of a program",
                "parameters": [
                    {"name": "programId", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/divisions": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List divisions of an academic class",
                "parameters": [
                    {"name": "academicClassId", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/batches": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List batches of a division",
                "parameters": [
                    {"name": "divisionId", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/subjects": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List subjects of an academic class",
                "parameters": [
                    {"name": "academicClassId", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/academic-years": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List current academic years of a faculty",
                "parameters": [
                    {"name": "facultyId", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/days": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List teaching days",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timeslots": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List time slots of a program",
                "parameters": [
                    {"name": "programId", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/staff": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List teachers of a department",
                "parameters": [
                    {"name": "departmentId", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/locations": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List rooms of a department",
                "parameters": [
                    {"name": "departmentId", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/fields/{field}/dependents": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List candidate fields invalidated by a change to one field",
                "parameters": [
                    {"name": "field", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/entries": {
            "get": {
                "tags": ["Entries"],
                "summary": "List timetable entries",
                "parameters": [
                    {"name": "academicYearId", "in": "query", "type": "string"},
                    {"name": "facultyId", "in": "query", "type": "string"},
                    {"name": "departmentId", "in": "query", "type": "string"},
                    {"name": "programId", "in": "query", "type": "string"},
                    {"name": "divisionId", "in": "query", "type": "string"},
                    {"name": "staffId", "in": "query", "type": "string"},
                    {"name": "dayId", "in": "query", "type": "string"},
                    {"name": "timeSlotId", "in": "query", "type": "string"},
                    {"name": "mine", "in": "query", "type": "boolean"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Entries"],
                "summary": "Create timetable entry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EntryPayload"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Scheduling conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/entries/{id}": {
            "get": {
                "tags": ["Entries"],
                "summary": "Get timetable entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Entries"],
                "summary": "Update timetable entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EntryPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Scheduling conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Entries"],
                "summary": "Delete timetable entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/conflicts/check": {
            "post": {
                "tags": ["Conflicts"],
                "summary": "Check a full candidate on all three axes",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CandidateCheckRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/conflicts/check-slot": {
            "post": {
                "tags": ["Conflicts"],
                "summary": "Check the student group axis for one slot",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SlotCheckRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/conflicts/check-staff": {
            "post": {
                "tags": ["Conflicts"],
                "summary": "Check the staff axis for one slot",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StaffCheckRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/conflicts/check-location": {
            "post": {
                "tags": ["Conflicts"],
                "summary": "Check the location axis for one slot",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LocationCheckRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/availability/days": {
            "post": {
                "tags": ["Availability"],
                "summary": "Days the candidate could occupy without conflict",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AvailabilityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/availability/timeslots": {
            "post": {
                "tags": ["Availability"],
                "summary": "Time slots the candidate could occupy without conflict",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AvailabilityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/availability/staff": {
            "post": {
                "tags": ["Availability"],
                "summary": "Teachers free in the candidate's slot",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AvailabilityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/availability/locations": {
            "post": {
                "tags": ["Availability"],
                "summary": "Rooms free in the candidate's slot",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AvailabilityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Entry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "academic_year_id": {"type": "string"},
                "faculty_id": {"type": "string"},
                "department_id": {"type": "string"},
                "program_id": {"type": "string"},
                "academic_class_id": {"type": "string"},
                "division_id": {"type": "string"},
                "batch_id": {"type": "string"},
                "subject_id": {"type": "string"},
                "staff_id": {"type": "string"},
                "location_id": {"type": "string"},
                "day_id": {"type": "string"},
                "time_slot_id": {"type": "string"},
                "created_by": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "EntryPayload": {
            "type": "object",
            "properties": {
                "academic_year_id": {"type": "string"},
                "faculty_id": {"type": "string"},
                "department_id": {"type": "string"},
                "program_id": {"type": "string"},
                "academic_class_id": {"type": "string"},
                "division_id": {"type": "string"},
                "batch_id": {"type": "string"},
                "subject_id": {"type": "string"},
                "staff_id": {"type": "string"},
                "location_id": {"type": "string"},
                "day_id": {"type": "string"},
                "time_slot_id": {"type": "string"}
            },
            "required": ["academic_year_id", "faculty_id", "department_id", "program_id", "academic_class_id", "division_id", "subject_id", "staff_id", "location_id", "day_id", "time_slot_id"]
        },
        "ConflictReport": {
            "type": "object",
            "properties": {
                "division_conflict": {"type": "boolean"},
                "staff_conflict": {"type": "boolean"},
                "location_conflict": {"type": "boolean"}
            }
        },
        "CandidateCheckRequest": {
            "type": "object",
            "properties": {
                "academic_year_id": {"type": "string"},
                "division_id": {"type": "string"},
                "batch_id": {"type": "string"},
                "subject_id": {"type": "string"},
                "staff_id": {"type": "string"},
                "location_id": {"type": "string"},
                "day_id": {"type": "string"},
                "time_slot_id": {"type": "string"},
                "exclude_entry_id": {"type": "string"}
            },
            "required": ["academic_year_id", "day_id", "time_slot_id"]
        },
        "SlotCheckRequest": {
            "type": "object",
            "properties": {
                "academic_year_id": {"type": "string"},
                "division_id": {"type": "string"},
                "batch_id": {"type": "string"},
                "day_id": {"type": "string"},
                "time_slot_id": {"type": "string"}
            },
            "required": ["academic_year_id", "division_id", "day_id", "time_slot_id"]
        },
        "StaffCheckRequest": {
            "type": "object",
            "properties": {
                "academic_year_id": {"type": "string"},
                "staff_id": {"type": "string"},
                "day_id": {"type": "string"},
                "time_slot_id": {"type": "string"}
            },
            "required": ["academic_year_id", "staff_id", "day_id", "time_slot_id"]
        },
        "LocationCheckRequest": {
            "type": "object",
            "properties": {
                "academic_year_id": {"type": "string"},
                "location_id": {"type": "string"},
                "day_id": {"type": "string"},
                "time_slot_id": {"type": "string"}
            },
            "required": ["academic_year_id", "location_id", "day_id", "time_slot_id"]
        },
        "AvailabilityRequest": {
            "type": "object",
            "properties": {
                "academic_year_id": {"type": "string"},
                "program_id": {"type": "string"},
                "department_id": {"type": "string"},
                "staff_department_id": {"type": "string"},
                "division_id": {"type": "string"},
                "batch_id": {"type": "string"},
                "subject_id": {"type": "string"},
                "staff_id": {"type": "string"},
                "location_id": {"type": "string"},
                "day_id": {"type": "string"},
                "time_slot_id": {"type": "string"},
                "exclude_entry_id": {"type": "string"}
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
                "pagination": {"$ref": "#/definitions/Pagination"}
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
