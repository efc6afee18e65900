package log

// Canonical field name constants for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldEvent     = "event"
	FieldRunID     = "run_id"

	FieldPath     = "path"
	FieldCategory = "category"
	FieldCount    = "count"
	FieldLimit    = "limit"
	FieldLine     = "line"
	FieldReason   = "reason"
	FieldResource = "resource"
)
