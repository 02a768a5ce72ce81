package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldSource    = "source"
	FieldFile      = "file_path"
	FieldCount     = "count"
	FieldCategory  = "category"
	FieldMerchant  = "merchant"
	FieldBadge     = "badge"
	FieldReason    = "reason"
	FieldOperation = "operation"
	FieldStage     = "stage"
	FieldColumn    = "column"
	FieldFormat    = "format"
)
