package logging

// Standardized field names for structured logging, so extraction and
// calculation logs stay easy to filter.
const (
	FieldFile     = "file_path"
	FieldPage     = "page"
	FieldRow      = "row"
	FieldCode     = "account_code"
	FieldColumn   = "column"
	FieldCount    = "count"
	FieldStrategy = "strategy"
	FieldRegime   = "regime"
	FieldMode     = "mode"
	FieldError    = "error"
)
