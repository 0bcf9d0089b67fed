package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldID        = "id"
	FieldCountry   = "country"
	FieldProduct   = "product"
	FieldValue     = "value"
	FieldDate      = "date"
	FieldPath      = "path"
	FieldCount     = "count"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentMenu    = "menu"
	ComponentStore   = "store"
	ComponentDataset = "dataset"
	ComponentConfig  = "config"
)

// Operations defines standard operation names
const (
	OpAdd     = "add"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpSearch  = "search"
	OpFilter  = "filter"
	OpSort    = "sort"
	OpSummary = "summary"
	OpExport  = "export"
	OpLoad    = "load"
)
