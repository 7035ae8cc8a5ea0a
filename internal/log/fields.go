package log

const (
	FieldSource  = "source"
	FieldCommand = "command"
	FieldRunID   = "run_id"

	// Generation
	FieldLength   = "length"
	FieldCount    = "count"
	FieldAlphabet = "alphabet"
	FieldSeeded   = "seeded"

	// Checking
	FieldFile       = "file"
	FieldSize       = "size"
	FieldEncoding   = "encoding"
	FieldColumn     = "column"
	FieldRows       = "rows"
	FieldSkipped    = "skipped"
	FieldDuplicates = "duplicates"
)
