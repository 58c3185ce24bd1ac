package logging

// Standardized field names so log output stays consistent and filterable.
const (
	FieldFile     = "file_path"
	FieldFormat   = "formato"
	FieldDocument = "documento"
	FieldFiling   = "f24_id"
	FieldMovement = "movimento_id"
	FieldReason   = "reason"
	FieldCount    = "count"
	FieldAmount   = "importo"
	FieldEmployee = "dipendente"
	FieldPage     = "pagina"
)
