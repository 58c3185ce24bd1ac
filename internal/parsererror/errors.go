// Package parsererror defines the typed errors returned for malformed
// invocations. Malformed document content is never reported through these:
// the extractors return partial results instead.
package parsererror

import "fmt"

// ParseError represents a failure inside a specific extractor.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError means the input does not conform to the expected format
// for the invoked parser at all.
type InvalidFormatError struct {
	Source         string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in '%s': %s. Expected: %s",
		e.Source, e.Msg, e.ExpectedFormat)
}

// DataExtractionError means a required field could not be recovered even
// though the document format itself was recognised.
type DataExtractionError struct {
	Source    string
	FieldName string
	Reason    string
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("data extraction failed in '%s' for field '%s': %s",
		e.Source, e.FieldName, e.Reason)
}

// ValidationError represents an invalid state transition or an invalid record
// rejected at the assembly boundary.
type ValidationError struct {
	Entity string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Entity, e.Reason)
}
