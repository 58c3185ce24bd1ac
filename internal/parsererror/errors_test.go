package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("importo malformato")
	err := &ParseError{Parser: "contoparser", Field: "importo", Value: "abc", Err: cause}

	assert.Contains(t, err.Error(), "contoparser")
	assert.Contains(t, err.Error(), "importo='abc'")
	assert.ErrorIs(t, err, cause)
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		Source:         "estratto.pdf",
		ExpectedFormat: "conto_intesa",
		Msg:            "nessuna riga movimento",
	}
	assert.Contains(t, err.Error(), "estratto.pdf")
	assert.Contains(t, err.Error(), "conto_intesa")
}

func TestDataExtractionError(t *testing.T) {
	err := &DataExtractionError{Source: "cedolino.pdf", FieldName: "netto", Reason: "non trovato"}
	assert.Contains(t, err.Error(), "netto")
	assert.Contains(t, err.Error(), "non trovato")
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Entity: "F24 f1", Reason: "transizione non ammessa"}
	assert.Equal(t, "validation failed for F24 f1: transizione non ammessa", err.Error())
}
