package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorWrapping(t *testing.T) {
	inner := errors.New("bad token")
	err := &ParseError{Stage: "balance", Field: "amount", Value: "1.2.3", Err: inner}

	assert.Contains(t, err.Error(), "balance")
	assert.Contains(t, err.Error(), "amount")
	assert.ErrorIs(t, err, inner)
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{FilePath: "balance.pdf", ExpectedFormat: "PDF", Msg: "not a PDF"}
	assert.Contains(t, err.Error(), "balance.pdf")
	assert.Contains(t, err.Error(), "PDF")
}

func TestDataExtractionError(t *testing.T) {
	err := &DataExtractionError{FilePath: "balance.pdf", FieldName: "tax_id", Reason: "not found"}
	assert.Contains(t, err.Error(), "tax_id")
}
