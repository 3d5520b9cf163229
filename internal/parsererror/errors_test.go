package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{FilePath: "efd.txt", Msg: "no valid records"}
	assert.Contains(t, err.Error(), "efd.txt")
	assert.Contains(t, err.Error(), "no valid records")

	err = &InvalidFormatError{Msg: "empty input"}
	assert.Contains(t, err.Error(), "empty input")
}

func TestUnsupportedLayoutError(t *testing.T) {
	err := &UnsupportedLayoutError{RecordType: "E110", Variant: "ecd"}
	assert.Contains(t, err.Error(), "E110")
	assert.Contains(t, err.Error(), "ecd")
}

func TestDataExtractionErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := &DataExtractionError{
		Variant: "efd-icms",
		Field:   "total_debits",
		Reason:  "value missing",
		Err:     cause,
	}

	assert.Contains(t, err.Error(), "efd-icms")
	assert.Contains(t, err.Error(), "total_debits")
	assert.True(t, errors.Is(err, cause))
}
