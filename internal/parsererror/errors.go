// Package parsererror defines the typed errors surfaced by the parsing and
// extraction layers. Per-line and per-field defects are recovered locally and
// never reach these types; only boundary failures do.
package parsererror

import "fmt"

// InvalidFormatError reports input that does not conform to the SPED
// pipe-delimited framing at all (e.g. an empty stream with zero valid records).
type InvalidFormatError struct {
	FilePath string
	Msg      string
}

func (e *InvalidFormatError) Error() string {
	if e.FilePath == "" {
		return fmt.Sprintf("invalid bookkeeping file format: %s", e.Msg)
	}
	return fmt.Sprintf("invalid bookkeeping file format in '%s': %s", e.FilePath, e.Msg)
}

// UnsupportedLayoutError reports a (record type, file variant) pair that has
// no registered field layout. Extraction for the affected record is refused
// instead of reading out-of-range fields.
type UnsupportedLayoutError struct {
	RecordType string
	Variant    string
}

func (e *UnsupportedLayoutError) Error() string {
	return fmt.Sprintf("unsupported layout: record type %q has no registered layout for variant %q",
		e.RecordType, e.Variant)
}

// DataExtractionError reports a failure to derive a required value from an
// otherwise well-formed parse result.
type DataExtractionError struct {
	Variant string
	Field   string
	Reason  string
	Err     error
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("data extraction failed for variant %q, field %q: %s",
		e.Variant, e.Field, e.Reason)
}

func (e *DataExtractionError) Unwrap() error {
	return e.Err
}
