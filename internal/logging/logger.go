// Package logging provides a logging abstraction layer that decouples the
// consolidation engine from a concrete logging framework. Components receive a
// Logger through their constructors instead of reaching for a global.
package logging

// Logger is the structured logging interface used throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger
}

// Field is a key-value pair carrying structured context on a log message.
type Field struct {
	Key   string
	Value interface{}
}

// Standardized field names for structured logging, so log output stays
// consistent across parser, extractor and consolidator components.
const (
	FieldFile       = "file_path"
	FieldVariant    = "variant"
	FieldRecordType = "record_type"
	FieldLine       = "line_number"
	FieldCount      = "count"
	FieldReason     = "reason"
	FieldReportID   = "report_id"
	FieldFormat     = "format"
)
