package models

// CompanyData holds the attributes extracted from the single mandatory header
// record (0000) of a bookkeeping file. The first header seen wins; later
// occurrences never overwrite it.
type CompanyData struct {
	Name        string `json:"name" yaml:"name"`
	TaxID       string `json:"taxId" yaml:"tax_id"`
	PeriodStart string `json:"periodStart" yaml:"period_start"`
	PeriodEnd   string `json:"periodEnd" yaml:"period_end"`
	State       string `json:"state" yaml:"state"`
}

// IsZero reports whether no header attributes have been populated.
func (c CompanyData) IsZero() bool {
	return c == CompanyData{}
}

// Statistics carries the per-parse bookkeeping counters. Callers must inspect
// these to detect partial data loss even on a successful parse.
type Statistics struct {
	LinesProcessed  int                `json:"linesProcessed" yaml:"lines_processed"`
	LinesWithErrors int                `json:"linesWithErrors" yaml:"lines_with_errors"`
	ValidRecords    int                `json:"validRecords" yaml:"valid_records"`
	CountsByType    map[RecordType]int `json:"countsByType" yaml:"counts_by_type"`
}

// DistinctTypes returns the number of distinct record types seen.
func (s Statistics) DistinctTypes() int {
	return len(s.CountsByType)
}

// ParseResult is the immutable outcome of parsing one bookkeeping file:
// records grouped by type (file order preserved within a type, first-seen
// order preserved across types), header attributes, and parse statistics.
// Success is false only for fatal conditions (unreadable or empty input with
// zero valid records); per-line malformation is recoverable and counted.
type ParseResult struct {
	Success    bool
	Records    map[RecordType][]Record
	TypeOrder  []RecordType
	Company    CompanyData
	Statistics Statistics
}

// RecordsOf returns the records of the given type in file order, or nil when
// the type is absent.
func (p *ParseResult) RecordsOf(rt RecordType) []Record {
	if p == nil || p.Records == nil {
		return nil
	}
	return p.Records[rt]
}

// HasRecords reports whether at least one record of the given type was parsed.
func (p *ParseResult) HasRecords(rt RecordType) bool {
	return len(p.RecordsOf(rt)) > 0
}
