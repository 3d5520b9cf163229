// Package models defines the data model shared by the SPED record parser, the
// financial extractor and the consolidation orchestrator.
package models

// RecordType is the short alphanumeric code identifying the semantic kind of a
// line within a SPED bookkeeping file (e.g. "0000", "C170", "E110").
type RecordType string

// Record types referenced by the seed layout registry.
const (
	RecordTypeHeader          RecordType = "0000"
	RecordTypeItem            RecordType = "0200"
	RecordTypeDocument        RecordType = "C100"
	RecordTypeDocumentItem    RecordType = "C170"
	RecordTypeICMSSummary     RecordType = "E110"
	RecordTypeIncomeStatement RecordType = "J150"
)

// FileVariant identifies which of the supported bookkeeping file families a
// parse result came from. Field layouts for a given RecordType differ by
// variant; the same code can carry different semantics per variant.
type FileVariant string

const (
	// VariantECD is the Escrituração Contábil Digital (accounting books,
	// including the income statement used for revenue and cost derivation).
	VariantECD FileVariant = "ecd"

	// VariantEFDICMS is the EFD ICMS/IPI file (state goods-movement tax).
	VariantEFDICMS FileVariant = "efd-icms"

	// VariantEFDContrib is the EFD Contribuições file (PIS and COFINS
	// federal contributions, reported per transaction line).
	VariantEFDContrib FileVariant = "efd-contribuicoes"
)

// AllVariants lists the supported file variants in presentation order.
func AllVariants() []FileVariant {
	return []FileVariant{VariantECD, VariantEFDICMS, VariantEFDContrib}
}

// IsValid reports whether v is one of the supported file variants.
func (v FileVariant) IsValid() bool {
	switch v {
	case VariantECD, VariantEFDICMS, VariantEFDContrib:
		return true
	}
	return false
}

// Record is an ordered sequence of field strings extracted from one file line,
// tagged with its RecordType. Field positions are meaningful only relative to
// (RecordType, FileVariant); the field count is deliberately not validated
// against a canonical schema, so short or long records are retained verbatim.
type Record struct {
	Type   RecordType
	Fields []string
}

// Field returns the 0-based field at idx, or the empty string when the record
// is shorter than idx+1. Callers resolving layout offsets use this to avoid
// out-of-range reads on truncated records.
func (r Record) Field(idx int) string {
	if idx < 0 || idx >= len(r.Fields) {
		return ""
	}
	return r.Fields[idx]
}
