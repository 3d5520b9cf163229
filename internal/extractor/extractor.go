// Package extractor interprets parsed SPED records by file variant and
// aggregates them into consolidated financial figures and a tax composition.
// All degradation is silent zeroing: upstream files are frequently partial,
// so malformed or missing data must never fail the extraction.
package extractor

import (
	"github.com/shopspring/decimal"

	"dmaia/sped-consolidate/internal/amountutils"
	"dmaia/sped-consolidate/internal/layout"
	"dmaia/sped-consolidate/internal/logging"
	"dmaia/sped-consolidate/internal/models"
	"dmaia/sped-consolidate/internal/parsererror"
)

// Options carries the extraction switches. ApplyTransitionSchedule is a
// pass-through flag consumed by the consolidation orchestrator; the schedule
// computation itself is an injected external collaborator.
type Options struct {
	ApplyTransitionSchedule bool
}

// Extractor derives financial and tax-composition data from parse results.
// Field meanings depend on the originating file variant, resolved through the
// layout registry; the extractor itself holds no per-call state.
type Extractor struct {
	registry *layout.Registry
	logger   logging.Logger
}

// New creates an Extractor bound to a layout registry.
func New(registry *layout.Registry, logger logging.Logger) *Extractor {
	if registry == nil {
		registry = layout.NewRegistry()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Extractor{registry: registry, logger: logger}
}

// Extract interprets the supplied parse results, keyed by file variant, and
// merges each variant's contribution by field-wise summation. Absent variants
// yield zero buckets; an empty map yields an all-zero extraction. Repeated
// evidence accumulates rather than deduplicates.
func (e *Extractor) Extract(results map[models.FileVariant]*models.ParseResult, opts Options) models.Extraction {
	var merged models.Extraction

	for variant, result := range results {
		if !variant.IsValid() {
			e.logger.Warn("Skipping parse result with unknown file variant",
				logging.Field{Key: logging.FieldVariant, Value: string(variant)})
			continue
		}
		if result == nil || !result.Success {
			e.logger.Debug("Skipping absent or failed parse result",
				logging.Field{Key: logging.FieldVariant, Value: string(variant)})
			continue
		}
		merged = merged.Add(e.ExtractVariant(variant, result))
	}

	merged.Financial.Revenue.Net = merged.Financial.Revenue.Gross.Sub(merged.Financial.Revenue.Deductions)
	return merged
}

// ExtractVariant derives one variant's contribution. Each variant populates
// its own buckets: ECD feeds revenue and costs, EFD ICMS/IPI feeds the ICMS
// debit/credit totals, EFD Contribuições feeds the PIS and COFINS credits.
func (e *Extractor) ExtractVariant(variant models.FileVariant, result *models.ParseResult) models.Extraction {
	switch variant {
	case models.VariantECD:
		return e.extractIncomeStatement(result)
	case models.VariantEFDICMS:
		return e.extractICMSSummary(result)
	case models.VariantEFDContrib:
		return e.extractContributions(result)
	}
	return models.Extraction{}
}

// extractIncomeStatement scans the J150 rows of an ECD file, classifies each
// by its account-group description and sums the declared value into the
// matching bucket. Net revenue is computed, never parsed.
func (e *Extractor) extractIncomeStatement(result *models.ParseResult) models.Extraction {
	var out models.Extraction

	l, err := e.registry.Lookup(models.VariantECD, models.RecordTypeIncomeStatement)
	if err != nil {
		e.logger.WithError(err).Warn("Income-statement extraction skipped")
		return out
	}

	for _, rec := range result.RecordsOf(models.RecordTypeIncomeStatement) {
		description := l.FieldFor(rec, layout.RoleDescription)
		value := amountutils.ParseAmount(l.FieldFor(rec, layout.RoleValue)).Abs()

		switch classifyAccount(description) {
		case classGrossRevenue:
			out.Financial.Revenue.Gross = out.Financial.Revenue.Gross.Add(value)
		case classDeduction:
			out.Financial.Revenue.Deductions = out.Financial.Revenue.Deductions.Add(value)
		case classCost:
			out.Financial.Costs.Total = out.Financial.Costs.Total.Add(value)
		default:
			// Unrecognized account groups contribute to no bucket.
		}
	}

	out.Financial.Revenue.Net = out.Financial.Revenue.Gross.Sub(out.Financial.Revenue.Deductions)
	return out
}

// extractICMSSummary reads the period totals from the E110 record of an EFD
// ICMS/IPI file. The record occurs at most once per apuration block and its
// values are already period totals, so there is no accumulation.
func (e *Extractor) extractICMSSummary(result *models.ParseResult) models.Extraction {
	var out models.Extraction

	records := result.RecordsOf(models.RecordTypeICMSSummary)
	if len(records) == 0 {
		return out
	}

	l, err := e.registry.Lookup(models.VariantEFDICMS, models.RecordTypeICMSSummary)
	if err != nil {
		e.logger.WithError(err).Warn("ICMS summary extraction skipped")
		return out
	}

	rec := records[0]
	out.Composition.Debits.ICMS = e.parseSummaryField(l.FieldFor(rec, layout.RoleTotalDebits), layout.RoleTotalDebits)
	out.Composition.Credits.ICMS = e.parseSummaryField(l.FieldFor(rec, layout.RoleTotalCredits), layout.RoleTotalCredits)

	if len(records) > 1 {
		e.logger.Warn("Multiple E110 records found, using the first",
			logging.Field{Key: logging.FieldCount, Value: len(records)})
	}
	return out
}

// parseSummaryField parses one E110 period total. Numeric-format defects are
// logged and degrade to zero; the period totals are load-bearing enough to be
// worth the trace.
func (e *Extractor) parseSummaryField(value string, role layout.Role) decimal.Decimal {
	amount, err := amountutils.ParseAmountStrict(value)
	if err != nil {
		e.logger.WithError(&parsererror.DataExtractionError{
			Variant: string(models.VariantEFDICMS),
			Field:   string(role),
			Reason:  "unparsable monetary value",
			Err:     err,
		}).Warn("Treating unparsable period total as zero")
		return decimal.Zero
	}
	return amount
}

// extractContributions accumulates the PIS and COFINS values carried by every
// C170 document line of an EFD Contribuições file into the credit buckets.
// Accumulation runs over all lines regardless of operation direction.
func (e *Extractor) extractContributions(result *models.ParseResult) models.Extraction {
	var out models.Extraction

	l, err := e.registry.Lookup(models.VariantEFDContrib, models.RecordTypeDocumentItem)
	if err != nil {
		e.logger.WithError(err).Warn("Contribution extraction skipped")
		return out
	}

	for _, rec := range result.RecordsOf(models.RecordTypeDocumentItem) {
		pis := amountutils.ParseAmount(l.FieldFor(rec, layout.RolePISValue))
		cofins := amountutils.ParseAmount(l.FieldFor(rec, layout.RoleCOFINSValue))
		out.Composition.Credits.PIS = out.Composition.Credits.PIS.Add(pis)
		out.Composition.Credits.COFINS = out.Composition.Credits.COFINS.Add(cofins)
	}
	return out
}
