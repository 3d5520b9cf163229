// Package consolidator merges per-variant extractions into the consolidated
// dataset handed to the downstream normalization and simulation layers. The
// transition schedule is an injected collaborator: given a year it returns
// the fractional implementation percentage of the new tax regime.
package consolidator

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"dmaia/sped-consolidate/internal/extractor"
	"dmaia/sped-consolidate/internal/layout"
	"dmaia/sped-consolidate/internal/logging"
	"dmaia/sped-consolidate/internal/models"
)

// Consolidator orchestrates extraction and cross-variant merging. It is
// constructed per session with explicit dependencies; there is no ambient
// state, so concurrent Consolidate calls are independent.
type Consolidator struct {
	extractor *extractor.Extractor
	schedule  models.ScheduleFunc
	logger    logging.Logger
	now       func() time.Time
}

// New creates a Consolidator. The schedule func may be nil, in which case the
// transition adjustment is unavailable even when requested.
func New(registry *layout.Registry, schedule models.ScheduleFunc, logger logging.Logger) *Consolidator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Consolidator{
		extractor: extractor.New(registry, logger),
		schedule:  schedule,
		logger:    logger,
		now:       time.Now,
	}
}

// Consolidate extracts and merges the supplied parse results into one
// immutable ConsolidatedData. Buckets populated by more than one variant add
// rather than overwrite, and feeding the same variant twice doubles its
// contribution: accumulation is intended, not deduplicated. An empty input
// map degrades to an all-zero dataset with no error.
func (c *Consolidator) Consolidate(results map[models.FileVariant]*models.ParseResult, opts extractor.Options) *models.ConsolidatedData {
	merged := c.extractor.Extract(results, opts)

	data := &models.ConsolidatedData{
		ReportID:    models.NewReportID(),
		GeneratedAt: c.now(),
		Company:     firstCompany(results),
		Financial:   merged.Financial,
		Composition: merged.Composition,
	}

	if opts.ApplyTransitionSchedule {
		c.applySchedule(data)
	}

	c.logger.Info("Consolidation complete",
		logging.Field{Key: logging.FieldReportID, Value: data.ReportID},
		logging.Field{Key: logging.FieldCount, Value: len(results)})
	return data
}

// applySchedule attaches the schedule-scaled composition for the filing
// period's year. The raw composition stays untouched so callers can always
// see the unadjusted evidence.
func (c *Consolidator) applySchedule(data *models.ConsolidatedData) {
	if c.schedule == nil {
		c.logger.Warn("Transition schedule requested but no schedule func was injected")
		return
	}

	year, ok := periodYear(data.Company.PeriodStart)
	if !ok {
		c.logger.Warn("Cannot determine filing-period year, skipping transition adjustment",
			logging.Field{Key: logging.FieldReason, Value: "no parseable period start"})
		return
	}

	factor := ClampFactor(c.schedule(year))
	adjusted := data.Composition.Scale(factor)
	data.TransitionFactor = &factor
	data.Adjusted = &adjusted

	c.logger.Debug("Applied transition schedule",
		logging.Field{Key: "year", Value: year},
		logging.Field{Key: "factor", Value: factor.String()})
}

// firstCompany returns the header attributes of the first successful parse
// result found, scanning variants in presentation order so the choice is
// deterministic across runs.
func firstCompany(results map[models.FileVariant]*models.ParseResult) models.CompanyData {
	for _, variant := range models.AllVariants() {
		if result, ok := results[variant]; ok && result != nil && !result.Company.IsZero() {
			return result.Company
		}
	}
	return models.CompanyData{}
}

// periodYear extracts the year from a SPED date field (ddmmyyyy, with
// dd/mm/yyyy tolerated).
func periodYear(periodStart string) (int, bool) {
	digits := make([]rune, 0, len(periodStart))
	for _, r := range periodStart {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) != 8 {
		return 0, false
	}
	year, err := strconv.Atoi(string(digits[4:]))
	if err != nil || year < 1900 {
		return 0, false
	}
	return year, true
}

// ClampFactor bounds a schedule factor to [0, 1]. Schedule implementations
// outside the module are expected to stay in range; this guard keeps a
// misbehaving collaborator from inflating the adjusted composition.
func ClampFactor(factor decimal.Decimal) decimal.Decimal {
	switch {
	case factor.IsNegative():
		return decimal.Zero
	case factor.GreaterThan(decimal.NewFromInt(1)):
		return decimal.NewFromInt(1)
	}
	return factor
}
