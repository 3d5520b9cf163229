package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Revenue holds the revenue figures derived from the income statement.
// Net is always computed as Gross minus Deductions, never parsed.
type Revenue struct {
	Gross      decimal.Decimal `json:"gross" yaml:"gross"`
	Deductions decimal.Decimal `json:"deductions" yaml:"deductions"`
	Net        decimal.Decimal `json:"net" yaml:"net"`
}

// Costs holds the cost figures derived from the income statement.
type Costs struct {
	Total decimal.Decimal `json:"total" yaml:"total"`
}

// FinancialData is the consolidated revenue and cost dataset. It is a value
// object created once per extraction and consumed read-only downstream.
type FinancialData struct {
	Revenue Revenue `json:"revenue" yaml:"revenue"`
	Costs   Costs   `json:"costs" yaml:"costs"`
}

// Add returns the field-wise sum of two FinancialData values. Net revenue is
// recomputed from the summed gross and deductions.
func (f FinancialData) Add(other FinancialData) FinancialData {
	sum := FinancialData{
		Revenue: Revenue{
			Gross:      f.Revenue.Gross.Add(other.Revenue.Gross),
			Deductions: f.Revenue.Deductions.Add(other.Revenue.Deductions),
		},
		Costs: Costs{
			Total: f.Costs.Total.Add(other.Costs.Total),
		},
	}
	sum.Revenue.Net = sum.Revenue.Gross.Sub(sum.Revenue.Deductions)
	return sum
}

// TaxTotals holds one side (credit or debit) of the per-tax totals.
type TaxTotals struct {
	ICMS   decimal.Decimal `json:"icms" yaml:"icms"`
	PIS    decimal.Decimal `json:"pis" yaml:"pis"`
	COFINS decimal.Decimal `json:"cofins" yaml:"cofins"`
}

// Add returns the field-wise sum of two TaxTotals values.
func (t TaxTotals) Add(other TaxTotals) TaxTotals {
	return TaxTotals{
		ICMS:   t.ICMS.Add(other.ICMS),
		PIS:    t.PIS.Add(other.PIS),
		COFINS: t.COFINS.Add(other.COFINS),
	}
}

// Scale returns the totals multiplied by the given factor.
func (t TaxTotals) Scale(factor decimal.Decimal) TaxTotals {
	return TaxTotals{
		ICMS:   t.ICMS.Mul(factor),
		PIS:    t.PIS.Mul(factor),
		COFINS: t.COFINS.Mul(factor),
	}
}

// TaxComposition tracks credits and debits independently per tax. A record
// contributes to at most one side per tax per extraction rule.
type TaxComposition struct {
	Credits TaxTotals `json:"credits" yaml:"credits"`
	Debits  TaxTotals `json:"debits" yaml:"debits"`
}

// Add returns the field-wise sum of two compositions. Overlapping buckets add
// rather than overwrite: each variant reports a non-overlapping slice of the
// same fiscal period, and repeated inputs accumulate by design.
func (t TaxComposition) Add(other TaxComposition) TaxComposition {
	return TaxComposition{
		Credits: t.Credits.Add(other.Credits),
		Debits:  t.Debits.Add(other.Debits),
	}
}

// Scale returns the composition scaled by the given factor on both sides.
func (t TaxComposition) Scale(factor decimal.Decimal) TaxComposition {
	return TaxComposition{
		Credits: t.Credits.Scale(factor),
		Debits:  t.Debits.Scale(factor),
	}
}

// Extraction pairs the financial dataset with the tax composition produced by
// one extractor run.
type Extraction struct {
	Financial   FinancialData  `json:"financialData" yaml:"financial_data"`
	Composition TaxComposition `json:"taxComposition" yaml:"tax_composition"`
}

// Add returns the field-wise sum of two extractions.
func (e Extraction) Add(other Extraction) Extraction {
	return Extraction{
		Financial:   e.Financial.Add(other.Financial),
		Composition: e.Composition.Add(other.Composition),
	}
}

// ScheduleFunc is the injected transition-schedule collaborator: given a year
// it returns the fractional implementation percentage of the new tax regime,
// in [0, 1]. The schedule itself is consumed, never computed, by this module.
type ScheduleFunc func(year int) decimal.Decimal

// ConsolidatedData is the final dataset handed to the downstream simulation
// and presentation layers. AdjustedComposition is present only when a
// transition schedule was applied; TransitionFactor then records the factor
// that was used.
type ConsolidatedData struct {
	ReportID         string           `json:"reportId" yaml:"report_id"`
	GeneratedAt      time.Time        `json:"generatedAt" yaml:"generated_at"`
	Company          CompanyData      `json:"company" yaml:"company"`
	Financial        FinancialData    `json:"financialData" yaml:"financial_data"`
	Composition      TaxComposition   `json:"taxComposition" yaml:"tax_composition"`
	TransitionFactor *decimal.Decimal `json:"transitionFactor,omitempty" yaml:"transition_factor,omitempty"`
	Adjusted         *TaxComposition  `json:"adjustedComposition,omitempty" yaml:"adjusted_composition,omitempty"`
}

// NewReportID returns a fresh identifier for a consolidation run.
func NewReportID() string {
	return uuid.NewString()
}
