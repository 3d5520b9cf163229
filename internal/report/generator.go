// Package report renders a consolidated dataset in the formats consumed by
// the downstream tooling: JSON and YAML for machine use, CSV and XLSX for
// spreadsheet review.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"dmaia/sped-consolidate/internal/logging"
	"dmaia/sped-consolidate/internal/models"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Generator renders consolidated datasets.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger}
}

// Generate renders the dataset in the given format and returns the bytes.
func (g *Generator) Generate(data *models.ConsolidatedData, format string) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("cannot generate report from nil dataset")
	}

	switch format {
	case FormatJSON:
		return g.generateJSON(data)
	case FormatYAML:
		return g.generateYAML(data)
	case FormatCSV:
		return g.generateCSV(data)
	case FormatXLSX:
		return g.generateXLSX(data)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteFile renders the dataset and writes it to outputFile, creating the
// parent directory when needed.
func (g *Generator) WriteFile(data *models.ConsolidatedData, format, outputFile string) error {
	content, err := g.Generate(data, format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	if err := os.WriteFile(outputFile, content, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	g.logger.Info("Report written",
		logging.Field{Key: logging.FieldFile, Value: outputFile},
		logging.Field{Key: logging.FieldFormat, Value: format})
	return nil
}

func (g *Generator) generateJSON(data *models.ConsolidatedData) ([]byte, error) {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return content, nil
}

func (g *Generator) generateYAML(data *models.ConsolidatedData) ([]byte, error) {
	content, err := yaml.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return content, nil
}

// summaryRow is one line of the CSV rendering: a flat section/metric/value
// triple, one row per bucket.
type summaryRow struct {
	Section string `csv:"section"`
	Metric  string `csv:"metric"`
	Value   string `csv:"value"`
}

func (g *Generator) generateCSV(data *models.ConsolidatedData) ([]byte, error) {
	rows := summaryRows(data)
	content, err := gocsv.MarshalString(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return []byte(content), nil
}

func (g *Generator) generateXLSX(data *models.ConsolidatedData) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			g.logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	const sheet = "Consolidated"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	headers := []interface{}{"Section", "Metric", "Value"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write worksheet header: %w", err)
	}

	for i, row := range summaryRows(data) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address worksheet row: %w", err)
		}
		values := []interface{}{row.Section, row.Metric, row.Value}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write worksheet row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// summaryRows flattens the dataset into section/metric/value rows shared by
// the CSV and XLSX renderings.
func summaryRows(data *models.ConsolidatedData) []summaryRow {
	fixed := func(d decimal.Decimal) string { return d.StringFixed(2) }

	rows := []summaryRow{
		{"company", "name", data.Company.Name},
		{"company", "tax_id", data.Company.TaxID},
		{"company", "period_start", data.Company.PeriodStart},
		{"company", "period_end", data.Company.PeriodEnd},
		{"revenue", "gross", fixed(data.Financial.Revenue.Gross)},
		{"revenue", "deductions", fixed(data.Financial.Revenue.Deductions)},
		{"revenue", "net", fixed(data.Financial.Revenue.Net)},
		{"costs", "total", fixed(data.Financial.Costs.Total)},
		{"credits", "icms", fixed(data.Composition.Credits.ICMS)},
		{"credits", "pis", fixed(data.Composition.Credits.PIS)},
		{"credits", "cofins", fixed(data.Composition.Credits.COFINS)},
		{"debits", "icms", fixed(data.Composition.Debits.ICMS)},
	}

	if data.Adjusted != nil && data.TransitionFactor != nil {
		rows = append(rows,
			summaryRow{"transition", "factor", data.TransitionFactor.String()},
			summaryRow{"adjusted_credits", "icms", fixed(data.Adjusted.Credits.ICMS)},
			summaryRow{"adjusted_credits", "pis", fixed(data.Adjusted.Credits.PIS)},
			summaryRow{"adjusted_credits", "cofins", fixed(data.Adjusted.Credits.COFINS)},
			summaryRow{"adjusted_debits", "icms", fixed(data.Adjusted.Debits.ICMS)},
		)
	}

	return rows
}
