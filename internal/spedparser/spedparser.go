// Package spedparser implements the record parser for SPED bookkeeping files:
// pipe-delimited flat files whose lines are typed records. Parsing is a pure,
// single-pass transformation of in-memory text; malformed lines are counted
// and skipped, never fatal.
package spedparser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"dmaia/sped-consolidate/internal/layout"
	"dmaia/sped-consolidate/internal/logging"
	"dmaia/sped-consolidate/internal/models"
)

const delimiter = "|"

// Parser turns raw file content into a ParseResult. It is constructed once
// per session with its layout registry and logger and is safe for concurrent
// use: each Parse call is a pure function of its input.
type Parser struct {
	registry *layout.Registry
	logger   logging.Logger
}

// New creates a Parser. A nil logger falls back to a default logrus adapter.
func New(registry *layout.Registry, logger logging.Logger) *Parser {
	if registry == nil {
		registry = layout.NewRegistry()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Parser{registry: registry, logger: logger}
}

// Parse reads the full textual content of one bookkeeping file and returns
// its ParseResult. The returned error is non-nil only when the input cannot
// be read at all; per-line malformation is recoverable and reflected in the
// statistics instead.
func (p *Parser) Parse(r io.Reader) (*models.ParseResult, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		p.logger.WithError(err).Error("Failed to read bookkeeping file content")
		return &models.ParseResult{Success: false}, fmt.Errorf("error reading input: %w", err)
	}
	return p.ParseContent(string(content)), nil
}

// ParseFile parses the bookkeeping file at the given path.
func (p *Parser) ParseFile(path string) (*models.ParseResult, error) {
	p.logger.WithField(logging.FieldFile, path).Info("Parsing bookkeeping file")

	f, err := os.Open(path)
	if err != nil {
		p.logger.WithError(err).Error("Failed to open bookkeeping file")
		return &models.ParseResult{Success: false}, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			p.logger.WithError(cerr).Warn("Failed to close file")
		}
	}()

	return p.Parse(f)
}

// ParseContent parses in-memory file content. Every line increments the
// processed counter; lines failing the framing rule increment the error
// counter; accepted records are grouped by type in file order. Success is
// false only when the whole file yields zero valid records.
func (p *Parser) ParseContent(content string) *models.ParseResult {
	result := &models.ParseResult{
		Records: make(map[models.RecordType][]models.Record),
		Statistics: models.Statistics{
			CountsByType: make(map[models.RecordType]int),
		},
	}

	lines := strings.Split(content, "\n")
	// A file-terminating newline is not an extra line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	headerLayout := p.registry.HeaderLayout()

	for i, rawLine := range lines {
		result.Statistics.LinesProcessed++

		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		rec, ok := splitRecord(line)
		if !ok {
			result.Statistics.LinesWithErrors++
			p.logger.Debug("Skipping malformed line",
				logging.Field{Key: logging.FieldLine, Value: i + 1})
			continue
		}

		result.Statistics.ValidRecords++
		result.Statistics.CountsByType[rec.Type]++
		if _, seen := result.Records[rec.Type]; !seen {
			result.TypeOrder = append(result.TypeOrder, rec.Type)
		}
		result.Records[rec.Type] = append(result.Records[rec.Type], rec)

		// First header wins; later 0000 records never overwrite it.
		if rec.Type == models.RecordTypeHeader && result.Company.IsZero() {
			result.Company = extractCompany(rec, headerLayout)
		}
	}

	result.Success = result.Statistics.ValidRecords > 0
	if !result.Success {
		p.logger.Warn("No valid records found in input",
			logging.Field{Key: logging.FieldCount, Value: result.Statistics.LinesProcessed})
	} else {
		p.logger.Info("Parsed bookkeeping file",
			logging.Field{Key: "valid_records", Value: result.Statistics.ValidRecords},
			logging.Field{Key: "error_lines", Value: result.Statistics.LinesWithErrors},
			logging.Field{Key: "record_types", Value: len(result.TypeOrder)})
	}

	return result
}

// splitRecord applies the framing and validity rules to one trimmed non-empty
// line. A candidate is delimiter-framed (leading and trailing "|") and yields
// a non-empty record type as its first field. All fields strictly between the
// type token and the trailing delimiter are kept in order, empty fields
// included: positions are semantically meaningful placeholders.
func splitRecord(line string) (models.Record, bool) {
	if !strings.HasPrefix(line, delimiter) || !strings.HasSuffix(line, delimiter) {
		return models.Record{}, false
	}

	parts := strings.Split(line, delimiter)
	// parts[0] and parts[len-1] are the empty strings outside the framing.
	if len(parts) < 3 || parts[1] == "" {
		return models.Record{}, false
	}

	return models.Record{
		Type:   models.RecordType(parts[1]),
		Fields: parts[2 : len(parts)-1],
	}, true
}

func extractCompany(rec models.Record, l layout.Layout) models.CompanyData {
	return models.CompanyData{
		Name:        l.FieldFor(rec, layout.RoleCompanyName),
		TaxID:       l.FieldFor(rec, layout.RoleTaxID),
		PeriodStart: l.FieldFor(rec, layout.RolePeriodStart),
		PeriodEnd:   l.FieldFor(rec, layout.RolePeriodEnd),
		State:       l.FieldFor(rec, layout.RoleState),
	}
}
