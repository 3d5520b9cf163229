package spedparser

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"dmaia/sped-consolidate/internal/logging"
	"dmaia/sped-consolidate/internal/models"
)

// ValidateFormat reports whether the file looks like a SPED bookkeeping file:
// its first non-blank line must be a delimiter-framed 0000 header record.
func (p *Parser) ValidateFormat(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			p.logger.WithError(cerr).Warn("Failed to close file")
		}
	}()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, ok := splitRecord(line)
		valid := ok && rec.Type == models.RecordTypeHeader
		if !valid {
			p.logger.WithField(logging.FieldFile, path).
				Debug("First non-blank line is not a 0000 header record")
		}
		return valid, nil
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("error reading file: %w", err)
	}
	return false, nil
}

// DetectVariant guesses the originating file family of a parse result from
// the record types it contains. Used when the caller does not state the
// variant explicitly. Priority: an income-statement block marks an ECD file,
// an ICMS apuration block marks an EFD ICMS/IPI file, and document lines
// without either mark an EFD Contribuições file.
func DetectVariant(result *models.ParseResult) (models.FileVariant, bool) {
	switch {
	case result == nil:
		return "", false
	case result.HasRecords(models.RecordTypeIncomeStatement):
		return models.VariantECD, true
	case result.HasRecords(models.RecordTypeICMSSummary):
		return models.VariantEFDICMS, true
	case result.HasRecords(models.RecordTypeDocumentItem) || result.HasRecords(models.RecordTypeDocument):
		return models.VariantEFDContrib, true
	}
	return "", false
}
