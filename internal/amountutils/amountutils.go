// Package amountutils provides the monetary string handling shared by the
// extraction layer. SPED files carry Brazilian decimal-comma amounts
// ("1234,56", "1.234,56"), while some exports use dotted decimals; both are
// normalized before arithmetic.
package amountutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyRe = regexp.MustCompile(`[R$€£\s]`)

// ParseAmount parses a monetary field into a decimal value. An empty or
// unparsable field yields zero: upstream files are frequently partial, so
// numeric-format defects degrade silently instead of failing the extraction.
func ParseAmount(amountStr string) decimal.Decimal {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(StandardizeAmount(amountStr))
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// ParseAmountStrict parses a monetary field and reports unparsable input
// instead of zeroing it. Used where the caller wants to log the defect.
func ParseAmountStrict(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(StandardizeAmount(amountStr))
}

// StandardizeAmount converts locale-specific amount strings to a form
// decimal.NewFromString accepts. Handles "1.234,56", "1234,56", "1,234.56",
// "1234.56" and currency symbols / stray whitespace.
func StandardizeAmount(amountStr string) string {
	amountStr = currencyRe.ReplaceAllString(amountStr, "")

	hasComma := strings.Contains(amountStr, ",")
	hasDot := strings.Contains(amountStr, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// Brazilian format: dot groups thousands, comma is the decimal mark
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case hasComma:
		parts := strings.Split(amountStr, ",")
		if len(parts[len(parts)-1]) <= 2 {
			// comma as decimal mark (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// comma as thousand separator (1,234)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	return amountStr
}
