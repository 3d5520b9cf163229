package amountutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"BrazilianDecimalComma", "1234,56", "1234.56"},
		{"BrazilianThousands", "1.234,56", "1234.56"},
		{"BrazilianMillions", "1.234.567,89", "1234567.89"},
		{"DottedDecimal", "1234.56", "1234.56"},
		{"USThousands", "1,234.56", "1234.56"},
		{"CommaThousandsOnly", "1,234", "1234.00"},
		{"Integer", "500", "500.00"},
		{"Negative", "-1000,00", "-1000.00"},
		{"CurrencyPrefix", "R$ 1.234,56", "1234.56"},
		{"Empty", "", "0.00"},
		{"Whitespace", "   ", "0.00"},
		{"Garbage", "N/D", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.input).StringFixed(2))
		})
	}
}

func TestParseAmountStrict(t *testing.T) {
	amount, err := ParseAmountStrict("1.234,56")
	assert.NoError(t, err)
	assert.Equal(t, "1234.56", amount.StringFixed(2))

	amount, err = ParseAmountStrict("")
	assert.NoError(t, err)
	assert.True(t, amount.IsZero())

	_, err = ParseAmountStrict("N/D")
	assert.Error(t, err)
}

func TestStandardizeAmount(t *testing.T) {
	assert.Equal(t, "1234.56", StandardizeAmount("1.234,56"))
	assert.Equal(t, "1234.56", StandardizeAmount("1,234.56"))
	assert.Equal(t, "1234", StandardizeAmount("1,234"))
	assert.Equal(t, "1234.56", StandardizeAmount("R$1.234,56"))
}
