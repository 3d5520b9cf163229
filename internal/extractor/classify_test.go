package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAccount(t *testing.T) {
	tests := []struct {
		description string
		want        accountClass
	}{
		{"RECEITA BRUTA DE VENDAS E SERVIÇOS", classGrossRevenue},
		{"receita operacional bruta", classGrossRevenue},
		{"FATURAMENTO BRUTO", classGrossRevenue},
		{"(-) DEDUÇÕES DA RECEITA BRUTA", classDeduction},
		{"DEDUCOES", classDeduction},
		{"RECEITA LÍQUIDA DE VENDAS", classNone},
		{"CUSTO DAS MERCADORIAS VENDIDAS", classCost},
		{"CUSTO DOS SERVIÇOS PRESTADOS", classCost},
		{"DESPESAS FINANCEIRAS", classNone},
		{"", classNone},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyAccount(tt.description))
		})
	}
}

func TestClassifyAccountDeductionBeatsRevenue(t *testing.T) {
	// Rule order is the documented priority: a row mentioning both the
	// deduction and revenue fragments is a deduction.
	assert.Equal(t, classDeduction, classifyAccount("DEDUÇÕES DA RECEITA BRUTA"))
}
