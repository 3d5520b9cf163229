package extractor

import "strings"

// accountClass is the bucket an income-statement row contributes to.
type accountClass int

const (
	classNone accountClass = iota
	classGrossRevenue
	classDeduction
	classCost
)

// classificationRule matches an account-group description against known text
// fragments. Rules are evaluated in order and the first match wins.
type classificationRule struct {
	class     accountClass
	fragments []string
}

// classificationRules is the ordered resolution strategy for income-statement
// rows. Priority, highest first:
//  1. revenue deductions ("DEDUCOES DA RECEITA", "(-) DEDUCOES")
//  2. net-revenue rows are excluded: net revenue is computed, never parsed
//  3. gross revenue ("RECEITA BRUTA", "FATURAMENTO BRUTO")
//  4. costs ("CUSTO")
//
// A row matching no rule contributes to no bucket. That silence is a
// tolerance policy, not a defect: bookkeeping taxonomies vary by filer.
var classificationRules = []classificationRule{
	{classDeduction, []string{"DEDUC"}},
	{classNone, []string{"LIQUID"}},
	{classGrossRevenue, []string{"RECEITA BRUT", "RECEITA OPERACIONAL", "FATURAMENTO"}},
	{classCost, []string{"CUSTO"}},
}

var accentReplacer = strings.NewReplacer(
	"Á", "A", "Â", "A", "Ã", "A", "À", "A",
	"É", "E", "Ê", "E",
	"Í", "I",
	"Ó", "O", "Ô", "O", "Õ", "O",
	"Ú", "U",
	"Ç", "C",
)

// classifyAccount resolves the bucket for one account-group description.
func classifyAccount(description string) accountClass {
	normalized := accentReplacer.Replace(strings.ToUpper(description))
	for _, rule := range classificationRules {
		for _, fragment := range rule.fragments {
			if strings.Contains(normalized, fragment) {
				return rule.class
			}
		}
	}
	return classNone
}
