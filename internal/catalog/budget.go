package catalog

type BudgetRange struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// BudgetRanges are the total-trip budget options, cheapest first.
var BudgetRanges = []BudgetRange{
	{Key: "budget_under_500", Label: "< $500 USD"},
	{Key: "budget_500_1000", Label: "$500 - $1000 USD"},
	{Key: "budget_1000_2000", Label: "$1000 - $2000 USD"},
	{Key: "budget_2000_3000", Label: "$2000 - $3000 USD"},
	{Key: "budget_over_3000", Label: "> $3000 USD"},
}

// IsBudgetLabel reports whether label is exactly one of the budget labels.
func IsBudgetLabel(label string) bool {
	for _, b := range BudgetRanges {
		if b.Label == label {
			return true
		}
	}
	return false
}

func BudgetLabels() []string {
	labels := make([]string, len(BudgetRanges))
	for i, b := range BudgetRanges {
		labels[i] = b.Label
	}
	return labels
}
