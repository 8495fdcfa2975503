package match

import (
	"sort"
	"strings"

	"ai-shopassist-be/pkg/assist/require"
	"ai-shopassist-be/pkg/catalog"
	"ai-shopassist-be/pkg/store"
)

// Tier names the relaxation level that produced a result set. The
// user-facing text discloses anything past TierStrict.
type Tier int

const (
	TierStrict Tier = iota
	TierBrandRelaxed
	TierBudgetRelaxed
	TierFallback
)

func (t Tier) String() string {
	switch t {
	case TierStrict:
		return "strict"
	case TierBrandRelaxed:
		return "brand_relaxed"
	case TierBudgetRelaxed:
		return "budget_relaxed"
	default:
		return "fallback"
	}
}

// BudgetWiden is the fractional widening applied at the budget-relaxed
// tier. Revisions of the source system disagreed between 15% and 20%;
// 20% is the adopted default and the value is deliberately a variable.
var BudgetWiden = 0.20

// Match applies strict filtering, then progressively relaxes constraints
// until the result is non-empty: brand dropped first, then the budget
// widened by ±BudgetWiden with the brand constraint reinstated, then the
// whole candidate list. Returning nothing is strictly worse than returning
// the closest available options.
func Match(reqs *require.Set, candidates []store.Product) ([]store.Product, Tier) {
	if strict := filter(candidates, reqs.Budget, reqs.Brand); len(strict) > 0 {
		return rank(strict, reqs.Features), TierStrict
	}

	if brandRelaxed := filter(candidates, reqs.Budget, ""); len(brandRelaxed) > 0 {
		return rank(brandRelaxed, reqs.Features), TierBrandRelaxed
	}

	if budgetRelaxed := filter(candidates, widen(reqs.Budget), reqs.Brand); len(budgetRelaxed) > 0 {
		return rank(budgetRelaxed, reqs.Features), TierBudgetRelaxed
	}

	return rank(candidates, reqs.Features), TierFallback
}

// Exclude removes products whose name is present in the given set.
func Exclude(products []store.Product, names map[string]bool) []store.Product {
	if len(names) == 0 {
		return products
	}
	out := make([]store.Product, 0, len(products))
	for _, p := range products {
		if !names[p.Name] {
			out = append(out, p)
		}
	}
	return out
}

// CheaperThan keeps products with a parseable price strictly below limit.
func CheaperThan(products []store.Product, limit float64) []store.Product {
	out := make([]store.Product, 0, len(products))
	for _, p := range products {
		if price, ok := catalog.ParsePrice(p.Price); ok && price < limit {
			out = append(out, p)
		}
	}
	return out
}

// AtMost keeps products with a parseable price at or below limit.
func AtMost(products []store.Product, limit float64) []store.Product {
	out := make([]store.Product, 0, len(products))
	for _, p := range products {
		if price, ok := catalog.ParsePrice(p.Price); ok && price <= limit {
			out = append(out, p)
		}
	}
	return out
}

// MaxPrice returns the highest parseable price in the set.
func MaxPrice(products []store.Product) (float64, bool) {
	found := false
	max := 0.0
	for _, p := range products {
		if price, ok := catalog.ParsePrice(p.Price); ok {
			if !found || price > max {
				max = price
				found = true
			}
		}
	}
	return max, found
}

func filter(candidates []store.Product, budget require.Budget, brand string) []store.Product {
	out := make([]store.Product, 0, len(candidates))
	for _, p := range candidates {
		if !budgetMatches(p, budget) {
			continue
		}
		if brand != "" && !strings.Contains(strings.ToLower(p.Brand), strings.ToLower(brand)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// budgetMatches checks the numeric price against the open-ended range.
// Products with no parseable price fail whenever any bound is set.
func budgetMatches(p store.Product, budget require.Budget) bool {
	if budget.IsZero() {
		return true
	}
	price, ok := catalog.ParsePrice(p.Price)
	if !ok {
		return false
	}
	if budget.Min != nil && price < *budget.Min {
		return false
	}
	if budget.Max != nil && price > *budget.Max {
		return false
	}
	return true
}

func widen(budget require.Budget) require.Budget {
	out := require.Budget{}
	if budget.Min != nil {
		lo := *budget.Min * (1 - BudgetWiden)
		out.Min = &lo
	}
	if budget.Max != nil {
		hi := *budget.Max * (1 + BudgetWiden)
		out.Max = &hi
	}
	return out
}

// rank orders products by how many requested feature phrases appear in
// their specification lines, ties broken by price ascending. With no
// features requested the input order is preserved.
func rank(products []store.Product, features []string) []store.Product {
	if len(products) == 0 {
		return products
	}
	out := make([]store.Product, len(products))
	copy(out, products)
	if len(features) == 0 {
		return out
	}

	score := func(p store.Product) int {
		specs := strings.ToLower(strings.Join(p.Features, " "))
		n := 0
		for _, f := range features {
			f = strings.ToLower(strings.TrimSpace(f))
			if f != "" && strings.Contains(specs, f) {
				n++
			}
		}
		return n
	}

	sort.SliceStable(out, func(i, j int) bool {
		si, sj := score(out[i]), score(out[j])
		if si != sj {
			return si > sj
		}
		return catalog.SortKey(out[i].Price) < catalog.SortKey(out[j].Price)
	})
	return out
}
