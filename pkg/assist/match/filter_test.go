package match

import (
	"testing"

	"ai-shopassist-be/pkg/assist/require"
	"ai-shopassist-be/pkg/store"
)

func f(v float64) *float64 { return &v }

var laptops = []store.Product{
	{Name: "Acer Aspire 5 Slim", Brand: "Acer", Price: "$479"},
	{Name: "HP Pavilion SE", Brand: "HP", Price: "$599"},
	{Name: "Lenovo Yoga Slim 6", Brand: "Lenovo", Price: "$899", Features: []string{"OLED display", "16GB RAM"}},
	{Name: "Dell XPS 13 Plus", Brand: "Dell", Price: "$1399", Features: []string{"OLED display"}},
	{Name: "ASUS ROG Strix G16", Brand: "ASUS", Price: "$1799", Features: []string{"RTX 4070", "16GB RAM"}},
	{Name: "MacBook M4 Pro", Brand: "Apple", Price: "$2399"},
	{Name: "Mystery Laptop", Brand: "Generic Brand", Price: "N/A"},
}

func names(products []store.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestMatchStrict(t *testing.T) {
	reqs := &require.Set{Budget: require.Budget{Min: f(500), Max: f(1000)}, Brand: "lenovo"}
	got, tier := Match(reqs, laptops)
	if tier != TierStrict {
		t.Fatalf("tier = %s, want strict", tier)
	}
	if len(got) != 1 || got[0].Name != "Lenovo Yoga Slim 6" {
		t.Errorf("got %v", names(got))
	}
}

func TestMatchBrandRelaxed(t *testing.T) {
	// No Sony laptop exists; the budget still holds.
	reqs := &require.Set{Budget: require.Budget{Max: f(600)}, Brand: "sony"}
	got, tier := Match(reqs, laptops)
	if tier != TierBrandRelaxed {
		t.Fatalf("tier = %s, want brand_relaxed", tier)
	}
	for _, p := range got {
		if p.Price != "$479" && p.Price != "$599" {
			t.Errorf("budget leaked at brand-relaxed tier: %v", p)
		}
	}
}

func TestMatchBudgetRelaxed(t *testing.T) {
	// Nothing costs $2500 or more; widening the floor by 20% reaches the
	// $2399 MacBook while the brand constraint stays on.
	reqs := &require.Set{Budget: require.Budget{Min: f(2500)}, Brand: "apple"}
	got, tier := Match(reqs, laptops)
	if tier != TierBudgetRelaxed {
		t.Fatalf("tier = %s, want budget_relaxed", tier)
	}
	if len(got) != 1 || got[0].Name != "MacBook M4 Pro" {
		t.Errorf("got %v", names(got))
	}
}

func TestMatchFallback(t *testing.T) {
	reqs := &require.Set{Budget: require.Budget{Max: f(50)}, Brand: "nokia"}
	got, tier := Match(reqs, laptops)
	if tier != TierFallback {
		t.Fatalf("tier = %s, want fallback", tier)
	}
	if len(got) != len(laptops) {
		t.Errorf("fallback must return the full candidate list, got %d", len(got))
	}
}

// Each relaxation step only loosens constraints, so every stricter tier's
// result must be contained in the looser tier's accepted set.
func TestRelaxationMonotonicity(t *testing.T) {
	reqs := &require.Set{Budget: require.Budget{Min: f(500), Max: f(1000)}, Brand: "lenovo"}

	strict := filter(laptops, reqs.Budget, reqs.Brand)
	brandRelaxed := filter(laptops, reqs.Budget, "")
	budgetRelaxed := filter(laptops, widen(reqs.Budget), "")

	assertSubset(t, "strict ⊆ brand-relaxed", strict, brandRelaxed)
	assertSubset(t, "brand-relaxed ⊆ budget-relaxed", brandRelaxed, budgetRelaxed)
	assertSubset(t, "budget-relaxed ⊆ fallback", budgetRelaxed, laptops)
}

func assertSubset(t *testing.T, label string, smaller, larger []store.Product) {
	t.Helper()
	index := make(map[string]bool, len(larger))
	for _, p := range larger {
		index[p.Name] = true
	}
	for _, p := range smaller {
		if !index[p.Name] {
			t.Errorf("%s violated: %q missing from larger set", label, p.Name)
		}
	}
}

func TestUnpricedProductsFailAnyBudget(t *testing.T) {
	reqs := &require.Set{Budget: require.Budget{Max: f(5000)}}
	got, _ := Match(reqs, laptops)
	for _, p := range got {
		if p.Name == "Mystery Laptop" {
			t.Error("product without a parseable price matched a bounded budget")
		}
	}
}

func TestRankPrefersFeatureHitsThenPrice(t *testing.T) {
	reqs := &require.Set{Features: []string{"OLED display"}}
	got, tier := Match(reqs, laptops)
	if tier != TierStrict {
		t.Fatalf("tier = %s, want strict", tier)
	}
	if got[0].Name != "Lenovo Yoga Slim 6" || got[1].Name != "Dell XPS 13 Plus" {
		t.Errorf("feature ranking wrong: %v", names(got))
	}
}

func TestCheaperThanIsStrict(t *testing.T) {
	got := CheaperThan(laptops, 599)
	for _, p := range got {
		if p.Name != "Acer Aspire 5 Slim" {
			t.Errorf("price %s is not strictly below 599", p.Price)
		}
	}
	if len(got) != 1 {
		t.Errorf("got %d products, want 1", len(got))
	}
}

func TestAtMostIsInclusive(t *testing.T) {
	got := AtMost(laptops, 599)
	if len(got) != 2 {
		t.Fatalf("got %v, want the two products priced at or below 599", names(got))
	}
	found := false
	for _, p := range got {
		if p.Name == "HP Pavilion SE" {
			found = true
		}
	}
	if !found {
		t.Error("product priced exactly at the limit must be kept")
	}
}

func TestExclude(t *testing.T) {
	rejected := map[string]bool{"MacBook M4 Pro": true, "Dell XPS 13 Plus": true}
	got := Exclude(laptops, rejected)
	if len(got) != len(laptops)-2 {
		t.Fatalf("got %d products, want %d", len(got), len(laptops)-2)
	}
	for _, p := range got {
		if rejected[p.Name] {
			t.Errorf("rejected product %q survived", p.Name)
		}
	}
}

func TestMaxPrice(t *testing.T) {
	max, ok := MaxPrice(laptops)
	if !ok || max != 2399 {
		t.Errorf("MaxPrice = (%v, %v), want (2399, true)", max, ok)
	}
	if _, ok := MaxPrice([]store.Product{{Price: "N/A"}}); ok {
		t.Error("MaxPrice over unpriced set must report not found")
	}
}
