package catalog

import (
	"reflect"
	"testing"
)

func TestMergeOverwritesAndClears(t *testing.T) {
	f := Filter{CategoryID: String("oto-koltugu"), PriceRange: Price(100, 250), Sizes: []string{"0-3 Ay"}}

	got := f.Merge(FilterPatch{
		Set:   Filter{Sizes: []string{"3-6 Ay"}},
		Clear: []FilterKey{KeyPriceRange},
	})

	if got.PriceRange != nil {
		t.Fatalf("PriceRange = %v, want nil", got.PriceRange)
	}
	if got.CategoryID == nil || *got.CategoryID != "oto-koltugu" {
		t.Errorf("CategoryID = %v, want oto-koltugu", got.CategoryID)
	}
	if !reflect.DeepEqual(got.Sizes, []string{"3-6 Ay"}) {
		t.Errorf("Sizes = %v, want [3-6 Ay]", got.Sizes)
	}
	if f.PriceRange == nil {
		t.Errorf("receiver was modified")
	}
}

func TestMergeDropsEmptySlices(t *testing.T) {
	f := Filter{BrandIDs: []string{"chicco"}, Ratings: []int{4}, Sizes: []string{"0-3 Ay"}}
	got := f.Merge(FilterPatch{Set: Filter{BrandIDs: []string{}, Ratings: []int{}}})
	// an empty slice in Set is not nil, so it overwrites and is then normalized away
	if got.Has(KeyBrands) {
		t.Fatalf("BrandIDs = %v, want absent", got.BrandIDs)
	}
	if got.Has(KeyRatings) {
		t.Fatalf("Ratings = %v, want absent", got.Ratings)
	}
	if !got.Has(KeySizes) {
		t.Fatalf("Sizes = %v, want untouched", got.Sizes)
	}
	got = got.Merge(FilterPatch{Set: Filter{Sizes: []string{}}})
	if got.ActiveCount() != 0 {
		t.Errorf("ActiveCount = %d, want 0", got.ActiveCount())
	}
}

func TestCloneKeepsEmptySlices(t *testing.T) {
	c := Filter{Colors: []string{}, Ratings: []int{}}.Clone()
	if c.Colors == nil || c.Ratings == nil {
		t.Errorf("Clone = %+v, want empty non-nil slices", c)
	}
}

func TestActiveCountAndKeys(t *testing.T) {
	f := Filter{
		CategoryID:  String("oto-koltugu"),
		Colors:      []string{"mavi"},
		InStockOnly: Bool(false),
	}
	if n := f.ActiveCount(); n != 3 {
		t.Fatalf("ActiveCount = %d, want 3", n)
	}
	want := []FilterKey{KeyCategory, KeyColors, KeyInStockOnly}
	if got := f.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
}

func TestCloneIsDeep(t *testing.T) {
	f := Filter{Colors: []string{"mavi"}, PriceRange: Price(1, 2)}
	c := f.Clone()
	c.Colors[0] = "kirmizi"
	c.PriceRange.Max = 99
	if f.Colors[0] != "mavi" || f.PriceRange.Max != 2 {
		t.Errorf("clone shares storage with original: %+v", f)
	}
}

func TestMatches(t *testing.T) {
	p := Product{
		Name:        "Chicco Bebek Arabası",
		Description: "Hafif ve katlanabilir",
		CategoryID:  "bebek-arabasi",
		BrandID:     "chicco",
		Price:       150,
		Rating:      4.6,
		Colors:      []string{"mavi", "gri"},
		Sizes:       []string{"0-3 Ay"},
		Gender:      "unisex",
		InStock:     true,
	}

	cases := []struct {
		name string
		f    Filter
		want bool
	}{
		{"empty", Filter{}, true},
		{"category", Filter{CategoryID: String("bebek-arabasi")}, true},
		{"other category", Filter{CategoryID: String("oyuncak")}, false},
		{"brand", Filter{BrandIDs: []string{"joie", "chicco"}}, true},
		{"color", Filter{Colors: []string{"gri"}}, true},
		{"color miss", Filter{Colors: []string{"pembe"}}, false},
		{"rating floor", Filter{Ratings: []int{4}}, true},
		{"rating too high", Filter{Ratings: []int{5}}, false},
		{"price inclusive", Filter{PriceRange: Price(100, 150)}, true},
		{"price out", Filter{PriceRange: Price(0, 149.99)}, false},
		{"search name", Filter{SearchTerm: String("ARABA")}, true},
		{"search description", Filter{SearchTerm: String("katlanabilir")}, true},
		{"search miss", Filter{SearchTerm: String("mama")}, false},
		{"sale false ignored", Filter{OnSaleOnly: Bool(false)}, true},
		{"sale true", Filter{OnSaleOnly: Bool(true)}, false},
		{"stock true", Filter{InStockOnly: Bool(true)}, true},
	}
	for _, tc := range cases {
		if got := tc.f.Matches(p); got != tc.want {
			t.Errorf("%s: Matches = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestOptionsMergeFrom(t *testing.T) {
	cur := FilterOptions{Sizes: []FilterOption{{ID: "0-3 Ay"}}, Brands: []FilterOption{{ID: "chicco"}}}
	next := FilterOptions{Brands: []FilterOption{{ID: "joie"}}}
	got := cur.MergeFrom(next)
	if len(got.Sizes) != 1 || got.Brands[0].ID != "joie" {
		t.Errorf("MergeFrom = %+v", got)
	}
}
