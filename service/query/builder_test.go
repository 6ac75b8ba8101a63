package query

import (
	"strings"
	"testing"

	"storefront.GO/mapping"
	"storefront.GO/model/entity/catalog"
)

func TestBuildEmpty(t *testing.T) {
	if got := Build(nil, "relevance"); got != "relevance" {
		t.Fatalf("Build(nil) = %q, want relevance", got)
	}
	if got := Build(&catalog.Filter{}, "price-desc"); got != "price-desc" {
		t.Errorf("Build(empty) = %q, want price-desc", got)
	}
}

func TestBuildUnknownSort(t *testing.T) {
	for _, s := range []string{"", "cheapest", "RELEVANCE"} {
		got := Build(nil, s)
		if got != "relevance" {
			t.Errorf("Build(nil, %q) = %q, want relevance", s, got)
		}
	}
}

func TestBuildCategory(t *testing.T) {
	got := Build(&catalog.Filter{CategoryID: catalog.String("bebek-arabasi")}, "relevance")
	want := `relevance:allCategories:3779:category:"3779"`
	if got != want {
		t.Fatalf("Build = %q, want %q", got, want)
	}
	if n := strings.Count(got, "3779"); n != 2 {
		t.Errorf("3779 appears %d times, want 2", n)
	}
}

func TestBuildUnknownCategorySkipped(t *testing.T) {
	got := Build(&catalog.Filter{CategoryID: catalog.String("uzay-gemisi")}, "relevance")
	if got != "relevance" {
		t.Errorf("Build = %q, want relevance", got)
	}
}

func TestBuildPriceRange(t *testing.T) {
	got := Build(&catalog.Filter{PriceRange: catalog.Price(100, 250)}, "relevance")
	want := "relevance:priceValue:[100 TO 250]:priceRange:100 - 250 TL"
	if got != want {
		t.Fatalf("Build = %q, want %q", got, want)
	}
	got = Build(&catalog.Filter{PriceRange: catalog.Price(99.5, 100)}, "relevance")
	if !strings.Contains(got, "[99.5 TO 100]") {
		t.Errorf("Build = %q, want fractional bound kept", got)
	}
}

func TestBuildClauseOrder(t *testing.T) {
	f := catalog.Filter{
		OnSaleOnly:  catalog.Bool(true),
		InStockOnly: catalog.Bool(true),
		PriceRange:  catalog.Price(0, 50),
		SearchTerm:  catalog.String("ıslak mendil"),
		Ratings:     []int{4},
		Colors:      []string{"0;0;255"},
		Genders:     []string{"Kız"},
		Sizes:       []string{"0-3 Ay"},
		BrandIDs:    []string{"chicco", "joie"},
		CategoryID:  catalog.String("oto-koltugu"),
	}
	got := Build(&f, "price-asc")
	want := `price-asc:allCategories:3780:category:"3780"` +
		`:brand:chicco:brand:joie` +
		`:size:0-3 Ay` +
		`:gender:Kız` +
		`:swatchColors:0;0;255` +
		`:rating:4* ve üzeri` +
		`:text:%C4%B1slak%20mendil` +
		`:priceValue:[0 TO 50]:priceRange:0 - 50 TL` +
		`:inStockFlag:true` +
		`:onSale:true`
	if got != want {
		t.Fatalf("Build =\n%q\nwant\n%q", got, want)
	}
}

func TestBuildFalseFlagsOmitted(t *testing.T) {
	f := catalog.Filter{InStockOnly: catalog.Bool(false), OnSaleOnly: catalog.Bool(false)}
	if got := Build(&f, "relevance"); got != "relevance" {
		t.Errorf("Build = %q, want relevance", got)
	}
}

func TestBuildDeterministic(t *testing.T) {
	f := mapping.ToExternalFilter(catalog.Filter{
		Colors:  []string{"mavi", "kirmizi"},
		Genders: []string{mapping.GenderMale},
	})
	a, b := Build(&f, "newlyToOld"), Build(&f, "newlyToOld")
	if a != b {
		t.Fatalf("Build not deterministic: %q vs %q", a, b)
	}
	want := "newlyToOld:gender:Erkek:swatchColors:0;0;255:swatchColors:255;0;0"
	if a != want {
		t.Errorf("Build = %q, want %q", a, want)
	}
}
