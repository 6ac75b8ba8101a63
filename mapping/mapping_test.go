package mapping

import (
	"testing"

	"storefront.GO/model/entity/catalog"
)

func TestCategoryCodeRoundTrip(t *testing.T) {
	for _, slug := range CategorySlugs() {
		code, ok := CategoryCode(slug)
		if !ok {
			t.Fatalf("CategoryCode(%q) not found", slug)
		}
		if got := CategorySlug(code); got != slug {
			t.Errorf("CategorySlug(%q) = %q, want %q", code, got, slug)
		}
	}
	if _, ok := CategoryCode("yok"); ok {
		t.Errorf("unknown slug resolved")
	}
	if got := CategorySlug("9999"); got != "9999" {
		t.Errorf("CategorySlug(9999) = %q, want pass-through", got)
	}
}

func TestPaletteRoundTrip(t *testing.T) {
	for _, c := range Palette() {
		id, ok := ColorIDForRGB(c.RGB)
		if !ok || id != c.ID {
			t.Fatalf("ColorIDForRGB(%q) = %q, %v; want %q", c.RGB, id, ok, c.ID)
		}
		if got := ColorRGB(id); got != c.RGB {
			t.Errorf("ColorRGB(%q) = %q, want %q", id, got, c.RGB)
		}
		if got, _ := ColorHex(id); got != c.Hex {
			t.Errorf("ColorHex(%q) = %q, want %q", id, got, c.Hex)
		}
	}
}

func TestColorFromName(t *testing.T) {
	cases := map[string]string{
		"Mavi":     "mavi",
		"BLUE":     "mavi",
		"0;0;255":  "mavi",
		"Turkuaz":  "turkuaz",
		"  Siyah ": "siyah",
	}
	for in, want := range cases {
		if got := ColorFromName(in); got != want {
			t.Errorf("ColorFromName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHexFromRGB(t *testing.T) {
	if got, ok := HexFromRGB("255;0;16"); !ok || got != "#ff0010" {
		t.Errorf("HexFromRGB = %q, %v; want #ff0010", got, ok)
	}
	if _, ok := HexFromRGB("red"); ok {
		t.Errorf("HexFromRGB(red) should fail")
	}
}

func TestGender(t *testing.T) {
	if got := GenderLabel(GenderFemale); got != "Kız" {
		t.Errorf("GenderLabel = %q, want Kız", got)
	}
	if got, ok := GenderFromLabel("KIZ"); !ok || got != GenderFemale {
		t.Errorf("GenderFromLabel(KIZ) = %q, %v", got, ok)
	}
	cases := []struct {
		names []string
		want  string
	}{
		{[]string{"Erkek Bebek Giyim"}, GenderMale},
		{[]string{"Kız Bebek"}, GenderFemale},
		{[]string{"Boys"}, GenderMale},
		{[]string{"Oyuncak"}, GenderUnisex},
		{nil, GenderUnisex},
	}
	for _, tc := range cases {
		if got := InferGender(tc.names...); got != tc.want {
			t.Errorf("InferGender(%v) = %q, want %q", tc.names, got, tc.want)
		}
	}
}

func TestSortCode(t *testing.T) {
	if got := SortCode("price-asc"); got != "price-asc" {
		t.Errorf("SortCode(price-asc) = %q", got)
	}
	if got := SortCode("bogus"); got != SortRelevance {
		t.Errorf("SortCode(bogus) = %q, want relevance", got)
	}
	if got := SortCode(""); got != SortRelevance {
		t.Errorf("SortCode(\"\") = %q, want relevance", got)
	}
}

func TestFacetKindOf(t *testing.T) {
	cases := map[string]FacetKind{
		"swatchColors":  FacetColor,
		"size":          FacetSize,
		"gender":        FacetGender,
		"allCategories": FacetCategory,
		"priceValue":    FacetPrice,
		"whatever":      FacetUnknown,
	}
	for code, want := range cases {
		if got := FacetKindOf(code); got != want {
			t.Errorf("FacetKindOf(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestToExternalFilter(t *testing.T) {
	f := catalog.Filter{Colors: []string{"mavi"}, Genders: []string{GenderFemale}}
	got := ToExternalFilter(f)
	if got.Colors[0] != ColorRGB("mavi") {
		t.Errorf("Colors = %v", got.Colors)
	}
	if got.Genders[0] != "Kız" {
		t.Errorf("Genders = %v", got.Genders)
	}
	if f.Colors[0] != "mavi" {
		t.Errorf("input mutated")
	}
}

func TestDefaultFilterOptions(t *testing.T) {
	o := DefaultFilterOptions()
	if len(o.Colors) != len(Palette()) {
		t.Errorf("Colors = %d, want %d", len(o.Colors), len(Palette()))
	}
	if len(o.Ratings) != 5 || o.Ratings[0].ID != "5" {
		t.Errorf("Ratings = %+v", o.Ratings)
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Chicco":            "chicco",
		"  Baby  Jogger!! ": "baby-jogger",
		"Mam & Co.":         "mam-co",
		"---":               "",
	}
	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}
