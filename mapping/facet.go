package mapping

import "strings"

// FacetKind enumerates the facet families the listing understands.
type FacetKind int

const (
	FacetUnknown FacetKind = iota
	FacetColor
	FacetSize
	FacetGender
	FacetRating
	FacetBrand
	FacetCategory
	FacetPrice
)

func (k FacetKind) String() string {
	switch k {
	case FacetColor:
		return "color"
	case FacetSize:
		return "size"
	case FacetGender:
		return "gender"
	case FacetRating:
		return "rating"
	case FacetBrand:
		return "brand"
	case FacetCategory:
		return "category"
	case FacetPrice:
		return "price"
	default:
		return "unknown"
	}
}

// facetCodes maps lowercased search API facet codes to kinds.
var facetCodes = map[string]FacetKind{
	"swatchcolors":  FacetColor,
	"color":         FacetColor,
	"renk":          FacetColor,
	"size":          FacetSize,
	"beden":         FacetSize,
	"yas":           FacetSize,
	"gender":        FacetGender,
	"cinsiyet":      FacetGender,
	"rating":        FacetRating,
	"reviewrating":  FacetRating,
	"brand":         FacetBrand,
	"marka":         FacetBrand,
	"category":      FacetCategory,
	"allcategories": FacetCategory,
	"pricevalue":    FacetPrice,
	"pricerange":    FacetPrice,
}

// FacetKindOf resolves a facet code. Unrecognized codes yield FacetUnknown.
func FacetKindOf(code string) FacetKind {
	if k, ok := facetCodes[strings.ToLower(strings.TrimSpace(code))]; ok {
		return k
	}
	return FacetUnknown
}
