// Package query serializes a listing filter into the colon-delimited clause
// grammar accepted by the product search endpoint.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"storefront.GO/mapping"
	"storefront.GO/model/entity/catalog"
)

const sep = ":"

// Build returns the search query for filter and sortBy. The sort clause always
// comes first; filter clauses follow in a fixed order. Gender and color values
// are written literally, so callers pass external codes (see
// mapping.ToExternalFilter).
func Build(filter *catalog.Filter, sortBy string) string {
	clauses := []string{mapping.SortCode(sortBy)}
	if filter == nil {
		return clauses[0]
	}
	f := *filter

	if f.CategoryID != nil {
		if code, ok := mapping.CategoryCode(*f.CategoryID); ok {
			clauses = append(clauses, "allCategories", code, "category", strconv.Quote(code))
		}
	}
	for _, id := range f.BrandIDs {
		clauses = append(clauses, "brand", id)
	}
	for _, v := range f.Sizes {
		clauses = append(clauses, "size", v)
	}
	for _, v := range f.Genders {
		clauses = append(clauses, "gender", v)
	}
	for _, v := range f.Colors {
		clauses = append(clauses, "swatchColors", v)
	}
	for _, n := range f.Ratings {
		clauses = append(clauses, "rating", mapping.RatingLabel(n))
	}
	if f.SearchTerm != nil {
		if term := strings.TrimSpace(*f.SearchTerm); term != "" {
			clauses = append(clauses, "text", EscapeText(term))
		}
	}
	if f.PriceRange != nil {
		min, max := formatPrice(f.PriceRange.Min), formatPrice(f.PriceRange.Max)
		clauses = append(clauses,
			"priceValue", "["+min+" TO "+max+"]",
			"priceRange", min+" - "+max+" TL")
	}
	if f.InStockOnly != nil && *f.InStockOnly {
		clauses = append(clauses, "inStockFlag", "true")
	}
	if f.OnSaleOnly != nil && *f.OnSaleOnly {
		clauses = append(clauses, "onSale", "true")
	}
	return strings.Join(clauses, sep)
}

// EscapeText percent-encodes a free-text term, spaces as %20.
func EscapeText(term string) string {
	return strings.ReplaceAll(url.QueryEscape(term), "+", "%20")
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
