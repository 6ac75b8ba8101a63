package catalog

import (
	"math"
	"strings"
)

// Matches evaluates the filter against a product locally.
func (f Filter) Matches(p Product) bool {
	if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
		return false
	}
	if len(f.BrandIDs) > 0 && !contains(f.BrandIDs, p.BrandID) {
		return false
	}
	if len(f.Sizes) > 0 && !intersects(f.Sizes, p.Sizes) {
		return false
	}
	if len(f.Colors) > 0 && !intersects(f.Colors, p.Colors) {
		return false
	}
	if len(f.Genders) > 0 && !contains(f.Genders, p.Gender) {
		return false
	}
	if len(f.Ratings) > 0 {
		stars := int(math.Floor(p.Rating))
		ok := false
		for _, min := range f.Ratings {
			if stars >= min {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if f.PriceRange != nil && (p.Price < f.PriceRange.Min || p.Price > f.PriceRange.Max) {
		return false
	}
	if f.SearchTerm != nil {
		term := strings.ToLower(strings.TrimSpace(*f.SearchTerm))
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) && !strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}
	if f.InStockOnly != nil && *f.InStockOnly && !p.InStock {
		return false
	}
	if f.OnSaleOnly != nil && *f.OnSaleOnly && !p.IsOnSale {
		return false
	}
	return true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, s := range b {
		if contains(a, s) {
			return true
		}
	}
	return false
}
