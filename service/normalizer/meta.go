package normalizer

import (
	"storefront.GO/mapping"
	"storefront.GO/model/entity/catalog"
	"storefront.GO/model/payload"
)

// Categories keys each category by its slug. Unmapped codes keep the code.
func Categories(raw []payload.Category) []catalog.Category {
	out := make([]catalog.Category, 0, len(raw))
	for _, c := range raw {
		out = append(out, catalog.Category{ID: mapping.CategorySlug(c.Code), Code: c.Code, Name: c.Name})
	}
	return out
}

// Brands keys each brand by its code, or the slug of its name without one.
func Brands(raw []payload.Brand) []catalog.Brand {
	out := make([]catalog.Brand, 0, len(raw))
	for _, b := range raw {
		id := b.Code
		if id == "" {
			id = mapping.Slug(b.Name)
		}
		out = append(out, catalog.Brand{ID: id, Name: b.Name})
	}
	return out
}
