package normalizer

import (
	"strconv"
	"strings"

	"storefront.GO/mapping"
	"storefront.GO/model/entity/catalog"
	"storefront.GO/model/payload"
)

// Facets converts search facets into filter option lists. Facets of unknown,
// category or price kind are ignored. Lists with no source facet stay empty.
func (n *Normalizer) Facets(raw []payload.Facet) catalog.FilterOptions {
	var opts catalog.FilterOptions
	for _, f := range raw {
		switch mapping.FacetKindOf(f.Code) {
		case mapping.FacetColor:
			for _, v := range f.Values {
				opts.Colors = append(opts.Colors, colorOption(v))
			}
		case mapping.FacetSize:
			for _, v := range f.Values {
				opts.Sizes = append(opts.Sizes, catalog.FilterOption{ID: sizeID(v), Name: displayName(v), Count: v.Count})
			}
		case mapping.FacetGender:
			for _, v := range f.Values {
				id, ok := mapping.GenderFromLabel(displayName(v))
				if !ok {
					id = strings.ToLower(strings.TrimSpace(v.Code))
				}
				opts.Genders = append(opts.Genders, catalog.FilterOption{ID: id, Name: mapping.GenderLabel(id), Count: v.Count})
			}
		case mapping.FacetRating:
			for _, v := range f.Values {
				t, ok := ratingThreshold(v)
				if !ok {
					continue
				}
				opts.Ratings = append(opts.Ratings, catalog.FilterOption{ID: strconv.Itoa(t), Name: mapping.RatingLabel(t), Count: v.Count})
			}
		case mapping.FacetBrand:
			for _, v := range f.Values {
				id := v.Code
				if id == "" {
					id = mapping.Slug(v.Name)
				}
				opts.Brands = append(opts.Brands, catalog.FilterOption{ID: id, Name: displayName(v), Count: v.Count})
			}
		}
	}
	return opts
}

func colorOption(v payload.FacetValue) catalog.ColorOption {
	id := colorID(v)
	hex, ok := mapping.HexFromRGB(v.Code)
	if !ok {
		hex, _ = mapping.ColorHex(id)
	}
	name := v.Name
	if c, known := mapping.ColorByID(id); known && name == "" {
		name = c.Name
	}
	return catalog.ColorOption{ID: id, Name: name, HexCode: hex, Count: v.Count}
}

func displayName(v payload.FacetValue) string {
	if v.Name != "" {
		return v.Name
	}
	return v.Code
}

// Breadcrumbs copies the active-facet trail, translating color codes to
// internal ids.
func (n *Normalizer) Breadcrumbs(raw []payload.Breadcrumb) []catalog.Breadcrumb {
	out := make([]catalog.Breadcrumb, 0, len(raw))
	for _, b := range raw {
		value := b.FacetValueCode
		if mapping.FacetKindOf(b.FacetCode) == mapping.FacetColor {
			if id, ok := mapping.ColorIDForRGB(value); ok {
				value = id
			}
		}
		out = append(out, catalog.Breadcrumb{
			FacetCode: b.FacetCode,
			FacetName: b.FacetName,
			ValueCode: value,
			ValueName: b.FacetValueName,
		})
	}
	return out
}
