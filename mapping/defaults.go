package mapping

import (
	"strconv"

	"storefront.GO/model/entity/catalog"
)

var defaultSizes = []string{"0-3 Ay", "3-6 Ay", "6-9 Ay", "9-12 Ay", "12-18 Ay", "18-24 Ay", "2-3 Yaş", "3-4 Yaş"}

// RatingLabel renders a minimum-star threshold the way the search API spells it.
func RatingLabel(n int) string {
	return strconv.Itoa(n) + "* ve üzeri"
}

// DefaultFilterOptions is the static option set used until a response carries
// facets. Counts are zero.
func DefaultFilterOptions() catalog.FilterOptions {
	opts := catalog.FilterOptions{}
	for _, c := range palette {
		opts.Colors = append(opts.Colors, catalog.ColorOption{ID: c.ID, Name: c.Name, HexCode: c.Hex})
	}
	for _, s := range defaultSizes {
		opts.Sizes = append(opts.Sizes, catalog.FilterOption{ID: s, Name: s})
	}
	for _, g := range genders {
		opts.Genders = append(opts.Genders, catalog.FilterOption{ID: g.Code, Name: g.Label})
	}
	for n := 5; n >= 1; n-- {
		opts.Ratings = append(opts.Ratings, catalog.FilterOption{ID: strconv.Itoa(n), Name: RatingLabel(n)})
	}
	opts.Brands = []catalog.FilterOption{}
	return opts
}

// ToExternalFilter converts internal gender and color codes into the values the
// search API expects. Other dimensions are copied as is.
func ToExternalFilter(f catalog.Filter) catalog.Filter {
	out := f.Clone()
	if len(out.Genders) > 0 {
		for i, g := range out.Genders {
			out.Genders[i] = GenderLabel(g)
		}
	}
	if len(out.Colors) > 0 {
		for i, c := range out.Colors {
			out.Colors[i] = ColorRGB(c)
		}
	}
	return out
}
