package catalog

// FilterOption is one selectable value of a filter control.
type FilterOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ColorOption is a filter option with a swatch.
type ColorOption struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	HexCode string `json:"hexCode"`
	Count   int    `json:"count"`
}

// FilterOptions groups the option lists rendered in the filter sidebar.
type FilterOptions struct {
	Colors  []ColorOption  `json:"colors"`
	Sizes   []FilterOption `json:"sizes"`
	Genders []FilterOption `json:"genders"`
	Ratings []FilterOption `json:"ratings"`
	Brands  []FilterOption `json:"brands"`
}

// MergeFrom replaces every list that is non-empty in next and keeps the rest.
func (o FilterOptions) MergeFrom(next FilterOptions) FilterOptions {
	if len(next.Colors) > 0 {
		o.Colors = next.Colors
	}
	if len(next.Sizes) > 0 {
		o.Sizes = next.Sizes
	}
	if len(next.Genders) > 0 {
		o.Genders = next.Genders
	}
	if len(next.Ratings) > 0 {
		o.Ratings = next.Ratings
	}
	if len(next.Brands) > 0 {
		o.Brands = next.Brands
	}
	return o
}

// IsEmpty reports whether every list is empty.
func (o FilterOptions) IsEmpty() bool {
	return len(o.Colors) == 0 && len(o.Sizes) == 0 && len(o.Genders) == 0 && len(o.Ratings) == 0 && len(o.Brands) == 0
}
