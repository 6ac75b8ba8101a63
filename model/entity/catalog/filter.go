package catalog

// FilterKey names one dimension of the Filter model.
type FilterKey string

const (
	KeyCategory    FilterKey = "categoryId"
	KeyBrands      FilterKey = "brandIds"
	KeySizes       FilterKey = "sizes"
	KeyColors      FilterKey = "colors"
	KeyGenders     FilterKey = "genders"
	KeyRatings     FilterKey = "ratings"
	KeyPriceRange  FilterKey = "priceRange"
	KeySearchTerm  FilterKey = "searchTerm"
	KeyInStockOnly FilterKey = "inStockOnly"
	KeyOnSaleOnly  FilterKey = "onSaleOnly"
)

// PriceRange is an inclusive price bound.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Filter is the set of active listing constraints. A nil pointer or nil slice
// means the dimension is unconstrained; slices are never stored empty.
type Filter struct {
	CategoryID  *string     `json:"categoryId,omitempty"`
	BrandIDs    []string    `json:"brandIds,omitempty"`
	Sizes       []string    `json:"sizes,omitempty"`
	Colors      []string    `json:"colors,omitempty"`
	Genders     []string    `json:"genders,omitempty"`
	Ratings     []int       `json:"ratings,omitempty"`
	PriceRange  *PriceRange `json:"priceRange,omitempty"`
	SearchTerm  *string     `json:"searchTerm,omitempty"`
	InStockOnly *bool       `json:"inStockOnly,omitempty"`
	OnSaleOnly  *bool       `json:"onSaleOnly,omitempty"`
}

// FilterPatch is a shallow update. Keys present in Set overwrite the current
// value; keys listed in Clear are removed. Clear is applied after Set.
type FilterPatch struct {
	Set   Filter
	Clear []FilterKey
}

// AllKeys lists the filter keys in query order.
func AllKeys() []FilterKey {
	return []FilterKey{KeyCategory, KeyBrands, KeySizes, KeyGenders, KeyColors, KeyRatings, KeySearchTerm, KeyPriceRange, KeyInStockOnly, KeyOnSaleOnly}
}

// Has reports whether key is present.
func (f Filter) Has(key FilterKey) bool {
	switch key {
	case KeyCategory:
		return f.CategoryID != nil
	case KeyBrands:
		return len(f.BrandIDs) > 0
	case KeySizes:
		return len(f.Sizes) > 0
	case KeyColors:
		return len(f.Colors) > 0
	case KeyGenders:
		return len(f.Genders) > 0
	case KeyRatings:
		return len(f.Ratings) > 0
	case KeyPriceRange:
		return f.PriceRange != nil
	case KeySearchTerm:
		return f.SearchTerm != nil
	case KeyInStockOnly:
		return f.InStockOnly != nil
	case KeyOnSaleOnly:
		return f.OnSaleOnly != nil
	}
	return false
}

// Keys returns the present keys in query order.
func (f Filter) Keys() []FilterKey {
	var keys []FilterKey
	for _, k := range AllKeys() {
		if f.Has(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// ActiveCount is the number of present keys.
func (f Filter) ActiveCount() int {
	return len(f.Keys())
}

// IsEmpty reports whether no key is present.
func (f Filter) IsEmpty() bool {
	return f.ActiveCount() == 0
}

// Normalize drops empty slices so that presence always means non-empty.
func (f Filter) Normalize() Filter {
	if len(f.BrandIDs) == 0 {
		f.BrandIDs = nil
	}
	if len(f.Sizes) == 0 {
		f.Sizes = nil
	}
	if len(f.Colors) == 0 {
		f.Colors = nil
	}
	if len(f.Genders) == 0 {
		f.Genders = nil
	}
	if len(f.Ratings) == 0 {
		f.Ratings = nil
	}
	return f
}

// Clone deep-copies the filter.
func (f Filter) Clone() Filter {
	out := Filter{
		BrandIDs: cloneStrings(f.BrandIDs),
		Sizes:    cloneStrings(f.Sizes),
		Colors:   cloneStrings(f.Colors),
		Genders:  cloneStrings(f.Genders),
	}
	if f.Ratings != nil {
		out.Ratings = append(make([]int, 0, len(f.Ratings)), f.Ratings...)
	}
	if f.CategoryID != nil {
		v := *f.CategoryID
		out.CategoryID = &v
	}
	if f.PriceRange != nil {
		v := *f.PriceRange
		out.PriceRange = &v
	}
	if f.SearchTerm != nil {
		v := *f.SearchTerm
		out.SearchTerm = &v
	}
	if f.InStockOnly != nil {
		v := *f.InStockOnly
		out.InStockOnly = &v
	}
	if f.OnSaleOnly != nil {
		v := *f.OnSaleOnly
		out.OnSaleOnly = &v
	}
	return out
}

// Merge applies a patch and returns the normalized result. The receiver is not
// modified.
func (f Filter) Merge(p FilterPatch) Filter {
	out := f.Clone()
	set := p.Set.Clone()
	if set.CategoryID != nil {
		out.CategoryID = set.CategoryID
	}
	if set.BrandIDs != nil {
		out.BrandIDs = set.BrandIDs
	}
	if set.Sizes != nil {
		out.Sizes = set.Sizes
	}
	if set.Colors != nil {
		out.Colors = set.Colors
	}
	if set.Genders != nil {
		out.Genders = set.Genders
	}
	if set.Ratings != nil {
		out.Ratings = set.Ratings
	}
	if set.PriceRange != nil {
		out.PriceRange = set.PriceRange
	}
	if set.SearchTerm != nil {
		out.SearchTerm = set.SearchTerm
	}
	if set.InStockOnly != nil {
		out.InStockOnly = set.InStockOnly
	}
	if set.OnSaleOnly != nil {
		out.OnSaleOnly = set.OnSaleOnly
	}
	for _, k := range p.Clear {
		out = out.without(k)
	}
	return out.Normalize()
}

func (f Filter) without(key FilterKey) Filter {
	switch key {
	case KeyCategory:
		f.CategoryID = nil
	case KeyBrands:
		f.BrandIDs = nil
	case KeySizes:
		f.Sizes = nil
	case KeyColors:
		f.Colors = nil
	case KeyGenders:
		f.Genders = nil
	case KeyRatings:
		f.Ratings = nil
	case KeyPriceRange:
		f.PriceRange = nil
	case KeySearchTerm:
		f.SearchTerm = nil
	case KeyInStockOnly:
		f.InStockOnly = nil
	case KeyOnSaleOnly:
		f.OnSaleOnly = nil
	}
	return f
}

// cloneStrings keeps nil and empty apart; an empty slice in a patch still overwrites.
func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}

// String, Bool and Price build optional filter values inline.
func String(v string) *string { return &v }

func Bool(v bool) *bool { return &v }

func Price(min, max float64) *PriceRange { return &PriceRange{Min: min, Max: max} }
