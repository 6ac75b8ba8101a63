package listing

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"storefront.GO/model/entity/catalog"
	"storefront.GO/state"
)

// ParseParams reads listing parameters from a query string. List values may
// repeat (color=a&color=b) or be comma separated (color=a,b). Absent
// parameters leave the corresponding filter key unset.
func ParseParams(q url.Values) (state.Params, error) {
	var f catalog.Filter
	var p state.Params

	if v := strings.TrimSpace(q.Get("category")); v != "" {
		f.CategoryID = catalog.String(v)
	}
	f.BrandIDs = list(q, "brand")
	f.Sizes = list(q, "size")
	f.Colors = list(q, "color")
	f.Genders = list(q, "gender")
	for _, r := range list(q, "rating") {
		n, err := strconv.Atoi(r)
		if err != nil || n < 1 || n > 5 {
			return p, fmt.Errorf("rating %q: must be 1-5", r)
		}
		f.Ratings = append(f.Ratings, n)
	}

	lo, hasLo, err := amount(q, "minPrice")
	if err != nil {
		return p, err
	}
	hi, hasHi, err := amount(q, "maxPrice")
	if err != nil {
		return p, err
	}
	if hasLo || hasHi {
		if !hasLo || !hasHi {
			return p, fmt.Errorf("minPrice and maxPrice must be given together")
		}
		if lo > hi {
			return p, fmt.Errorf("minPrice %v exceeds maxPrice %v", lo, hi)
		}
		f.PriceRange = catalog.Price(lo, hi)
	}

	if v := q.Get("q"); strings.TrimSpace(v) != "" {
		f.SearchTerm = catalog.String(v)
	}
	if flag(q, "inStock") {
		f.InStockOnly = catalog.Bool(true)
	}
	if flag(q, "onSale") {
		f.OnSaleOnly = catalog.Bool(true)
	}

	if p.Page, err = positive(q, "page"); err != nil {
		return p, err
	}
	if p.PageSize, err = positive(q, "pageSize"); err != nil {
		return p, err
	}
	p.SortBy = q.Get("sort")
	f = f.Normalize()
	p.Filters = &f
	return p, nil
}

func list(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func amount(q url.Values, key string) (float64, bool, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false, fmt.Errorf("%s %q: must be a finite non-negative number", key, v)
	}
	return f, true, nil
}

func positive(q url.Values, key string) (int, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s %q: must be a positive integer", key, v)
	}
	return n, nil
}

func flag(q url.Values, key string) bool {
	b, _ := strconv.ParseBool(q.Get(key))
	return b
}
