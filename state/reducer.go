package state

import (
	"storefront.GO/model/entity/catalog"
	"storefront.GO/model/payload"
)

type action interface{}

type (
	fetchStarted struct{}

	searchSucceeded struct {
		Products    []catalog.Product
		TotalCount  int
		Page        int // one-based
		PageSize    int
		Options     catalog.FilterOptions
		Facets      []payload.Facet
		Breadcrumbs []catalog.Breadcrumb
	}

	searchFailed struct{ Message string }

	paramsReplaced struct {
		Filters  *catalog.Filter
		Page     int
		PageSize int
		SortBy   string
	}

	filtersPatched struct{ Patch catalog.FilterPatch }
	filtersCleared struct{}
	pageSet        struct{ Page int }
	pageSizeSet    struct{ Size int }
	sortSet        struct{ SortBy string }

	productSelected  struct{ Product catalog.Product }
	selectFailed     struct{ Message string }
	selectionCleared struct{}

	metaLoaded struct {
		Categories []catalog.Category
		Brands     []catalog.Brand
	}
	metaFailed struct{ Message string }
)

// reduce returns the state after a. It never modifies s in place.
func reduce(s State, a action) State {
	switch a := a.(type) {
	case fetchStarted:
		s.Loading = true
		s.Error = ""

	case searchSucceeded:
		s.Loading = false
		s.Error = ""
		s.loaded = true
		s.Products = a.Products
		if s.Products == nil {
			s.Products = []catalog.Product{}
		}
		s.TotalCount = a.TotalCount
		if a.PageSize > 0 {
			s.PageSize = a.PageSize
		}
		s.CurrentPage = clampPage(a.Page, s.TotalPages())
		s.Options = s.Options.MergeFrom(a.Options)
		s.Facets = a.Facets
		s.Breadcrumbs = a.Breadcrumbs

	case searchFailed:
		s.Loading = false
		s.loaded = true
		s.Error = a.Message
		s.Products = []catalog.Product{}
		s.TotalCount = 0
		s.Breadcrumbs = nil
		s.CurrentPage = clampPage(s.CurrentPage, s.TotalPages())

	case paramsReplaced:
		if a.Filters != nil {
			s.Filters = a.Filters.Clone().Normalize()
			s.CurrentPage = 1
		}
		if a.PageSize > 0 {
			s.PageSize = a.PageSize
			s.CurrentPage = 1
		}
		if a.SortBy != "" {
			s.SortBy = a.SortBy
		}
		if a.Page > 0 {
			s.CurrentPage = clampPage(a.Page, s.TotalPages())
		}

	case filtersPatched:
		s.Filters = s.Filters.Merge(a.Patch)
		s.CurrentPage = 1

	case filtersCleared:
		s.Filters = catalog.Filter{}
		s.CurrentPage = 1

	case pageSet:
		s.CurrentPage = clampPage(a.Page, s.TotalPages())

	case pageSizeSet:
		size := a.Size
		if size < 1 {
			size = 1
		}
		s.PageSize = size
		s.CurrentPage = 1

	case sortSet:
		s.SortBy = a.SortBy

	case productSelected:
		p := a.Product
		s.SelectedProduct = &p
		s.Loading = false

	case selectFailed:
		s.SelectedProduct = nil
		s.Loading = false
		s.Error = a.Message

	case selectionCleared:
		s.SelectedProduct = nil

	case metaLoaded:
		s.Loading = false
		s.Categories = a.Categories
		s.Brands = a.Brands

	case metaFailed:
		s.Loading = false
		s.Error = a.Message
	}
	return s
}
