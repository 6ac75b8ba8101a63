// Package state owns the listing application state. Intents on Store update
// it synchronously and start at most one search request at a time; request
// results are applied through the same reducer.
package state

import (
	"storefront.GO/mapping"
	"storefront.GO/model/entity/catalog"
	"storefront.GO/model/payload"
)

// Status is derived from the loading and error fields.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusErrored Status = "errored"
)

const DefaultPageSize = 24

type State struct {
	Products        []catalog.Product     `json:"products"`
	SelectedProduct *catalog.Product      `json:"selectedProduct"`
	Loading         bool                  `json:"loading"`
	Error           string                `json:"error,omitempty"`
	Filters         catalog.Filter        `json:"filters"`
	TotalCount      int                   `json:"totalCount"`
	CurrentPage     int                   `json:"currentPage"`
	PageSize        int                   `json:"pageSize"`
	SortBy          string                `json:"sortBy"`
	Options         catalog.FilterOptions `json:"options"`
	Facets          []payload.Facet       `json:"facets,omitempty"`
	Breadcrumbs     []catalog.Breadcrumb  `json:"breadcrumbs,omitempty"`
	Categories      []catalog.Category    `json:"categories,omitempty"`
	Brands          []catalog.Brand       `json:"brands,omitempty"`

	// loaded is set by the first search resolution.
	loaded bool
}

// Initial returns the state before any request.
func Initial(pageSize int) State {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return State{
		Products:    []catalog.Product{},
		CurrentPage: 1,
		PageSize:    pageSize,
		SortBy:      mapping.SortRelevance,
		Options:     mapping.DefaultFilterOptions(),
	}
}

// TotalPages is ceil(TotalCount / PageSize).
func (s State) TotalPages() int {
	if s.PageSize < 1 || s.TotalCount <= 0 {
		return 0
	}
	return (s.TotalCount + s.PageSize - 1) / s.PageSize
}

func (s State) HasNextPage() bool {
	return s.CurrentPage < s.TotalPages()
}

func (s State) HasPreviousPage() bool {
	return s.CurrentPage > 1
}

func (s State) ActiveFilterCount() int {
	return s.Filters.ActiveCount()
}

func (s State) Status() Status {
	switch {
	case s.Loading:
		return StatusLoading
	case s.Error != "":
		return StatusErrored
	case s.loaded:
		return StatusLoaded
	}
	return StatusIdle
}

// clampPage keeps page within [1, max(1, totalPages)].
func clampPage(page, totalPages int) int {
	upper := totalPages
	if upper < 1 {
		upper = 1
	}
	if page > upper {
		page = upper
	}
	if page < 1 {
		page = 1
	}
	return page
}
