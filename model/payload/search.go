package payload

// SearchResponse is the body of GET /products/search.
type SearchResponse struct {
	Products    []map[string]interface{} `json:"products"`
	Facets      []Facet                  `json:"facets,omitempty"`
	Breadcrumbs []Breadcrumb             `json:"breadcrumbs,omitempty"`
	Pagination  Pagination               `json:"pagination"`
	FreeText    string                   `json:"freeTextSearch,omitempty"`
}

// Facet is a filterable dimension reported by the search API.
type Facet struct {
	Code     string       `json:"code"`
	Name     string       `json:"name"`
	Values   []FacetValue `json:"values"`
	Priority int          `json:"priority,omitempty"`
}

type FacetValue struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected,omitempty"`
}

type Breadcrumb struct {
	FacetCode      string `json:"facetCode"`
	FacetName      string `json:"facetName"`
	FacetValueCode string `json:"facetValueCode"`
	FacetValueName string `json:"facetValueName"`
}

// Pagination uses a zero-based CurrentPage.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	PageSize     int `json:"pageSize"`
	TotalPages   int `json:"totalPages"`
	TotalResults int `json:"totalResults"`
}

// CategoryList is the body of GET /catalogs/categories.
type CategoryList struct {
	Categories []Category `json:"categories"`
}

type Category struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// BrandList is the body of GET /brands.
type BrandList struct {
	Brands []Brand `json:"brands"`
}

type Brand struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
