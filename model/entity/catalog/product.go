package catalog

import "time"

// Product is the display model of one listing entry. It is built by the
// normalizer and treated as immutable afterwards.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageUrl"`
	CategoryID    string    `json:"categoryId"`
	BrandID       string    `json:"brandId"`
	InStock       bool      `json:"inStock"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	Colors        []string  `json:"colors"`
	Sizes         []string  `json:"sizes"`
	Gender        string    `json:"gender"`
	IsOnSale      bool      `json:"isOnSale"`
	DiscountRate  float64   `json:"discountRate,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Category is an entry of the category list endpoint.
type Category struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Brand is an entry of the brand list endpoint.
type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Breadcrumb is one step of the active-facet trail.
type Breadcrumb struct {
	FacetCode string `json:"facetCode"`
	FacetName string `json:"facetName"`
	ValueCode string `json:"valueCode"`
	ValueName string `json:"valueName"`
}
