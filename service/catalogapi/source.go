// Package catalogapi talks to the product search API and classifies its
// failures. Source abstracts the API so listings can also be served from
// recorded fixtures.
package catalogapi

import (
	"context"

	"storefront.GO/model/entity/catalog"
	"storefront.GO/model/payload"
)

// SearchRequest is one listing page request. Query is the serialized clause
// list; Filter carries the same constraints in internal codes for sources that
// evaluate them locally.
type SearchRequest struct {
	Query       string
	Filter      catalog.Filter
	SortBy      string
	CurrentPage int // zero-based
	PageSize    int
}

type Source interface {
	Search(ctx context.Context, req SearchRequest) (*payload.SearchResponse, error)
	Product(ctx context.Context, id string) (map[string]interface{}, error)
	Categories(ctx context.Context) ([]payload.Category, error)
	Brands(ctx context.Context) ([]payload.Brand, error)
}

// MetaWarmer is implemented by sources that cache metadata.
type MetaWarmer interface {
	WarmMeta(ctx context.Context) (MetaResult, error)
	InvalidateMeta(ctx context.Context)
}
