package catalogapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"gorm.io/gorm"

	"storefront.GO/mapping"
	"storefront.GO/model/entity/catalog"
	"storefront.GO/model/payload"
	fixtureRepo "storefront.GO/model/repository/fixture"
	"storefront.GO/service/normalizer"
)

// FixtureSource serves recorded payloads from the fixture table. Filters,
// sorting and pagination are evaluated locally and no facets are returned,
// so listings fall back to the default filter options.
type FixtureSource struct {
	repo *fixtureRepo.FixtureRepository
	norm *normalizer.Normalizer
}

func NewFixtureSource(repo *fixtureRepo.FixtureRepository, norm *normalizer.Normalizer) *FixtureSource {
	if norm == nil {
		norm = normalizer.New()
	}
	return &FixtureSource{repo: repo, norm: norm}
}

type fixtureRow struct {
	raw     map[string]interface{}
	product catalog.Product
}

func (s *FixtureSource) load(ctx context.Context) ([]fixtureRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("catalogapi: load fixtures: %w", err)
	}
	rows := make([]fixtureRow, 0, len(items))
	for _, it := range items {
		raw, err := it.Raw()
		if err != nil {
			continue
		}
		rows = append(rows, fixtureRow{raw: raw, product: s.norm.Product(raw, nil)})
	}
	return rows, nil
}

func (s *FixtureSource) Search(ctx context.Context, req SearchRequest) (*payload.SearchResponse, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	matched := rows[:0]
	for _, r := range rows {
		if req.Filter.Matches(r.product) {
			matched = append(matched, r)
		}
	}
	sortRows(matched, req.SortBy)

	size := req.PageSize
	if size < 1 {
		size = 1
	}
	total := len(matched)
	pages := (total + size - 1) / size
	page := req.CurrentPage
	if page < 0 {
		page = 0
	}
	from := page * size
	if from > total {
		from = total
	}
	to := from + size
	if to > total {
		to = total
	}

	products := make([]map[string]interface{}, 0, to-from)
	for _, r := range matched[from:to] {
		products = append(products, r.raw)
	}
	return &payload.SearchResponse{
		Products: products,
		Pagination: payload.Pagination{
			CurrentPage:  page,
			PageSize:     size,
			TotalPages:   pages,
			TotalResults: total,
		},
	}, nil
}

func sortRows(rows []fixtureRow, sortBy string) {
	var less func(a, b catalog.Product) bool
	switch mapping.SortCode(sortBy) {
	case mapping.SortPriceAsc:
		less = func(a, b catalog.Product) bool { return a.Price < b.Price }
	case mapping.SortPriceDesc:
		less = func(a, b catalog.Product) bool { return a.Price > b.Price }
	case mapping.SortMostReviewed:
		less = func(a, b catalog.Product) bool { return a.ReviewCount > b.ReviewCount }
	case mapping.SortDiscountDesc:
		less = func(a, b catalog.Product) bool { return a.DiscountRate > b.DiscountRate }
	case mapping.SortTopFavorites:
		less = func(a, b catalog.Product) bool {
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return a.ReviewCount > b.ReviewCount
		}
	case mapping.SortNewest:
		less = func(a, b catalog.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	default:
		return
	}
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i].product, rows[j].product) })
}

func (s *FixtureSource) Product(ctx context.Context, id string) (map[string]interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	item, err := s.repo.FindByCode(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &APIError{Status: http.StatusNotFound, Path: "/products/" + id, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("catalogapi: fixture %s: %w", id, err)
	}
	return item.Raw()
}

// Categories lists the distinct first categories of the stored products.
func (s *FixtureSource) Categories(ctx context.Context) ([]payload.Category, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []payload.Category
	seen := map[string]bool{}
	for _, r := range rows {
		decoded, _ := normalizer.Decode(r.raw)
		if len(decoded.Categories) == 0 {
			continue
		}
		c := decoded.Categories[0]
		if c.Code == "" || seen[c.Code] {
			continue
		}
		seen[c.Code] = true
		out = append(out, c)
	}
	return out, nil
}

// Brands lists the distinct brands of the stored products, keyed by slug.
func (s *FixtureSource) Brands(ctx context.Context) ([]payload.Brand, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []payload.Brand
	seen := map[string]bool{}
	for _, r := range rows {
		id := r.product.BrandID
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		decoded, _ := normalizer.Decode(r.raw)
		out = append(out, payload.Brand{Code: id, Name: decoded.Brand.Name})
	}
	return out, nil
}
