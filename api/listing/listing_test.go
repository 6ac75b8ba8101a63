package listing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"storefront.GO/model/entity/catalog"
	"storefront.GO/model/payload"
	"storefront.GO/service/catalogapi"
)

type stubSource struct {
	lastQuery string
	fail      error
	warmed    int
}

func (s *stubSource) Search(ctx context.Context, req catalogapi.SearchRequest) (*payload.SearchResponse, error) {
	s.lastQuery = req.Query
	if s.fail != nil {
		return nil, s.fail
	}
	return &payload.SearchResponse{
		Products: []map[string]interface{}{
			{"code": "1001", "name": "Puset", "price": map[string]interface{}{"value": 4999.9}},
			{"code": "1002", "name": "Mama Sandalyesi", "price": map[string]interface{}{"value": 2450}},
		},
		Pagination: payload.Pagination{CurrentPage: req.CurrentPage, PageSize: req.PageSize, TotalPages: 3, TotalResults: 5},
	}, nil
}

func (s *stubSource) Product(ctx context.Context, id string) (map[string]interface{}, error) {
	if id != "1001" {
		return nil, &catalogapi.APIError{Status: http.StatusNotFound, Path: "/products/" + id}
	}
	return map[string]interface{}{"code": id, "name": "Puset"}, nil
}

func (s *stubSource) Categories(ctx context.Context) ([]payload.Category, error) {
	return []payload.Category{{Code: "3779", Name: "Bebek Arabası"}}, nil
}

func (s *stubSource) Brands(ctx context.Context) ([]payload.Brand, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	return []payload.Brand{{Name: "Kraft"}}, nil
}

func (s *stubSource) WarmMeta(ctx context.Context) (catalogapi.MetaResult, error) {
	s.warmed++
	return catalogapi.FetchMeta(ctx, s)
}

func (s *stubSource) InvalidateMeta(ctx context.Context) {}

func newServer(src catalogapi.Source) *echo.Echo {
	e := echo.New()
	g := e.Group("/api")
	NewHandler(src, nil, 2).Register(g)
	RegisterAdminRoutes(g, src)
	return e
}

func get(t *testing.T, e *echo.Echo, target string, out interface{}) int {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s: %v (%s)", target, err, rec.Body.String())
		}
	}
	return rec.Code
}

func TestParseParams(t *testing.T) {
	q, _ := url.ParseQuery("category=bebek-arabasi&brand=a,b&brand=c&color=mavi&rating=4&minPrice=0&maxPrice=50&q=%20&inStock=true&onSale=0&page=2&pageSize=12&sort=price-asc")
	p, err := ParseParams(q)
	if err != nil {
		t.Fatalf("ParseParams: %v", err)
	}
	f := p.Filters
	if *f.CategoryID != "bebek-arabasi" || len(f.BrandIDs) != 3 || f.Colors[0] != "mavi" || f.Ratings[0] != 4 {
		t.Errorf("Filters = %+v", f)
	}
	if f.PriceRange == nil || f.PriceRange.Max != 50 {
		t.Errorf("PriceRange = %+v", f.PriceRange)
	}
	if f.Has(catalog.KeySearchTerm) || f.Has(catalog.KeyOnSaleOnly) || !f.Has(catalog.KeyInStockOnly) {
		t.Errorf("flags/search = %+v", f)
	}
	if p.Page != 2 || p.PageSize != 12 || p.SortBy != "price-asc" {
		t.Errorf("Params = %+v", p)
	}

	for _, bad := range []string{"rating=6", "minPrice=10", "minPrice=9&maxPrice=1", "page=0", "pageSize=x", "maxPrice=-1&minPrice=0",
		"minPrice=NaN&maxPrice=5", "minPrice=1&maxPrice=Inf", "minPrice=0&maxPrice=+Inf", "minPrice=-Inf&maxPrice=1"} {
		q, _ := url.ParseQuery(bad)
		if _, err := ParseParams(q); err == nil {
			t.Errorf("ParseParams(%q) succeeded, want error", bad)
		}
	}
}

func TestListing(t *testing.T) {
	src := &stubSource{}
	e := newServer(src)

	var body map[string]interface{}
	code := get(t, e, "/api/listing?gender=erkek&page=2", &body)
	if code != http.StatusOK {
		t.Fatalf("status = %d, body %v", code, body)
	}
	if body["status"] != "loaded" || body["currentPage"] != float64(2) || body["totalPages"] != float64(3) {
		t.Errorf("body = %v", body)
	}
	if body["activeFilterCount"] != float64(1) || body["hasNextPage"] != true || body["hasPreviousPage"] != true {
		t.Errorf("derived views = %v", body)
	}
	if products, _ := body["products"].([]interface{}); len(products) != 2 {
		t.Errorf("products = %v", body["products"])
	}
	if src.lastQuery != "relevance:gender:Erkek" {
		t.Errorf("query = %q", src.lastQuery)
	}
}

func TestListingUpstreamFailure(t *testing.T) {
	e := newServer(&stubSource{fail: &catalogapi.APIError{Status: http.StatusTooManyRequests}})
	var body map[string]interface{}
	if code := get(t, e, "/api/listing", &body); code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", code)
	}
	if body["error"] != catalogapi.KindMessage(catalogapi.KindRateLimited) || body["status"] != "errored" {
		t.Errorf("body = %v", body)
	}
}

func TestListingBadRequest(t *testing.T) {
	e := newServer(&stubSource{})
	if code := get(t, e, "/api/listing?rating=zero", nil); code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestListingRejectsNonFinitePrice(t *testing.T) {
	src := &stubSource{}
	e := newServer(src)
	for _, target := range []string{"/api/listing?minPrice=NaN&maxPrice=5", "/api/listing?minPrice=1&maxPrice=Inf"} {
		var body map[string]interface{}
		if code := get(t, e, target, &body); code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, code)
		}
	}
	if src.lastQuery != "" {
		t.Errorf("search sent for invalid price: %q", src.lastQuery)
	}
}

func TestQueryEndpoint(t *testing.T) {
	e := newServer(&stubSource{})
	var body map[string]string
	get(t, e, "/api/listing/query?category=bebek-arabasi&color=mavi&sort=bogus", &body)
	want := `relevance:allCategories:3779:category:"3779":swatchColors:0;0;255`
	if body["query"] != want {
		t.Errorf("query = %q, want %q", body["query"], want)
	}
}

func TestProductEndpoint(t *testing.T) {
	e := newServer(&stubSource{})
	var p catalog.Product
	if code := get(t, e, "/api/products/1001", &p); code != http.StatusOK || p.ID != "1001" {
		t.Errorf("status = %d, product = %+v", code, p)
	}
	var body map[string]interface{}
	if code := get(t, e, "/api/products/9", &body); code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
	if body["kind"] != string(catalogapi.KindNotFound) {
		t.Errorf("kind = %v", body["kind"])
	}
}

func TestMetaEndpoints(t *testing.T) {
	e := newServer(&stubSource{})
	var cats struct{ Categories []catalog.Category }
	get(t, e, "/api/categories", &cats)
	if len(cats.Categories) != 1 || cats.Categories[0].ID != "bebek-arabasi" {
		t.Errorf("categories = %+v", cats)
	}
	var brands struct{ Brands []catalog.Brand }
	get(t, e, "/api/brands", &brands)
	if len(brands.Brands) != 1 || brands.Brands[0].ID != "kraft" {
		t.Errorf("brands = %+v", brands)
	}
}

func TestAdminRequiresKey(t *testing.T) {
	t.Setenv("AUTH_TYPE", "key")
	t.Setenv("API_KEY", "s3cret")
	src := &stubSource{}
	e := newServer(src)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/meta/warm", nil))
	if rec.Code != http.StatusUnauthorized && rec.Code != http.StatusBadRequest {
		t.Errorf("without key: status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/meta/warm", strings.NewReader(""))
	req.Header.Set(echo.HeaderAuthorization, "Bearer s3cret")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || src.warmed != 1 {
		t.Errorf("with key: status = %d, warmed = %d (%s)", rec.Code, src.warmed, rec.Body.String())
	}
}
