// Package listing serves the product listing over HTTP. Every request runs
// its own state.Store against the shared catalog source.
package listing

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/config"
	"storefront.GO/mapping"
	"storefront.GO/model/entity/catalog"
	"storefront.GO/service/catalogapi"
	"storefront.GO/service/normalizer"
	"storefront.GO/service/query"
	"storefront.GO/state"
)

func init() {
	api.RegisterModule(RegisterListingRoutes)
	api.RegisterGET("/health", health)
}

type Handler struct {
	src      catalogapi.Source
	norm     *normalizer.Normalizer
	pageSize int
}

func NewHandler(src catalogapi.Source, norm *normalizer.Normalizer, pageSize int) *Handler {
	if norm == nil {
		norm = normalizer.New()
	}
	if pageSize < 1 {
		pageSize = state.DefaultPageSize
	}
	return &Handler{src: src, norm: norm, pageSize: pageSize}
}

func RegisterListingRoutes(apiGroup *echo.Group, src catalogapi.Source) {
	cfg := config.Get()
	h := NewHandler(src, normalizer.New(normalizer.WithCDNHost(cfg.CDNHost)), cfg.PageSize)
	h.Register(apiGroup)
}

func (h *Handler) Register(g *echo.Group) {
	g.GET("/listing", h.Listing)
	g.GET("/listing/query", h.Query)
	g.GET("/products/:id", h.Product)
	g.GET("/categories", h.Categories)
	g.GET("/brands", h.Brands)
}

// Response is the listing state plus its derived views.
type Response struct {
	state.State
	Status            state.Status `json:"status"`
	TotalPages        int          `json:"totalPages"`
	HasNextPage       bool         `json:"hasNextPage"`
	HasPreviousPage   bool         `json:"hasPreviousPage"`
	ActiveFilterCount int          `json:"activeFilterCount"`
	RequestDurationMs int64        `json:"request_duration_ms"`
}

func newResponse(c echo.Context, st state.State) Response {
	return Response{
		State:             st,
		Status:            st.Status(),
		TotalPages:        st.TotalPages(),
		HasNextPage:       st.HasNextPage(),
		HasPreviousPage:   st.HasPreviousPage(),
		ActiveFilterCount: st.ActiveFilterCount(),
		RequestDurationMs: api.Elapsed(c),
	}
}

// GET /api/listing – one page of products for the given filters
func (h *Handler) Listing(c echo.Context) error {
	p, err := ParseParams(c.QueryParams())
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	store := state.NewStore(h.src,
		state.WithPageSize(h.pageSize),
		state.WithNormalizer(h.norm),
		state.WithContext(c.Request().Context()),
	)
	defer store.Close()
	store.LoadProductsWithParams(p)
	store.Wait()

	st := store.State()
	if st.Error != "" {
		return c.JSON(http.StatusBadGateway, newResponse(c, st))
	}
	return c.JSON(http.StatusOK, newResponse(c, st))
}

// GET /api/listing/query – the search query a listing request would send
func (h *Handler) Query(c echo.Context) error {
	p, err := ParseParams(c.QueryParams())
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	external := mapping.ToExternalFilter(*p.Filters)
	return c.JSON(http.StatusOK, echo.Map{
		"query":  query.Build(&external, p.SortBy),
		"sortBy": mapping.SortCode(p.SortBy),
	})
}

// GET /api/products/:id
func (h *Handler) Product(c echo.Context) error {
	raw, err := h.src.Product(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(http.StatusOK, h.norm.Product(raw, nil))
}

// GET /api/categories
func (h *Handler) Categories(c echo.Context) error {
	raw, err := h.src.Categories(c.Request().Context())
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": normalizer.Categories(raw)})
}

// GET /api/brands
func (h *Handler) Brands(c echo.Context) error {
	raw, err := h.src.Brands(c.Request().Context())
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"brands": normalizer.Brands(raw)})
}

func failure(c echo.Context, err error) error {
	kind := catalogapi.Classify(err)
	c.Logger().Errorf("listing: %s %s: %v", c.Request().Method, c.Path(), err)
	return c.JSON(catalogapi.HTTPStatus(kind), echo.Map{
		"error": catalogapi.KindMessage(kind),
		"kind":  kind,
	})
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "sorts": mapping.SortKeys(), "filters": catalog.AllKeys()})
}
