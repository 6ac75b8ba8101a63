package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront.GO/config"
	"storefront.GO/core/cache"
	"storefront.GO/model/payload"
)

const (
	DefaultTimeout = 15 * time.Second
	DefaultMetaTTL = 30 * time.Minute

	// SearchFields is the projection requested for listing pages.
	SearchFields = "products(code,name,summary,description,price(FULL),discountedPrice(FULL),discountRate," +
		"images(DEFAULT),categories(code,name),brand(code,name),stock(FULL),averageRating,numberOfReviews," +
		"variantOptions(FULL),creationTime,modifiedTime),facets,breadcrumbs,pagination(DEFAULT)"
	ProductFields = "FULL"

	maxErrorBody = 512
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTimeout bounds each call. Zero disables the bound.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// WithLocale sets the lang and curr query parameters.
func WithLocale(lang, currency string) ClientOption {
	return func(c *Client) {
		c.lang = lang
		c.currency = currency
	}
}

func WithLogger(l *log.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// WithCache sets the in-memory level of the category/brand cache.
func WithCache(l1 *cache.Cache) ClientOption {
	return func(c *Client) { c.meta.l1 = l1 }
}

// WithRedis adds redis as the shared level of the category/brand cache.
func WithRedis(rdb *redis.Client) ClientOption {
	return func(c *Client) { c.meta.rdb = rdb }
}

// WithMetaTTL sets how long category and brand lists are cached.
func WithMetaTTL(d time.Duration) ClientOption {
	return func(c *Client) { c.meta.ttl = d }
}

// Client is the live Source. It never retries; a failed call is returned to
// the caller classified by Classify.
type Client struct {
	baseURL    string
	lang       string
	currency   string
	timeout    time.Duration
	httpClient *http.Client
	logger     *log.Logger
	meta       *metaCache
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		lang:       "tr",
		currency:   "TRY",
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		meta:       &metaCache{ttl: DefaultMetaTTL},
	}
	for _, o := range opts {
		o(c)
	}
	if c.meta.l1 == nil {
		c.meta.l1 = cache.NewCache()
	}
	c.meta.logger = c.logger
	return c
}

// NewClientFromConfig wires a Client from application settings, the shared
// in-memory cache and the global redis client.
func NewClientFromConfig(cfg *config.Config, opts ...ClientOption) *Client {
	base := []ClientOption{
		WithTimeout(cfg.APITimeout),
		WithLocale(cfg.APILang, cfg.APICurrency),
		WithCache(cache.GetInstance()),
	}
	if config.RedisClient != nil {
		base = append(base, WithRedis(config.RedisClient))
	}
	return NewClient(cfg.APIBaseURL, append(base, opts...)...)
}

func (c *Client) Search(ctx context.Context, req SearchRequest) (*payload.SearchResponse, error) {
	q := url.Values{}
	q.Set("query", req.Query)
	q.Set("currentPage", strconv.Itoa(req.CurrentPage))
	q.Set("pageSize", strconv.Itoa(req.PageSize))
	q.Set("fields", SearchFields)
	var resp payload.SearchResponse
	if err := c.get(ctx, "/products/search", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Product(ctx context.Context, id string) (map[string]interface{}, error) {
	q := url.Values{}
	q.Set("fields", ProductFields)
	var raw map[string]interface{}
	if err := c.get(ctx, "/products/"+url.PathEscape(id), q, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) Categories(ctx context.Context) ([]payload.Category, error) {
	return cached(ctx, c.meta, c.metaKey("categories"), c.fetchCategories)
}

func (c *Client) Brands(ctx context.Context) ([]payload.Brand, error) {
	return cached(ctx, c.meta, c.metaKey("brands"), c.fetchBrands)
}

func (c *Client) fetchCategories(ctx context.Context) ([]payload.Category, error) {
	var body payload.CategoryList
	if err := c.get(ctx, "/catalogs/categories", nil, &body); err != nil {
		return nil, err
	}
	return body.Categories, nil
}

func (c *Client) fetchBrands(ctx context.Context) ([]payload.Brand, error) {
	var body payload.BrandList
	if err := c.get(ctx, "/brands", nil, &body); err != nil {
		return nil, err
	}
	return body.Brands, nil
}

func (c *Client) metaKey(name string) string {
	return "catalogapi:" + name + ":" + c.lang
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if q == nil {
		q = url.Values{}
	}
	q.Set("lang", c.lang)
	q.Set("curr", c.currency)

	u := c.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("catalogapi: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalogapi: GET %s: %w", path, err)
	}
	defer resp.Body.Close()
	if c.logger != nil {
		c.logger.Printf("catalogapi: GET %s -> %d (%s)", path, resp.StatusCode, time.Since(start).Round(time.Millisecond))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Status: resp.StatusCode, Path: path, Body: string(body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("catalogapi: decode %s: %w", path, err)
	}
	return nil
}
