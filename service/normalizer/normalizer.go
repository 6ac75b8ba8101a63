// Package normalizer turns search API payloads into the listing display model.
// Nothing here fails: missing or malformed fields fall back to zero values.
package normalizer

import (
	"log"
	"strconv"
	"strings"
	"time"
	"unicode"

	"storefront.GO/mapping"
	"storefront.GO/model/entity/catalog"
	"storefront.GO/model/payload"
)

const DefaultCDNHost = "https://cdn.ebebek.com"

// facetFallbackLimit is how many facet values a product borrows when it has no
// variant options of its own.
const facetFallbackLimit = 3

var (
	colorOptionHints = []string{"color", "colour", "renk"}
	sizeOptionHints  = []string{"size", "beden", "yas", "ay", "age"}
)

type Normalizer struct {
	cdnHost string
	now     func() time.Time
	logger  *log.Logger
}

type Option func(*Normalizer)

// WithCDNHost sets the host prefixed to root-relative image URLs.
func WithCDNHost(host string) Option {
	return func(n *Normalizer) {
		if host != "" {
			n.cdnHost = strings.TrimRight(host, "/")
		}
	}
}

// WithClock replaces the time source used for missing timestamps.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) { n.now = now }
}

// WithLogger reports decode problems. Without it they are dropped silently.
func WithLogger(l *log.Logger) Option {
	return func(n *Normalizer) { n.logger = l }
}

func New(opts ...Option) *Normalizer {
	n := &Normalizer{cdnHost: DefaultCDNHost, now: time.Now}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Products normalizes a page of raw results against the page's facets.
func (n *Normalizer) Products(raws []map[string]interface{}, facets []payload.Facet) []catalog.Product {
	out := make([]catalog.Product, 0, len(raws))
	for _, r := range raws {
		out = append(out, n.Product(r, facets))
	}
	return out
}

// Product normalizes one raw search result. facets may be nil.
func (n *Normalizer) Product(raw map[string]interface{}, facets []payload.Facet) catalog.Product {
	r, err := Decode(raw)
	if err != nil && n.logger != nil {
		n.logger.Printf("normalizer: product %v decoded partially: %v", raw["code"], err)
	}
	return n.FromRaw(r, facets)
}

// FromRaw builds a Product from an already decoded payload.
func (n *Normalizer) FromRaw(r payload.RawProduct, facets []payload.Facet) catalog.Product {
	p := catalog.Product{
		ID:           r.Code,
		Name:         r.Name,
		Description:  r.Description,
		ImageURL:     n.imageURL(r.Images),
		InStock:      r.Stock.InStock(),
		Rating:       r.AverageRating,
		ReviewCount:  r.NumberOfReviews,
		IsOnSale:     r.DiscountRate > 0,
		DiscountRate: r.DiscountRate,
		CreatedAt:    n.timestamp(r.CreationTime),
		UpdatedAt:    n.timestamp(r.ModifiedTime),
	}
	if p.Description == "" {
		p.Description = r.Summary
	}

	switch {
	case r.DiscountedPrice != nil:
		p.Price = r.DiscountedPrice.Value
		if r.Price != nil && r.Price.Value != r.DiscountedPrice.Value {
			orig := r.Price.Value
			p.OriginalPrice = &orig
		}
	case r.Price != nil:
		p.Price = r.Price.Value
	}

	if len(r.Categories) > 0 {
		p.CategoryID = mapping.CategorySlug(r.Categories[0].Code)
	}
	if r.Brand != nil {
		p.BrandID = mapping.Slug(r.Brand.Name)
	}

	names := make([]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		names = append(names, c.Name)
	}
	p.Gender = mapping.InferGender(names...)

	colors, colorFound := variantValues(r.VariantOptions, colorOptionHints)
	if colorFound {
		for i, c := range colors {
			colors[i] = mapping.ColorFromName(c)
		}
	} else {
		colors = facetFallback(facets, mapping.FacetColor, colorID)
	}
	p.Colors = dedupe(colors)

	sizes, sizeFound := variantValues(r.VariantOptions, sizeOptionHints)
	if !sizeFound {
		sizes = facetFallback(facets, mapping.FacetSize, sizeID)
	}
	p.Sizes = dedupe(sizes)

	return p
}

func (n *Normalizer) imageURL(images []payload.Image) string {
	if len(images) == 0 {
		return ""
	}
	url := ""
	for _, kind := range []string{payload.ImagePrimary, payload.ImageGallery} {
		for _, img := range images {
			if img.ImageType == kind && img.URL != "" {
				url = img.URL
				break
			}
		}
		if url != "" {
			break
		}
	}
	if url == "" {
		url = images[0].URL
	}
	switch {
	case strings.HasPrefix(url, "//"):
		return "https:" + url
	case strings.HasPrefix(url, "/"):
		return n.cdnHost + url
	}
	return url
}

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05-0700", "2006-01-02 15:04:05"}

func (n *Normalizer) timestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return n.now()
}

// variantValues collects qualifier values of every option whose code contains
// one of hints. found reports whether any such option exists.
func variantValues(options []payload.VariantOption, hints []string) (values []string, found bool) {
	for _, o := range options {
		code := strings.ToLower(o.Code)
		if !containsAny(code, hints) {
			continue
		}
		found = true
		for _, q := range o.Qualifiers {
			if v := strings.TrimSpace(q.Value); v != "" {
				values = append(values, v)
			}
		}
	}
	return values, found
}

func facetFallback(facets []payload.Facet, kind mapping.FacetKind, id func(payload.FacetValue) string) []string {
	for _, f := range facets {
		if mapping.FacetKindOf(f.Code) != kind {
			continue
		}
		var out []string
		for i, v := range f.Values {
			if i == facetFallbackLimit {
				break
			}
			out = append(out, id(v))
		}
		return out
	}
	return nil
}

func colorID(v payload.FacetValue) string {
	if id, ok := mapping.ColorIDForRGB(v.Code); ok {
		return id
	}
	if v.Name != "" {
		return mapping.ColorFromName(v.Name)
	}
	return mapping.ColorFromName(v.Code)
}

func sizeID(v payload.FacetValue) string {
	if v.Code != "" {
		return v.Code
	}
	return v.Name
}

// ratingThreshold reads the leading integer of "4", "4* ve üzeri" or "4.0".
func ratingThreshold(v payload.FacetValue) (int, bool) {
	for _, s := range []string{v.Code, v.Name} {
		s = strings.TrimSpace(s)
		end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
		if end == -1 {
			end = len(s)
		}
		if n, err := strconv.Atoi(s[:end]); err == nil {
			return n, true
		}
	}
	return 0, false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
